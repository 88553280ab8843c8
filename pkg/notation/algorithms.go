package notation

import (
	"fmt"
	"maps"
	"slices"
)

// Algorithms holds well-known sequences by name.
var Algorithms = map[string]string{
	// PLL
	"t-perm":  "R U R' U' R' F R2 U' R' U' R U R' F'",
	"y-perm":  "F R U' R' U' R U R' F' R U R' U' R' F R F'",
	"ua-perm": "R U' R U R U R U' R' U' R2",
	"ub-perm": "R2 U R U R' U' R' U' R' U R'",
	"h-perm":  "M2 U M2 U2 M2 U M2",
	"z-perm":  "M2 U M2 U M' U2 M2 U2 M'",

	// OLL
	"sune":     "R U R' U R U2 R'",
	"antisune": "R U2 R' U' R U' R'",

	// Triggers
	"sexy":         "R U R' U'",
	"sledgehammer": "R' F R F'",

	// Patterns
	"checkerboard": "M2 E2 S2",
	"cube-in-cube": "F L F U' R U F2 L2 U' L' B D' B' L2 U",
}

// Algorithm returns the moves of a named algorithm.
func Algorithm(name string) ([]Move, error) {
	seq, ok := Algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return ParseSequence(seq)
}

// AlgorithmNames returns the names in Algorithms, sorted.
func AlgorithmNames() []string {
	return slices.Sorted(maps.Keys(Algorithms))
}
