// Package validate decides whether a cube coloring can be reached from a
// solved cube by legal moves.
//
// Checks run cheapest first and stop at the first failure:
//
//  1. no empty stickers
//  2. every color occurs 9 times
//  3. the six centers differ and sit the way they do on a real cube
//  4. an even number of edges is flipped
//  5. corner twists sum to a multiple of 3
//  6. edge and corner permutations have the same parity
//
// Faces are identified by their centers, so states reached with slice
// moves or rotations validate the same as any other.
package validate

import (
	"fmt"
	"math/bits"

	"github.com/SeamusWaldron/cubecore/pkg/cube"
)

// Cube validates the current state of c.
func Cube(c *cube.Cube) error {
	return State(c.State())
}

// String parses and validates a 54-character cube string.
func String(s string) error {
	st, err := cube.ParseState(s)
	if err != nil {
		return err
	}
	return State(st)
}

// Solvable reports whether the state passes every check.
func Solvable(c *cube.Cube) bool {
	return Cube(c) == nil
}

// State validates a 54-sticker snapshot.
func State(s cube.State) error {
	for i, c := range s {
		if !c.Valid() {
			return fmt.Errorf("%w: slot %d", ErrIncomplete, i)
		}
	}

	var counts [7]int
	for _, c := range s {
		counts[c]++
	}
	for _, c := range cube.Colors {
		if counts[c] != 9 {
			return &ColorCountError{Color: c, Count: counts[c]}
		}
	}

	var centers [6]cube.Color
	var seen [7]bool
	for _, f := range cube.Faces {
		c := s[f.Center()]
		if seen[c] {
			return &DuplicateCenterError{Color: c}
		}
		seen[c] = true
		centers[f] = c
	}
	if err := checkCenterLayout(centers); err != nil {
		return err
	}

	v := validator{state: s, centers: centers}

	edgePerm, err := v.edges()
	if err != nil {
		return err
	}
	cornerPerm, err := v.corners()
	if err != nil {
		return err
	}

	if permutationParity(edgePerm[:]) != permutationParity(cornerPerm[:]) {
		return ErrParityMismatch
	}
	return nil
}

type validator struct {
	state   cube.State
	centers [6]cube.Color
}

// home returns the color a slot carries on the solved cube these centers define.
func (v *validator) home(slot int) cube.Color {
	return v.centers[cube.SlotFace(slot)]
}

func colorMask(colors ...cube.Color) uint8 {
	var m uint8
	for _, c := range colors {
		m |= 1 << c
	}
	return m
}

// edges identifies the piece at every edge location by its color set and
// checks the flip parity. A location is flipped when its reference slot
// does not carry the piece's reference color.
func (v *validator) edges() ([12]int, error) {
	var perm [12]int
	var homeMask [12]uint8
	for j, e := range cube.EdgeSlots {
		homeMask[j] = colorMask(v.home(e[0]), v.home(e[1]))
	}

	flips := 0
	for i, e := range cube.EdgeSlots {
		a, b := v.state[e[0]], v.state[e[1]]
		j := matchPiece(homeMask[:], colorMask(a, b), 2)
		if j < 0 {
			return perm, &PieceError{Kind: "edge", Location: cube.EdgeNames[i], Colors: []cube.Color{a, b}}
		}
		perm[i] = j
		if a != v.home(cube.EdgeSlots[j][0]) {
			flips++
		}
	}
	if err := checkBijective(perm[:], "edge", cube.EdgeNames[:]); err != nil {
		return perm, err
	}

	if flips%2 != 0 {
		return perm, ErrBadEdgeParity
	}
	return perm, nil
}

// corners identifies the piece at every corner location and checks that
// the twists sum to a multiple of 3. A corner's twist is the index of the
// slot holding the piece's U/D color, counted clockwise from the U/D slot.
func (v *validator) corners() ([8]int, error) {
	var perm [8]int
	var homeMask [8]uint8
	for j, c := range cube.CornerSlots {
		homeMask[j] = colorMask(v.home(c[0]), v.home(c[1]), v.home(c[2]))
	}

	twist := 0
	for i, c := range cube.CornerSlots {
		colors := []cube.Color{v.state[c[0]], v.state[c[1]], v.state[c[2]]}
		j := matchPiece(homeMask[:], colorMask(colors...), 3)
		if j < 0 {
			return perm, &PieceError{Kind: "corner", Location: cube.CornerNames[i], Colors: colors}
		}
		perm[i] = j

		k, ok := cornerTwist(colors, v.homeColors(cube.CornerSlots[j]))
		if !ok {
			return perm, &PieceError{Kind: "corner", Location: cube.CornerNames[i] + " (mirror image)", Colors: colors}
		}
		twist += k
	}
	if err := checkBijective(perm[:], "corner", cube.CornerNames[:]); err != nil {
		return perm, err
	}

	if twist%3 != 0 {
		return perm, ErrBadCornerParity
	}
	return perm, nil
}

func (v *validator) homeColors(slots [3]int) [3]cube.Color {
	return [3]cube.Color{v.home(slots[0]), v.home(slots[1]), v.home(slots[2])}
}

// cornerTwist finds the rotation that takes the piece's home colors, read
// clockwise, to the colors found at a location. ok is false when the
// colors run counter-clockwise, which only a mirrored corner can do.
func cornerTwist(colors []cube.Color, home [3]cube.Color) (twist int, ok bool) {
	for k := 0; k < 3; k++ {
		if colors[k] == home[0] {
			return k, colors[(k+1)%3] == home[1] && colors[(k+2)%3] == home[2]
		}
	}
	return 0, false
}

// faceNormals are the outward directions of the faces, x right, y up,
// z front.
var faceNormals = [6][3]int{
	cube.U: {0, 1, 0},
	cube.R: {1, 0, 0},
	cube.F: {0, 0, 1},
	cube.D: {0, -1, 0},
	cube.L: {-1, 0, 0},
	cube.B: {0, 0, -1},
}

// checkCenterLayout accepts the 24 rotations of the solved center layout.
// The solved directions of the colors on U, F and R must form a
// right-handed frame, and every face must carry the color opposite to
// the one on its opposite face.
func checkCenterLayout(centers [6]cube.Color) error {
	dir := func(f cube.Face) [3]int { return faceNormals[centers[f].Home()] }
	opposite := [6]cube.Face{cube.D, cube.L, cube.B, cube.U, cube.R, cube.F}
	for _, f := range cube.Faces {
		a, b := dir(f), dir(opposite[f])
		if a[0] != -b[0] || a[1] != -b[1] || a[2] != -b[2] {
			return ErrCenterLayout
		}
	}

	u, fr, r := dir(cube.U), dir(cube.F), dir(cube.R)
	cross := [3]int{
		u[1]*fr[2] - u[2]*fr[1],
		u[2]*fr[0] - u[0]*fr[2],
		u[0]*fr[1] - u[1]*fr[0],
	}
	if cross != r {
		return ErrCenterLayout
	}
	return nil
}

// matchPiece returns the canonical piece with the given color set.
func matchPiece(homes []uint8, mask uint8, size int) int {
	if bits.OnesCount8(mask) != size {
		return -1
	}
	for j, h := range homes {
		if h == mask {
			return j
		}
	}
	return -1
}

func checkBijective(perm []int, kind string, names []string) error {
	seen := make([]bool, len(perm))
	for i, j := range perm {
		if seen[j] {
			return &PieceError{Kind: kind, Location: names[i] + " (duplicate of " + names[j] + ")"}
		}
		seen[j] = true
	}
	return nil
}

// permutationParity returns (n - cycles) mod 2.
func permutationParity(perm []int) int {
	visited := make([]bool, len(perm))
	cycles := 0
	for i := range perm {
		if visited[i] {
			continue
		}
		cycles++
		for j := i; !visited[j]; j = perm[j] {
			visited[j] = true
		}
	}
	return (len(perm) - cycles) % 2
}
