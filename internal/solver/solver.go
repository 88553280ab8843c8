// Package solver connects cubecore to an external solving program.
//
// A Solver turns a validated cube string into move tokens. CachedSolver
// puts a persistent cache and request coalescing in front of any Solver,
// and Pipeline runs the full validate, solve, optimize sequence for a cube.
package solver

import "context"

// Solver produces a move sequence that takes the cube described by
// cubeString to the solved state.
type Solver interface {
	Solve(ctx context.Context, cubeString string) ([]string, error)
}

// Func adapts a function to the Solver interface.
type Func func(ctx context.Context, cubeString string) ([]string, error)

// Solve implements Solver.
func (f Func) Solve(ctx context.Context, cubeString string) ([]string, error) {
	return f(ctx, cubeString)
}
