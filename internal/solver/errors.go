package solver

import "errors"

var (
	// ErrNoSolution is returned when the solver rejects the cube or its
	// answer does not solve it.
	ErrNoSolution = errors.New("solver: no solution")

	// ErrSolverUnavailable is returned when no solver program is configured
	// or it cannot be started.
	ErrSolverUnavailable = errors.New("solver: solver unavailable")
)
