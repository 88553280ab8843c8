package solver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CommandSolver runs an external program once per request. The cube string
// is passed as the last argument and stdout is read as space-separated
// move tokens, which is how the common kociemba command-line tools behave.
type CommandSolver struct {
	name string
	args []string
}

// NewCommandSolver creates a solver for command, the program followed by
// any fixed arguments.
func NewCommandSolver(command []string) (*CommandSolver, error) {
	if len(command) == 0 || command[0] == "" {
		return nil, fmt.Errorf("%w: no solver command configured", ErrSolverUnavailable)
	}
	return &CommandSolver{
		name: command[0],
		args: append([]string(nil), command[1:]...),
	}, nil
}

// Name returns the program name.
func (s *CommandSolver) Name() string {
	return s.name
}

// Solve implements Solver.
func (s *CommandSolver) Solve(ctx context.Context, cubeString string) ([]string, error) {
	args := append(append([]string(nil), s.args...), cubeString)
	cmd := exec.CommandContext(ctx, s.name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrSolverUnavailable, err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		return nil, fmt.Errorf("%w: %s: %v: %s", ErrNoSolution, s.name, err, msg)
	}

	out := strings.TrimSpace(stdout.String())
	if strings.HasPrefix(out, "Error") {
		return nil, fmt.Errorf("%w: %s", ErrNoSolution, out)
	}
	return strings.Fields(out), nil
}
