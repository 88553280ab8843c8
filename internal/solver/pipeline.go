package solver

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubecore/pkg/cube"
	"github.com/SeamusWaldron/cubecore/pkg/notation"
	"github.com/SeamusWaldron/cubecore/pkg/optimizer"
	"github.com/SeamusWaldron/cubecore/pkg/validate"
)

// Solution is the result of a pipeline run.
type Solution struct {
	CubeState string           `json:"cube_state"`
	Moves     []string         `json:"moves"`     // as returned by the solver
	Optimized []string         `json:"optimized"` // after the optimizer
	Original  notation.Metrics `json:"original"`
	Metrics   notation.Metrics `json:"metrics"` // of Optimized
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithOptimizer replaces the default optimizer.
func WithOptimizer(o *optimizer.Optimizer) PipelineOption {
	return func(p *Pipeline) {
		if o != nil {
			p.opt = o
		}
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(l logrus.FieldLogger) PipelineOption {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// Pipeline validates a cube, asks the solver for a solution, checks it
// and shortens it.
type Pipeline struct {
	solver Solver
	opt    *optimizer.Optimizer
	log    logrus.FieldLogger
}

// NewPipeline creates a pipeline around s.
func NewPipeline(s Solver, opts ...PipelineOption) *Pipeline {
	l := logrus.New()
	l.SetOutput(io.Discard)
	p := &Pipeline{
		solver: s,
		opt:    optimizer.New(),
		log:    l,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Solve returns a checked, optimized solution for c. c is not modified.
// The solver is handed c.FaceletString(), so cubes turned with slices or
// rotations still arrive with U at the center of the first face.
func (p *Pipeline) Solve(ctx context.Context, c *cube.Cube) (*Solution, error) {
	if err := validate.Cube(c); err != nil {
		return nil, fmt.Errorf("cube cannot be solved: %w", err)
	}

	state := c.FaceletString()
	raw, err := p.solver.Solve(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("failed to solve: %w", err)
	}

	moves, err := notation.ParseTokens(raw)
	if err != nil {
		return nil, fmt.Errorf("solver output: %w", err)
	}

	optimized := p.opt.Optimize(raw)
	optMoves, err := notation.ParseTokens(optimized)
	if err != nil {
		return nil, fmt.Errorf("optimized output: %w", err)
	}

	check := c.Copy()
	check.Apply(optMoves...)
	if !check.IsSolved() {
		return nil, fmt.Errorf("%w: solver moves do not solve %s", ErrNoSolution, state)
	}

	sol := &Solution{
		CubeState: state,
		Moves:     raw,
		Optimized: optimized,
		Original:  notation.Measure(moves),
		Metrics:   notation.Measure(optMoves),
	}

	p.log.WithFields(logrus.Fields{
		"state":     state,
		"moves":     len(raw),
		"optimized": len(optimized),
	}).Debug("solver: pipeline done")

	return sol, nil
}

// SolveString parses cubeString and solves it.
func (p *Pipeline) SolveString(ctx context.Context, cubeString string) (*Solution, error) {
	c, err := cube.FromString(cubeString)
	if err != nil {
		return nil, err
	}
	return p.Solve(ctx, c)
}
