// Package scramble generates random move sequences for mixing a cube.
package scramble

import (
	"fmt"
	"math/rand"

	"github.com/SeamusWaldron/cubecore/pkg/notation"
)

// DefaultLength is the usual competition scramble length.
const DefaultLength = 20

// BasicMoves returns the 18 outer-face turns.
func BasicMoves() []notation.Move {
	moves := make([]notation.Move, 0, 18)
	for _, f := range notation.Faces {
		for _, t := range []notation.Turn{notation.CW, notation.CCW, notation.Double} {
			moves = append(moves, notation.Move{Face: f, Turns: t})
		}
	}
	return moves
}

// Generator draws scrambles from a move set. A Generator is not safe for
// concurrent use.
type Generator struct {
	rng   *rand.Rand
	moves []notation.Move
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Generator{
		rng:   rand.New(cfg.source),
		moves: cfg.moves,
	}
}

// Generate returns exactly length moves. No move turns the same face as
// the one before it, and a face never comes back right after a turn of its
// opposite face (U D U), since either would let the sequence shrink.
func (g *Generator) Generate(length int) ([]notation.Move, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}

	out := make([]notation.Move, 0, length)
	candidates := make([]notation.Move, 0, len(g.moves))
	for len(out) < length {
		candidates = candidates[:0]
		for _, m := range g.moves {
			if allowed(out, m) {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) == 0 {
			return nil, fmt.Errorf("%w after %d moves", ErrMoveSetExhausted, len(out))
		}
		out = append(out, candidates[g.rng.Intn(len(candidates))])
	}
	return out, nil
}

// Tokens is Generate with the moves rendered as notation.
func (g *Generator) Tokens(length int) ([]string, error) {
	moves, err := g.Generate(length)
	if err != nil {
		return nil, err
	}
	return notation.Tokens(moves), nil
}

// String is Generate joined into a single space-separated sequence.
func (g *Generator) String(length int) (string, error) {
	moves, err := g.Generate(length)
	if err != nil {
		return "", err
	}
	return notation.FormatSequence(moves), nil
}

func allowed(prev []notation.Move, m notation.Move) bool {
	n := len(prev)
	if n == 0 {
		return true
	}
	last := prev[n-1]
	if m.Face == last.Face {
		return false
	}
	if n >= 2 {
		secondLast := prev[n-2]
		if last.IsOpposite(secondLast) && m.Face == secondLast.Face {
			return false
		}
	}
	return true
}

// Generate returns a scramble of length moves from a time-seeded generator.
func Generate(length int) ([]notation.Move, error) {
	return New().Generate(length)
}
