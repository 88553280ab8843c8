package scramble

import (
	"math/rand"
	"time"

	"github.com/SeamusWaldron/cubecore/pkg/notation"
)

// Option configures a Generator.
type Option func(*config)

type config struct {
	source rand.Source
	moves  []notation.Move
}

func defaultConfig() *config {
	return &config{
		source: rand.NewSource(time.Now().UnixNano()),
		moves:  BasicMoves(),
	}
}

// WithSource sets the random source. Use a fixed source for reproducible scrambles.
func WithSource(src rand.Source) Option {
	return func(c *config) {
		if src != nil {
			c.source = src
		}
	}
}

// WithSeed is shorthand for WithSource(rand.NewSource(seed)).
func WithSeed(seed int64) Option {
	return WithSource(rand.NewSource(seed))
}

// WithMoveSet replaces the 18 outer-face moves as the candidate pool.
// An empty set is ignored.
func WithMoveSet(moves []notation.Move) Option {
	return func(c *config) {
		if len(moves) > 0 {
			c.moves = append([]notation.Move(nil), moves...)
		}
	}
}
