package optimizer

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultPassBudget is the number of rewrite passes run before giving up on
// reaching a fixed point.
const DefaultPassBudget = 10

// Option configures an Optimizer.
type Option func(*config)

type config struct {
	passBudget int
	heuristic  Heuristic
	log        logrus.FieldLogger
}

func defaultConfig() *config {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &config{
		passBudget: DefaultPassBudget,
		heuristic:  AdjacencyHeuristic{},
		log:        l,
	}
}

// WithPassBudget caps the number of rewrite passes. Values below 1 are ignored.
func WithPassBudget(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.passBudget = n
		}
	}
}

// WithHeuristic replaces the strategy that decides parallel reorders.
func WithHeuristic(h Heuristic) Option {
	return func(c *config) {
		if h != nil {
			c.heuristic = h
		}
	}
}

// WithLogger sets the logger for pass statistics and cycle warnings.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
