package solver

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/SeamusWaldron/cubecore/internal/storage"
	"github.com/SeamusWaldron/cubecore/pkg/optimizer"
)

// Store persists solver results. *storage.SolutionRepository implements it.
type Store interface {
	Get(cubeState string) (*storage.Solution, error)
	Put(s storage.Solution) error
}

// Stats counts the work a CachedSolver has done.
type Stats struct {
	Requests      int
	CacheHits     int
	Shared        int // requests whose result was shared with a concurrent caller
	Solves        int
	Failures      int
	TotalTime     time.Duration
	LastSolveTime time.Duration
}

// AverageTime returns the mean duration of successful solves.
func (s Stats) AverageTime() time.Duration {
	if s.Solves == 0 {
		return 0
	}
	return s.TotalTime / time.Duration(s.Solves)
}

// CacheOption configures a CachedSolver.
type CacheOption func(*CachedSolver)

// WithStore persists results so later runs skip the solver.
func WithStore(store Store) CacheOption {
	return func(c *CachedSolver) {
		c.store = store
	}
}

// WithCacheLogger sets the logger for cache hits and store failures.
func WithCacheLogger(l logrus.FieldLogger) CacheOption {
	return func(c *CachedSolver) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSolverName records name alongside stored results.
func WithSolverName(name string) CacheOption {
	return func(c *CachedSolver) {
		c.name = name
	}
}

// WithCacheOptimizer sets the optimizer used for the stored optimized form.
func WithCacheOptimizer(o *optimizer.Optimizer) CacheOption {
	return func(c *CachedSolver) {
		if o != nil {
			c.opt = o
		}
	}
}

// CachedSolver wraps a Solver so that each cube string is solved at most
// once at a time, and at most once overall when a Store is configured.
// It is safe for concurrent use.
type CachedSolver struct {
	next  Solver
	store Store
	opt   *optimizer.Optimizer
	log   logrus.FieldLogger
	name  string
	group singleflight.Group

	mu    sync.Mutex
	stats Stats
}

// NewCachedSolver wraps next.
func NewCachedSolver(next Solver, opts ...CacheOption) *CachedSolver {
	l := logrus.New()
	l.SetOutput(io.Discard)
	c := &CachedSolver{
		next: next,
		opt:  optimizer.New(),
		log:  l,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Solve implements Solver.
func (c *CachedSolver) Solve(ctx context.Context, cubeString string) ([]string, error) {
	c.record(func(s *Stats) { s.Requests++ })

	if moves, ok := c.lookup(cubeString); ok {
		c.record(func(s *Stats) { s.CacheHits++ })
		return moves, nil
	}

	v, err, shared := c.group.Do(cubeString, func() (interface{}, error) {
		return c.solve(ctx, cubeString)
	})
	if shared {
		c.record(func(s *Stats) { s.Shared++ })
	}
	if err != nil {
		return nil, err
	}
	return append([]string(nil), v.([]string)...), nil
}

func (c *CachedSolver) lookup(cubeString string) ([]string, bool) {
	if c.store == nil {
		return nil, false
	}
	sol, err := c.store.Get(cubeString)
	if err != nil {
		c.log.WithError(err).Warn("solver: cache lookup failed")
		return nil, false
	}
	if sol == nil {
		return nil, false
	}
	c.log.WithField("state", cubeString).Debug("solver: cache hit")
	return strings.Fields(sol.Moves), true
}

// solve runs inside the single-flight call. It looks in the store again
// because a caller that missed the cache just before an earlier call
// finished would otherwise solve the same cube a second time.
func (c *CachedSolver) solve(ctx context.Context, cubeString string) ([]string, error) {
	if moves, ok := c.lookup(cubeString); ok {
		c.record(func(s *Stats) { s.CacheHits++ })
		return moves, nil
	}

	start := time.Now()
	moves, err := c.next.Solve(ctx, cubeString)
	elapsed := time.Since(start)

	if err != nil {
		c.record(func(s *Stats) { s.Failures++ })
		return nil, err
	}
	c.record(func(s *Stats) {
		s.Solves++
		s.TotalTime += elapsed
		s.LastSolveTime = elapsed
	})

	c.log.WithFields(logrus.Fields{
		"moves":   len(moves),
		"elapsed": elapsed,
	}).Info("solver: solved")

	if c.store != nil {
		err := c.store.Put(storage.Solution{
			CubeState: cubeString,
			Moves:     strings.Join(moves, " "),
			Optimized: strings.Join(c.opt.Optimize(moves), " "),
			Solver:    c.name,
		})
		if err != nil {
			c.log.WithError(err).Warn("solver: failed to store solution")
		}
	}
	return moves, nil
}

func (c *CachedSolver) record(fn func(*Stats)) {
	c.mu.Lock()
	fn(&c.stats)
	c.mu.Unlock()
}

// Stats returns a snapshot of the counters.
func (c *CachedSolver) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
