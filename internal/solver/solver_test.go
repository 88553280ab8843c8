package solver

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubecore/internal/storage"
	"github.com/SeamusWaldron/cubecore/pkg/cube"
	"github.com/SeamusWaldron/cubecore/pkg/notation"
	"github.com/SeamusWaldron/cubecore/pkg/validate"
)

// inverseSolver knows which scramble produced each state and answers with
// its inverse.
type inverseSolver struct {
	known map[string][]string
	calls atomic.Int32
}

func newInverseSolver(scrambles ...string) *inverseSolver {
	s := &inverseSolver{known: make(map[string][]string)}
	for _, seq := range scrambles {
		c := cube.New()
		if err := c.ApplySequence(seq); err != nil {
			panic(err)
		}
		s.known[c.FaceletString()] = notation.Tokens(notation.InvertSequence(notation.MustParseSequence(seq)))
	}
	return s
}

func (s *inverseSolver) Solve(ctx context.Context, state string) ([]string, error) {
	s.calls.Add(1)
	moves, ok := s.known[state]
	if !ok {
		return nil, ErrNoSolution
	}
	return moves, nil
}

func scrambled(t *testing.T, seq string) *cube.Cube {
	t.Helper()
	c := cube.New()
	require.NoError(t, c.ApplySequence(seq))
	return c
}

func TestPipelineSolve(t *testing.T) {
	const scramble = "R U R' U' F2"
	padded := Func(func(ctx context.Context, state string) ([]string, error) {
		moves, err := newInverseSolver(scramble).Solve(ctx, state)
		if err != nil {
			return nil, err
		}
		// A redundant pair the optimizer must remove.
		return append([]string{"D", "D'"}, moves...), nil
	})

	c := scrambled(t, scramble)
	before := c.String()

	sol, err := NewPipeline(padded).Solve(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, before, c.String(), "input cube must not change")
	assert.Equal(t, before, sol.CubeState)
	assert.Equal(t, []string{"D", "D'", "F2", "U", "R", "U'", "R'"}, sol.Moves)
	assert.Equal(t, []string{"F2", "U", "R", "U'", "R'"}, sol.Optimized)
	assert.Equal(t, 7, sol.Original.HTM)
	assert.Equal(t, 5, sol.Metrics.HTM)
	assert.Equal(t, 6, sol.Metrics.QTM)
}

func TestPipelineNamesFacesByCenters(t *testing.T) {
	var got string
	undoM := Func(func(ctx context.Context, state string) ([]string, error) {
		got = state
		return []string{"M'"}, nil
	})

	c := scrambled(t, "M")
	require.NoError(t, validate.Cube(c))

	sol, err := NewPipeline(undoM).Solve(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t,
		"FUFFUFFUF"+"RRRRRRRRR"+"DFDDFDDFD"+"BDBBDBBDB"+"LLLLLLLLL"+"UBUUBUUBU",
		got)
	for i, f := range "URFDLB" {
		assert.Equal(t, byte(f), got[i*9+4], "center of face %c", f)
	}
	assert.Equal(t, got, sol.CubeState)
	assert.Equal(t, []string{"M'"}, sol.Optimized)
	assert.Equal(t, 1, sol.Metrics.Slices)
}

func TestPipelineSolvedCube(t *testing.T) {
	empty := Func(func(ctx context.Context, state string) ([]string, error) { return nil, nil })
	sol, err := NewPipeline(empty).Solve(context.Background(), cube.New())
	require.NoError(t, err)
	assert.Empty(t, sol.Optimized)
}

func TestPipelineRejectsUnsolvableCube(t *testing.T) {
	s := newInverseSolver()
	st := cube.New().State()
	st[19], st[10] = st[10], st[19]
	c := cube.New()
	c.SetState(st)

	_, err := NewPipeline(s).Solve(context.Background(), c)
	assert.ErrorIs(t, err, validate.ErrParityMismatch)
	assert.Equal(t, int32(0), s.calls.Load(), "solver must not run for an invalid cube")
}

func TestPipelineRejectsBadOutput(t *testing.T) {
	bad := Func(func(ctx context.Context, state string) ([]string, error) {
		return []string{"R", "Q"}, nil
	})
	_, err := NewPipeline(bad).Solve(context.Background(), scrambled(t, "R"))
	assert.ErrorIs(t, err, notation.ErrInvalidMove)
}

func TestPipelineRejectsWrongAnswer(t *testing.T) {
	wrong := Func(func(ctx context.Context, state string) ([]string, error) {
		return []string{"U"}, nil
	})
	_, err := NewPipeline(wrong).Solve(context.Background(), scrambled(t, "R"))
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestPipelineSolveString(t *testing.T) {
	s := newInverseSolver("L2 B")
	p := NewPipeline(s)

	sol, err := p.SolveString(context.Background(), scrambled(t, "L2 B").String())
	require.NoError(t, err)
	assert.Equal(t, []string{"B'", "L2"}, sol.Optimized)

	_, err = p.SolveString(context.Background(), "short")
	assert.ErrorIs(t, err, cube.ErrInvalidState)
}

// memStore is an in-memory Store.
type memStore struct {
	mu   sync.Mutex
	data map[string]storage.Solution
}

func (m *memStore) Get(state string) (*storage.Solution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.data[state]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memStore) Put(s storage.Solution) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]storage.Solution)
	}
	m.data[s.CubeState] = s
	return nil
}

func TestCachedSolverUsesStore(t *testing.T) {
	inner := newInverseSolver("R U")
	store := &memStore{}
	c := NewCachedSolver(inner, WithStore(store), WithSolverName("inverse"))
	state := scrambled(t, "R U").String()

	first, err := c.Solve(context.Background(), state)
	require.NoError(t, err)
	second, err := c.Solve(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), inner.calls.Load())

	stored, err := store.Get(state)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "U' R'", stored.Moves)
	assert.Equal(t, "U' R'", stored.Optimized)
	assert.Equal(t, "inverse", stored.Solver)

	stats := c.Stats()
	assert.Equal(t, 2, stats.Requests)
	assert.Equal(t, 1, stats.CacheHits)
	assert.Equal(t, 1, stats.Solves)
}

func TestCachedSolverWithSQLite(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.MigrateUp())

	inner := newInverseSolver("F D'")
	repo := storage.NewSolutionRepository(db)
	state := scrambled(t, "F D'").String()

	_, err = NewCachedSolver(inner, WithStore(repo)).Solve(context.Background(), state)
	require.NoError(t, err)

	// A fresh wrapper over the same database is served from disk.
	moves, err := NewCachedSolver(inner, WithStore(repo)).Solve(context.Background(), state)
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "F'"}, moves)
	assert.Equal(t, int32(1), inner.calls.Load())
}

func TestCachedSolverDoesNotCacheFailures(t *testing.T) {
	inner := newInverseSolver()
	store := &memStore{}
	c := NewCachedSolver(inner, WithStore(store))

	for i := 0; i < 2; i++ {
		_, err := c.Solve(context.Background(), "unknown")
		assert.ErrorIs(t, err, ErrNoSolution)
	}
	assert.Equal(t, int32(2), inner.calls.Load())
	assert.Equal(t, 2, c.Stats().Failures)
	assert.Empty(t, store.data)
}

// gateStore is a memStore that closes ready once it has served want lookups.
type gateStore struct {
	memStore
	want  int32
	gets  atomic.Int32
	ready chan struct{}
}

func (g *gateStore) Get(state string) (*storage.Solution, error) {
	if g.gets.Add(1) == g.want {
		close(g.ready)
	}
	return g.memStore.Get(state)
}

func TestCachedSolverCoalescesConcurrentRequests(t *testing.T) {
	const n = 8

	// Every caller looks up once before joining the flight and the caller
	// that runs it looks again, so the solve waits for n+1 lookups. After
	// that a caller either shares the flight or finds the stored result.
	store := &gateStore{want: n + 1, ready: make(chan struct{})}
	var calls atomic.Int32
	slow := Func(func(ctx context.Context, state string) ([]string, error) {
		calls.Add(1)
		<-store.ready
		return []string{"R"}, nil
	})
	c := NewCachedSolver(slow, WithStore(store))

	var wg sync.WaitGroup
	results := make([][]string, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.Solve(context.Background(), "STATE")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, []string{"R"}, results[i])
	}

	stats := c.Stats()
	assert.Equal(t, n, stats.Requests)
	assert.Equal(t, 1, stats.Solves)
	assert.GreaterOrEqual(t, stats.Shared+stats.CacheHits, n-1)
}

func TestCachedSolverRechecksStoreInFlight(t *testing.T) {
	inner := newInverseSolver()
	store := &memStore{}
	require.NoError(t, store.Put(storage.Solution{CubeState: "STATE", Moves: "R U"}))
	c := NewCachedSolver(inner, WithStore(store))

	moves, err := c.solve(context.Background(), "STATE")
	require.NoError(t, err)
	assert.Equal(t, []string{"R", "U"}, moves)
	assert.Equal(t, int32(0), inner.calls.Load())
	assert.Equal(t, 1, c.Stats().CacheHits)
}

func TestCachedSolverLogsStoreFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	broken := brokenStore{}
	c := NewCachedSolver(newInverseSolver("U"), WithStore(broken), WithCacheLogger(logger))

	moves, err := c.Solve(context.Background(), scrambled(t, "U").String())
	require.NoError(t, err)
	assert.Equal(t, []string{"U'"}, moves)

	var warnings int
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
		}
	}
	assert.Equal(t, 3, warnings, "both lookups and the store failure are logged")
}

type brokenStore struct{}

func (brokenStore) Get(string) (*storage.Solution, error) { return nil, errors.New("disk gone") }
func (brokenStore) Put(storage.Solution) error            { return errors.New("disk gone") }

func TestStatsAverage(t *testing.T) {
	assert.Equal(t, time.Duration(0), Stats{}.AverageTime())
	assert.Equal(t, 2*time.Second, Stats{Solves: 2, TotalTime: 4 * time.Second}.AverageTime())
}
