package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Solution is a cached solver result for one cube string.
type Solution struct {
	CubeState string
	Moves     string // raw solver output, space-separated
	Optimized string // Moves after the optimizer
	Solver    string
	CreatedAt time.Time
}

// SolutionRepository stores solver results keyed by cube string.
type SolutionRepository struct {
	db *DB
}

// NewSolutionRepository creates a new solution repository.
func NewSolutionRepository(db *DB) *SolutionRepository {
	return &SolutionRepository{db: db}
}

// Get returns the stored solution for cubeState, or nil, nil when none exists.
func (r *SolutionRepository) Get(cubeState string) (*Solution, error) {
	var s Solution
	var solver sql.NullString
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT cube_state, moves, optimized, solver, created_at
		FROM solutions
		WHERE cube_state = ?
	`, cubeState).Scan(&s.CubeState, &s.Moves, &s.Optimized, &solver, &createdAtStr)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}

	s.Solver = solver.String
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &s, nil
}

// Put stores a solution, replacing any earlier one for the same cube string.
func (r *SolutionRepository) Put(s Solution) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	var solver *string
	if s.Solver != "" {
		solver = &s.Solver
	}

	_, err := r.db.Exec(`
		INSERT INTO solutions (cube_state, moves, optimized, solver, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(cube_state) DO UPDATE SET
			moves = excluded.moves,
			optimized = excluded.optimized,
			solver = excluded.solver,
			created_at = excluded.created_at
	`, s.CubeState, s.Moves, s.Optimized, solver, s.CreatedAt.UTC().Format(time.RFC3339))

	if err != nil {
		return fmt.Errorf("failed to store solution: %w", err)
	}

	return nil
}

// Count returns the number of stored solutions.
func (r *SolutionRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM solutions").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count solutions: %w", err)
	}
	return count, nil
}
