package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Scramble is a stored scramble.
type Scramble struct {
	ScrambleID string
	CreatedAt  time.Time
	Moves      string // space-separated tokens
	MoveCount  int
	CubeState  string // cube string after applying Moves to a solved cube
	Seed       *int64
}

// Tokens splits Moves into individual tokens.
func (s Scramble) Tokens() []string {
	return strings.Fields(s.Moves)
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Create stores a scramble and returns its ID. seed may be nil when the
// scramble was not generated from a fixed seed.
func (r *ScrambleRepository) Create(moves []string, cubeState string, seed *int64) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO scrambles (scramble_id, created_at, moves, move_count, cube_state, seed)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), strings.Join(moves, " "), len(moves), cubeState, seed)

	if err != nil {
		return "", fmt.Errorf("failed to create scramble: %w", err)
	}

	return id, nil
}

const scrambleColumns = `scramble_id, created_at, moves, move_count, cube_state, seed`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScramble(row rowScanner) (Scramble, error) {
	var s Scramble
	var createdAtStr string
	var seed sql.NullInt64

	if err := row.Scan(&s.ScrambleID, &createdAtStr, &s.Moves, &s.MoveCount, &s.CubeState, &seed); err != nil {
		return s, err
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	if seed.Valid {
		v := seed.Int64
		s.Seed = &v
	}
	return s, nil
}

// Get retrieves a scramble by ID. It returns nil, nil when none exists.
func (r *ScrambleRepository) Get(scrambleID string) (*Scramble, error) {
	row := r.db.QueryRow(`SELECT `+scrambleColumns+` FROM scrambles WHERE scramble_id = ?`, scrambleID)

	s, err := scanScramble(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}

	return &s, nil
}

// List retrieves the most recent scrambles, newest first.
func (r *ScrambleRepository) List(limit int) ([]Scramble, error) {
	rows, err := r.db.Query(`
		SELECT `+scrambleColumns+`
		FROM scrambles
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var scrambles []Scramble
	for rows.Next() {
		s, err := scanScramble(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		scrambles = append(scrambles, s)
	}

	return scrambles, rows.Err()
}

// Count returns the number of stored scrambles.
func (r *ScrambleRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM scrambles").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count scrambles: %w", err)
	}
	return count, nil
}

// Delete removes a scramble.
func (r *ScrambleRepository) Delete(scrambleID string) error {
	_, err := r.db.Exec("DELETE FROM scrambles WHERE scramble_id = ?", scrambleID)
	if err != nil {
		return fmt.Errorf("failed to delete scramble: %w", err)
	}
	return nil
}
