package storage

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateUp())
	return db
}

func TestMigrations(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "nested", "m.db"))
	require.NoError(t, err)
	defer db.Close()

	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	require.NoError(t, db.MigrateUp())
	v, err = db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), v)

	// Running again is a no-op.
	require.NoError(t, db.MigrateUp())
	v, err = db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), v)
}

func TestTransactionRollsBack(t *testing.T) {
	db := openTestDB(t)
	repo := NewScrambleRepository(db)

	boom := errors.New("boom")
	err := db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO scrambles (scramble_id, created_at, moves, move_count, cube_state)
			VALUES ('x', '2024-01-01T00:00:00Z', 'R', 1, 'state')
		`)
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestScrambleRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewScrambleRepository(db)

	seed := int64(42)
	id1, err := repo.Create([]string{"R", "U", "F'"}, "STATE1", &seed)
	require.NoError(t, err)
	id2, err := repo.Create([]string{"D2", "L"}, "STATE2", nil)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	s, err := repo.Get(id1)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "R U F'", s.Moves)
	assert.Equal(t, []string{"R", "U", "F'"}, s.Tokens())
	assert.Equal(t, 3, s.MoveCount)
	assert.Equal(t, "STATE1", s.CubeState)
	require.NotNil(t, s.Seed)
	assert.Equal(t, int64(42), *s.Seed)
	assert.WithinDuration(t, time.Now(), s.CreatedAt, time.Minute)

	missing, err := repo.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, id2, list[0].ScrambleID)
	assert.Nil(t, list[0].Seed)
	assert.Equal(t, id1, list[1].ScrambleID)

	list, err = repo.List(1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(id1))
	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSolutionRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolutionRepository(db)

	got, err := repo.Get("UUU")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Put(Solution{CubeState: "UUU", Moves: "R R", Optimized: "R2", Solver: "test"}))
	got, err = repo.Get("UUU")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "R R", got.Moves)
	assert.Equal(t, "R2", got.Optimized)
	assert.Equal(t, "test", got.Solver)

	// Put replaces.
	require.NoError(t, repo.Put(Solution{CubeState: "UUU", Moves: "U", Optimized: "U"}))
	got, err = repo.Get("UUU")
	require.NoError(t, err)
	assert.Equal(t, "U", got.Moves)
	assert.Equal(t, "", got.Solver)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
