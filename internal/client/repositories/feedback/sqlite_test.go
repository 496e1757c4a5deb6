package feedback

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "feedback.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE feedback (
		id TEXT PRIMARY KEY,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		category TEXT NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);`)
	require.NoError(t, err)
	return db
}

func TestAddAndList_NewestFirst(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, r.Add(ctx, models.Feedback{ID: "a", Rating: 4, Category: "General", Comment: "ok", CreatedAt: base}))
	require.NoError(t, r.Add(ctx, models.Feedback{ID: "b", Rating: 5, Category: "Billing", CreatedAt: base.Add(time.Hour)}))

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "ok", got[1].Comment)
	assert.True(t, got[1].CreatedAt.Equal(base))
}

func TestList_Empty(t *testing.T) {
	got, err := NewSQLiteRepository(setupDB(t)).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAdd_DuplicateID(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	f := models.Feedback{ID: "dup", Rating: 3, Category: "General", CreatedAt: time.Now()}

	require.NoError(t, r.Add(ctx, f))
	require.ErrorContains(t, r.Add(ctx, f), "failed to add feedback[dup]")
}

func TestAdd_RatingOutOfRange(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	err := r.Add(context.Background(), models.Feedback{ID: "x", Rating: 9, Category: "General", CreatedAt: time.Now()})
	require.Error(t, err)
}

func TestList_ClosedDB(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, err := r.List(context.Background())
	require.ErrorContains(t, err, "failed to list feedback")
}
