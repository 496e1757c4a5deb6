package localdb

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesTables(t *testing.T) {
	ctx := context.Background()
	repos, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "lawlink.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	for _, name := range []string{"goose_db_version", "metadata", "feedback"} {
		assert.True(t, tableExists(t, repos.DB, name), name)
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "lawlink.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))
}

func TestRepositories_Wired(t *testing.T) {
	ctx := context.Background()
	repos, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "lawlink.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	require.NoError(t, repos.Metadata.Set(ctx, "k", []byte("v")))
	v, err := repos.Metadata.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)

	old := models.Feedback{ID: "a", Rating: 4, Category: "General", Comment: "ok", CreatedAt: time.Unix(100, 0)}
	newer := models.Feedback{ID: "b", Rating: 5, Category: "Billing", CreatedAt: time.Unix(200, 0)}
	require.NoError(t, repos.Feedback.Add(ctx, old))
	require.NoError(t, repos.Feedback.Add(ctx, newer))

	list, err := repos.Feedback.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
	assert.True(t, old.CreatedAt.Equal(list[1].CreatedAt))
	assert.Equal(t, "ok", list[1].Comment)
}

func TestFeedback_RatingConstraint(t *testing.T) {
	ctx := context.Background()
	repos, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "lawlink.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	err = repos.Feedback.Add(ctx, models.Feedback{ID: "x", Rating: 9, Category: "General", CreatedAt: time.Now()})
	require.ErrorContains(t, err, "failed to add feedback[x]")
}
