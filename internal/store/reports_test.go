package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db.Pool))
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db.Pool))
}

func TestInsertAndListReports(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, InsertReport(ctx, db.Pool, Report{
		ID: "a", Type: "weekly", Subject: "Acme", FilePath: "/tmp/a.md",
		Success: true, DurationSeconds: 1.2, CreatedAt: "2026-03-14T10:00:00Z",
	}))
	require.NoError(t, InsertReport(ctx, db.Pool, Report{
		ID: "b", Type: "monthly", Subject: "Sector_all", FilePath: "/tmp/b.md",
		Success: false, DurationSeconds: 0.4, CreatedAt: "2026-03-14T11:00:00Z",
	}))

	t.Run("all types, newest first", func(t *testing.T) {
		got, err := ListReports(ctx, db.Pool, ListReportsOpts{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "b", got[0].ID)
		assert.False(t, got[0].Success)
		assert.Equal(t, "a", got[1].ID)
		assert.True(t, got[1].Success)
	})

	t.Run("filter by type", func(t *testing.T) {
		got, err := ListReports(ctx, db.Pool, ListReportsOpts{Type: "weekly"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Acme", got[0].Subject)
	})

	t.Run("limit", func(t *testing.T) {
		got, err := ListReports(ctx, db.Pool, ListReportsOpts{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("unknown sort column falls back", func(t *testing.T) {
		got, err := ListReports(ctx, db.Pool, ListReportsOpts{Sort: "; DROP TABLE reports"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestInsertReport_DefaultsCreatedAt(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, InsertReport(ctx, db.Pool, Report{ID: "x", Type: "weekly", Subject: "s", FilePath: "p"}))

	got, err := ListReports(ctx, db.Pool, ListReportsOpts{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].CreatedAt)
}
