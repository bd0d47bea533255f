//go:build integration

package db

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	var err error
	testDB, err = SetupTestDB(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to prepare test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func withTx(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	return ctx, New(tx)
}

func TestRepository_Ping(t *testing.T) {
	repo := New(testDB)
	assert.NoError(t, repo.Ping(context.Background()))
}

func TestRepository_GetSet(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("MissingKey", func(t *testing.T) {
		v, ok, err := repo.Get(ctx, "nobody:innonews_hide_all_until")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("SetThenGet", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "v1:innonews_closed_popups_data", `{"ad-pop-1":1716206400000}`))

		v, ok, err := repo.Get(ctx, "v1:innonews_closed_popups_data")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `{"ad-pop-1":1716206400000}`, v)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "v1:innonews_hide_all_until", "1"))
		require.NoError(t, repo.Set(ctx, "v1:innonews_hide_all_until", "2"))

		v, ok, err := repo.Get(ctx, "v1:innonews_hide_all_until")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "2", v)

		count, err := repo.db.ModelContext(ctx, (*VisitorState)(nil)).
			Where(`"t"."key" = ?`, "v1:innonews_hide_all_until").
			Count()
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestRepository_DeleteBefore(t *testing.T) {
	ctx, repo := withTx(t)

	base := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return base }
	require.NoError(t, repo.Set(ctx, "old", "1"))

	repo.now = func() time.Time { return base.Add(48 * time.Hour) }
	require.NoError(t, repo.Set(ctx, "new", "2"))

	n, err := repo.DeleteBefore(ctx, base.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, ok, err := repo.Get(ctx, "old")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = repo.Get(ctx, "new")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRepository_PruneFixtures(t *testing.T) {
	ctx := context.Background()
	tx, err := testDB.Begin()
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback() })

	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, LoadVisitorState(ctx, tx, VisitorStateFixtures(base)))

	repo := New(tx)
	n, err := repo.DeleteBefore(ctx, base.Add(-8*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, ok, err := repo.Get(ctx, "v-stale:innonews_hide_all_until")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err := repo.Get(ctx, "v-fresh:innonews_closed_popups_data")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, fmt.Sprintf(`{"ad-pop-1":%d}`, base.UnixMilli()), v)
}
