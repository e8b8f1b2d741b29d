package repository

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actuallystonmai/recommendation-engine/internal/domain"
)

// Runs against a real database when TEST_DATABASE_URL is set.
func newTestPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	store := NewPostgresStore(pool)
	require.NoError(t, store.MigrateUp(ctx))
	_, err = pool.Exec(ctx, `DELETE FROM kv_store WHERE key LIKE '%:test-user'`)
	require.NoError(t, err)
	return store
}

func TestPostgresStore_Lists(t *testing.T) {
	store := newTestPostgresStore(t)
	ctx := context.Background()

	items, err := store.ListItems(ctx, "test-user", domain.ListWatched)
	require.NoError(t, err)
	assert.Empty(t, items)

	added, err := store.AddItem(ctx, "test-user", domain.ListWatched, domain.Item{ID: 278, Title: "The Shawshank Redemption"})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.AddItem(ctx, "test-user", domain.ListWatched, domain.Item{ID: 278, Title: "The Shawshank Redemption"})
	require.NoError(t, err)
	assert.False(t, added)

	items, err = store.ListItems(ctx, "test-user", domain.ListWatched)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "The Shawshank Redemption", items[0].Title)

	removed, err := store.RemoveItem(ctx, "test-user", domain.ListWatched, 278)
	require.NoError(t, err)
	assert.True(t, removed)

	items, err = store.ListItems(ctx, "test-user", domain.ListWatched)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPostgresStore_ReplaceItems(t *testing.T) {
	store := newTestPostgresStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceItems(ctx, "test-user", domain.ListWatchlist, []domain.Item{{ID: 1}, {ID: 2}}))
	require.NoError(t, store.ReplaceItems(ctx, "test-user", domain.ListWatchlist, []domain.Item{{ID: 3}}))

	items, err := store.ListItems(ctx, "test-user", domain.ListWatchlist)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].ID)
}

func TestListHelpers(t *testing.T) {
	items, added := appendUnique(nil, domain.Item{ID: 1})
	assert.True(t, added)
	items, added = appendUnique(items, domain.Item{ID: 1, Title: "dup"})
	assert.False(t, added)
	assert.Len(t, items, 1)

	items, removed := removeByID(items, 1)
	assert.True(t, removed)
	assert.Empty(t, items)

	decoded, err := decodeItems(nil)
	require.NoError(t, err)
	assert.NotNil(t, decoded)

	decoded, err = decodeItems([]byte("null"))
	require.NoError(t, err)
	assert.NotNil(t, decoded)
}
