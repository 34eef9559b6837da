package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-labs/harvest-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func testEntry(url string, stars int) *domain.KnowledgeEntry {
	return &domain.KnowledgeEntry{
		Title:       "octocat/hello-world",
		Content:     "Repository: octocat/hello-world",
		Source:      domain.SourceExternalRepo,
		SourceURL:   url,
		Owner:       "octocat",
		Category:    "Development",
		Subcategory: "Go Projects",
		Tags:        []string{"go", "cli"},
		Metadata:    map[string]any{"stars": stars, "language": "Go"},
		IsProcessed: true,
	}
}

func TestNewStore_CreatesDatabaseFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "harvest.db"), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_ErrorOnInvalidPath(t *testing.T) {
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
}

func TestNewStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Re-opening must not re-apply migrations.
	store, err = NewStore(dir)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

func TestKnowledgeStore_UpsertInsertsThenUpdates(t *testing.T) {
	store := setupTestStore(t)
	knowledge := store.KnowledgeStore()
	ctx := context.Background()

	url := "https://github.com/octocat/hello-world"
	require.NoError(t, knowledge.Upsert(ctx, testEntry(url, 10)))

	first, err := knowledge.GetBySourceURL(ctx, domain.SourceExternalRepo, url)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, float64(10), first.Metadata["stars"])

	// Second sight of the same URL updates in place: same row, same id,
	// created_at untouched, latest stars win.
	require.NoError(t, knowledge.Upsert(ctx, testEntry(url, 50)))

	second, err := knowledge.GetBySourceURL(ctx, domain.SourceExternalRepo, url)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, float64(50), second.Metadata["stars"])

	count, err := knowledge.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestKnowledgeStore_UpsertRejectsInvalid(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	err := store.KnowledgeStore().Upsert(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = store.KnowledgeStore().Upsert(ctx, &domain.KnowledgeEntry{Source: domain.SourceExternalRepo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestKnowledgeStore_GetBySourceURLNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.KnowledgeStore().GetBySourceURL(context.Background(),
		domain.SourceExternalRepo, "https://github.com/nobody/nothing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestKnowledgeStore_CategoryBreakdown(t *testing.T) {
	store := setupTestStore(t)
	knowledge := store.KnowledgeStore()
	ctx := context.Background()

	for i, category := range []string{"AI/ML", "Development", "Development"} {
		entry := testEntry("https://github.com/octocat/repo-"+string(rune('a'+i)), 1)
		entry.Category = category
		require.NoError(t, knowledge.Upsert(ctx, entry))
	}

	counts, err := knowledge.CategoryBreakdown(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "Development", counts[0].Category)
	assert.Equal(t, 2, counts[0].Count)
	assert.Equal(t, "AI/ML", counts[1].Category)
	assert.Equal(t, 1, counts[1].Count)
}

func TestKnowledgeStore_TagsRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	knowledge := store.KnowledgeStore()
	ctx := context.Background()

	url := "https://github.com/octocat/tagged"
	entry := testEntry(url, 1)
	entry.Tags = []string{"go", "cli", "popular"}
	require.NoError(t, knowledge.Upsert(ctx, entry))

	got, err := knowledge.GetBySourceURL(ctx, domain.SourceExternalRepo, url)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "cli", "popular"}, got.Tags)
	assert.True(t, got.IsProcessed)
}
