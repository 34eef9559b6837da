package driven

import (
	"context"

	"github.com/ledgerline-labs/harvest-cli/internal/core/domain"
)

// CategoryCount is one row of a category breakdown.
type CategoryCount struct {
	Category string
	Count    int
}

// KnowledgeStore is the durable store for ingested entries.
type KnowledgeStore interface {
	// Upsert writes an entry, deduplicating on (Source, SourceURL).
	// An existing entry is updated in place with its ID and CreatedAt
	// preserved; a new entry is inserted with both timestamps set.
	// The write is a single atomic statement.
	Upsert(ctx context.Context, entry *domain.KnowledgeEntry) error

	// GetBySourceURL retrieves an entry by its dedup key.
	// Returns domain.ErrNotFound if no entry exists.
	GetBySourceURL(ctx context.Context, source, sourceURL string) (*domain.KnowledgeEntry, error)

	// Count returns the total number of entries.
	Count(ctx context.Context) (int, error)

	// CategoryBreakdown returns entry counts per category,
	// largest categories first.
	CategoryBreakdown(ctx context.Context) ([]CategoryCount, error)
}
