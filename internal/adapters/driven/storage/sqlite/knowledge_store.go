package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline-labs/harvest-cli/internal/core/domain"
	"github.com/ledgerline-labs/harvest-cli/internal/core/ports/driven"
)

// knowledgeStore implements driven.KnowledgeStore.
type knowledgeStore struct {
	store *Store
}

var _ driven.KnowledgeStore = (*knowledgeStore)(nil)

// Upsert writes an entry, deduplicating on (source, source_url).
// A single conflict-upsert statement keeps the write atomic: the update
// path preserves id and created_at and bumps updated_at.
func (s *knowledgeStore) Upsert(ctx context.Context, entry *domain.KnowledgeEntry) error {
	if entry == nil || entry.SourceURL == "" {
		return domain.ErrInvalidInput
	}

	tags, err := json.Marshal(entry.Tags)
	if err != nil {
		return fmt.Errorf("marshaling tags: %w", err)
	}
	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}

	id := entry.ID
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now().UTC().Format(timeFormat)

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO knowledge_entries
			(id, title, content, source, source_url, owner, category,
			 subcategory, tags, metadata, is_processed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source, source_url) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			owner = excluded.owner,
			category = excluded.category,
			subcategory = excluded.subcategory,
			tags = excluded.tags,
			metadata = excluded.metadata,
			is_processed = excluded.is_processed,
			updated_at = excluded.updated_at
	`, id, entry.Title, entry.Content, entry.Source, entry.SourceURL, entry.Owner,
		entry.Category, entry.Subcategory, string(tags), string(metadata),
		boolToInt(entry.IsProcessed), now, now)

	if err != nil {
		return fmt.Errorf("upserting entry %s: %w", entry.SourceURL, err)
	}
	return nil
}

// GetBySourceURL retrieves an entry by its dedup key.
func (s *knowledgeStore) GetBySourceURL(ctx context.Context, source, sourceURL string) (*domain.KnowledgeEntry, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, title, content, source, source_url, owner, category,
		       subcategory, tags, metadata, is_processed, created_at, updated_at
		FROM knowledge_entries
		WHERE source = ? AND source_url = ?
	`, source, sourceURL)

	var (
		e           domain.KnowledgeEntry
		tags        string
		metadata    string
		isProcessed int
		createdAt   string
		updatedAt   string
	)

	err := row.Scan(&e.ID, &e.Title, &e.Content, &e.Source, &e.SourceURL, &e.Owner,
		&e.Category, &e.Subcategory, &tags, &metadata, &isProcessed, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning entry: %w", err)
	}

	if err := json.Unmarshal([]byte(tags), &e.Tags); err != nil {
		return nil, fmt.Errorf("unmarshaling tags: %w", err)
	}
	if err := json.Unmarshal([]byte(metadata), &e.Metadata); err != nil {
		return nil, fmt.Errorf("unmarshaling metadata: %w", err)
	}
	e.IsProcessed = isProcessed != 0

	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &e, nil
}

// Count returns the total number of entries.
func (s *knowledgeStore) Count(ctx context.Context) (int, error) {
	var count int
	row := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM knowledge_entries")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return count, nil
}

// CategoryBreakdown returns entry counts per category, largest first.
func (s *knowledgeStore) CategoryBreakdown(ctx context.Context) ([]driven.CategoryCount, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT category, COUNT(*) AS n
		FROM knowledge_entries
		GROUP BY category
		ORDER BY n DESC, category
	`)
	if err != nil {
		return nil, fmt.Errorf("querying category breakdown: %w", err)
	}
	defer rows.Close()

	var counts []driven.CategoryCount
	for rows.Next() {
		var c driven.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning category count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category counts: %w", err)
	}
	return counts, nil
}
