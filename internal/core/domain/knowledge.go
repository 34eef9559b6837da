package domain

import "time"

// SourceExternalRepo is the source tag for entries ingested from
// external repositories. Together with the source URL it forms the
// knowledge store's dedup key.
const SourceExternalRepo = "external-repo"

// KnowledgeEntry is the durable record stored for one ingested repository.
// Exactly one entry exists per distinct (Source, SourceURL) pair;
// re-processing updates the existing entry in place.
type KnowledgeEntry struct {
	// ID is the unique identifier, assigned on first insert.
	ID string

	// Title is the human-readable title.
	Title string

	// Content is the rendered summary of the repository.
	Content string

	// Source tags where the entry came from (SourceExternalRepo here).
	Source string

	// SourceURL is the canonical external URL, the dedup key within a source.
	SourceURL string

	// Owner is the login of the owning principal.
	Owner string

	// Category and Subcategory come from classification.
	Category    string
	Subcategory string

	// Tags is the derived tag list.
	Tags []string

	// Metadata holds structured repository facts (stars, forks, language,
	// archived flag, topics, timestamps).
	Metadata map[string]any

	// IsProcessed marks the entry as fully ingested.
	IsProcessed bool

	// CreatedAt is set on first insert and never changed by upserts.
	CreatedAt time.Time

	// UpdatedAt is bumped on every upsert.
	UpdatedAt time.Time
}

// Classification is the derived category, subcategory and tag set
// for a repository.
type Classification struct {
	Category    string
	Subcategory string
	Tags        []string
}
