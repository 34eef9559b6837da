package domain

import "time"

// Repository is one external repository belonging to a principal.
// It is fetched fresh each run and never persisted as-is; the pipeline
// transforms it into a KnowledgeEntry.
type Repository struct {
	// Owner is the login of the owning principal.
	Owner string

	// Name is the repository name.
	Name string

	// FullName is "owner/name".
	FullName string

	// Description is the repository description, if any.
	Description string

	// URL is the canonical web URL. Used as the dedup key downstream.
	URL string

	// Language is the primary language, empty if none detected.
	Language string

	// Stars is the stargazer count.
	Stars int

	// Forks is the fork count.
	Forks int

	// Size is the repository size in KB.
	Size int

	// Topics is the repository topic list.
	Topics []string

	// DefaultBranch is the default branch name.
	DefaultBranch string

	Archived bool
	Disabled bool
	Fork     bool

	CreatedAt time.Time
	UpdatedAt time.Time
	PushedAt  time.Time
}
