package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/ledgerline-labs/harvest-cli/internal/core/domain"
)

// BuildEntry converts a classified repository into the durable knowledge
// entry. Timestamps are left zero; the store sets them on upsert.
func BuildEntry(repo domain.Repository, cls domain.Classification) *domain.KnowledgeEntry {
	return &domain.KnowledgeEntry{
		Title:       repo.FullName,
		Content:     renderContent(repo),
		Source:      domain.SourceExternalRepo,
		SourceURL:   repo.URL,
		Owner:       repo.Owner,
		Category:    cls.Category,
		Subcategory: cls.Subcategory,
		Tags:        cls.Tags,
		Metadata:    entryMetadata(repo),
		IsProcessed: true,
	}
}

// renderContent produces the human-readable summary stored as the
// entry's content.
func renderContent(repo domain.Repository) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Repository: %s\n", repo.FullName)
	if repo.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", repo.Description)
	}
	if repo.Language != "" {
		fmt.Fprintf(&b, "Language: %s\n", repo.Language)
	}
	fmt.Fprintf(&b, "Stars: %d | Forks: %d\n", repo.Stars, repo.Forks)
	if len(repo.Topics) > 0 {
		fmt.Fprintf(&b, "Topics: %s\n", strings.Join(repo.Topics, ", "))
	}
	if repo.Archived {
		b.WriteString("Status: archived\n")
	}
	fmt.Fprintf(&b, "URL: %s\n", repo.URL)

	return b.String()
}

func entryMetadata(repo domain.Repository) map[string]any {
	return map[string]any{
		"stars":      repo.Stars,
		"forks":      repo.Forks,
		"language":   repo.Language,
		"size_kb":    repo.Size,
		"archived":   repo.Archived,
		"fork":       repo.Fork,
		"topics":     repo.Topics,
		"created_at": repo.CreatedAt.Format(time.RFC3339),
		"updated_at": repo.UpdatedAt.Format(time.RFC3339),
		"pushed_at":  repo.PushedAt.Format(time.RFC3339),
	}
}
