package services

import (
	"strings"

	"github.com/ledgerline-labs/harvest-cli/internal/core/domain"
)

// Category names produced by classification.
const (
	CategoryAIML    = "AI/ML"
	CategoryWebDev  = "Web Development"
	CategoryData    = "Data Engineering"
	CategoryDefault = "Development"
)

const (
	// maxTopicTags caps the number of topics carried into the tag list.
	maxTopicTags = 10

	// popularStars and trendingStars are the star thresholds for the
	// derived popularity tags.
	popularStars  = 100
	trendingStars = 1000
)

// classificationRule maps a topic vocabulary to a category.
// Rules are evaluated in order; the first match wins, so the slice
// order is the precedence order.
type classificationRule struct {
	category string
	keywords []string
}

var classificationRules = []classificationRule{
	{category: CategoryAIML, keywords: []string{"machine-learning", "ai", "deep-learning", "ml"}},
	{category: CategoryWebDev, keywords: []string{"web", "frontend", "backend", "fullstack"}},
	{category: CategoryData, keywords: []string{"data", "analytics", "database"}},
}

// Classify derives a category, subcategory and tag set for a repository
// from its topics, language and popularity. It is pure, deterministic
// and total: every repository classifies to exactly one category.
func Classify(repo domain.Repository) domain.Classification {
	return domain.Classification{
		Category:    classifyCategory(repo.Topics),
		Subcategory: classifySubcategory(repo.Language),
		Tags:        classifyTags(repo),
	}
}

func classifyCategory(topics []string) string {
	for _, rule := range classificationRules {
		for _, topic := range topics {
			for _, kw := range rule.keywords {
				if strings.EqualFold(topic, kw) {
					return rule.category
				}
			}
		}
	}
	return CategoryDefault
}

func classifySubcategory(language string) string {
	if language != "" {
		return language + " Projects"
	}
	return "Open Source"
}

func classifyTags(repo domain.Repository) []string {
	var tags []string

	if repo.Language != "" {
		tags = append(tags, strings.ToLower(repo.Language))
	}

	topics := repo.Topics
	if len(topics) > maxTopicTags {
		topics = topics[:maxTopicTags]
	}
	tags = append(tags, topics...)

	if repo.Stars > popularStars {
		tags = append(tags, "popular")
	}
	if repo.Stars > trendingStars {
		tags = append(tags, "trending")
	}
	if repo.Fork {
		tags = append(tags, "fork")
	}
	if repo.Archived {
		tags = append(tags, "archived")
	}

	return tags
}
