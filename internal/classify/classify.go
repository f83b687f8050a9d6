package classify

import (
	"sort"
	"strings"

	"newsbrief/internal/domain"
)

// Labels maps categories to their email display names.
var Labels = map[domain.Category]string{
	domain.CategoryMacro:   "Macro & Economics",
	domain.CategoryDeal:    "Deals & Corporate",
	domain.CategoryFeature: "Feature & Trends",
}

// Classify buckets an article into macro, deal, or feature by counting
// keyword matches over the title (double-weighted) and body text. Macro
// wins ties with deal; feature is the default when nothing matches.
func Classify(article domain.Article) domain.Category {
	parts := []string{
		strings.ToLower(article.Title),
		strings.ToLower(article.Title),
	}

	// The blocked sentinel is not prose; match on the summary instead.
	switch {
	case article.State() == domain.ContentBlocked:
		parts = append(parts, strings.ToLower(article.Summary))
	case article.Content != "":
		parts = append(parts, strings.ToLower(article.Content))
	case article.Summary != "":
		parts = append(parts, strings.ToLower(article.Summary))
	}

	text := strings.Join(parts, " ")

	macroScore := scoreKeywords(text, macroKeywords)
	dealScore := scoreKeywords(text, dealKeywords)

	switch {
	case macroScore > 0 && macroScore >= dealScore:
		return domain.CategoryMacro
	case dealScore > 0:
		return domain.CategoryDeal
	default:
		return domain.CategoryFeature
	}
}

// Bucket classifies every article and sorts each bucket by publication
// time, most recent first.
func Bucket(articles []domain.Article) map[domain.Category][]domain.Article {
	buckets := map[domain.Category][]domain.Article{
		domain.CategoryMacro:   nil,
		domain.CategoryDeal:    nil,
		domain.CategoryFeature: nil,
	}

	for _, article := range articles {
		category := Classify(article)
		buckets[category] = append(buckets[category], article)
	}

	for category := range buckets {
		bucket := buckets[category]
		sort.SliceStable(bucket, func(a, b int) bool {
			return bucket[a].PublishedAt.After(bucket[b].PublishedAt)
		})
	}

	return buckets
}

func scoreKeywords(text string, keywords []string) int {
	score := 0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			score++
		}
	}
	return score
}
