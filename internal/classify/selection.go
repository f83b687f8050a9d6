package classify

import (
	"sort"

	"newsbrief/internal/domain"
)

// DigestSize is how many stories a digest carries.
const DigestSize = 3

// Selected pairs an article with the category it was chosen under.
type Selected struct {
	Article  domain.Article
	Category domain.Category
}

var categoryOrder = []domain.Category{
	domain.CategoryMacro,
	domain.CategoryDeal,
	domain.CategoryFeature,
}

// SelectThree picks up to three articles: the newest from each bucket in
// macro, deal, feature order, then backfills empty slots with the most
// recent remaining articles regardless of category.
func SelectThree(buckets map[domain.Category][]domain.Article) []Selected {
	var selected []Selected
	used := map[string]bool{}

	for _, category := range categoryOrder {
		for _, article := range buckets[category] {
			if used[article.ID] {
				continue
			}
			selected = append(selected, Selected{Article: article, Category: category})
			used[article.ID] = true
			break
		}
	}

	if len(selected) < DigestSize {
		var remaining []Selected
		for _, category := range categoryOrder {
			for _, article := range buckets[category] {
				if !used[article.ID] {
					remaining = append(remaining, Selected{Article: article, Category: category})
				}
			}
		}
		sort.SliceStable(remaining, func(a, b int) bool {
			return remaining[a].Article.PublishedAt.After(remaining[b].Article.PublishedAt)
		})
		for _, candidate := range remaining {
			if len(selected) >= DigestSize {
				break
			}
			selected = append(selected, candidate)
			used[candidate.Article.ID] = true
		}
	}

	return selected
}

// Label returns the display name for a category.
func Label(category domain.Category) string {
	if label, ok := Labels[category]; ok {
		return label
	}
	return Labels[domain.CategoryFeature]
}
