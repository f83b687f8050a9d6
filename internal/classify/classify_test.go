package classify

import (
	"testing"
	"time"

	"newsbrief/internal/domain"
)

func TestClassifyMacro(t *testing.T) {
	t.Parallel()

	article := domain.Article{
		Title:   "Fed chair signals rate cut as inflation cools",
		Summary: "The central bank is weighing monetary policy changes after soft CPI data.",
	}
	if got := Classify(article); got != domain.CategoryMacro {
		t.Fatalf("expected macro, got %s", got)
	}
}

func TestClassifyDeal(t *testing.T) {
	t.Parallel()

	article := domain.Article{
		Title:   "MegaCorp to acquire StartupCo in $4 billion deal",
		Summary: "The all-cash takeover awaits regulatory approval from antitrust authorities.",
	}
	if got := Classify(article); got != domain.CategoryDeal {
		t.Fatalf("expected deal, got %s", got)
	}
}

func TestClassifyFeatureDefault(t *testing.T) {
	t.Parallel()

	article := domain.Article{
		Title:   "How one engineer rebuilt a century-old lighthouse",
		Summary: "A profile of craftsmanship on the coast of Maine.",
	}
	if got := Classify(article); got != domain.CategoryFeature {
		t.Fatalf("expected feature, got %s", got)
	}
}

func TestClassifyMacroWinsTies(t *testing.T) {
	t.Parallel()

	// One macro keyword, one deal keyword.
	article := domain.Article{
		Title: "Inflation worries stall the merger market",
	}
	if got := Classify(article); got != domain.CategoryMacro {
		t.Fatalf("tie must go to macro, got %s", got)
	}
}

func TestClassifyTitleWeighsDouble(t *testing.T) {
	t.Parallel()

	// Title carries a deal keyword (counted twice is still one distinct
	// match, but title content must participate even with empty body).
	article := domain.Article{Title: "Bidding war erupts over rail operator"}
	if got := Classify(article); got != domain.CategoryDeal {
		t.Fatalf("expected deal from title alone, got %s", got)
	}
}

func TestClassifyBlockedContentUsesSummary(t *testing.T) {
	t.Parallel()

	article := domain.Article{
		Title:   "Market wrap",
		Content: domain.BlockedSentinel,
		Summary: "Treasury yields surged after the jobs report beat expectations.",
	}
	if got := Classify(article); got != domain.CategoryMacro {
		t.Fatalf("blocked content must fall back to summary, got %s", got)
	}
}

func TestBucketSortsByRecency(t *testing.T) {
	t.Parallel()

	now := time.Now()
	articles := []domain.Article{
		{ID: "old", Title: "Fed holds interest rate steady", PublishedAt: now.Add(-3 * time.Hour)},
		{ID: "new", Title: "Inflation print surprises to the upside", PublishedAt: now},
		{ID: "deal", Title: "SPAC merger collapses", PublishedAt: now.Add(-time.Hour)},
	}

	buckets := Bucket(articles)

	macro := buckets[domain.CategoryMacro]
	if len(macro) != 2 {
		t.Fatalf("expected 2 macro articles, got %d", len(macro))
	}
	if macro[0].ID != "new" || macro[1].ID != "old" {
		t.Fatalf("macro bucket not sorted by recency: %s, %s", macro[0].ID, macro[1].ID)
	}
	if len(buckets[domain.CategoryDeal]) != 1 {
		t.Fatalf("expected 1 deal article, got %d", len(buckets[domain.CategoryDeal]))
	}
}
