package domain

import (
	"strings"
	"time"
)

// BlockedSentinel is stored in Article.Content when the source page turned
// out to be a paywall, CAPTCHA, or other access-denial page. Consumers must
// compare with exact string equality.
const BlockedSentinel = "[[BLOCKED_CONTENT]]"

const (
	// MinUsableContentLength is the trimmed length above which existing
	// content is accepted without re-fetching.
	MinUsableContentLength = 100
	// MinUsableSummaryLength is the trimmed length above which a summary
	// may stand in for missing content.
	MinUsableSummaryLength = 50
)

// Article is a normalized news item. Title and URL are guaranteed by the
// upstream fetch layer; summary and content may both be empty.
type Article struct {
	ID          string
	Title       string
	URL         string
	Summary     string
	Content     string
	PublishedAt time.Time
	Source      string
}

// ContentState describes the usability of an article's content field.
type ContentState int

const (
	ContentMissing ContentState = iota
	ContentShort
	ContentUsable
	ContentBlocked
)

// State derives the content state. The blocked sentinel wins over length.
func (a Article) State() ContentState {
	if a.Content == BlockedSentinel {
		return ContentBlocked
	}
	trimmed := len(strings.TrimSpace(a.Content))
	switch {
	case trimmed == 0:
		return ContentMissing
	case trimmed <= MinUsableContentLength:
		return ContentShort
	default:
		return ContentUsable
	}
}

// WithContent returns a copy of the article with the content field replaced.
// Articles flow through the pipeline by value; stages never mutate in place.
func (a Article) WithContent(content string) Article {
	a.Content = content
	return a
}

// Category buckets articles for selection and email labeling.
type Category string

const (
	CategoryMacro   Category = "macro"
	CategoryDeal    Category = "deal"
	CategoryFeature Category = "feature"
)

// ProcessingStatus enumerates pipeline milestones.
type ProcessingStatus string

const (
	StatusFetched    ProcessingStatus = "fetched"
	StatusSelected   ProcessingStatus = "selected"
	StatusSummarized ProcessingStatus = "summarized"
	StatusDelivered  ProcessingStatus = "delivered"
)

// ProcessedArticle is persisted to Postgres for deduplication across runs.
type ProcessedArticle struct {
	Article   Article
	Summary   string
	Category  Category
	Status    ProcessingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
