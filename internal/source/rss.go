package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"newsbrief/internal/domain"
)

const rssUserAgent = "newsbrief/1.0 (+https://github.com/newsbrief)"

// RSSProvider pulls articles from a set of RSS/Atom feeds.
type RSSProvider struct {
	feeds  []string
	parser *gofeed.Parser
	logger *slog.Logger
}

func NewRSSProvider(feeds []string, client *http.Client, logger *slog.Logger) *RSSProvider {
	parser := gofeed.NewParser()
	parser.UserAgent = rssUserAgent
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	parser.Client = client
	return &RSSProvider{feeds: feeds, parser: parser, logger: logger}
}

func (p *RSSProvider) Name() string { return "rss" }

// Fetch parses every configured feed. A broken feed is logged and skipped.
// Limit applies per feed.
func (p *RSSProvider) Fetch(ctx context.Context, limit int) ([]domain.Article, error) {
	var articles []domain.Article

	for _, feedURL := range p.feeds {
		feed, err := p.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			p.warn("feed parse failed", "feed", feedURL, "error", err)
			continue
		}

		count := 0
		for _, item := range feed.Items {
			if count >= limit {
				break
			}
			if item.Title == "" || item.Link == "" {
				continue
			}
			published := time.Now().UTC()
			if item.PublishedParsed != nil {
				published = *item.PublishedParsed
			}
			articles = append(articles, domain.Article{
				ID:          feedItemID(item.Link),
				Title:       item.Title,
				URL:         item.Link,
				Summary:     stripHTML(item.Description),
				PublishedAt: published,
				Source:      feed.Title,
			})
			count++
		}
	}

	return articles, nil
}

// feedItemID derives a stable short ID from the item link.
func feedItemID(link string) string {
	sum := sha256.Sum256([]byte(link))
	return "rss-" + hex.EncodeToString(sum[:])[:16]
}

// stripHTML flattens feed descriptions that embed markup.
func stripHTML(text string) string {
	if !strings.Contains(text, "<") {
		return strings.TrimSpace(text)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(doc.Text())
}

func (p *RSSProvider) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
