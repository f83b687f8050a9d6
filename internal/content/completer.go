package content

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"newsbrief/internal/domain"
)

const (
	// rawPrecheckLength bounds the cheap captcha sniff over raw HTML so a
	// block page is recognized before the heavier extraction runs.
	rawPrecheckLength = 2000
	maxFetchBody      = 2 << 20
)

// Browser-like headers reduce bot-wall false triggering on news sites.
var fetchHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
}

// Completer fills in missing article content by fetching and extracting the
// source page, falling back to the article summary when scraping fails.
type Completer struct {
	client *http.Client
	logger *slog.Logger
}

// NewCompleter wires an HTTP client; a nil client gets a 20s timeout default.
func NewCompleter(client *http.Client, logger *slog.Logger) *Completer {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &Completer{client: client, logger: logger}
}

// EnsureContent returns the article with usable content where possible.
// Decision order: keep sufficient existing content (after a block check),
// fetch and extract the URL, fall back to the summary, or return unchanged.
// It never fails; any error along the way degrades to the next fallback.
func (c *Completer) EnsureContent(ctx context.Context, article domain.Article) domain.Article {
	if len(strings.TrimSpace(article.Content)) > domain.MinUsableContentLength {
		if IsBlocked(article.Content) {
			return article.WithContent(domain.BlockedSentinel)
		}
		return article
	}

	html, err := c.fetchHTML(ctx, article.URL)
	if err != nil {
		c.debug("fetch failed", "url", article.URL, "error", err)
	} else if html != "" {
		if completed, ok := c.completeFromHTML(article, html); ok {
			return completed
		}
	}

	if summary := strings.TrimSpace(article.Summary); len(summary) > domain.MinUsableSummaryLength {
		if IsBlocked(summary) {
			return article.WithContent(domain.BlockedSentinel)
		}
		return article.WithContent(article.Summary)
	}

	return article
}

// EnsureBatch applies EnsureContent to every article. One article's failure
// never prevents processing of its siblings.
func (c *Completer) EnsureBatch(ctx context.Context, articles []domain.Article) []domain.Article {
	results := make([]domain.Article, 0, len(articles))
	for _, article := range articles {
		results = append(results, c.EnsureContent(ctx, article))
	}
	return results
}

// completeFromHTML runs the raw pre-check, extraction, and block detection
// over fetched HTML. The second return is false when nothing usable came out
// and the caller should continue down the fallback chain.
func (c *Completer) completeFromHTML(article domain.Article, html string) (domain.Article, bool) {
	excerpt := html
	if len(excerpt) > rawPrecheckLength {
		excerpt = excerpt[:rawPrecheckLength]
	}
	lowerExcerpt := strings.ToLower(excerpt)
	if strings.Contains(lowerExcerpt, "captcha") || strings.Contains(lowerExcerpt, "robot") {
		if IsBlocked(excerpt) {
			return article.WithContent(domain.BlockedSentinel), true
		}
	}

	text := Extract(html, article.URL)
	if IsBlocked(text) {
		return article.WithContent(domain.BlockedSentinel), true
	}
	if len(strings.TrimSpace(text)) > domain.MinUsableContentLength {
		return article.WithContent(text), true
	}
	return article, false
}

func (c *Completer) fetchHTML(ctx context.Context, pageURL string) (string, error) {
	if pageURL == "" {
		return "", fmt.Errorf("no url to fetch")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	for name, value := range fetchHeaders {
		req.Header.Set(name, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("page returned %s", resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(strings.ToLower(contentType), "text/html") {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBody))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return string(body), nil
}

func (c *Completer) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
