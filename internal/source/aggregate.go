package source

import (
	"context"
	"log/slog"

	"newsbrief/internal/domain"
	"newsbrief/internal/ports"
)

// MultiSource fans a fetch out over every configured provider. A failing
// provider is logged and skipped so one flaky API never empties the digest.
type MultiSource struct {
	providers []Provider
	limit     int
	logger    *slog.Logger
}

var _ ports.ArticleSource = (*MultiSource)(nil)

// NewMultiSource resolves the named providers from the registry.
func NewMultiSource(registry *Registry, names []string, limit int, logger *slog.Logger) (*MultiSource, error) {
	providers := make([]Provider, 0, len(names))
	for _, name := range names {
		provider, err := registry.Resolve(name)
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}
	return &MultiSource{providers: providers, limit: limit, logger: logger}, nil
}

// FetchLatest collects articles from all providers and deduplicates them
// by ID, keeping the first occurrence.
func (m *MultiSource) FetchLatest(ctx context.Context) ([]domain.Article, error) {
	seen := map[string]bool{}
	var articles []domain.Article

	for _, provider := range m.providers {
		fetched, err := provider.Fetch(ctx, m.limit)
		if err != nil {
			m.warn("provider fetch failed", "provider", provider.Name(), "error", err)
			continue
		}
		for _, article := range fetched {
			if article.ID == "" || seen[article.ID] {
				continue
			}
			seen[article.ID] = true
			articles = append(articles, article)
		}
		m.debug("provider fetch complete", "provider", provider.Name(), "articles", len(fetched))
	}

	return articles, nil
}

func (m *MultiSource) warn(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Warn(msg, args...)
	}
}

func (m *MultiSource) debug(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, args...)
	}
}
