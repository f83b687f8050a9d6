package ports

import (
	"context"
	"time"

	"newsbrief/internal/domain"
)

// ArticleSource pulls fresh articles from the configured providers.
type ArticleSource interface {
	FetchLatest(ctx context.Context) ([]domain.Article, error)
}

// ArticleRepository persists delivered articles for deduplication/history.
type ArticleRepository interface {
	AlreadyDelivered(ctx context.Context, ids []string) (map[string]bool, error)
	SaveDelivered(ctx context.Context, article domain.ProcessedArticle) error
}

// GenerateOptions tune a single model call.
type GenerateOptions struct {
	Temperature float64
	NumPredict  int
}

// TextGenerator produces free-form model output for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// Summarizer turns a prepared article excerpt into a briefing summary.
type Summarizer interface {
	Summarize(ctx context.Context, title, excerpt string) (string, error)
}

// Notifier delivers the rendered digest to recipients.
type Notifier interface {
	SendDigest(ctx context.Context, subject, htmlBody string) error
}

// Scheduler controls when pipeline runs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
