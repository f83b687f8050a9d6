package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newsbrief/internal/chunk"
	"newsbrief/internal/classify"
	"newsbrief/internal/domain"
	"newsbrief/internal/infrastructure/email"
	"newsbrief/internal/ports"
	"newsbrief/internal/validate"
)

// ContentCompleter fills missing article bodies before summarization.
type ContentCompleter interface {
	EnsureBatch(ctx context.Context, articles []domain.Article) []domain.Article
}

// SummaryValidator decides whether a model summary is genuine.
type SummaryValidator interface {
	Validate(ctx context.Context, summary string, useFallback bool) validate.Result
}

// ScriptGenerator turns summaries into a spoken broadcast script.
type ScriptGenerator interface {
	Generate(ctx context.Context, date time.Time, summaries []string) (string, error)
}

// ScriptSink persists a generated script.
type ScriptSink interface {
	Save(date time.Time, script string) (string, error)
}

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Source     ports.ArticleSource
	Repository ports.ArticleRepository
	Completer  ContentCompleter
	Summarizer ports.Summarizer
	Validator  SummaryValidator
	Notifier   ports.Notifier
	Script     ScriptGenerator
	ScriptSink ScriptSink
	Logger     *slog.Logger

	CharBudget    int
	MinParagraphs int
}

// Pipeline implements the daily digest workflow.
type Pipeline struct {
	source     ports.ArticleSource
	repository ports.ArticleRepository
	completer  ContentCompleter
	summarizer ports.Summarizer
	validator  SummaryValidator
	notifier   ports.Notifier
	script     ScriptGenerator
	scriptSink ScriptSink
	logger     *slog.Logger

	charBudget    int
	minParagraphs int
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	if deps.CharBudget <= 0 {
		deps.CharBudget = chunk.DefaultCharBudget
	}
	if deps.MinParagraphs <= 0 {
		deps.MinParagraphs = chunk.DefaultMinParagraphs
	}
	return &Pipeline{
		source:        deps.Source,
		repository:    deps.Repository,
		completer:     deps.Completer,
		summarizer:    deps.Summarizer,
		validator:     deps.Validator,
		notifier:      deps.Notifier,
		script:        deps.Script,
		scriptSink:    deps.ScriptSink,
		logger:        deps.Logger,
		charBudget:    deps.CharBudget,
		minParagraphs: deps.MinParagraphs,
	}
}

// Run executes one digest cycle: fetch, dedupe, complete content, pick
// three stories, summarize, validate, deliver, persist.
func (p *Pipeline) Run(ctx context.Context, day time.Time) error {
	if p.source == nil {
		return nil
	}

	articles, err := p.source.FetchLatest(ctx)
	if err != nil {
		return fmt.Errorf("fetch latest: %w", err)
	}
	p.info("fetched articles", "count", len(articles))

	articles, err = p.dropDelivered(ctx, articles)
	if err != nil {
		return err
	}
	if len(articles) == 0 {
		p.info("no new articles, skipping digest")
		return nil
	}

	if p.completer != nil {
		articles = p.completer.EnsureBatch(ctx, articles)
	}

	selected := classify.SelectThree(classify.Bucket(articles))
	if len(selected) == 0 {
		p.info("nothing selected, skipping digest")
		return nil
	}

	items := make([]email.DigestItem, 0, len(selected))
	summaries := make([]string, 0, len(selected))
	processed := make([]domain.ProcessedArticle, 0, len(selected))

	for _, pick := range selected {
		summary := p.summarize(ctx, pick.Article)
		items = append(items, email.DigestItem{
			Category:    classify.Label(pick.Category),
			Title:       pick.Article.Title,
			URL:         pick.Article.URL,
			Source:      pick.Article.Source,
			PublishedAt: pick.Article.PublishedAt,
			Summary:     summary,
		})
		summaries = append(summaries, summary)
		processed = append(processed, domain.ProcessedArticle{
			Article:  pick.Article,
			Summary:  summary,
			Category: pick.Category,
			Status:   domain.StatusDelivered,
		})
	}

	if p.notifier != nil {
		body, err := email.BuildDigestHTML(day, items)
		if err != nil {
			return fmt.Errorf("render digest: %w", err)
		}
		subject := fmt.Sprintf("Your 3 Things – Markets & Economy – %s", day.Format("Jan 2, 2006"))
		if err := p.notifier.SendDigest(ctx, subject, body); err != nil {
			return fmt.Errorf("send digest: %w", err)
		}
		p.info("digest sent", "stories", len(items))
	}

	p.persist(ctx, processed)
	p.broadcast(ctx, day, summaries)

	return nil
}

// summarize prepares the excerpt, calls the model, and validates the
// result. Every failure path degrades to a headline-only bullet so one bad
// article never sinks the digest.
func (p *Pipeline) summarize(ctx context.Context, article domain.Article) string {
	fallback := "• " + article.Title

	excerpt := p.excerpt(article)
	if excerpt == "" || p.summarizer == nil {
		return fallback
	}

	summary, err := p.summarizer.Summarize(ctx, article.Title, excerpt)
	if err != nil {
		p.warn("summarize failed, using headline", "article", article.ID, "error", err)
		return fallback
	}

	if p.validator != nil {
		result := p.validator.Validate(ctx, summary, true)
		if !result.Valid {
			p.warn("summary rejected, using headline",
				"article", article.ID, "reason", result.Reason, "confidence", result.Confidence)
			return fallback
		}
	}

	return summary
}

// excerpt returns the text handed to the summarizer. Blocked articles fall
// back to the feed summary; the chunk selector trims everything else to
// the character budget.
func (p *Pipeline) excerpt(article domain.Article) string {
	switch article.State() {
	case domain.ContentBlocked, domain.ContentMissing:
		return article.Summary
	default:
		return chunk.Select(article.Content, article.Title, p.charBudget, p.minParagraphs)
	}
}

func (p *Pipeline) dropDelivered(ctx context.Context, articles []domain.Article) ([]domain.Article, error) {
	if p.repository == nil || len(articles) == 0 {
		return articles, nil
	}

	ids := make([]string, len(articles))
	for i, article := range articles {
		ids[i] = article.ID
	}
	skip, err := p.repository.AlreadyDelivered(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load delivered: %w", err)
	}

	fresh := articles[:0]
	for _, article := range articles {
		if !skip[article.ID] {
			fresh = append(fresh, article)
		}
	}
	return fresh, nil
}

func (p *Pipeline) persist(ctx context.Context, processed []domain.ProcessedArticle) {
	if p.repository == nil {
		return
	}
	for _, record := range processed {
		if err := p.repository.SaveDelivered(ctx, record); err != nil {
			p.warn("persist failed", "article", record.Article.ID, "error", err)
		}
	}
}

func (p *Pipeline) broadcast(ctx context.Context, day time.Time, summaries []string) {
	if p.script == nil || p.scriptSink == nil {
		return
	}
	script, err := p.script.Generate(ctx, day, summaries)
	if err != nil {
		p.warn("broadcast script generation failed", "error", err)
		return
	}
	path, err := p.scriptSink.Save(day, script)
	if err != nil {
		p.warn("broadcast script save failed", "error", err)
		return
	}
	p.info("broadcast script written", "path", path)
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
