package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"newsbrief/internal/domain"
	"newsbrief/internal/validate"
)

type stubSource struct {
	articles []domain.Article
	err      error
}

func (s *stubSource) FetchLatest(ctx context.Context) ([]domain.Article, error) {
	return s.articles, s.err
}

type stubRepository struct {
	delivered map[string]bool
	saved     []domain.ProcessedArticle
	saveErr   error
}

func (s *stubRepository) AlreadyDelivered(ctx context.Context, ids []string) (map[string]bool, error) {
	if s.delivered == nil {
		return map[string]bool{}, nil
	}
	return s.delivered, nil
}

func (s *stubRepository) SaveDelivered(ctx context.Context, article domain.ProcessedArticle) error {
	s.saved = append(s.saved, article)
	return s.saveErr
}

type stubCompleter struct{}

func (s *stubCompleter) EnsureBatch(ctx context.Context, articles []domain.Article) []domain.Article {
	return articles
}

type stubSummarizer struct {
	excerpts []string
	summary  string
	err      error
}

func (s *stubSummarizer) Summarize(ctx context.Context, title, excerpt string) (string, error) {
	s.excerpts = append(s.excerpts, excerpt)
	if s.err != nil {
		return "", s.err
	}
	return s.summary, nil
}

type stubValidator struct {
	result validate.Result
}

func (s *stubValidator) Validate(ctx context.Context, summary string, useFallback bool) validate.Result {
	return s.result
}

type stubNotifier struct {
	subject string
	body    string
	sends   int
	err     error
}

func (s *stubNotifier) SendDigest(ctx context.Context, subject, htmlBody string) error {
	s.sends++
	s.subject = subject
	s.body = htmlBody
	return s.err
}

type stubScript struct {
	summaries []string
	saved     string
}

func (s *stubScript) Generate(ctx context.Context, date time.Time, summaries []string) (string, error) {
	s.summaries = summaries
	return "the street beat script", nil
}

func (s *stubScript) Save(date time.Time, script string) (string, error) {
	s.saved = script
	return "/tmp/script.txt", nil
}

func usableContent(topic string) string {
	return strings.Repeat(topic+" moved sharply on heavy volume. ", 6)
}

func testArticles() []domain.Article {
	now := time.Now()
	return []domain.Article{
		{ID: "m1", Title: "Fed signals rate cut", URL: "https://x/m1", Content: usableContent("Treasuries"), PublishedAt: now, Source: "wire"},
		{ID: "d1", Title: "MegaCorp agrees to merger", URL: "https://x/d1", Content: usableContent("Shares"), PublishedAt: now, Source: "wire"},
		{ID: "f1", Title: "Inside the chip boom", URL: "https://x/f1", Content: usableContent("Factories"), PublishedAt: now, Source: "wire"},
	}
}

func validResult() validate.Result {
	return validate.Result{Valid: true, Confidence: 1.0}
}

func TestRunDeliversDigest(t *testing.T) {
	t.Parallel()

	repo := &stubRepository{}
	notifier := &stubNotifier{}
	script := &stubScript{}

	p := NewPipeline(PipelineDeps{
		Source:     &stubSource{articles: testArticles()},
		Repository: repo,
		Completer:  &stubCompleter{},
		Summarizer: &stubSummarizer{summary: "• Facts.\nSo what? It matters."},
		Validator:  &stubValidator{result: validResult()},
		Notifier:   notifier,
		Script:     script,
		ScriptSink: script,
	})

	day := time.Date(2026, 8, 28, 7, 0, 0, 0, time.UTC)
	if err := p.Run(context.Background(), day); err != nil {
		t.Fatalf("run: %v", err)
	}

	if notifier.sends != 1 {
		t.Fatalf("expected one send, got %d", notifier.sends)
	}
	if !strings.Contains(notifier.subject, "Your 3 Things") || !strings.Contains(notifier.subject, "Aug 28, 2026") {
		t.Fatalf("unexpected subject: %q", notifier.subject)
	}
	if !strings.Contains(notifier.body, "Macro &amp; Economics") || !strings.Contains(notifier.body, "Deals &amp; Corporate") {
		t.Fatalf("category labels missing from body")
	}
	if len(repo.saved) != 3 {
		t.Fatalf("expected 3 persisted articles, got %d", len(repo.saved))
	}
	if repo.saved[0].Status != domain.StatusDelivered {
		t.Fatalf("unexpected status: %s", repo.saved[0].Status)
	}
	if script.saved != "the street beat script" {
		t.Fatal("broadcast script not written")
	}
	if len(script.summaries) != 3 {
		t.Fatalf("script should receive all summaries, got %d", len(script.summaries))
	}
}

func TestRunSkipsDeliveredArticles(t *testing.T) {
	t.Parallel()

	notifier := &stubNotifier{}
	p := NewPipeline(PipelineDeps{
		Source:     &stubSource{articles: testArticles()},
		Repository: &stubRepository{delivered: map[string]bool{"m1": true, "d1": true, "f1": true}},
		Notifier:   notifier,
	})

	if err := p.Run(context.Background(), time.Now()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if notifier.sends != 0 {
		t.Fatal("digest must not be sent when everything was already delivered")
	}
}

func TestRunFallsBackToHeadlineOnSummarizerError(t *testing.T) {
	t.Parallel()

	notifier := &stubNotifier{}
	p := NewPipeline(PipelineDeps{
		Source:     &stubSource{articles: testArticles()[:1]},
		Summarizer: &stubSummarizer{err: errors.New("model down")},
		Validator:  &stubValidator{result: validResult()},
		Notifier:   notifier,
	})

	if err := p.Run(context.Background(), time.Now()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(notifier.body, "• Fed signals rate cut") {
		t.Fatalf("headline fallback missing from body: %s", notifier.body)
	}
}

func TestRunReplacesRejectedSummary(t *testing.T) {
	t.Parallel()

	notifier := &stubNotifier{}
	p := NewPipeline(PipelineDeps{
		Source:     &stubSource{articles: testArticles()[:1]},
		Summarizer: &stubSummarizer{summary: "I cannot summarize this."},
		Validator:  &stubValidator{result: validate.Result{Valid: false, Reason: "refusal", Confidence: 0.95}},
		Notifier:   notifier,
	})

	if err := p.Run(context.Background(), time.Now()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(notifier.body, "I cannot summarize") {
		t.Fatal("rejected summary leaked into digest")
	}
	if !strings.Contains(notifier.body, "• Fed signals rate cut") {
		t.Fatal("headline fallback missing")
	}
}

func TestRunBlockedArticleUsesFeedSummary(t *testing.T) {
	t.Parallel()

	summarizer := &stubSummarizer{summary: "• Facts.\nSo what? It matters."}
	article := domain.Article{
		ID:      "b1",
		Title:   "Paywalled scoop",
		URL:     "https://x/b1",
		Content: domain.BlockedSentinel,
		Summary: "The feed summary still has the gist of the story.",
	}

	p := NewPipeline(PipelineDeps{
		Source:     &stubSource{articles: []domain.Article{article}},
		Summarizer: summarizer,
		Validator:  &stubValidator{result: validResult()},
		Notifier:   &stubNotifier{},
	})

	if err := p.Run(context.Background(), time.Now()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(summarizer.excerpts) != 1 {
		t.Fatalf("expected one summarize call, got %d", len(summarizer.excerpts))
	}
	if summarizer.excerpts[0] != article.Summary {
		t.Fatalf("blocked article must summarize the feed summary, got %q", summarizer.excerpts[0])
	}
}

func TestRunFetchErrorPropagates(t *testing.T) {
	t.Parallel()

	p := NewPipeline(PipelineDeps{Source: &stubSource{err: errors.New("all providers down")}})
	if err := p.Run(context.Background(), time.Now()); err == nil {
		t.Fatal("expected fetch error")
	}
}

func TestRunNotifierErrorPropagates(t *testing.T) {
	t.Parallel()

	p := NewPipeline(PipelineDeps{
		Source:     &stubSource{articles: testArticles()},
		Summarizer: &stubSummarizer{summary: "• Facts.\nSo what? It matters."},
		Validator:  &stubValidator{result: validResult()},
		Notifier:   &stubNotifier{err: errors.New("smtp refused")},
	})

	if err := p.Run(context.Background(), time.Now()); err == nil {
		t.Fatal("expected notifier error")
	}
}
