package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"newsbrief/internal/broadcast"
	"newsbrief/internal/config"
	"newsbrief/internal/content"
	"newsbrief/internal/infrastructure/email"
	"newsbrief/internal/infrastructure/llm"
	"newsbrief/internal/infrastructure/scheduler"
	"newsbrief/internal/infrastructure/storage"
	"newsbrief/internal/logging"
	"newsbrief/internal/ports"
	"newsbrief/internal/source"
	"newsbrief/internal/trace"
	"newsbrief/internal/usecase"
	"newsbrief/internal/validate"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	pipeline  *usecase.Pipeline
	scheduler *usecase.Scheduler
	recorder  *trace.Recorder
}

// New builds a runnable application instance from configuration.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	var recorder *trace.Recorder
	if cfg.Trace.Enabled {
		var err error
		recorder, err = trace.NewRecorder(cfg.Trace.Dir)
		if err != nil {
			return nil, fmt.Errorf("init trace recorder: %w", err)
		}
	}

	registry := source.NewRegistry()
	registry.Register(source.NewMarketAuxProvider(cfg.News.MarketAux.BaseURL, cfg.News.MarketAux.APIToken, nil))
	registry.Register(source.NewFMPProvider(cfg.News.FMP.BaseURL, cfg.News.FMP.APIKey, nil))
	registry.Register(source.NewFinnhubProvider(cfg.News.Finnhub.APIKey))
	registry.Register(source.NewRSSProvider(cfg.News.Feeds, nil, baseLogger.With("component", "source.rss")))

	multi, err := source.NewMultiSource(registry, cfg.News.Providers, cfg.News.Limit,
		baseLogger.With("component", "source"))
	if err != nil {
		return nil, fmt.Errorf("wire providers: %w", err)
	}

	var repository ports.ArticleRepository
	if cfg.Database.DSN != "" {
		db, err := storage.Open(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		repository = storage.NewPostgresRepository(db)
	}

	model := llm.NewOllamaClient(cfg.Ollama.BaseURL, cfg.Ollama.Model, recorder)

	completer := content.NewCompleter(&http.Client{Timeout: 20 * time.Second},
		baseLogger.With("component", "content"))
	validator := validate.New(model, baseLogger.With("component", "validate"))

	notifier := email.NewSMTPSender(cfg.Email.Host, cfg.Email.Port, cfg.Email.User,
		cfg.Email.Password, cfg.Email.From, cfg.Email.Recipients)

	var scriptGen usecase.ScriptGenerator
	var scriptSink usecase.ScriptSink
	if cfg.Broadcast.Enabled {
		scriptGen = broadcast.NewGenerator(model, broadcast.Config{
			DurationMinutes: cfg.Broadcast.DurationMinutes,
			WordsPerMinute:  cfg.Broadcast.WordsPerMinute,
		})
		scriptSink = broadcast.NewWriter(cfg.Broadcast.OutputDir)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:        multi,
		Repository:    repository,
		Completer:     completer,
		Summarizer:    model,
		Validator:     validator,
		Notifier:      notifier,
		Script:        scriptGen,
		ScriptSink:    scriptSink,
		Logger:        baseLogger.With("component", "pipeline"),
		CharBudget:    cfg.Digest.CharBudget,
		MinParagraphs: cfg.Digest.MinParagraphs,
	})

	driver := scheduler.NewCronScheduler(cfg.Scheduler.CronExpression, cfg.Scheduler.Location())

	return &Application{
		cfg:       cfg,
		logger:    baseLogger,
		pipeline:  pipeline,
		scheduler: usecase.NewScheduler(driver, pipeline),
		recorder:  recorder,
	}, nil
}

// RunOnce performs a single digest cycle.
func (a *Application) RunOnce(ctx context.Context) error {
	now := time.Now().In(a.cfg.Scheduler.Location())
	return a.pipeline.Run(ctx, now)
}

// Start begins the cron schedule.
func (a *Application) Start(ctx context.Context) error {
	a.logger.Info("scheduler starting",
		"cron", a.cfg.Scheduler.CronExpression,
		"timezone", a.cfg.Scheduler.Location().String())
	return a.scheduler.Start(ctx)
}

// Stop tears the schedule down and closes the trace sink.
func (a *Application) Stop(ctx context.Context) error {
	err := a.scheduler.Stop(ctx)
	if closeErr := a.recorder.Close(); err == nil {
		err = closeErr
	}
	return err
}
