package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsbrief/internal/app"
	"newsbrief/internal/config"
	"newsbrief/internal/logging"
)

func main() {
	once := flag.Bool("once", false, "run a single digest cycle and exit")
	flag.Parse()

	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	if *once {
		if err := application.RunOnce(ctx); err != nil {
			logger.Error("digest run failed", "error", err)
			os.Exit(1)
		}
		stop(application, logger)
		return
	}

	if err := application.Start(ctx); err != nil {
		logger.Error("scheduler failed to start", "error", err)
		os.Exit(1)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals

	stop(application, logger)
}

func stop(application *app.Application, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := application.Stop(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
