package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"house_classifier/internal/application"
	"house_classifier/internal/config"
	"house_classifier/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log := logx.New(os.Stdout, cfg.Log.Level, cfg.Log.NoColor).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)

	if err = application.Run(ctx, log, cfg); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}
