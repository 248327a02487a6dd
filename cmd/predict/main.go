package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"house_classifier/internal/config"
	"house_classifier/pkg/contextx"
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

	log := logx.New(os.Stderr, cfg.Log.Level, cfg.Log.NoColor)
	ctx = contextx.WithLogger(ctx, log)

	if err = RootCommand(&cfg).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
