package application

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"house_classifier/internal/config"
	"house_classifier/internal/domain/service/classifier"
	"house_classifier/internal/infrastructure/monitoring"
	"house_classifier/internal/infrastructure/resultstore"
	"house_classifier/internal/server"
	"house_classifier/pkg/application/connectors"
	"house_classifier/pkg/application/modules"
	"house_classifier/pkg/contextx"
	"house_classifier/pkg/logx"
	"house_classifier/pkg/probe"
)

// Run loads the artifacts and serves the page, the probes and the metrics
// until ctx is done. Artifacts that cannot be loaded stop the start.
func Run(ctx context.Context, log *slog.Logger, cfg config.Config) error {
	ctx = contextx.WithLogger(ctx, log)

	var checks []probe.Check

	var pg *connectors.Postgres

	if cfg.Artifacts.DatasetSource == config.DatasetSourcePostgres {
		pg = NewPostgres(cfg.Postgres)
		defer pg.Close(ctx)

		checks = append(checks, pg.Ping)
	}

	artifacts, err := LoadArtifacts(ctx, cfg, pg)
	if err != nil {
		return fmt.Errorf("LoadArtifacts: %w", err)
	}

	metrics := monitoring.New()

	svc, err := classifier.NewService(artifacts.Dataset, artifacts.Model)
	if err != nil {
		return fmt.Errorf("classifier.NewService: %w", err)
	}

	svc = svc.
		WithScalerMode(cfg.Artifacts.ScalerMode).
		WithResultStore(resultstore.New(cfg.ResultTTL)).
		WithObserver(metrics)

	images := server.Images{
		NewYork:      cfg.Page.ImageNYURL,
		SanFrancisco: cfg.Page.ImageSFURL,
	}

	srv := server.NewServer(
		server.NewPageServer(svc, server.PageSettings{
			PreviewRows:   cfg.Page.PreviewRows,
			IconURL:       cfg.Page.IconURL,
			HeroImageURL:  cfg.Page.HeroImageURL,
			IntroImageURL: cfg.Page.IntroImageURL,
			Images:        images,
		}),
		server.NewAPIServer(svc, images),
	)

	log.Info(
		"classifier ready",
		slog.String(logx.FieldModelType, artifacts.Model.Type()),
		slog.Int(logx.FieldRows, artifacts.Dataset.Len()),
		logx.Stringer(logx.FieldScalerMode, cfg.Artifacts.ScalerMode),
	)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:   cfg.HTTP.ListenAddress,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, srv.Handler(cfg.Log.FieldMaxLen))

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
	}.Run(ctx, g, checks...)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
	}.Run(ctx, g, metrics.Registry())

	if err = g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
