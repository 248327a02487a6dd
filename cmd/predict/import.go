package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"house_classifier/internal/application"
	"house_classifier/internal/config"
	"house_classifier/internal/infrastructure/artifact"
	"house_classifier/internal/infrastructure/persistence"
	"house_classifier/pkg/contextx"
	"house_classifier/pkg/logx"
)

// ImportCommand copies the CSV training table into the houses table, for the
// postgres dataset source.
func ImportCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:          "import-dataset",
		Short:        "Replace the houses table with the CSV training table",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if cfg.Postgres.DSN == "" {
				return errors.New("--pg-dsn or PG_DSN is required")
			}

			dataset, err := artifact.NewLoader().LoadDataset(ctx, cfg.Artifacts.DatasetPath)
			if err != nil {
				return fmt.Errorf("loader.LoadDataset: %w", err)
			}

			pg := application.NewPostgres(cfg.Postgres)
			defer pg.Close(ctx)

			db, err := pg.Client(ctx)
			if err != nil {
				return fmt.Errorf("pg.Client: %w", err)
			}

			if err = persistence.NewHouseRepository(db).Replace(ctx, dataset); err != nil {
				return fmt.Errorf("houseRepository.Replace: %w", err)
			}

			contextx.LoggerFromContextOrDefault(ctx).Info(
				"dataset imported",
				slog.String(logx.FieldPath, cfg.Artifacts.DatasetPath),
				slog.Int(logx.FieldRows, dataset.Len()),
			)

			return nil
		},
	}
}
