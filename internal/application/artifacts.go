package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"house_classifier/internal/config"
	"house_classifier/internal/domain/entity"
	"house_classifier/internal/infrastructure/artifact"
	"house_classifier/internal/infrastructure/persistence"
	"house_classifier/pkg/application/connectors"
	"house_classifier/pkg/contextx"
	"house_classifier/pkg/logx"
	"house_classifier/pkg/ml"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Artifacts are the training table and the fitted model.
type Artifacts struct {
	Dataset entity.Dataset
	Model   ml.LogisticRegression
}

// LoadArtifacts reads the model file and the dataset from the configured
// source. pg is used only by the postgres source.
func LoadArtifacts(ctx context.Context, cfg config.Config, pg *connectors.Postgres) (Artifacts, error) {
	loader := artifact.NewLoader()

	model, err := loader.LoadModel(ctx, cfg.Artifacts.ModelPath)
	if err != nil {
		return Artifacts{}, fmt.Errorf("loader.LoadModel: %w", err)
	}

	logger(ctx).Info("loading dataset", slog.String(logx.FieldDatasetSource, cfg.Artifacts.DatasetSource))

	var dataset entity.Dataset

	switch cfg.Artifacts.DatasetSource {
	case config.DatasetSourcePostgres:
		if pg == nil {
			return Artifacts{}, errors.New("postgres dataset source without a connection")
		}

		db, err := pg.Client(ctx)
		if err != nil {
			return Artifacts{}, fmt.Errorf("pg.Client: %w", err)
		}

		dataset, err = persistence.NewHouseRepository(db).Dataset(ctx)
		if err != nil {
			return Artifacts{}, fmt.Errorf("houseRepository.Dataset: %w", err)
		}
	default:
		dataset, err = loader.LoadDataset(ctx, cfg.Artifacts.DatasetPath)
		if err != nil {
			return Artifacts{}, fmt.Errorf("loader.LoadDataset: %w", err)
		}
	}

	return Artifacts{Dataset: dataset, Model: model}, nil
}

func NewPostgres(cfg config.Postgres) *connectors.Postgres {
	return &connectors.Postgres{
		DSN:             cfg.DSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}
}
