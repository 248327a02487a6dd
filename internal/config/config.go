package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"house_classifier/internal/domain/service/classifier"
	"house_classifier/internal/domain/value"
)

const (
	DatasetSourceFile     = "file"
	DatasetSourcePostgres = "postgres"
)

type Config struct {
	App       App
	HTTP      HTTP
	Probe     Probe
	Metrics   Metrics
	Artifacts Artifacts
	Page      Page
	Log       Log
	Postgres  Postgres
	ResultTTL time.Duration `env:"RESULT_TTL" envDefault:"1h"`
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"house-classifier"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type HTTP struct {
	ListenAddress   string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

type Artifacts struct {
	DatasetSource string           `env:"DATASET_SOURCE" envDefault:"file"`
	DatasetPath   string           `env:"DATASET_PATH" envDefault:"artifacts/train_df.csv"`
	ModelPath     string           `env:"MODEL_PATH" envDefault:"artifacts/logreg_model.json"`
	ScalerMode    value.ScalerMode `env:"SCALER_MODE" envDefault:"joint"`
}

type Page struct {
	PreviewRows   int    `env:"PREVIEW_ROWS" envDefault:"5"`
	IconURL       string `env:"PAGE_ICON_URL" envDefault:"https://miro.medium.com/v2/resize:fit:2400/1*rGi8_JUoGX0L3W6nivmIAg@2x.png"`
	HeroImageURL  string `env:"PAGE_HERO_IMAGE_URL" envDefault:"https://i.insider.com/5808fc6cc52402ce248b5aa2?width=1000&format=jpeg&auto=webp"`
	IntroImageURL string `env:"PAGE_INTRO_IMAGE_URL" envDefault:"https://resources.pollfish.com/wp-content/uploads/2020/11/MARKET_RESEARCH_FOR_REAL_ESTATE_IN_CONTENT_1.png"`
	ImageNYURL    string `env:"IMAGE_NY_URL" envDefault:"https://images.vexels.com/media/users/3/144125/isolated/preview/e41e827336e592fc084566be2bff2665-new-york-skyline-badge-vector.png"`
	ImageSFURL    string `env:"IMAGE_SF_URL" envDefault:"https://images.vexels.com/media/users/3/144138/isolated/preview/e69d5f1721fe4a3c0afa93679f4d944f-san-francisco-skyline-badge.png"`
}

type Log struct {
	Level       slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	NoColor     bool       `env:"LOG_NO_COLOR" envDefault:"false"`
	FieldMaxLen int        `env:"LOG_FIELD_MAX_LEN" envDefault:"2000"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.validate(); err != nil {
		return Config{}, fmt.Errorf("config.validate: %w", err)
	}

	return config, nil
}

func (c Config) validate() error {
	switch c.Artifacts.DatasetSource {
	case DatasetSourceFile:
		if c.Artifacts.DatasetPath == "" {
			return errors.New("DATASET_PATH is required for the file dataset source")
		}
	case DatasetSourcePostgres:
		if c.Postgres.DSN == "" {
			return errors.New("PG_DSN is required for the postgres dataset source")
		}
	default:
		return fmt.Errorf("unknown DATASET_SOURCE %q", c.Artifacts.DatasetSource)
	}

	if c.Artifacts.ModelPath == "" {
		return errors.New("MODEL_PATH is required")
	}

	if c.Page.PreviewRows < 1 || c.Page.PreviewRows > classifier.MaxSampleSize {
		return fmt.Errorf("PREVIEW_ROWS must be between 1 and %d, got %d", classifier.MaxSampleSize, c.Page.PreviewRows)
	}

	if c.ResultTTL <= 0 {
		return fmt.Errorf("RESULT_TTL must be positive, got %s", c.ResultTTL)
	}

	return nil
}
