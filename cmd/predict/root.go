package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"house_classifier/internal/application"
	"house_classifier/internal/config"
	"house_classifier/internal/domain/entity"
	"house_classifier/internal/domain/service/classifier"
	"house_classifier/internal/domain/value"
	"house_classifier/pkg/application/connectors"
)

// RootCommand classifies one house from flags and prints the results table.
func RootCommand(cfg *config.Config) *cobra.Command {
	var inquiry entity.Inquiry

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Classify a house as New York City or San Francisco",
		Long: `Classify a house from its price, square feet and elevation with the
pre-trained model and print the results table.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var pg *connectors.Postgres

			if cfg.Artifacts.DatasetSource == config.DatasetSourcePostgres {
				pg = application.NewPostgres(cfg.Postgres)
				defer pg.Close(ctx)
			}

			artifacts, err := application.LoadArtifacts(ctx, *cfg, pg)
			if err != nil {
				return fmt.Errorf("application.LoadArtifacts: %w", err)
			}

			svc, err := classifier.NewService(artifacts.Dataset, artifacts.Model)
			if err != nil {
				return fmt.Errorf("classifier.NewService: %w", err)
			}

			result, err := svc.WithScalerMode(cfg.Artifacts.ScalerMode).Classify(ctx, inquiry)
			if err != nil {
				return fmt.Errorf("svc.Classify: %w", err)
			}

			return printResult(cmd.OutOrStdout(), result)
		},
	}

	setupFlags(cmd, cfg, &inquiry)

	cmd.AddCommand(ImportCommand(cfg))

	return cmd
}

func setupFlags(cmd *cobra.Command, cfg *config.Config, inquiry *entity.Inquiry) {
	cmd.PersistentFlags().StringVar(&cfg.Artifacts.DatasetSource, "dataset-source", cfg.Artifacts.DatasetSource, "Dataset source: file, postgres")
	cmd.PersistentFlags().StringVar(&cfg.Artifacts.DatasetPath, "dataset", cfg.Artifacts.DatasetPath, "Path or URL of the training table (CSV)")
	cmd.PersistentFlags().StringVar(&cfg.Artifacts.ModelPath, "model", cfg.Artifacts.ModelPath, "Path or URL of the model (JSON)")
	cmd.PersistentFlags().StringVar(&cfg.Postgres.DSN, "pg-dsn", cfg.Postgres.DSN, "Postgres DSN of the postgres dataset source")

	cmd.Flags().Var(scalerModeFlag{mode: &cfg.Artifacts.ScalerMode}, "scaler-mode", "Scaler mode: joint, fixed")
	cmd.Flags().StringVar(&inquiry.Name, "name", "", "Name")
	cmd.Flags().StringVar(&inquiry.Surname, "surname", "", "Surname")
	cmd.Flags().Int64Var(&inquiry.Price, "price", 1, "Price of house ($)")
	cmd.Flags().Float64Var(&inquiry.Sqft, "sqft", 1, "Square feet of house")
	cmd.Flags().IntVar(&inquiry.Elevation, "elevation", 0, fmt.Sprintf(
		"Elevation of house (ft), %d..%d", classifier.MinElevation, classifier.MaxElevation,
	))

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("surname")
}

type scalerModeFlag struct {
	mode *value.ScalerMode
}

func (f scalerModeFlag) String() string {
	if f.mode == nil {
		return ""
	}

	return f.mode.String()
}

func (f scalerModeFlag) Set(s string) error {
	return f.mode.UnmarshalText([]byte(s)) //nolint:wrapcheck
}

func (scalerModeFlag) Type() string {
	return "string"
}

func printResult(w io.Writer, result entity.Result) error {
	table := newTable(w)

	table.Row("Name", "Surname", "Date", "Time", "Elevation", "Price", "Sqft", "Prediction", "NY Probability", "SF Probability")
	table.Row(
		result.Inquiry.Name,
		result.Inquiry.Surname,
		result.Date(),
		result.Time(),
		fmt.Sprint(result.Inquiry.Elevation),
		fmt.Sprint(result.Inquiry.Price),
		fmt.Sprint(result.Inquiry.Sqft),
		result.Prediction.City.String(),
		fmt.Sprintf("%.2f", result.NYProbability()),
		fmt.Sprintf("%.2f", result.SFProbability()),
	)

	return table.Flush()
}
