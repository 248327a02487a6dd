package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"house_classifier/internal/config"
	"house_classifier/internal/domain/value"
)

func testConfig() config.Config {
	return config.Config{Artifacts: config.Artifacts{
		DatasetSource: config.DatasetSourceFile,
		DatasetPath:   "../../artifacts/train_df.csv",
		ModelPath:     "../../artifacts/logreg_model.json",
		ScalerMode:    value.ScalerModeJoint,
	}}
}

func TestRootCommand(t *testing.T) {
	rq := require.New(t)

	cfg := testConfig()

	var out bytes.Buffer

	cmd := RootCommand(&cfg)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"--name", "Ada", "--surname", "Lovelace",
		"--price", "2000000", "--sqft", "1000", "--elevation", "200",
		"--scaler-mode", "fixed",
	})

	rq.NoError(cmd.ExecuteContext(context.Background()))
	rq.Equal(value.ScalerModeFixed, cfg.Artifacts.ScalerMode)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	rq.Len(lines, 2)
	rq.True(strings.HasPrefix(lines[0], "Name"))
	rq.Contains(lines[0], "SF Probability")
	rq.True(strings.HasPrefix(lines[1], "Ada"))

	fields := strings.Fields(lines[1])
	rq.Contains([]string{"NY", "SF"}, fields[7])
}

func TestRootCommandRejectsZeroSqft(t *testing.T) {
	cfg := testConfig()

	cmd := RootCommand(&cfg)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--name", "Ada", "--surname", "Lovelace", "--price", "2000000", "--sqft", "0"})

	require.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestRootCommandUnknownScalerMode(t *testing.T) {
	cfg := testConfig()

	cmd := RootCommand(&cfg)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--name", "Ada", "--surname", "Lovelace", "--scaler-mode", "online"})

	require.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestImportCommandRequiresDSN(t *testing.T) {
	cfg := testConfig()

	cmd := RootCommand(&cfg)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"import-dataset"})

	require.ErrorContains(t, cmd.ExecuteContext(context.Background()), "PG_DSN")
}
