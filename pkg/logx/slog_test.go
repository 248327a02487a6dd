package logx_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"house_classifier/pkg/logx"
)

func TestNew(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	logger := logx.New(&buf, slog.LevelInfo, true)

	logger.Debug("hidden")
	logger.Info("model loaded", slog.Int(logx.FieldRows, 42), logx.Error(errors.New("boom")))

	out := buf.String()
	rq.NotContains(out, "hidden")
	rq.Contains(out, "model loaded")
	rq.Contains(out, "rows=42")
	rq.Contains(out, "boom")
}
