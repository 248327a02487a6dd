// Package artifact reads the training table and the fitted model from a local
// file or an http(s) URL.
package artifact

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"house_classifier/internal/domain/entity"
	"house_classifier/pkg/contextx"
	"house_classifier/pkg/httpx"
	"house_classifier/pkg/logx"
	"house_classifier/pkg/ml"
)

const defaultTimeout = 30 * time.Second

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Loader struct {
	client *http.Client
}

func NewLoader() *Loader {
	return &Loader{
		client: &http.Client{
			Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport, httpx.WithResponseBody(false)),
			Timeout:   defaultTimeout,
		},
	}
}

func (l *Loader) WithHTTPClient(client *http.Client) *Loader {
	l.client = client
	return l
}

func (l *Loader) LoadDataset(ctx context.Context, location string) (entity.Dataset, error) {
	rc, err := l.open(ctx, location)
	if err != nil {
		return entity.Dataset{}, fmt.Errorf("open: %w", err)
	}
	defer rc.Close()

	dataset, err := ReadDataset(rc)
	if err != nil {
		return entity.Dataset{}, fmt.Errorf("ReadDataset: %w", err)
	}

	logger(ctx).Info(
		"dataset loaded",
		slog.String(logx.FieldPath, location),
		slog.Int(logx.FieldRows, dataset.Len()),
	)

	return dataset, nil
}

func (l *Loader) LoadModel(ctx context.Context, location string) (ml.LogisticRegression, error) {
	rc, err := l.open(ctx, location)
	if err != nil {
		return ml.LogisticRegression{}, fmt.Errorf("open: %w", err)
	}
	defer rc.Close()

	model, err := ReadModel(rc)
	if err != nil {
		return ml.LogisticRegression{}, fmt.Errorf("ReadModel: %w", err)
	}

	logger(ctx).Info(
		"model loaded",
		slog.String(logx.FieldPath, location),
		slog.String(logx.FieldModelType, model.Type()),
	)

	return model, nil
}

func (l *Loader) open(ctx context.Context, location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("os.Open: %w", err)
		}

		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client.Do: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("GET %s: unexpected status %s", location, resp.Status)
	}

	return resp.Body, nil
}
