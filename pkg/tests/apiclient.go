// Package tests drives the HTTP surface of the service in tests.
package tests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type APIClient struct {
	baseURL    string
	httpClient *http.Client
	logf       func(format string, args ...any)
}

func NewAPIClient(
	baseURL string,
	httpClient *http.Client,
) APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return APIClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		logf:       func(string, ...any) {},
	}
}

// WithLogf routes request and response logs to logf, usually t.Logf.
func (a APIClient) WithLogf(logf func(format string, args ...any)) APIClient {
	a.logf = logf
	return a
}

func (a APIClient) Get(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	dest any,
	errDest any,
) (*http.Response, error) {
	return a.jsonRequest(ctx, http.MethodGet, endpoint, headers, http.NoBody, dest, errDest)
}

func (a APIClient) Post(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	request any,
	dest any,
	errDest any,
) (*http.Response, error) {
	b, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return a.jsonRequest(ctx, http.MethodPost, endpoint, headers, bytes.NewReader(b), dest, errDest)
}

func (a APIClient) PostJSON(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	requestJSON string,
	dest any,
	errDest any,
) (*http.Response, error) {
	return a.jsonRequest(ctx, http.MethodPost, endpoint, headers, strings.NewReader(requestJSON), dest, errDest)
}

// Page fetches a rendered page. A non-nil form is posted urlencoded.
func (a APIClient) Page(ctx context.Context, endpoint string, form url.Values) (*http.Response, string, error) {
	method, payload, headers := http.MethodGet, io.Reader(http.NoBody), http.Header{}

	if form != nil {
		method, payload = http.MethodPost, strings.NewReader(form.Encode())
		headers.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := a.do(ctx, method, endpoint, headers, payload)
	if err != nil {
		return nil, "", err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("io.ReadAll: %w", err)
	}

	return resp, string(body), nil
}

func (a APIClient) jsonRequest(
	ctx context.Context,
	httpMethod string,
	endpoint string,
	headers http.Header,
	payload io.Reader,
	dest any,
	errDest any,
) (*http.Response, error) {
	if httpMethod == http.MethodPost && headers.Get("Content-Type") == "" {
		headers = headers.Clone()
		if headers == nil {
			headers = http.Header{}
		}

		headers.Set("Content-Type", "application/json")
	}

	resp, err := a.do(ctx, httpMethod, endpoint, headers, payload)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if err = parseResponse(resp, dest, errDest); err != nil {
		return nil, fmt.Errorf("parseResponse: %w", err)
	}

	return resp, nil
}

func (a APIClient) do(
	ctx context.Context,
	httpMethod string,
	endpoint string,
	headers http.Header,
	payload io.Reader,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, httpMethod, a.baseURL+endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	for k, v := range headers {
		req.Header[k] = v
	}

	a.logf("request: %s %s", req.Method, req.URL)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	a.logf("response: %s %s", resp.Status, resp.Header.Get("Content-Type"))

	return resp, nil
}

func parseResponse(r *http.Response, dest, errDest any) error {
	if r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices && dest != nil {
		if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
			return fmt.Errorf("json.Decode(success destination): %w", err)
		}
	} else if errDest != nil {
		if err := json.NewDecoder(r.Body).Decode(errDest); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("json.Decode(err destination): %w", err)
		}
	}

	return nil
}
