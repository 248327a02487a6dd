// Package httpx holds the outbound HTTP client plumbing used to fetch remote
// artifacts.
package httpx

import "house_classifier/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
