// Package middlewarex holds the HTTP middleware chain shared by the page and
// the JSON API.
package middlewarex

import "house_classifier/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
