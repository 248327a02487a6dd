// Package modules runs the long-lived servers of the process inside one
// errgroup.
package modules

import "house_classifier/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
