package middlewarex

import (
	"bytes"
	"cmp"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/zenazn/goji/web/mutil"

	"house_classifier/pkg/logx"
)

// ResponseLogging logs status, headers and body of every response. Rendered
// pages are logged by size only.
//
// The trouble with optional interfaces:
// https://blog.merovius.de/posts/2017-07-30-the-trouble-with-optional-interfaces/
func ResponseLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()
			lw := mutil.WrapWriter(w)

			var buf bytes.Buffer

			lw.Tee(&buf)

			next.ServeHTTP(lw, r)

			responseHeaders, err := responseHeaders(w)
			if err != nil {
				logger(ctx).Error("responseHeaders", logx.Error(err))
			}

			// lw.Status() is 0 when the handler never called WriteHeader.
			status := cmp.Or(lw.Status(), http.StatusOK)

			body := responseBody(w, buf.Bytes(), logFieldMaxLen)

			logger(ctx).Info(
				logx.FieldHTTPResponse,
				slog.Int(logx.FieldResponseStatus, status),
				slog.String(logx.FieldResponseHeaders, string(sensitiveDataMasker.Mask(responseHeaders))),
				slog.String(logx.FieldResponseBody, string(sensitiveDataMasker.Mask(body))),
				slog.Int(logx.FieldResponseSize, lw.BytesWritten()),
				slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
			)
		})
	}
}

func responseBody(w http.ResponseWriter, dump []byte, logFieldMaxLen int) []byte {
	if strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
		return nil
	}

	if logFieldMaxLen > 0 && len(dump) > logFieldMaxLen {
		return dump[:logFieldMaxLen]
	}

	return dump
}

func responseHeaders(w http.ResponseWriter) ([]byte, error) {
	var buf bytes.Buffer

	if err := w.Header().WriteSubset(&buf, nil); err != nil {
		return nil, fmt.Errorf("header.WriteSubset: %w", err)
	}

	return buf.Bytes(), nil
}
