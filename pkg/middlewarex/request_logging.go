package middlewarex

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"

	"house_classifier/pkg/logx"
)

// RequestLogging dumps incoming requests through the masker. Form posts from
// the page are dumped too, since the masker knows the form field names.
func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			dumpBody := !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")

			dump, err := httputil.DumpRequest(r, dumpBody)

			if logFieldMaxLen > 0 && len(dump) > logFieldMaxLen {
				dump = dump[:logFieldMaxLen]
			}

			logger(ctx).Info(
				logx.FieldHTTPRequest,
				slog.String(logx.FieldRequestBody, string(sensitiveDataMasker.Mask(dump))),
				logx.Error(err),
			)

			next.ServeHTTP(w, r)
		})
	}
}
