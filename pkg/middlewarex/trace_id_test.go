package middlewarex_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"house_classifier/pkg/contextx"
	"house_classifier/pkg/middlewarex"
)

func TestTraceID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "from header", header: "client-trace-1", keep: true},
		{name: "generated", header: "", keep: false},
		{name: "unsafe header replaced", header: "bad\ttrace", keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rq := require.New(t)

			var seen contextx.TraceID

			h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				traceID, err := contextx.TraceIDFromContext(r.Context())
				rq.NoError(err)

				seen = traceID
			}))

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("X-Trace-Id", tt.header)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			rq.NotEmpty(seen)
			rq.Equal(seen.String(), w.Header().Get("X-Trace-Id"))

			if tt.keep {
				rq.Equal(tt.header, seen.String())
			} else {
				rq.NotEqual(tt.header, seen.String())
			}
		})
	}
}
