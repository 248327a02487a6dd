package middlewarex

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"git.appkode.ru/pub/go/failure"

	"house_classifier/pkg/errcodes"
	"house_classifier/pkg/httpx/reply"
	"house_classifier/pkg/logx"
)

// Recovery turns a panic inside a handler into an InternalServerError reply
// carrying the trace id, so the client still receives the error envelope.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				logger(ctx).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				reply.Error(ctx, w, failure.NewInternalServerError(
					fmt.Sprintf("panic: %v", rec),
					failure.WithCode(errcodes.InternalServerError),
				))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
