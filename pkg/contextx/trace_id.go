package contextx

import (
	"context"
	"fmt"
)

const traceIDMaxLen = 64

type TraceID string

type contextKeyTraceID struct{}

// ParseTraceID accepts a trace id sent by a client. Only ids of letters,
// digits, '-' and '_' up to 64 bytes end up in the logs.
func ParseTraceID(s string) (TraceID, bool) {
	if s == "" || len(s) > traceIDMaxLen {
		return "", false
	}

	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return "", false
		}
	}

	return TraceID(s), true
}

func (t TraceID) String() string {
	return string(t)
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}
