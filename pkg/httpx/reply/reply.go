package reply

import (
	"context"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"house_classifier/pkg/contextx"
	"house_classifier/pkg/errcodes"
	"house_classifier/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code failure.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// HTML writes an already rendered page.
func HTML(ctx context.Context, w http.ResponseWriter, statusCode int, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	if _, err := w.Write(page); err != nil {
		logger(ctx).Error("w.Write", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("error", logx.Error(err))

	response := errorResponse{
		Code:      failure.Code(err).String(),
		Message:   failure.Description(err),
		SupportID: SupportID(ctx),
	}

	statusCode := Status(err)

	switch statusCode {
	case http.StatusBadRequest:
		response.WithDefaultCode(errcodes.ValidationError)
	case http.StatusNotFound:
		response.WithDefaultCode(errcodes.NotFound)
	case http.StatusInternalServerError:
		response.WithDefaultCode(errcodes.InternalServerError)
	}

	JSON(ctx, w, statusCode, response)
}

// Status maps an error to the HTTP status code the client gets.
func Status(err error) int {
	return failure.HTTPStatus(err)
}

func SupportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
