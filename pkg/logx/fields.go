package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldClass           = "class"
	FieldDatasetSource   = "dataset-source"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldModelType       = "model-type"
	FieldPath            = "path"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseSize    = "response-size"
	FieldResponseStatus  = "response-status"
	FieldResultID        = "result-id"
	FieldRows            = "rows"
	FieldScalerMode      = "scaler-mode"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
	FieldUserAgent       = "user-agent"
)
