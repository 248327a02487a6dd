package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Artifacts
	InvalidDataset failure.ErrorCode = "InvalidDataset"
	InvalidModel   failure.ErrorCode = "InvalidModel"

	// Inquiry
	InvalidInquiry    failure.ErrorCode = "InvalidInquiry"
	InvalidSquareFeet failure.ErrorCode = "InvalidSquareFeet"
	InvalidPrice      failure.ErrorCode = "InvalidPrice"
	InvalidElevation  failure.ErrorCode = "InvalidElevation"
	InvalidSampleSize failure.ErrorCode = "InvalidSampleSize"
	FeatureMismatch   failure.ErrorCode = "FeatureMismatch"
	UnknownClassLabel failure.ErrorCode = "UnknownClassLabel"
	ResultNotFound    failure.ErrorCode = "ResultNotFound"
	InvalidResultID   failure.ErrorCode = "InvalidResultID"
)
