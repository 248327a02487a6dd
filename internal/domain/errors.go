package domain

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"house_classifier/pkg/errcodes"
)

// NewInvalidInquiryError reports input the pipeline refuses to run on. The
// description is what the page shows to the user.
func NewInvalidInquiryError(code failure.ErrorCode, description string) error {
	return failure.NewInvalidArgumentError(
		"invalid inquiry",
		failure.WithCode(code),
		failure.WithDescription(description),
	)
}

// NewArtifactError reports a dataset or model file that cannot be used.
func NewArtifactError(code failure.ErrorCode, format string, args ...any) error {
	return failure.NewInternalServerError(
		fmt.Sprintf(format, args...),
		failure.WithCode(code),
	)
}

func NewResultNotFoundError(id string) error {
	return failure.NewNotFoundError(
		fmt.Sprintf("result %s not found", id),
		failure.WithCode(errcodes.ResultNotFound),
		failure.WithDescription("Result not found or expired"),
	)
}
