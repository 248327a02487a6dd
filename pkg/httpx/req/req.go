package req

import (
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"house_classifier/pkg/errcodes"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

// Read decodes a JSON body into dest and validates it.
func Read(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid JSON"),
		)
	}

	return Validate(r, dest)
}

// ReadForm parses an urlencoded form, lets decode fill dest from it and
// validates the result.
func ReadForm(r *http.Request, dest any, decode func(get func(string) string) error) error {
	if err := r.ParseForm(); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("r.ParseForm: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid form"),
		)
	}

	if err := decode(r.PostForm.Get); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return Validate(r, dest)
}

func Validate(r *http.Request, dest any) error {
	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}
