package artifact

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"house_classifier/internal/domain"
	"house_classifier/pkg/errcodes"
	"house_classifier/pkg/ml"
)

type modelSchema struct {
	Type      string    `json:"type"`
	Features  []string  `json:"features"`
	Classes   []int     `json:"classes"`
	Coef      []float64 `json:"coef"`
	Intercept *float64  `json:"intercept"`
}

func (s modelSchema) toDomain() (ml.LogisticRegression, error) {
	if s.Type != ml.TypeLogisticRegression {
		return ml.LogisticRegression{}, fmt.Errorf("unsupported model type %q", s.Type)
	}

	if len(s.Classes) != 2 { //nolint:mnd
		return ml.LogisticRegression{}, fmt.Errorf("binary model expected, got %d classes", len(s.Classes))
	}

	if s.Intercept == nil {
		return ml.LogisticRegression{}, errors.New("intercept is missing")
	}

	model, err := ml.NewLogisticRegression(s.Features, s.Coef, *s.Intercept, [2]int{s.Classes[0], s.Classes[1]})
	if err != nil {
		return ml.LogisticRegression{}, fmt.Errorf("ml.NewLogisticRegression: %w", err)
	}

	return model, nil
}

// ReadModel decodes a fitted logistic regression.
func ReadModel(r io.Reader) (ml.LogisticRegression, error) {
	var schema modelSchema

	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(r).Decode(&schema); err != nil {
		return ml.LogisticRegression{}, domain.NewArtifactError(errcodes.InvalidModel, "decode model: %v", err)
	}

	model, err := schema.toDomain()
	if err != nil {
		return ml.LogisticRegression{}, domain.NewArtifactError(errcodes.InvalidModel, "%v", err)
	}

	return model, nil
}
