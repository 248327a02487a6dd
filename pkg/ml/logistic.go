package ml

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const TypeLogisticRegression = "logistic_regression"

var ErrFeatureCount = errors.New("feature count mismatch")

// LogisticRegression is a fitted binary logistic regression. Classes[0] is
// the negative class, Classes[1] the positive one.
type LogisticRegression struct {
	features  []string
	coef      *mat.VecDense
	intercept float64
	classes   [2]int
}

func NewLogisticRegression(
	features []string,
	coef []float64,
	intercept float64,
	classes [2]int,
) (LogisticRegression, error) {
	if len(coef) == 0 {
		return LogisticRegression{}, errors.New("no coefficients")
	}

	if len(features) != len(coef) {
		return LogisticRegression{}, fmt.Errorf("%w: %d features, %d coefficients", ErrFeatureCount, len(features), len(coef))
	}

	for i, c := range coef {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return LogisticRegression{}, fmt.Errorf("coefficient %d is not finite", i)
		}
	}

	if math.IsNaN(intercept) || math.IsInf(intercept, 0) {
		return LogisticRegression{}, errors.New("intercept is not finite")
	}

	return LogisticRegression{
		features:  append([]string(nil), features...),
		coef:      mat.NewVecDense(len(coef), append([]float64(nil), coef...)),
		intercept: intercept,
		classes:   classes,
	}, nil
}

func (m LogisticRegression) Type() string {
	return TypeLogisticRegression
}

func (m LogisticRegression) Features() []string {
	return append([]string(nil), m.features...)
}

func (m LogisticRegression) Classes() [2]int {
	return m.classes
}

// DecisionFunction returns the signed distance of x to the separating
// hyperplane.
func (m LogisticRegression) DecisionFunction(x mat.Vector) (float64, error) {
	if x.Len() != m.coef.Len() {
		return 0, fmt.Errorf("%w: model expects %d, got %d", ErrFeatureCount, m.coef.Len(), x.Len())
	}

	return mat.Dot(m.coef, x) + m.intercept, nil
}

// Predict returns the class label of x.
func (m LogisticRegression) Predict(x mat.Vector) (int, error) {
	z, err := m.DecisionFunction(x)
	if err != nil {
		return 0, err
	}

	if z > 0 {
		return m.classes[1], nil
	}

	return m.classes[0], nil
}

// PredictProba returns the probabilities of Classes[0] and Classes[1].
func (m LogisticRegression) PredictProba(x mat.Vector) ([2]float64, error) {
	z, err := m.DecisionFunction(x)
	if err != nil {
		return [2]float64{}, err
	}

	p := sigmoid(z)

	return [2]float64{1 - p, p}, nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}

	e := math.Exp(z)

	return e / (1 + e)
}

// Round rounds v half to even at the given number of decimal places.
func Round(v float64, places int) float64 {
	pow := math.Pow10(places)

	return math.RoundToEven(v*pow) / pow
}
