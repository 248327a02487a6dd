// Package ml holds the inference-side pieces of the classifier: mean/variance
// standardization and a fitted binary logistic regression.
package ml

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Columns whose variance is below this threshold are left unscaled, matching
// the usual treatment of constant features.
const zeroVarianceEpsilon = 10 * 2.220446049250313e-16

var ErrEmptyMatrix = errors.New("matrix is empty")

// StandardScaler centers each column on its mean and divides it by its
// population standard deviation (ddof = 0).
type StandardScaler struct {
	mean  []float64
	scale []float64
}

// FitStandardScaler computes per-column statistics of x.
func FitStandardScaler(x mat.Matrix) (StandardScaler, error) {
	rows, cols := x.Dims()
	if rows == 0 || cols == 0 {
		return StandardScaler{}, ErrEmptyMatrix
	}

	s := StandardScaler{
		mean:  make([]float64, cols),
		scale: make([]float64, cols),
	}

	col := make([]float64, rows)

	for j := range cols {
		mat.Col(col, j, x)

		mean, variance := stat.PopMeanVariance(col, nil)
		if math.IsNaN(mean) || math.IsInf(mean, 0) {
			return StandardScaler{}, fmt.Errorf("column %d: non-finite mean", j)
		}

		s.mean[j] = mean
		s.scale[j] = 1

		if variance > zeroVarianceEpsilon {
			s.scale[j] = math.Sqrt(variance)
		}
	}

	return s, nil
}

// Transform returns a standardized copy of x.
func (s StandardScaler) Transform(x mat.Matrix) (*mat.Dense, error) {
	rows, cols := x.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyMatrix
	}

	if cols != len(s.mean) {
		return nil, fmt.Errorf("scaler fitted on %d columns, got %d", len(s.mean), cols)
	}

	out := mat.NewDense(rows, cols, nil)
	out.Apply(func(_, j int, v float64) float64 {
		return (v - s.mean[j]) / s.scale[j]
	}, x)

	return out, nil
}

// FitTransform fits the scaler on x and applies it to x.
func FitTransform(x mat.Matrix) (*mat.Dense, StandardScaler, error) {
	s, err := FitStandardScaler(x)
	if err != nil {
		return nil, StandardScaler{}, fmt.Errorf("FitStandardScaler: %w", err)
	}

	out, err := s.Transform(x)
	if err != nil {
		return nil, StandardScaler{}, fmt.Errorf("scaler.Transform: %w", err)
	}

	return out, s, nil
}

func (s StandardScaler) Mean() []float64 {
	return append([]float64(nil), s.mean...)
}

func (s StandardScaler) Scale() []float64 {
	return append([]float64(nil), s.scale...)
}
