package ml_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"house_classifier/pkg/ml"
)

func TestLogisticRegression(t *testing.T) {
	rq := require.New(t)

	model, err := ml.NewLogisticRegression(
		[]string{"elevation", "price_per_sqft"},
		[]float64{2, 1},
		-0.5,
		[2]int{0, 1},
	)
	rq.NoError(err)

	testCases := []struct {
		name  string
		x     []float64
		label int
		p1    float64
	}{
		{
			name:  "Positive side",
			x:     []float64{1, 0.5},
			label: 1,
			p1:    0.8807970779778823, // sigmoid(2)
		},
		{
			name:  "Negative side",
			x:     []float64{-1, -1},
			label: 0,
			p1:    0.029312230751356326, // sigmoid(-3.5)
		},
		{
			name:  "On the boundary",
			x:     []float64{0, 0.5},
			label: 0,
			p1:    0.5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			x := mat.NewVecDense(len(tc.x), tc.x)

			label, err := model.Predict(x)
			rq.NoError(err)
			rq.Equal(tc.label, label)

			proba, err := model.PredictProba(x)
			rq.NoError(err)
			rq.InDelta(tc.p1, proba[1], 1e-12)
			rq.InDelta(1, proba[0]+proba[1], 1e-12)
		})
	}
}

func TestLogisticRegressionExtremeDecision(t *testing.T) {
	rq := require.New(t)

	model, err := ml.NewLogisticRegression([]string{"a"}, []float64{1}, 0, [2]int{0, 1})
	rq.NoError(err)

	proba, err := model.PredictProba(mat.NewVecDense(1, []float64{-1000}))
	rq.NoError(err)
	rq.Equal([2]float64{1, 0}, proba)
}

func TestNewLogisticRegressionErrors(t *testing.T) {
	rq := require.New(t)

	_, err := ml.NewLogisticRegression([]string{"a", "b"}, []float64{1}, 0, [2]int{0, 1})
	rq.ErrorIs(err, ml.ErrFeatureCount)

	_, err = ml.NewLogisticRegression(nil, nil, 0, [2]int{0, 1})
	rq.ErrorContains(err, "no coefficients")

	model, err := ml.NewLogisticRegression([]string{"a"}, []float64{1}, 0, [2]int{0, 1})
	rq.NoError(err)

	_, err = model.Predict(mat.NewVecDense(2, []float64{1, 2}))
	rq.ErrorIs(err, ml.ErrFeatureCount)
}

func TestRound(t *testing.T) {
	rq := require.New(t)

	rq.Equal(0.12, ml.Round(0.1234, 2))
	rq.Equal(0.88, ml.Round(0.8807970779778823, 2))
	rq.Equal(1.0, ml.Round(0.999, 2))
	rq.Equal(0.0, ml.Round(0.004, 2))
}
