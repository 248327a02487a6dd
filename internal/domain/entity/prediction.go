package entity

import (
	"time"

	"house_classifier/internal/domain/value"
)

// Prediction is the interpreted model output for one inquiry. Probabilities
// are indexed by class: [New York, San Francisco].
type Prediction struct {
	City          value.City
	Probabilities [2]float64
	Scaled        []float64
}

// Result is the display record shown after a submission.
type Result struct {
	ID          value.ResultID
	Inquiry     Inquiry
	Features    Features
	Prediction  Prediction
	SubmittedAt time.Time
}

func (r Result) Date() string {
	return r.SubmittedAt.Format(time.DateOnly)
}

func (r Result) Time() string {
	return r.SubmittedAt.Format(time.TimeOnly)
}

func (r Result) NYProbability() float64 {
	return r.Prediction.Probabilities[value.CityNewYork]
}

func (r Result) SFProbability() float64 {
	return r.Prediction.Probabilities[value.CitySanFrancisco]
}

// ModelInfo describes the loaded artifacts.
type ModelInfo struct {
	Type         string
	Features     []string
	Classes      []value.City
	ScalerMode   value.ScalerMode
	TrainingRows int
	// Scaler is set only in fixed mode, where the statistics never change.
	Scaler *ScalerStats
}

type ScalerStats struct {
	Mean  []float64
	Scale []float64
}
