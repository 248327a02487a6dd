// Package rest holds the request and response models of the JSON API.
package rest

// PredictionRequest is a house to classify.
type PredictionRequest struct {
	Name    string `json:"name" validate:"required"`
	Surname string `json:"surname" validate:"required"`

	// Price Sale price in dollars
	Price int64 `json:"price" validate:"gte=1"`

	// Sqft Square feet of the house
	Sqft float64 `json:"sqft" validate:"gte=1"`

	// Elevation Elevation in feet, 0..250
	Elevation *int `json:"elevation" validate:"required,gte=0,lte=250"`
}

// Prediction is one row of the results table.
type Prediction struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Surname       string  `json:"surname"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Elevation     int     `json:"elevation"`
	Price         int64   `json:"price"`
	Sqft          float64 `json:"sqft"`
	PricePerSqft  float64 `json:"pricePerSqft"`
	Prediction    string  `json:"prediction"`
	NYProbability float64 `json:"nyProbability"`
	SFProbability float64 `json:"sfProbability"`
	ImageURL      string  `json:"imageUrl"`
}

// House is a row of the training table.
type House struct {
	InSF         int     `json:"inSf"`
	Beds         int     `json:"beds"`
	Bath         int     `json:"bath"`
	Price        float64 `json:"price"`
	YearBuilt    int     `json:"yearBuilt"`
	Sqft         float64 `json:"sqft"`
	PricePerSqft float64 `json:"pricePerSqft"`
	Elevation    float64 `json:"elevation"`
}

type Sample struct {
	Houses []House `json:"houses"`
}

type Class struct {
	Label int    `json:"label"`
	Code  string `json:"code"`
	Name  string `json:"name"`
}

type Model struct {
	Type         string   `json:"type"`
	Features     []string `json:"features"`
	Classes      []Class  `json:"classes"`
	ScalerMode   string   `json:"scalerMode"`
	TrainingRows int      `json:"trainingRows"`
	// Scaler Fitted training statistics, present in fixed scaler mode
	Scaler *Scaler `json:"scaler,omitempty"`
}

// Scaler Per-feature standard scaler statistics
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Error Error model
type Error struct {
	// Code Error code
	Code ErrorCode `json:"code"`

	// Message Error message to show in the UI
	Message string `json:"message"`

	SupportID string `json:"supportId"`
}

// ErrorCode Error code
type ErrorCode string
