package entity

import "house_classifier/internal/domain/value"

// House is one row of the training table.
type House struct {
	City         value.City
	Beds         int
	Bath         int
	Price        float64
	YearBuilt    int
	Sqft         float64
	PricePerSqft float64
	Elevation    float64
}

// Dataset is the training table, read once at startup and never modified.
type Dataset struct {
	Houses []House
}

func (d Dataset) Len() int {
	return len(d.Houses)
}
