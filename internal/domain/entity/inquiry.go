package entity

// Inquiry is what the user enters on the page.
type Inquiry struct {
	Name      string
	Surname   string
	Price     int64
	Sqft      float64
	Elevation int
}

// Features is the model input built from an Inquiry, in the column order
// elevation, price_per_sqft.
type Features struct {
	Elevation    float64
	PricePerSqft float64
}

func (f Features) Vector() []float64 {
	return []float64{f.Elevation, f.PricePerSqft}
}
