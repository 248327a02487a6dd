package persistence

import (
	"fmt"

	"house_classifier/internal/domain/entity"
	"house_classifier/internal/domain/value"
)

// houseSchema maps a row of the houses table.
type houseSchema struct {
	InSF         int     `db:"in_sf"`
	Beds         float64 `db:"beds"`
	Bath         float64 `db:"bath"`
	Price        float64 `db:"price"`
	YearBuilt    int     `db:"year_built"`
	Sqft         float64 `db:"sqft"`
	PricePerSqft float64 `db:"price_per_sqft"`
	Elevation    float64 `db:"elevation"`
}

func fromHouse(h entity.House) houseSchema {
	return houseSchema{
		InSF:         h.City.Label(),
		Beds:         float64(h.Beds),
		Bath:         float64(h.Bath),
		Price:        h.Price,
		YearBuilt:    h.YearBuilt,
		Sqft:         h.Sqft,
		PricePerSqft: h.PricePerSqft,
		Elevation:    h.Elevation,
	}
}

func (s houseSchema) toDomain() (entity.House, error) {
	city, err := value.ParseCity(s.InSF)
	if err != nil {
		return entity.House{}, fmt.Errorf("value.ParseCity: %w", err)
	}

	return entity.House{
		City:         city,
		Beds:         int(s.Beds),
		Bath:         int(s.Bath),
		Price:        s.Price,
		YearBuilt:    s.YearBuilt,
		Sqft:         s.Sqft,
		PricePerSqft: s.PricePerSqft,
		Elevation:    s.Elevation,
	}, nil
}
