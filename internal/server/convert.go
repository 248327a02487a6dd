package server

import (
	"house_classifier/internal/domain/entity"
	"house_classifier/internal/domain/value"
	"house_classifier/pkg/lox"
	"house_classifier/pkg/rest"
)

func newRESTPrediction(result entity.Result, images Images) rest.Prediction {
	return rest.Prediction{
		ID:            result.ID.String(),
		Name:          result.Inquiry.Name,
		Surname:       result.Inquiry.Surname,
		Date:          result.Date(),
		Time:          result.Time(),
		Elevation:     result.Inquiry.Elevation,
		Price:         result.Inquiry.Price,
		Sqft:          result.Inquiry.Sqft,
		PricePerSqft:  result.Features.PricePerSqft,
		Prediction:    result.Prediction.City.String(),
		NYProbability: result.NYProbability(),
		SFProbability: result.SFProbability(),
		ImageURL:      images.URL(result.Prediction.City),
	}
}

func newRESTHouse(house entity.House) rest.House {
	return rest.House{
		InSF:         house.City.Label(),
		Beds:         house.Beds,
		Bath:         house.Bath,
		Price:        house.Price,
		YearBuilt:    house.YearBuilt,
		Sqft:         house.Sqft,
		PricePerSqft: house.PricePerSqft,
		Elevation:    house.Elevation,
	}
}

func newRESTClass(city value.City) rest.Class {
	return rest.Class{
		Label: city.Label(),
		Code:  city.String(),
		Name:  city.Name(),
	}
}

func newRESTModel(info entity.ModelInfo) rest.Model {
	model := rest.Model{
		Type:         info.Type,
		Features:     info.Features,
		Classes:      lox.Map(info.Classes, newRESTClass),
		ScalerMode:   info.ScalerMode.String(),
		TrainingRows: info.TrainingRows,
	}

	if info.Scaler != nil {
		model.Scaler = &rest.Scaler{Mean: info.Scaler.Mean, Scale: info.Scaler.Scale}
	}

	return model
}

func newDomainInquiry(request rest.PredictionRequest) entity.Inquiry {
	inquiry := entity.Inquiry{
		Name:    request.Name,
		Surname: request.Surname,
		Price:   request.Price,
		Sqft:    request.Sqft,
	}

	if request.Elevation != nil {
		inquiry.Elevation = *request.Elevation
	}

	return inquiry
}
