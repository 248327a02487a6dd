package server

import (
	"context"

	"house_classifier/internal/domain/entity"
	"house_classifier/internal/domain/value"
)

type classifierService interface {
	Classify(ctx context.Context, inquiry entity.Inquiry) (entity.Result, error)
	Result(ctx context.Context, id value.ResultID) (entity.Result, error)
	Sample(n int) ([]entity.House, error)
	ModelInfo() entity.ModelInfo
}

// Images are the badges shown next to a result.
type Images struct {
	NewYork      string
	SanFrancisco string
}

func (i Images) URL(city value.City) string {
	if city == value.CitySanFrancisco {
		return i.SanFrancisco
	}

	return i.NewYork
}

// Server combines the page and the JSON API.
type Server struct {
	PageServer
	APIServer
}

func NewServer(
	pageServer PageServer,
	apiServer APIServer,
) Server {
	return Server{
		PageServer: pageServer,
		APIServer:  apiServer,
	}
}
