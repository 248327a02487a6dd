package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"house_classifier/pkg/httpx/reply"
	"house_classifier/pkg/logx"
	"house_classifier/pkg/middlewarex"
)

// Handler wraps the routes into the logging and recovery middleware.
func (s Server) Handler(logFieldMaxLen int) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Get("/", handler(s.getPage))
		r.Post("/", handler(s.postPage))

		r.Route("/v1", func(r chi.Router) {
			r.Route("/predictions", func(r chi.Router) {
				r.Post("/", handler(s.postV1Prediction))
				r.Get("/{id}", handler(s.getV1Prediction))
			})
			r.Get("/dataset/sample", handler(s.getV1DatasetSample))
			r.Get("/model", handler(s.getV1Model))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
