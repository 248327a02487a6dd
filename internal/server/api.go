package server

import (
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"house_classifier/internal/domain/service/classifier"
	"house_classifier/internal/domain/value"
	"house_classifier/pkg/errcodes"
	"house_classifier/pkg/httpx/reply"
	"house_classifier/pkg/httpx/req"
	"house_classifier/pkg/lox"
	"house_classifier/pkg/rest"
)

type APIServer struct {
	classifierService classifierService
	images            Images
}

func NewAPIServer(classifierService classifierService, images Images) APIServer {
	return APIServer{
		classifierService: classifierService,
		images:            images,
	}
}

func (s APIServer) postV1Prediction(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PredictionRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	result, err := s.classifierService.Classify(ctx, newDomainInquiry(request))
	if err != nil {
		return fmt.Errorf("classifierService.Classify: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTPrediction(result, s.images))

	return nil
}

func (s APIServer) getV1Prediction(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	raw := r.PathValue("id")

	id, err := value.ParseResultID(raw)
	if err == nil && id.IsZero() {
		err = fmt.Errorf("nil id %q", raw)
	}

	if err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("value.ParseResultID: %w", err).Error(),
			failure.WithCode(errcodes.InvalidResultID),
			failure.WithDescription("Invalid result id"),
		)
	}

	result, err := s.classifierService.Result(ctx, id)
	if err != nil {
		return fmt.Errorf("classifierService.Result: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPrediction(result, s.images))

	return nil
}

func (s APIServer) getV1DatasetSample(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	n := classifier.DefaultSampleSize

	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return failure.NewInvalidArgumentError(
				fmt.Errorf("strconv.Atoi: %w", err).Error(),
				failure.WithCode(errcodes.InvalidSampleSize),
				failure.WithDescription("Sample size must be a number"),
			)
		}

		n = parsed
	}

	houses, err := s.classifierService.Sample(n)
	if err != nil {
		return fmt.Errorf("classifierService.Sample: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Sample{Houses: lox.Map(houses, newRESTHouse)})

	return nil
}

func (s APIServer) getV1Model(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTModel(s.classifierService.ModelInfo()))

	return nil
}
