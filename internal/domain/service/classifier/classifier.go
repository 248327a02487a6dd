package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"git.appkode.ru/pub/go/failure"
	"gonum.org/v1/gonum/mat"

	"house_classifier/internal/domain"
	"house_classifier/internal/domain/entity"
	"house_classifier/internal/domain/value"
	"house_classifier/pkg/contextx"
	"house_classifier/pkg/errcodes"
	"house_classifier/pkg/logx"
	"house_classifier/pkg/ml"
)

const (
	MinElevation      = 0
	MaxElevation      = 250
	DefaultSampleSize = 5
	MaxSampleSize     = 50

	probabilityPlaces = 2
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// FeatureNames is the column order the model was trained on.
//
//nolint:gochecknoglobals
var FeatureNames = []string{"elevation", "price_per_sqft"}

type Model interface {
	Type() string
	Features() []string
	Classes() [2]int
	Predict(x mat.Vector) (int, error)
	PredictProba(x mat.Vector) ([2]float64, error)
}

type ResultStore interface {
	Save(ctx context.Context, result entity.Result) error
	Get(ctx context.Context, id value.ResultID) (entity.Result, error)
}

type Observer interface {
	ObservePrediction(city value.City, mode value.ScalerMode, duration time.Duration)
	ObserveRejection(code failure.ErrorCode)
}

// Service runs the inference pipeline over a dataset and a model loaded at
// startup. Both are read-only after NewService returns.
type Service struct {
	dataset     entity.Dataset
	training    *mat.Dense
	model       Model
	scalerMode  value.ScalerMode
	fixedScaler ml.StandardScaler
	results     ResultStore
	observer    Observer
	now         func() time.Time

	mu     sync.Mutex
	random *rand.Rand
}

func NewService(dataset entity.Dataset, model Model) (*Service, error) {
	if dataset.Len() == 0 {
		return nil, domain.NewArtifactError(errcodes.InvalidDataset, "dataset has no rows")
	}

	if !slices.Equal(model.Features(), FeatureNames) {
		return nil, domain.NewArtifactError(
			errcodes.FeatureMismatch,
			"model features [%s], want [%s]",
			strings.Join(model.Features(), ", "),
			strings.Join(FeatureNames, ", "),
		)
	}

	// Probabilities are reported as [New York, San Francisco].
	if model.Classes() != [2]int{value.CityNewYork.Label(), value.CitySanFrancisco.Label()} {
		return nil, domain.NewArtifactError(errcodes.InvalidModel, "model classes %v, want [0 1]", model.Classes())
	}

	training := trainingMatrix(dataset)

	fixedScaler, err := ml.FitStandardScaler(training)
	if err != nil {
		return nil, fmt.Errorf("ml.FitStandardScaler: %w", err)
	}

	return &Service{
		dataset:     dataset,
		training:    training,
		model:       model,
		scalerMode:  value.ScalerModeJoint,
		fixedScaler: fixedScaler,
		results:     nopResultStore{},
		observer:    nopObserver{},
		now:         time.Now,
		random:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)), //nolint:gosec // sampling only
	}, nil
}

func (s *Service) WithScalerMode(mode value.ScalerMode) *Service {
	s.scalerMode = mode
	return s
}

func (s *Service) WithResultStore(results ResultStore) *Service {
	s.results = results
	return s
}

func (s *Service) WithObserver(observer Observer) *Service {
	s.observer = observer
	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) WithRandom(random *rand.Rand) *Service {
	s.random = random
	return s
}

// Classify validates the inquiry, runs the pipeline and records the result.
func (s *Service) Classify(ctx context.Context, inquiry entity.Inquiry) (entity.Result, error) {
	start := time.Now()

	features, err := s.features(inquiry)
	if err != nil {
		s.observer.ObserveRejection(failure.Code(err))
		return entity.Result{}, err
	}

	prediction, err := s.Predict(ctx, features)
	if err != nil {
		return entity.Result{}, fmt.Errorf("Predict: %w", err)
	}

	result := entity.Result{
		ID:          value.NewResultID(),
		Inquiry:     inquiry,
		Features:    features,
		Prediction:  prediction,
		SubmittedAt: s.now(),
	}

	if err = s.results.Save(ctx, result); err != nil {
		return entity.Result{}, fmt.Errorf("results.Save: %w", err)
	}

	s.observer.ObservePrediction(prediction.City, s.scalerMode, time.Since(start))

	logger(ctx).Info(
		"house classified",
		logx.Stringer(logx.FieldResultID, result.ID),
		logx.Stringer(logx.FieldClass, prediction.City),
		logx.Stringer(logx.FieldScalerMode, s.scalerMode),
	)

	return result, nil
}

func (s *Service) features(inquiry entity.Inquiry) (entity.Features, error) {
	if err := ValidateInquiry(inquiry); err != nil {
		return entity.Features{}, err
	}

	return PrepareFeatures(inquiry.Price, inquiry.Sqft, inquiry.Elevation)
}

// Predict scales the features and applies the model.
func (s *Service) Predict(ctx context.Context, features entity.Features) (entity.Prediction, error) {
	scaled, err := s.Scale(features)
	if err != nil {
		return entity.Prediction{}, fmt.Errorf("Scale: %w", err)
	}

	x := mat.NewVecDense(len(scaled), scaled)

	label, err := s.model.Predict(x)
	if err != nil {
		return entity.Prediction{}, fmt.Errorf("model.Predict: %w", err)
	}

	city, err := value.ParseCity(label)
	if err != nil {
		logger(ctx).Error("model returned a label outside the taxonomy", slog.Int(logx.FieldClass, label))
		return entity.Prediction{}, fmt.Errorf("value.ParseCity: %w", err)
	}

	proba, err := s.model.PredictProba(x)
	if err != nil {
		return entity.Prediction{}, fmt.Errorf("model.PredictProba: %w", err)
	}

	return entity.Prediction{
		City: city,
		Probabilities: [2]float64{
			ml.Round(proba[0], probabilityPlaces),
			ml.Round(proba[1], probabilityPlaces),
		},
		Scaled: scaled,
	}, nil
}

// Scale standardizes the feature row. In joint mode the row is appended to
// the training columns and the scaler is refitted on the combined matrix;
// the row is the last one of the result.
func (s *Service) Scale(features entity.Features) ([]float64, error) {
	row := mat.NewDense(1, len(FeatureNames), features.Vector())

	switch s.scalerMode {
	case value.ScalerModeFixed:
		scaled, err := s.fixedScaler.Transform(row)
		if err != nil {
			return nil, fmt.Errorf("fixedScaler.Transform: %w", err)
		}

		return scaled.RawRowView(0), nil
	default:
		var combined mat.Dense

		combined.Stack(s.training, row)

		scaled, _, err := ml.FitTransform(&combined)
		if err != nil {
			return nil, fmt.Errorf("ml.FitTransform: %w", err)
		}

		last, _ := scaled.Dims()

		return append([]float64(nil), scaled.RawRowView(last-1)...), nil
	}
}

// Sample returns n training rows picked at random without repetition.
func (s *Service) Sample(n int) ([]entity.House, error) {
	if n < 1 || n > MaxSampleSize {
		return nil, domain.NewInvalidInquiryError(
			errcodes.InvalidSampleSize,
			fmt.Sprintf("Sample size must be between 1 and %d", MaxSampleSize),
		)
	}

	n = min(n, s.dataset.Len())

	s.mu.Lock()
	perm := s.random.Perm(s.dataset.Len())
	s.mu.Unlock()

	houses := make([]entity.House, n)
	for i := range n {
		houses[i] = s.dataset.Houses[perm[i]]
	}

	return houses, nil
}

func (s *Service) Result(ctx context.Context, id value.ResultID) (entity.Result, error) {
	result, err := s.results.Get(ctx, id)
	if err != nil {
		return entity.Result{}, fmt.Errorf("results.Get: %w", err)
	}

	return result, nil
}

func (s *Service) ModelInfo() entity.ModelInfo {
	info := entity.ModelInfo{
		Type:         s.model.Type(),
		Features:     s.model.Features(),
		Classes:      []value.City{value.CityNewYork, value.CitySanFrancisco},
		ScalerMode:   s.scalerMode,
		TrainingRows: s.dataset.Len(),
	}

	if s.scalerMode == value.ScalerModeFixed {
		info.Scaler = &entity.ScalerStats{
			Mean:  s.fixedScaler.Mean(),
			Scale: s.fixedScaler.Scale(),
		}
	}

	return info
}

// ValidateInquiry checks the fields a user types in. Square feet is checked
// by PrepareFeatures.
func ValidateInquiry(inquiry entity.Inquiry) error {
	switch {
	case strings.TrimSpace(inquiry.Name) == "" || strings.TrimSpace(inquiry.Surname) == "":
		return domain.NewInvalidInquiryError(errcodes.InvalidInquiry, "Name and surname are required")
	case inquiry.Elevation < MinElevation || inquiry.Elevation > MaxElevation:
		return domain.NewInvalidInquiryError(
			errcodes.InvalidElevation,
			fmt.Sprintf("Elevation must be between %d and %d ft", MinElevation, MaxElevation),
		)
	}

	return nil
}

// PrepareFeatures derives price per square foot and builds the model input.
// sqft must be strictly positive; the division is never attempted otherwise.
func PrepareFeatures(price int64, sqft float64, elevation int) (entity.Features, error) {
	if math.IsNaN(sqft) || math.IsInf(sqft, 0) || sqft <= 0 {
		return entity.Features{}, domain.NewInvalidInquiryError(
			errcodes.InvalidSquareFeet,
			"Square feet must be greater than zero",
		)
	}

	if price < 1 {
		return entity.Features{}, domain.NewInvalidInquiryError(errcodes.InvalidPrice, "Price must be at least 1")
	}

	return entity.Features{
		Elevation:    float64(elevation),
		PricePerSqft: float64(price) / sqft,
	}, nil
}

func trainingMatrix(dataset entity.Dataset) *mat.Dense {
	training := mat.NewDense(dataset.Len(), len(FeatureNames), nil)

	for i, house := range dataset.Houses {
		training.SetRow(i, []float64{house.Elevation, house.PricePerSqft})
	}

	return training
}

type nopResultStore struct{}

func (nopResultStore) Save(context.Context, entity.Result) error {
	return nil
}

func (nopResultStore) Get(_ context.Context, id value.ResultID) (entity.Result, error) {
	return entity.Result{}, domain.NewResultNotFoundError(id.String())
}

type nopObserver struct{}

func (nopObserver) ObservePrediction(value.City, value.ScalerMode, time.Duration) {}

func (nopObserver) ObserveRejection(failure.ErrorCode) {}
