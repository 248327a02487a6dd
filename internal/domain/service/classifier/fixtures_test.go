package classifier_test

import (
	"context"
	"sync"
	"time"

	"git.appkode.ru/pub/go/failure"
	"gonum.org/v1/gonum/mat"

	"house_classifier/internal/domain"
	"house_classifier/internal/domain/entity"
	"house_classifier/internal/domain/value"
	"house_classifier/pkg/ml"
)

func testDataset() entity.Dataset {
	return entity.Dataset{Houses: []entity.House{
		{City: value.CityNewYork, Beds: 2, Bath: 1, Price: 999000, YearBuilt: 1960, Sqft: 999, PricePerSqft: 1000, Elevation: 10},
		{City: value.CityNewYork, Beds: 2, Bath: 2, Price: 1500000, YearBuilt: 1985, Sqft: 1000, PricePerSqft: 1500, Elevation: 20},
		{City: value.CitySanFrancisco, Beds: 3, Bath: 2, Price: 3000000, YearBuilt: 1925, Sqft: 1500, PricePerSqft: 2000, Elevation: 30},
		{City: value.CitySanFrancisco, Beds: 4, Bath: 3, Price: 5000000, YearBuilt: 1910, Sqft: 2000, PricePerSqft: 2500, Elevation: 40},
	}}
}

func testModel() ml.LogisticRegression {
	model, err := ml.NewLogisticRegression(
		[]string{"elevation", "price_per_sqft"},
		[]float64{2, 1},
		0,
		[2]int{0, 1},
	)
	if err != nil {
		panic(err)
	}

	return model
}

// spyModel counts calls and can return labels outside the taxonomy.
type spyModel struct {
	features []string
	classes  [2]int
	label    int
	calls    int
}

func (m *spyModel) Type() string       { return "spy" }
func (m *spyModel) Features() []string { return m.features }
func (m *spyModel) Classes() [2]int    { return m.classes }

func (m *spyModel) Predict(mat.Vector) (int, error) {
	m.calls++
	return m.label, nil
}

func (m *spyModel) PredictProba(mat.Vector) ([2]float64, error) {
	m.calls++
	return [2]float64{0.5, 0.5}, nil
}

type memoryResultStore struct {
	mu      sync.Mutex
	results map[value.ResultID]entity.Result
}

func newMemoryResultStore() *memoryResultStore {
	return &memoryResultStore{results: make(map[value.ResultID]entity.Result)}
}

func (m *memoryResultStore) Save(_ context.Context, result entity.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.results[result.ID] = result

	return nil
}

func (m *memoryResultStore) Get(_ context.Context, id value.ResultID) (entity.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result, ok := m.results[id]
	if !ok {
		return entity.Result{}, domain.NewResultNotFoundError(id.String())
	}

	return result, nil
}

type recordingObserver struct {
	predictions []value.City
	rejections  []failure.ErrorCode
}

func (r *recordingObserver) ObservePrediction(city value.City, _ value.ScalerMode, _ time.Duration) {
	r.predictions = append(r.predictions, city)
}

func (r *recordingObserver) ObserveRejection(code failure.ErrorCode) {
	r.rejections = append(r.rejections, code)
}
