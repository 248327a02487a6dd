package artifact

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"house_classifier/internal/domain"
	"house_classifier/internal/domain/entity"
	"house_classifier/internal/domain/value"
	"house_classifier/pkg/errcodes"
)

const (
	columnInSF         = "in_sf"
	columnBeds         = "beds"
	columnBath         = "bath"
	columnPrice        = "price"
	columnYearBuilt    = "year_built"
	columnSqft         = "sqft"
	columnPricePerSqft = "price_per_sqft"
	columnElevation    = "elevation"
)

//nolint:gochecknoglobals
var datasetColumns = []string{
	columnInSF,
	columnBeds,
	columnBath,
	columnPrice,
	columnYearBuilt,
	columnSqft,
	columnPricePerSqft,
	columnElevation,
}

// ReadDataset parses the training table. The first record is a header; the
// columns may come in any order and extra columns are ignored.
func ReadDataset(r io.Reader) (entity.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return entity.Dataset{}, domain.NewArtifactError(errcodes.InvalidDataset, "read header: %v", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	if missing := lo.Without(datasetColumns, lo.Keys(index)...); len(missing) > 0 {
		return entity.Dataset{}, domain.NewArtifactError(errcodes.InvalidDataset,
			"missing columns %s", strings.Join(missing, ", "))
	}

	var houses []entity.House

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return entity.Dataset{}, domain.NewArtifactError(errcodes.InvalidDataset, "line %d: %v", line, err)
		}

		house, err := parseHouse(record, index)
		if err != nil {
			return entity.Dataset{}, domain.NewArtifactError(errcodes.InvalidDataset, "line %d: %v", line, err)
		}

		houses = append(houses, house)
	}

	if len(houses) == 0 {
		return entity.Dataset{}, domain.NewArtifactError(errcodes.InvalidDataset, "dataset has no rows")
	}

	return entity.Dataset{Houses: houses}, nil
}

func parseHouse(record []string, index map[string]int) (entity.House, error) {
	values := make(map[string]float64, len(datasetColumns))

	for _, name := range datasetColumns {
		v, err := strconv.ParseFloat(strings.TrimSpace(record[index[name]]), 64)
		if err != nil {
			return entity.House{}, fmt.Errorf("column %s: %w", name, err)
		}

		if math.IsNaN(v) || math.IsInf(v, 0) {
			return entity.House{}, fmt.Errorf("column %s: value is not finite", name)
		}

		values[name] = v
	}

	label := values[columnInSF]
	if label != math.Trunc(label) {
		return entity.House{}, fmt.Errorf("column %s: %v is not a class label", columnInSF, label)
	}

	city, err := value.ParseCity(int(label))
	if err != nil {
		return entity.House{}, fmt.Errorf("column %s: %w", columnInSF, err)
	}

	return entity.House{
		City:         city,
		Beds:         int(values[columnBeds]),
		Bath:         int(values[columnBath]),
		Price:        values[columnPrice],
		YearBuilt:    int(values[columnYearBuilt]),
		Sqft:         values[columnSqft],
		PricePerSqft: values[columnPricePerSqft],
		Elevation:    values[columnElevation],
	}, nil
}
