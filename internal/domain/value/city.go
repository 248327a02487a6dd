package value

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"house_classifier/pkg/errcodes"
)

// City is the class label of the model.
type City int

const (
	CityNewYork      City = 0
	CitySanFrancisco City = 1
)

//nolint:gochecknoglobals
var cityCodes = map[City]string{
	CityNewYork:      "NY",
	CitySanFrancisco: "SF",
}

//nolint:gochecknoglobals
var cityNames = map[City]string{
	CityNewYork:      "New York City",
	CitySanFrancisco: "San Francisco",
}

// ParseCity maps a raw model label to a City. Only 0 and 1 are labels; any
// other value means the artifact does not match this taxonomy.
func ParseCity(label int) (City, error) {
	city := City(label)

	if _, ok := cityCodes[city]; !ok {
		return 0, failure.NewInternalServerError(
			fmt.Sprintf("unknown class label %d", label),
			failure.WithCode(errcodes.UnknownClassLabel),
		)
	}

	return city, nil
}

// String returns the short code shown in the results table.
func (c City) String() string {
	if code, ok := cityCodes[c]; ok {
		return code
	}

	return fmt.Sprintf("City(%d)", int(c))
}

func (c City) Name() string {
	return cityNames[c]
}

func (c City) Label() int {
	return int(c)
}
