package value_test

import (
	"strings"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"house_classifier/internal/domain/value"
	"house_classifier/pkg/errcodes"
)

func TestParseCity(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		label int
		code  string
		full  string
	}{
		{name: "New York", label: 0, code: "NY", full: "New York City"},
		{name: "San Francisco", label: 1, code: "SF", full: "San Francisco"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			city, err := value.ParseCity(tc.label)
			rq.NoError(err)
			rq.Equal(tc.code, city.String())
			rq.Equal(tc.full, city.Name())
			rq.Equal(tc.label, city.Label())
		})
	}
}

func TestParseCityUnknownLabel(t *testing.T) {
	rq := require.New(t)

	for _, label := range []int{-1, 2, 10, 101} {
		_, err := value.ParseCity(label)
		rq.Error(err)
		rq.True(failure.IsInternalServerError(err))
		rq.True(failure.HasCode(err, errcodes.UnknownClassLabel))
	}
}

// Labels whose decimal form holds both digits must never turn into a mix of
// codes and digits.
func TestCityStringNeverLeaksDigits(t *testing.T) {
	rq := require.New(t)

	for _, label := range []int{0, 1} {
		city, err := value.ParseCity(label)
		rq.NoError(err)
		rq.False(strings.ContainsAny(city.String(), "0123456789"))
	}

	rq.Equal("City(10)", value.City(10).String())
}

func TestScalerModeUnmarshalText(t *testing.T) {
	rq := require.New(t)

	var mode value.ScalerMode

	rq.NoError(mode.UnmarshalText([]byte("fixed")))
	rq.Equal(value.ScalerModeFixed, mode)

	rq.NoError(mode.UnmarshalText([]byte("joint")))
	rq.Equal(value.ScalerModeJoint, mode)

	rq.ErrorContains(mode.UnmarshalText([]byte("persisted")), `unknown scaler mode "persisted"`)
}

func TestResultID(t *testing.T) {
	rq := require.New(t)

	id := value.NewResultID()
	rq.False(id.IsZero())

	parsed, err := value.ParseResultID(id.String())
	rq.NoError(err)
	rq.Equal(id, parsed)

	_, err = value.ParseResultID("not-an-id")
	rq.Error(err)

	rq.True(value.ResultID{}.IsZero())
}
