package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"space-catalog/shipyard/internal/errors"
)

func TestValidateText(t *testing.T) {
	assert.NoError(t, ValidateText("name", "A"))
	assert.NoError(t, ValidateText("name", strings.Repeat("x", 50)))
	assert.NoError(t, ValidateText("planet", strings.Repeat("é", 50)), "length counts characters, not bytes")

	for _, bad := range []string{"", strings.Repeat("x", 51)} {
		err := ValidateText("name", bad)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrMalformedInput))
	}
}

func TestValidateProdDate_YearBounds(t *testing.T) {
	assert.NoError(t, ValidateProdDate(time.Date(2800, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.NoError(t, ValidateProdDate(time.Date(3019, time.December, 31, 23, 59, 59, 0, time.UTC)))

	for _, bad := range []time.Time{
		time.Date(2799, time.December, 31, 23, 59, 59, 0, time.UTC),
		time.Date(3020, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.UnixMilli(-1),
	} {
		err := ValidateProdDate(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.Is(err, errors.ErrMalformedInput))
	}
}

func TestValidateSpeed_Bounds(t *testing.T) {
	accepted := map[float64]float64{
		0.01:  0.01,
		0.99:  0.99,
		0.005: 0.01,
		0.994: 0.99,
		0.456: 0.46,
	}
	for in, want := range accepted {
		got, err := ValidateSpeed(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []float64{0.0, 1.0, 0.004, 0.995, -0.5} {
		_, err := ValidateSpeed(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.Is(err, errors.ErrMalformedInput))
	}
}

func TestValidateCrewSize_Bounds(t *testing.T) {
	assert.NoError(t, ValidateCrewSize(1))
	assert.NoError(t, ValidateCrewSize(9999))
	assert.Error(t, ValidateCrewSize(0))
	assert.Error(t, ValidateCrewSize(10000))
}

func TestValidation_RecordsFieldDetail(t *testing.T) {
	cases := map[string]error{
		"planet":   ValidateText("planet", ""),
		"prodDate": ValidateProdDate(time.Date(2799, time.January, 1, 0, 0, 0, 0, time.UTC)),
		"crewSize": ValidateCrewSize(0),
	}
	_, speedErr := ValidateSpeed(1.0)
	cases["speed"] = speedErr

	for field, err := range cases {
		require.Error(t, err, field)
		assert.True(t, errors.Is(err, errors.ErrMalformedInput), field)
		assert.Contains(t, errors.GetAllDetails(err), "field: "+field)
		assert.NotContains(t, err.Error(), "field: ", "details stay out of the client message")
	}
}
