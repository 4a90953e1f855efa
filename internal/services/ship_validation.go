package services

import (
	"math"
	"time"
	"unicode/utf8"

	"space-catalog/shipyard/internal/common"
	"space-catalog/shipyard/internal/errors"
)

const (
	MaxTextLength = 50

	MinProdYear = 2800
	MaxProdYear = CurrentYear

	MinSpeed = 0.01
	MaxSpeed = 0.99

	MinCrewSize = 1
	MaxCrewSize = 9999
)

// invalidField marks a rule violation and records which request field broke it.
// The detail stays out of the client message and is read back by GetAllDetails.
func invalidField(field, format string, args ...interface{}) error {
	return errors.WithDetailf(errors.Malformedf(format, args...), "field: %s", field)
}

// ValidateText checks name and planet: non-empty, at most MaxTextLength characters.
func ValidateText(field, value string) error {
	n := utf8.RuneCountInString(value)
	if n == 0 {
		return invalidField(field, "%s must not be empty", field)
	}
	if n > MaxTextLength {
		return invalidField(field, "%s is %d characters, max %d", field, n, MaxTextLength)
	}
	return nil
}

// ValidateProdDate checks the UTC year is within [MinProdYear, MaxProdYear]
// and the timestamp is not before the epoch.
func ValidateProdDate(prodDate time.Time) error {
	if prodDate.UnixMilli() < 0 {
		return invalidField("prodDate", "prodDate %d is negative", prodDate.UnixMilli())
	}
	year := prodDate.UTC().Year()
	if year < MinProdYear || year > MaxProdYear {
		return invalidField("prodDate", "prodDate year %d outside [%d, %d]", year, MinProdYear, MaxProdYear)
	}
	return nil
}

// ValidateSpeed rounds speed to two decimals and checks the rounded value.
// The rounded value is what gets stored.
func ValidateSpeed(speed float64) (float64, error) {
	if math.IsNaN(speed) || math.IsInf(speed, 0) {
		return 0, invalidField("speed", "speed %v is not a number", speed)
	}
	rounded := common.Round2(speed)
	if rounded < MinSpeed || rounded > MaxSpeed {
		return 0, invalidField("speed", "speed %v outside [%.2f, %.2f]", speed, MinSpeed, MaxSpeed)
	}
	return rounded, nil
}

// ValidateCrewSize checks crewSize is within [MinCrewSize, MaxCrewSize].
func ValidateCrewSize(crewSize int) error {
	if crewSize < MinCrewSize || crewSize > MaxCrewSize {
		return invalidField("crewSize", "crewSize %d outside [%d, %d]", crewSize, MinCrewSize, MaxCrewSize)
	}
	return nil
}
