package services

import (
	"time"

	"space-catalog/shipyard/internal/common"
)

// CurrentYear is the catalog's "now" for ratings and the upper production year bound.
const CurrentYear = 3019

const (
	ratingSpeedFactor = 80.0
	usedCoefficient   = 0.5
	newCoefficient    = 1.0
)

// CalculateRating derives a ship's rating:
//
//	round2(80 * speed * k / (CurrentYear - prodYear + 1))
//
// where k is 0.5 for used ships and 1.0 otherwise. prodYear is the UTC year.
func CalculateRating(speed float64, isUsed bool, prodDate time.Time) float64 {
	k := newCoefficient
	if isUsed {
		k = usedCoefficient
	}
	age := CurrentYear - prodDate.UTC().Year() + 1
	return common.Round2(ratingSpeedFactor * speed * k / float64(age))
}
