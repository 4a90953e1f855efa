package services

import (
	"strings"
	"time"

	"space-catalog/shipyard/internal/models/entities"
)

// ShipFilter holds the optional query narrowing. A nil field is absent and
// contributes no predicate.
type ShipFilter struct {
	Name        *string
	Planet      *string
	ShipType    *entities.ShipType
	After       *time.Time
	Before      *time.Time
	IsUsed      *bool
	MinSpeed    *float64
	MaxSpeed    *float64
	MinCrewSize *int
	MaxCrewSize *int
	MinRating   *float64
	MaxRating   *float64
}

// ShipPredicate reports whether a ship survives one filter stage.
type ShipPredicate func(entities.Ship) bool

// Predicates builds the chain in its fixed order, skipping absent parameters.
func (f ShipFilter) Predicates() []ShipPredicate {
	var chain []ShipPredicate

	if f.Name != nil {
		name := *f.Name
		chain = append(chain, func(s entities.Ship) bool { return strings.Contains(s.Name, name) })
	}
	if f.Planet != nil {
		planet := *f.Planet
		chain = append(chain, func(s entities.Ship) bool { return strings.Contains(s.Planet, planet) })
	}
	if f.ShipType != nil {
		shipType := *f.ShipType
		chain = append(chain, func(s entities.Ship) bool { return s.ShipType == shipType })
	}
	if f.After != nil {
		after := *f.After
		chain = append(chain, func(s entities.Ship) bool { return s.ProdDate.After(after) })
	}
	if f.Before != nil {
		before := *f.Before
		chain = append(chain, func(s entities.Ship) bool { return s.ProdDate.Before(before) })
	}
	if f.IsUsed != nil {
		isUsed := *f.IsUsed
		chain = append(chain, func(s entities.Ship) bool { return s.IsUsed == isUsed })
	}
	if f.MinSpeed != nil {
		minSpeed := *f.MinSpeed
		chain = append(chain, func(s entities.Ship) bool { return s.Speed >= minSpeed })
	}
	if f.MaxSpeed != nil {
		maxSpeed := *f.MaxSpeed
		chain = append(chain, func(s entities.Ship) bool { return s.Speed <= maxSpeed })
	}
	if f.MinCrewSize != nil {
		minCrew := *f.MinCrewSize
		chain = append(chain, func(s entities.Ship) bool { return s.CrewSize >= minCrew })
	}
	if f.MaxCrewSize != nil {
		maxCrew := *f.MaxCrewSize
		chain = append(chain, func(s entities.Ship) bool { return s.CrewSize <= maxCrew })
	}
	if f.MinRating != nil {
		minRating := *f.MinRating
		chain = append(chain, func(s entities.Ship) bool { return s.Rating >= minRating })
	}
	if f.MaxRating != nil {
		maxRating := *f.MaxRating
		chain = append(chain, func(s entities.Ship) bool { return s.Rating <= maxRating })
	}

	return chain
}

// Apply runs the chain over ships. The input slice is never modified.
func (f ShipFilter) Apply(ships []entities.Ship) []entities.Ship {
	return ApplyPredicates(ships, f.Predicates())
}

// ApplyPredicates narrows ships stage by stage; each stage gets a fresh slice.
func ApplyPredicates(ships []entities.Ship, chain []ShipPredicate) []entities.Ship {
	for _, keep := range chain {
		narrowed := make([]entities.Ship, 0, len(ships))
		for _, s := range ships {
			if keep(s) {
				narrowed = append(narrowed, s)
			}
		}
		ships = narrowed
	}
	return ships
}
