package services

import (
	"cmp"
	"slices"

	"space-catalog/shipyard/internal/errors"
	"space-catalog/shipyard/internal/models/entities"
)

// ShipOrder selects the ascending sort key.
type ShipOrder string

const (
	OrderByID     ShipOrder = "ID"
	OrderBySpeed  ShipOrder = "SPEED"
	OrderByDate   ShipOrder = "DATE"
	OrderByRating ShipOrder = "RATING"
)

const (
	DefaultPageNumber = 0
	DefaultPageSize   = 3
)

var shipComparators = map[ShipOrder]func(a, b entities.Ship) int{
	OrderByID: func(a, b entities.Ship) int {
		return cmp.Compare(a.ID, b.ID)
	},
	OrderBySpeed: func(a, b entities.Ship) int {
		return cmp.Compare(a.Speed, b.Speed)
	},
	OrderByDate: func(a, b entities.Ship) int {
		return a.ProdDate.Compare(b.ProdDate)
	},
	OrderByRating: func(a, b entities.Ship) int {
		return cmp.Compare(a.Rating, b.Rating)
	},
}

// ParseShipOrder maps a wire name to an order. Empty means OrderByID.
func ParseShipOrder(s string) (ShipOrder, error) {
	if s == "" {
		return OrderByID, nil
	}
	order := ShipOrder(s)
	if _, ok := shipComparators[order]; !ok {
		return "", errors.Malformedf("unknown order %q", s)
	}
	return order, nil
}

// Page is a zero-based page window.
type Page struct {
	Number int
	Size   int
}

func DefaultPage() Page {
	return Page{Number: DefaultPageNumber, Size: DefaultPageSize}
}

// SortShips sorts ascending by order in place. Equal keys fall back to id.
func SortShips(ships []entities.Ship, order ShipOrder) {
	compare, ok := shipComparators[order]
	if !ok {
		compare = shipComparators[OrderByID]
	}
	slices.SortStableFunc(ships, func(a, b entities.Ship) int {
		if c := compare(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// Paginate returns ships[number*size : number*size+size], clipped to the
// slice. A window past the end is empty, not an error.
func Paginate(ships []entities.Ship, page Page) []entities.Ship {
	if page.Size <= 0 || page.Number < 0 || page.Number > len(ships)/page.Size {
		return []entities.Ship{}
	}
	start := page.Number * page.Size
	end := min(start+page.Size, len(ships))
	return slices.Clone(ships[start:end])
}
