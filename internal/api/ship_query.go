package api

import (
	"net/url"
	"strconv"
	"time"

	"space-catalog/shipyard/internal/errors"
	"space-catalog/shipyard/internal/models/entities"
	"space-catalog/shipyard/internal/services"
)

// Query parameter names accepted by the list and count endpoints.
const (
	paramName        = "name"
	paramPlanet      = "planet"
	paramShipType    = "shipType"
	paramAfter       = "after"
	paramBefore      = "before"
	paramIsUsed      = "isUsed"
	paramMinSpeed    = "minSpeed"
	paramMaxSpeed    = "maxSpeed"
	paramMinCrewSize = "minCrewSize"
	paramMaxCrewSize = "maxCrewSize"
	paramMinRating   = "minRating"
	paramMaxRating   = "maxRating"
	paramOrder       = "order"
	paramPageNumber  = "pageNumber"
	paramPageSize    = "pageSize"
)

// parseShipQuery reads filter, order and page parameters. Empty values count as absent.
func parseShipQuery(values url.Values) (services.ShipQuery, error) {
	filter, err := parseShipFilter(values)
	if err != nil {
		return services.ShipQuery{}, err
	}

	order, err := services.ParseShipOrder(values.Get(paramOrder))
	if err != nil {
		return services.ShipQuery{}, err
	}

	page := services.DefaultPage()
	if n, err := optionalInt(values, paramPageNumber); err != nil {
		return services.ShipQuery{}, err
	} else if n != nil {
		page.Number = *n
	}
	if n, err := optionalInt(values, paramPageSize); err != nil {
		return services.ShipQuery{}, err
	} else if n != nil {
		page.Size = *n
	}
	if page.Number < 0 || page.Size < 0 {
		return services.ShipQuery{}, errors.Malformedf("page parameters must not be negative")
	}

	return services.ShipQuery{Filter: filter, Order: order, Page: page}, nil
}

func parseShipFilter(values url.Values) (services.ShipFilter, error) {
	var (
		f   services.ShipFilter
		err error
	)

	f.Name = optionalString(values, paramName)
	f.Planet = optionalString(values, paramPlanet)

	if raw := values.Get(paramShipType); raw != "" {
		t, perr := entities.ParseShipType(raw)
		if perr != nil {
			return f, errors.Malformedf("%s: %v", paramShipType, perr)
		}
		f.ShipType = &t
	}

	if f.After, err = optionalTime(values, paramAfter); err != nil {
		return f, err
	}
	if f.Before, err = optionalTime(values, paramBefore); err != nil {
		return f, err
	}

	if raw := values.Get(paramIsUsed); raw != "" {
		b, perr := strconv.ParseBool(raw)
		if perr != nil {
			return f, errors.Malformedf("%s: %q is not a boolean", paramIsUsed, raw)
		}
		f.IsUsed = &b
	}

	if f.MinSpeed, err = optionalFloat(values, paramMinSpeed); err != nil {
		return f, err
	}
	if f.MaxSpeed, err = optionalFloat(values, paramMaxSpeed); err != nil {
		return f, err
	}
	if f.MinCrewSize, err = optionalInt(values, paramMinCrewSize); err != nil {
		return f, err
	}
	if f.MaxCrewSize, err = optionalInt(values, paramMaxCrewSize); err != nil {
		return f, err
	}
	if f.MinRating, err = optionalFloat(values, paramMinRating); err != nil {
		return f, err
	}
	if f.MaxRating, err = optionalFloat(values, paramMaxRating); err != nil {
		return f, err
	}
	return f, nil
}

func optionalString(values url.Values, key string) *string {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	return &raw
}

func optionalInt(values url.Values, key string) (*int, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Malformedf("%s: %q is not an integer", key, raw)
	}
	return &n, nil
}

func optionalFloat(values url.Values, key string) (*float64, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Malformedf("%s: %q is not a number", key, raw)
	}
	return &v, nil
}

// optionalTime reads epoch milliseconds.
func optionalTime(values url.Values, key string) (*time.Time, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.Malformedf("%s: %q is not an epoch millisecond timestamp", key, raw)
	}
	t := time.UnixMilli(ms).UTC()
	return &t, nil
}
