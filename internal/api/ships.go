package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"space-catalog/shipyard/internal/errors"
	"space-catalog/shipyard/internal/models/dtos"
	"space-catalog/shipyard/internal/models/dtos/responses"
	"space-catalog/shipyard/internal/models/entities"
	"space-catalog/shipyard/internal/services"
)

// maxShipBodyBytes bounds create and update bodies.
const maxShipBodyBytes = 64 << 10

// ShipAPI is the record-operations surface the handlers need.
type ShipAPI interface {
	ListShips(ctx context.Context, q services.ShipQuery) ([]entities.Ship, error)
	CountShips(ctx context.Context, f services.ShipFilter) (int, error)
	GetShip(ctx context.Context, id int64) (*entities.Ship, error)
	CreateShip(ctx context.Context, req dtos.ShipRequest) (*entities.Ship, error)
	UpdateShip(ctx context.Context, id int64, req dtos.ShipRequest) (*entities.Ship, error)
	DeleteShip(ctx context.Context, id int64) error
}

// ListShipsHandler handles GET /rest/ships
func ListShipsHandler(svc ShipAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseShipQuery(r.URL.Query())
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		ships, err := svc.ListShips(r.Context(), q)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &ships)
	}
}

// CountShipsHandler handles GET /rest/ships/count
func CountShipsHandler(svc ShipAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := parseShipFilter(r.URL.Query())
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		count, err := svc.CountShips(r.Context(), f)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &responses.ShipCountResponse{Count: count})
	}
}

// GetShipHandler handles GET /rest/ships/{id}
func GetShipHandler(svc ShipAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := shipIDParam(r)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		ship, err := svc.GetShip(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, ship)
	}
}

// CreateShipHandler handles POST /rest/ships
func CreateShipHandler(svc ShipAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeShipRequest(w, r)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		ship, err := svc.CreateShip(r.Context(), req)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, ship)
	}
}

// UpdateShipHandler handles PUT /rest/ships/{id}
func UpdateShipHandler(svc ShipAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := shipIDParam(r)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		req, err := decodeShipRequest(w, r)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		ship, err := svc.UpdateShip(r.Context(), id, req)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, ship)
	}
}

// DeleteShipHandler handles DELETE /rest/ships/{id}
func DeleteShipHandler(svc ShipAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := shipIDParam(r)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		if err := svc.DeleteShip(r.Context(), id); err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess[any](w, http.StatusOK, nil)
	}
}

func shipIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Malformedf("ship id %q is not an integer", raw)
	}
	return id, nil
}

// decodeShipRequest reads a JSON ship body. An empty body decodes to a
// request with no fields supplied.
func decodeShipRequest(w http.ResponseWriter, r *http.Request) (dtos.ShipRequest, error) {
	var req dtos.ShipRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxShipBodyBytes))
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return dtos.ShipRequest{}, nil
		}
		return dtos.ShipRequest{}, errors.Malformedf("invalid ship body: %v", err)
	}
	if dec.More() {
		return dtos.ShipRequest{}, errors.Malformedf("invalid ship body: trailing data")
	}
	return req, nil
}
