package services

import (
	"context"
	"slices"
	"time"

	"space-catalog/shipyard/internal/errors"
	"space-catalog/shipyard/internal/logging"
	"space-catalog/shipyard/internal/metrics"
	"space-catalog/shipyard/internal/models/dtos"
	"space-catalog/shipyard/internal/models/entities"
)

// ShipStore is the persistence collaborator. GetByID returns nil, nil when
// the id is absent. Save assigns an id when ship.ID is zero.
type ShipStore interface {
	GetAll(ctx context.Context) ([]entities.Ship, error)
	GetByID(ctx context.Context, id int64) (*entities.Ship, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, ship *entities.Ship) (*entities.Ship, error)
	DeleteByID(ctx context.Context, id int64) error
}

// ShipQuery is a filtered, ordered, paged listing request.
type ShipQuery struct {
	Filter ShipFilter
	Order  ShipOrder
	Page   Page
}

type ShipService struct {
	store   ShipStore
	metrics *metrics.MetricsRegistry
}

// NewShipService wires the store. metricsReg may be nil.
func NewShipService(store ShipStore, metricsReg *metrics.MetricsRegistry) *ShipService {
	return &ShipService{
		store:   store,
		metrics: metricsReg,
	}
}

// ListShips filters the full ship set, sorts it and cuts one page.
func (s *ShipService) ListShips(ctx context.Context, q ShipQuery) ([]entities.Ship, error) {
	ships, err := s.filtered(ctx, q.Filter)
	if err != nil {
		s.observe("list", err)
		return nil, err
	}

	sorted := slices.Clone(ships)
	SortShips(sorted, q.Order)
	page := Paginate(sorted, q.Page)

	if s.metrics != nil {
		s.metrics.QueryResultSize.Observe(float64(len(ships)))
	}
	s.observe("list", nil)
	return page, nil
}

// CountShips returns the size of the filtered set.
func (s *ShipService) CountShips(ctx context.Context, f ShipFilter) (int, error) {
	ships, err := s.filtered(ctx, f)
	s.observe("count", err)
	if err != nil {
		return 0, err
	}
	return len(ships), nil
}

func (s *ShipService) filtered(ctx context.Context, f ShipFilter) ([]entities.Ship, error) {
	all, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load ships")
	}
	return f.Apply(all), nil
}

func (s *ShipService) GetShip(ctx context.Context, id int64) (*entities.Ship, error) {
	ship, err := s.getShip(ctx, id)
	s.observe("get", err)
	return ship, err
}

func (s *ShipService) getShip(ctx context.Context, id int64) (*entities.Ship, error) {
	if id < 1 {
		return nil, errors.Malformedf("ship id %d must be positive", id)
	}

	ship, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "load ship %d", id)
	}
	if ship == nil {
		return nil, errors.NotFoundf("ship %d", id)
	}
	return ship, nil
}

// CreateShip validates a complete candidate, derives rating and persists it.
func (s *ShipService) CreateShip(ctx context.Context, req dtos.ShipRequest) (*entities.Ship, error) {
	var ship entities.Ship
	if err := applyShipRequest(&ship, req, true); err != nil {
		logging.Debug("Ship create rejected", "error", err.Error())
		s.observe("create", err)
		return nil, err
	}
	ship.Rating = CalculateRating(ship.Speed, ship.IsUsed, ship.ProdDate)

	saved, err := s.store.Save(ctx, &ship)
	if err != nil {
		err = errors.Wrap(err, "save ship")
		s.observe("create", err)
		return nil, err
	}

	logging.Info("Ship created", "ship_id", saved.ID, "rating", saved.Rating)
	s.observe("create", nil)
	return saved, nil
}

// UpdateShip applies the supplied fields to a copy of the stored ship. The
// store is written only when every supplied field passes validation.
func (s *ShipService) UpdateShip(ctx context.Context, id int64, req dtos.ShipRequest) (*entities.Ship, error) {
	existing, err := s.getShip(ctx, id)
	if err != nil {
		s.observe("update", err)
		return nil, err
	}

	working := *existing
	if err := applyShipRequest(&working, req, false); err != nil {
		logging.Debug("Ship update rejected", "ship_id", id, "error", err.Error())
		s.observe("update", err)
		return nil, err
	}
	working.ID = existing.ID
	working.Rating = CalculateRating(working.Speed, working.IsUsed, working.ProdDate)

	saved, err := s.store.Save(ctx, &working)
	if err != nil {
		err = errors.Wrapf(err, "save ship %d", id)
		s.observe("update", err)
		return nil, err
	}

	logging.Info("Ship updated", "ship_id", saved.ID, "rating", saved.Rating)
	s.observe("update", nil)
	return saved, nil
}

func (s *ShipService) DeleteShip(ctx context.Context, id int64) error {
	err := s.deleteShip(ctx, id)
	s.observe("delete", err)
	return err
}

func (s *ShipService) deleteShip(ctx context.Context, id int64) error {
	if id < 1 {
		return errors.Malformedf("ship id %d must be positive", id)
	}

	exists, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "check ship %d", id)
	}
	if !exists {
		return errors.NotFoundf("ship %d", id)
	}

	if err := s.store.DeleteByID(ctx, id); err != nil {
		return errors.Wrapf(err, "delete ship %d", id)
	}

	logging.Info("Ship deleted", "ship_id", id)
	return nil
}

// applyShipRequest validates each supplied field and writes it to target.
// With requireAll, every field except isUsed must be supplied; an absent
// isUsed leaves target.IsUsed as is (false for a fresh ship).
// target may be partially written when an error is returned.
func applyShipRequest(target *entities.Ship, req dtos.ShipRequest, requireAll bool) error {
	if requireAll {
		missing := missingFields(req)
		if len(missing) > 0 {
			return errors.Malformedf("missing required fields %v", missing)
		}
	}

	if req.Name != nil {
		if err := ValidateText("name", *req.Name); err != nil {
			return err
		}
		target.Name = *req.Name
	}
	if req.Planet != nil {
		if err := ValidateText("planet", *req.Planet); err != nil {
			return err
		}
		target.Planet = *req.Planet
	}
	if req.ShipType != nil {
		target.ShipType = *req.ShipType
	}
	if req.ProdDate != nil {
		prodDate := time.UnixMilli(*req.ProdDate).UTC()
		if err := ValidateProdDate(prodDate); err != nil {
			return err
		}
		target.ProdDate = prodDate
	}
	if req.IsUsed != nil {
		target.IsUsed = *req.IsUsed
	}
	if req.Speed != nil {
		speed, err := ValidateSpeed(*req.Speed)
		if err != nil {
			return err
		}
		target.Speed = speed
	}
	if req.CrewSize != nil {
		if err := ValidateCrewSize(*req.CrewSize); err != nil {
			return err
		}
		target.CrewSize = *req.CrewSize
	}
	return nil
}

func missingFields(req dtos.ShipRequest) []string {
	var missing []string
	if req.Name == nil {
		missing = append(missing, "name")
	}
	if req.Planet == nil {
		missing = append(missing, "planet")
	}
	if req.ShipType == nil {
		missing = append(missing, "shipType")
	}
	if req.ProdDate == nil {
		missing = append(missing, "prodDate")
	}
	if req.Speed == nil {
		missing = append(missing, "speed")
	}
	if req.CrewSize == nil {
		missing = append(missing, "crewSize")
	}
	return missing
}

func (s *ShipService) observe(operation string, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.ShipOperationsTotal.WithLabelValues(operation, Outcome(err)).Inc()
}

// Outcome classifies err into a metrics label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errors.ErrMalformedInput):
		return "malformed_input"
	case errors.Is(err, errors.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
