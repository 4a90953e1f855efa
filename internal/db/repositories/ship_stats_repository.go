package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"space-catalog/shipyard/internal/constants"
	"space-catalog/shipyard/internal/errors"
)

// ShipStatsRepo runs raw aggregate queries that bypass the ORM and the cache.
type ShipStatsRepo struct {
	db *sqlx.DB
}

func NewShipStatsRepo(db *sqlx.DB) *ShipStatsRepo {
	return &ShipStatsRepo{db}
}

func (r *ShipStatsRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *ShipStatsRepo) CountShips(ctx context.Context) (int64, error) {
	var count int64

	if err := r.db.GetContext(ctx, &count, constants.CountShips); err != nil {
		return 0, errors.Wrap(err, "failed to count ships")
	}
	return count, nil
}
