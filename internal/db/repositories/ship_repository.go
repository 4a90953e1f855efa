package repositories

import (
	"context"

	"gorm.io/gorm"

	"space-catalog/shipyard/internal/errors"
	"space-catalog/shipyard/internal/models/entities"
	gormModels "space-catalog/shipyard/internal/models/gorm"
)

// ShipRepository handles ships table operations using GORM
type ShipRepository struct {
	db *gorm.DB
}

// NewShipRepository creates a new GORM-based ship repository
func NewShipRepository(db *gorm.DB) *ShipRepository {
	return &ShipRepository{db: db}
}

// GetAll returns every ship ordered by id
func (r *ShipRepository) GetAll(ctx context.Context) ([]entities.Ship, error) {
	var rows []gormModels.Ship

	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch ships")
	}

	ships := make([]entities.Ship, 0, len(rows))
	for _, row := range rows {
		ships = append(ships, row.ToEntity())
	}
	return ships, nil
}

// GetByID retrieves a ship by id, nil when absent
func (r *ShipRepository) GetByID(ctx context.Context, id int64) (*entities.Ship, error) {
	var row gormModels.Ship

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to fetch ship %d", id)
	}

	ship := row.ToEntity()
	return &ship, nil
}

func (r *ShipRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.Ship{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrapf(err, "failed to check ship %d", id)
	}
	return count > 0, nil
}

// Save inserts when ship.ID is zero and overwrites every column otherwise
func (r *ShipRepository) Save(ctx context.Context, ship *entities.Ship) (*entities.Ship, error) {
	row := gormModels.ShipFromEntity(*ship)

	tx := r.db.WithContext(ctx)
	var err error
	if row.ID == 0 {
		err = tx.Create(&row).Error
	} else {
		err = tx.Save(&row).Error
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to save ship")
	}

	saved := row.ToEntity()
	return &saved, nil
}

func (r *ShipRepository) DeleteByID(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).
		Delete(&gormModels.Ship{}, id).Error
	if err != nil {
		return errors.Wrapf(err, "failed to delete ship %d", id)
	}
	return nil
}
