package gorm

import (
	"time"

	"space-catalog/shipyard/internal/models/entities"
)

// Ship is the persisted row for a catalog ship
type Ship struct {
	ID       int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name     string    `gorm:"column:name;type:varchar(50);not null"`
	Planet   string    `gorm:"column:planet;type:varchar(50);not null"`
	ShipType string    `gorm:"column:ship_type;type:varchar(16);not null;index"`
	ProdDate time.Time `gorm:"column:prod_date;not null"`
	IsUsed   bool      `gorm:"column:is_used;not null"`
	Speed    float64   `gorm:"column:speed;not null"`
	CrewSize int       `gorm:"column:crew_size;not null"`
	Rating   float64   `gorm:"column:rating;not null"`
}

// TableName specifies the table name for GORM
func (Ship) TableName() string {
	return "ships"
}

func (s Ship) ToEntity() entities.Ship {
	return entities.Ship{
		ID:       s.ID,
		Name:     s.Name,
		Planet:   s.Planet,
		ShipType: entities.ShipType(s.ShipType),
		ProdDate: s.ProdDate.UTC(),
		IsUsed:   s.IsUsed,
		Speed:    s.Speed,
		CrewSize: s.CrewSize,
		Rating:   s.Rating,
	}
}

func ShipFromEntity(e entities.Ship) Ship {
	return Ship{
		ID:       e.ID,
		Name:     e.Name,
		Planet:   e.Planet,
		ShipType: string(e.ShipType),
		ProdDate: e.ProdDate.UTC(),
		IsUsed:   e.IsUsed,
		Speed:    e.Speed,
		CrewSize: e.CrewSize,
		Rating:   e.Rating,
	}
}
