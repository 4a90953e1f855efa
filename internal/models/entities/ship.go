package entities

import (
	"encoding/json"
	"fmt"
	"time"
)

type ShipType string

const (
	ShipTypeTransport  ShipType = "TRANSPORT"
	ShipTypeMilitary   ShipType = "MILITARY"
	ShipTypeMercantile ShipType = "MERCANTILE"
)

// ShipTypes lists every valid ship category.
var ShipTypes = []ShipType{ShipTypeTransport, ShipTypeMilitary, ShipTypeMercantile}

// ParseShipType accepts only the exact enumeration names.
func ParseShipType(s string) (ShipType, error) {
	for _, t := range ShipTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown ship type %q", s)
}

// UnmarshalText rejects values outside the enumeration.
func (t *ShipType) UnmarshalText(b []byte) error {
	parsed, err := ParseShipType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Ship is a catalog record. Rating is always derived from Speed, IsUsed and ProdDate.
type Ship struct {
	ID       int64
	Name     string
	Planet   string
	ShipType ShipType
	ProdDate time.Time
	IsUsed   bool
	Speed    float64
	CrewSize int
	Rating   float64
}

// shipJSON is the wire form; prodDate travels as epoch milliseconds.
type shipJSON struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Planet   string   `json:"planet"`
	ShipType ShipType `json:"shipType"`
	ProdDate int64    `json:"prodDate"`
	IsUsed   bool     `json:"isUsed"`
	Speed    float64  `json:"speed"`
	CrewSize int      `json:"crewSize"`
	Rating   float64  `json:"rating"`
}

func (s Ship) MarshalJSON() ([]byte, error) {
	return json.Marshal(shipJSON{
		ID:       s.ID,
		Name:     s.Name,
		Planet:   s.Planet,
		ShipType: s.ShipType,
		ProdDate: s.ProdDate.UnixMilli(),
		IsUsed:   s.IsUsed,
		Speed:    s.Speed,
		CrewSize: s.CrewSize,
		Rating:   s.Rating,
	})
}

func (s *Ship) UnmarshalJSON(b []byte) error {
	var raw shipJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = Ship{
		ID:       raw.ID,
		Name:     raw.Name,
		Planet:   raw.Planet,
		ShipType: raw.ShipType,
		ProdDate: time.UnixMilli(raw.ProdDate).UTC(),
		IsUsed:   raw.IsUsed,
		Speed:    raw.Speed,
		CrewSize: raw.CrewSize,
		Rating:   raw.Rating,
	}
	return nil
}
