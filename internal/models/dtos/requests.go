package dtos

import "space-catalog/shipyard/internal/models/entities"

// ShipRequest is the body of create and update calls. A nil field means
// "not supplied": create rejects it, update leaves the stored value alone.
// id and rating are not accepted from callers.
type ShipRequest struct {
	Name     *string            `json:"name"`
	Planet   *string            `json:"planet"`
	ShipType *entities.ShipType `json:"shipType"`
	ProdDate *int64             `json:"prodDate"`
	IsUsed   *bool              `json:"isUsed"`
	Speed    *float64           `json:"speed"`
	CrewSize *int               `json:"crewSize"`
}
