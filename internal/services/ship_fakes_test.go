package services

import (
	"context"
	"sort"
	"time"

	"space-catalog/shipyard/internal/models/dtos"
	"space-catalog/shipyard/internal/models/entities"
)

// fakeShipStore is an in-memory ShipStore. Err fields force failures.
type fakeShipStore struct {
	ships  map[int64]entities.Ship
	nextID int64
	saves  int

	getAllErr error
	saveErr   error
}

func newFakeShipStore(ships ...entities.Ship) *fakeShipStore {
	store := &fakeShipStore{ships: make(map[int64]entities.Ship), nextID: 1}
	for _, s := range ships {
		if s.ID >= store.nextID {
			store.nextID = s.ID + 1
		}
		store.ships[s.ID] = s
	}
	return store
}

func (f *fakeShipStore) GetAll(ctx context.Context) ([]entities.Ship, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	all := make([]entities.Ship, 0, len(f.ships))
	for _, s := range f.ships {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (f *fakeShipStore) GetByID(ctx context.Context, id int64) (*entities.Ship, error) {
	s, ok := f.ships[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeShipStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := f.ships[id]
	return ok, nil
}

func (f *fakeShipStore) Save(ctx context.Context, ship *entities.Ship) (*entities.Ship, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saves++
	saved := *ship
	if saved.ID == 0 {
		saved.ID = f.nextID
		f.nextID++
	}
	f.ships[saved.ID] = saved
	return &saved, nil
}

func (f *fakeShipStore) DeleteByID(ctx context.Context, id int64) error {
	delete(f.ships, id)
	return nil
}

func ptr[T any](v T) *T {
	return &v
}

func yearDate(year int) time.Time {
	return time.Date(year, time.June, 15, 0, 0, 0, 0, time.UTC)
}

func validRequest() dtos.ShipRequest {
	return dtos.ShipRequest{
		Name:     ptr("Orion"),
		Planet:   ptr("Mars"),
		ShipType: ptr(entities.ShipTypeTransport),
		ProdDate: ptr(yearDate(3000).UnixMilli()),
		Speed:    ptr(0.5),
		CrewSize: ptr(100),
	}
}

// sampleFleet is a small catalog with ratings already derived.
func sampleFleet() []entities.Ship {
	fleet := []entities.Ship{
		{ID: 1, Name: "Orion", Planet: "Mars", ShipType: entities.ShipTypeTransport, ProdDate: yearDate(3000), IsUsed: true, Speed: 0.5, CrewSize: 100},
		{ID: 2, Name: "Orion II", Planet: "Earth", ShipType: entities.ShipTypeMilitary, ProdDate: yearDate(2900), IsUsed: false, Speed: 0.9, CrewSize: 5000},
		{ID: 3, Name: "Daedalus", Planet: "Jupiter", ShipType: entities.ShipTypeMercantile, ProdDate: yearDate(3019), IsUsed: false, Speed: 0.2, CrewSize: 1},
		{ID: 4, Name: "Eagle", Planet: "Mars", ShipType: entities.ShipTypeMilitary, ProdDate: yearDate(2850), IsUsed: true, Speed: 0.75, CrewSize: 9999},
		{ID: 5, Name: "eagle", Planet: "Venus", ShipType: entities.ShipTypeTransport, ProdDate: yearDate(3010), IsUsed: false, Speed: 0.01, CrewSize: 42},
	}
	for i := range fleet {
		fleet[i].Rating = CalculateRating(fleet[i].Speed, fleet[i].IsUsed, fleet[i].ProdDate)
	}
	return fleet
}

func ids(ships []entities.Ship) []int64 {
	out := make([]int64, len(ships))
	for i, s := range ships {
		out[i] = s.ID
	}
	return out
}
