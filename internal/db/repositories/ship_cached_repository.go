package repositories

import (
	"context"
	"encoding/json"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"space-catalog/shipyard/internal/common"
	"space-catalog/shipyard/internal/constants"
	"space-catalog/shipyard/internal/errors"
	"space-catalog/shipyard/internal/logging"
	"space-catalog/shipyard/internal/metrics"
	"space-catalog/shipyard/internal/models/entities"
)

// ShipSnapshotKey prefixes the cache keys holding the JSON encoding of the
// full ship set. It is also the cache_key label on hit and miss counters.
const ShipSnapshotKey = string(constants.CachePrefixShips) + "all"

// snapshotLoadTimeout bounds a shared reload once it is detached from the
// caller that started it.
const snapshotLoadTimeout = 30 * time.Second

type shipStore interface {
	GetAll(ctx context.Context) ([]entities.Ship, error)
	GetByID(ctx context.Context, id int64) (*entities.Ship, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, ship *entities.Ship) (*entities.Ship, error)
	DeleteByID(ctx context.Context, id int64) error
}

// CachedShipStore serves GetAll from a cached snapshot of the inner store.
// Writes go straight through and advance the snapshot generation, so a reload
// that started before a write can never be served after it.
type CachedShipStore struct {
	inner      shipStore
	cache      common.CacheInterface
	ttl        time.Duration
	metrics    *metrics.MetricsRegistry
	group      singleflight.Group
	generation atomic.Uint64
}

// NewCachedShipStore wraps inner. metricsReg may be nil.
func NewCachedShipStore(inner shipStore, cache common.CacheInterface, ttl time.Duration, metricsReg *metrics.MetricsRegistry) *CachedShipStore {
	c := &CachedShipStore{
		inner:   inner,
		cache:   cache,
		ttl:     ttl,
		metrics: metricsReg,
	}
	// Seeded from the clock so a restarted process never reads keys left in a
	// shared cache by its predecessor.
	c.generation.Store(uint64(time.Now().UnixNano()))
	return c
}

func (c *CachedShipStore) GetAll(ctx context.Context) ([]entities.Ship, error) {
	key := c.snapshotKey()
	if data, ok := c.cache.Get(key); ok {
		ships, err := decodeShips(data)
		if err == nil {
			c.record(true)
			return ships, nil
		}
		logging.Warn("Discarding unreadable ship snapshot", "error", err.Error())
		c.cache.Delete(key)
	}
	c.record(false)

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Followers share this load, so one caller's cancellation must not fail it.
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), snapshotLoadTimeout)
		defer cancel()

		return c.cache.GetOrSet(key, c.ttl, func() ([]byte, error) {
			ships, err := c.inner.GetAll(loadCtx)
			if err != nil {
				return nil, err
			}
			data, err := json.Marshal(ships)
			if err != nil {
				return nil, errors.Wrap(err, "failed to encode ship snapshot")
			}
			return data, nil
		})
	})
	if err != nil {
		return nil, err
	}

	// Every caller decodes its own copy of the shared bytes.
	return decodeShips(v.([]byte))
}

func (c *CachedShipStore) GetByID(ctx context.Context, id int64) (*entities.Ship, error) {
	return c.inner.GetByID(ctx, id)
}

func (c *CachedShipStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return c.inner.ExistsByID(ctx, id)
}

func (c *CachedShipStore) Save(ctx context.Context, ship *entities.Ship) (*entities.Ship, error) {
	saved, err := c.inner.Save(ctx, ship)
	c.Invalidate()
	return saved, err
}

func (c *CachedShipStore) DeleteByID(ctx context.Context, id int64) error {
	err := c.inner.DeleteByID(ctx, id)
	c.Invalidate()
	return err
}

// Invalidate moves GetAll to a fresh snapshot key and drops the old one.
// A reload still in flight under the old key may repopulate it, but no
// GetAll issued after Invalidate returns will look there.
func (c *CachedShipStore) Invalidate() {
	old := c.generation.Add(1) - 1
	c.cache.Delete(snapshotKeyFor(old))
}

func (c *CachedShipStore) snapshotKey() string {
	return snapshotKeyFor(c.generation.Load())
}

func snapshotKeyFor(gen uint64) string {
	return ShipSnapshotKey + ":" + strconv.FormatUint(gen, 10)
}

func (c *CachedShipStore) record(hit bool) {
	if c.metrics == nil {
		return
	}
	if hit {
		c.metrics.CacheHitsTotal.WithLabelValues(ShipSnapshotKey).Inc()
	} else {
		c.metrics.CacheMissesTotal.WithLabelValues(ShipSnapshotKey).Inc()
	}
}

func decodeShips(data []byte) ([]entities.Ship, error) {
	var ships []entities.Ship
	if err := json.Unmarshal(data, &ships); err != nil {
		return nil, errors.Wrap(err, "failed to decode ship snapshot")
	}
	if ships == nil {
		ships = []entities.Ship{}
	}
	return ships, nil
}
