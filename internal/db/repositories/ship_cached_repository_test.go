package repositories

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"space-catalog/shipyard/internal/common"
	"space-catalog/shipyard/internal/config"
	"space-catalog/shipyard/internal/errors"
	"space-catalog/shipyard/internal/metrics"
	"space-catalog/shipyard/internal/models/entities"
)

// countingStore wraps a real repository and counts GetAll calls.
type countingStore struct {
	*ShipRepository
	getAllCalls atomic.Int32
	getAllErr   error
	delay       time.Duration
}

func (c *countingStore) GetAll(ctx context.Context) ([]entities.Ship, error) {
	c.getAllCalls.Add(1)
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
	if c.getAllErr != nil {
		return nil, c.getAllErr
	}
	return c.ShipRepository.GetAll(ctx)
}

// gatedStore reads from a real repository, then parks the first GetAll until
// release is closed. Later calls pass straight through.
type gatedStore struct {
	*ShipRepository
	loads   atomic.Int32
	scanned chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedStore(t *testing.T) *gatedStore {
	t.Helper()
	return &gatedStore{
		ShipRepository: NewShipRepository(newTestDB(t)),
		scanned:        make(chan struct{}),
		release:        make(chan struct{}),
	}
}

func (g *gatedStore) GetAll(ctx context.Context) ([]entities.Ship, error) {
	g.loads.Add(1)
	ships, err := g.ShipRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	g.once.Do(func() { close(g.scanned) })
	<-g.release
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ships, nil
}

func newCachedStore(t *testing.T) (*CachedShipStore, *countingStore, *metrics.MetricsRegistry) {
	t.Helper()
	inner := &countingStore{ShipRepository: NewShipRepository(newTestDB(t))}
	reg := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	cache := common.NewCacheService(time.Minute, time.Minute)
	return NewCachedShipStore(inner, cache, time.Minute, reg), inner, reg
}

func TestCachedShipStore_ServesSnapshot(t *testing.T) {
	store, inner, reg := newCachedStore(t)
	ctx := context.Background()

	ship := testShip("Nostromo", 2990)
	_, err := store.Save(ctx, &ship)
	require.NoError(t, err)

	first, err := store.GetAll(ctx)
	require.NoError(t, err)
	second, err := store.GetAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(1), inner.getAllCalls.Load())
	require.Len(t, second, 1)
	assert.Equal(t, first[0].Name, second[0].Name)
	assert.True(t, first[0].ProdDate.Equal(second[0].ProdDate))

	assert.Equal(t, 1.0, testutil.ToFloat64(reg.CacheMissesTotal.WithLabelValues(ShipSnapshotKey)))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.CacheHitsTotal.WithLabelValues(ShipSnapshotKey)))
}

func TestCachedShipStore_WritesInvalidate(t *testing.T) {
	store, inner, _ := newCachedStore(t)
	ctx := context.Background()

	ship := testShip("Nostromo", 2990)
	saved, err := store.Save(ctx, &ship)
	require.NoError(t, err)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	saved.Name = "Renamed"
	_, err = store.Save(ctx, saved)
	require.NoError(t, err)

	all, err = store.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", all[0].Name)

	require.NoError(t, store.DeleteByID(ctx, saved.ID))

	all, err = store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.NotNil(t, all)
	assert.Equal(t, int32(3), inner.getAllCalls.Load())
}

func TestCachedShipStore_ResultsAreIndependent(t *testing.T) {
	store, _, _ := newCachedStore(t)
	ctx := context.Background()

	ship := testShip("Nostromo", 2990)
	_, err := store.Save(ctx, &ship)
	require.NoError(t, err)

	first, err := store.GetAll(ctx)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Nostromo", second[0].Name)
}

func TestCachedShipStore_ErrorsAreNotCached(t *testing.T) {
	store, inner, _ := newCachedStore(t)
	ctx := context.Background()

	inner.getAllErr = errors.New("database is locked")
	_, err := store.GetAll(ctx)
	require.Error(t, err)

	inner.getAllErr = nil
	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Equal(t, int32(2), inner.getAllCalls.Load())
}

func TestCachedShipStore_CollapsesConcurrentMisses(t *testing.T) {
	store, inner, _ := newCachedStore(t)
	inner.delay = 50 * time.Millisecond

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.GetAll(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Less(t, inner.getAllCalls.Load(), int32(8))
}

func TestCachedShipStore_PassThroughReads(t *testing.T) {
	store, inner, _ := newCachedStore(t)
	ctx := context.Background()

	ship := testShip("Nostromo", 2990)
	saved, err := store.Save(ctx, &ship)
	require.NoError(t, err)

	got, err := store.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nostromo", got.Name)

	ok, err := store.ExistsByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, inner.getAllCalls.Load())
}

func TestCachedShipStore_WriteDuringReloadIsNotLost(t *testing.T) {
	inner := newGatedStore(t)
	store := NewCachedShipStore(inner, common.NewCacheService(time.Minute, time.Minute), time.Minute, nil)
	ctx := context.Background()

	done := make(chan []entities.Ship, 1)
	go func() {
		ships, err := store.GetAll(ctx)
		assert.NoError(t, err)
		done <- ships
	}()
	<-inner.scanned

	ship := testShip("Nostromo", 2990)
	_, err := store.Save(ctx, &ship)
	require.NoError(t, err)

	close(inner.release)
	assert.Empty(t, <-done)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Nostromo", all[0].Name)
	assert.Equal(t, int32(2), inner.loads.Load())
}

func TestCachedShipStore_LeaderCancellationDoesNotFailFollowers(t *testing.T) {
	inner := newGatedStore(t)
	store := NewCachedShipStore(inner, common.NewCacheService(time.Minute, time.Minute), time.Minute, nil)

	ship := testShip("Nostromo", 2990)
	_, err := inner.Save(context.Background(), &ship)
	require.NoError(t, err)

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := store.GetAll(leaderCtx)
		leaderErr <- err
	}()
	<-inner.scanned

	follower := make(chan []entities.Ship, 1)
	go func() {
		ships, err := store.GetAll(context.Background())
		assert.NoError(t, err)
		follower <- ships
	}()
	// Give the follower time to join the in-flight load.
	time.Sleep(50 * time.Millisecond)

	cancel()
	close(inner.release)

	assert.Len(t, <-follower, 1)
	assert.NoError(t, <-leaderErr)
	assert.Equal(t, int32(1), inner.loads.Load())
}

func TestCachedShipStore_RedisBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := common.NewRedisCacheService(common.NewRedisClient(config.RedisConfig{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = cache.Close() })

	inner := &countingStore{ShipRepository: NewShipRepository(newTestDB(t))}
	store := NewCachedShipStore(inner, cache, time.Minute, nil)
	ctx := context.Background()

	ship := testShip("Nostromo", 2990)
	saved, err := store.Save(ctx, &ship)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		all, err := store.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	}
	assert.Equal(t, int32(1), inner.getAllCalls.Load())
	assert.True(t, mr.Exists(store.snapshotKey()))

	require.NoError(t, store.DeleteByID(ctx, saved.ID))
	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
