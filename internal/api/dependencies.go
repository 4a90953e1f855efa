package api

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"space-catalog/shipyard/internal/auth"
	"space-catalog/shipyard/internal/common"
	"space-catalog/shipyard/internal/config"
	"space-catalog/shipyard/internal/db/repositories"
	"space-catalog/shipyard/internal/logging"
	"space-catalog/shipyard/internal/metrics"
	"space-catalog/shipyard/internal/services"
)

const cacheCleanupInterval = 10 * time.Minute

type Repositories struct {
	Ships *repositories.ShipRepository
	Stats *repositories.ShipStatsRepo
}

type Services struct {
	// Cache is nil when cache.backend is "none".
	Cache common.CacheInterface
	Ships *services.ShipService
	// Tokens is nil when write auth is disabled.
	Tokens *auth.TokenService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
	Gatherer prometheus.Gatherer
}

// InitDependencies wires repositories, the snapshot cache and the ship service.
func InitDependencies(cfg *config.Config, gormDB *gorm.DB, sqlxDB *sqlx.DB, reg *prometheus.Registry) (*Dependencies, error) {
	metricsReg := metrics.NewMetricsRegistry(reg)

	repos := &Repositories{
		Ships: repositories.NewShipRepository(gormDB),
		Stats: repositories.NewShipStatsRepo(sqlxDB),
	}

	cache := newCache(cfg)

	var store services.ShipStore = repos.Ships
	if cache != nil {
		store = repositories.NewCachedShipStore(repos.Ships, cache, cfg.Cache.TTL, metricsReg)
	}

	svcs := &Services{
		Cache: cache,
		Ships: services.NewShipService(store, metricsReg),
	}
	if cfg.Auth.JWTSecret != "" {
		svcs.Tokens = auth.NewTokenService(cfg.Auth.JWTSecret)
		logging.Info("Write routes require a bearer token")
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
		Gatherer: reg,
	}, nil
}

func newCache(cfg *config.Config) common.CacheInterface {
	switch cfg.Cache.Backend {
	case config.CacheRedis:
		logging.Info("Using Redis snapshot cache", "addr", cfg.Redis.Addr, "ttl", cfg.Cache.TTL.String())
		return common.NewRedisCacheService(common.NewRedisClient(cfg.Redis))
	case config.CacheMemory:
		logging.Info("Using in-memory snapshot cache", "ttl", cfg.Cache.TTL.String())
		return common.NewCacheService(cfg.Cache.TTL, cacheCleanupInterval)
	default:
		logging.Info("Snapshot cache disabled")
		return nil
	}
}

// Close releases the cache connection, if any.
func (d *Dependencies) Close() error {
	if d.Services.Cache != nil {
		return d.Services.Cache.Close()
	}
	return nil
}
