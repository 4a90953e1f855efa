package db

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"space-catalog/shipyard/internal/config"
	"space-catalog/shipyard/internal/errors"
	"space-catalog/shipyard/internal/logging"
	gormModels "space-catalog/shipyard/internal/models/gorm"
)

// InitORM opens the gorm connection for the configured driver.
func InitORM(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := cfg.DataSourceName()

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, errors.Newf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", cfg.Driver)
	}

	if cfg.Driver == config.DriverSQLite {
		// sqlite allows one writer; a single connection also keeps :memory: databases shared.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to access sqlite pool")
		}
		sqlDB.SetMaxOpenConns(1)
	}

	logging.Info("Connected to database via GORM", "driver", cfg.Driver)
	return db, nil
}

// Migrate creates or updates the ships table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&gormModels.Ship{}); err != nil {
		return errors.Wrap(err, "failed to migrate ships table")
	}
	logging.Info("Ships table migrated")
	return nil
}
