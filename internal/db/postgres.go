package db

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"gorm.io/gorm"

	"space-catalog/shipyard/internal/config"
	"space-catalog/shipyard/internal/errors"
)

const connectAttempts = 10

// InitSQLX returns a sqlx handle for raw queries. Postgres gets its own lib/pq
// connection, retried while the database comes up; sqlite shares the gorm pool.
func InitSQLX(cfg config.DatabaseConfig, gormDB *gorm.DB) (*sqlx.DB, error) {
	if cfg.Driver == config.DriverSQLite {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to access sqlite pool")
		}
		return sqlx.NewDb(sqlDB, "sqlite3"), nil
	}

	dsn := cfg.DataSourceName()

	var (
		db  *sqlx.DB
		err error
	)
	for i := 0; i < connectAttempts; i++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return db, nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return nil, errors.Wrapf(err, "failed to connect to postgres after %d attempts", connectAttempts)
}
