package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"space-catalog/shipyard/internal/common"
	"space-catalog/shipyard/internal/logging"
	"space-catalog/shipyard/internal/metrics"
	"space-catalog/shipyard/internal/models/entities"
)

// ShipStats is the raw-SQL view of the store used by the health check.
type ShipStats interface {
	Ping(ctx context.Context) error
	CountShips(ctx context.Context) (int64, error)
}

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(stats ShipStats, metricsReg *metrics.MetricsRegistry, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		services := make(map[string]entities.ServiceStatus)

		dbStatus := "ok"
		dbDetails := "Database connected"
		if err := stats.Ping(ctx); err != nil {
			logging.Error("Health check: database ping failed", "error", err.Error())
			dbStatus = "down"
			dbDetails = "Database unavailable"
		} else if count, err := stats.CountShips(ctx); err != nil {
			logging.Error("Health check: ship count failed", "error", err.Error())
			dbStatus = "down"
			dbDetails = "Database unavailable"
		} else {
			dbDetails = strconv.FormatInt(count, 10) + " ships stored"
			if metricsReg != nil {
				metricsReg.ShipsStored.Set(float64(count))
			}
		}
		services["database"] = entities.ServiceStatus{
			Status:  dbStatus,
			Details: dbDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		code := http.StatusOK
		if overallStatus != "ok" {
			code = http.StatusServiceUnavailable
		}

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			UpSince:  upSince.UTC(),
			Uptime:   time.Since(upSince).Round(time.Second).String(),
		}
		common.WriteJSON(w, code, resp)
	}
}
