package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"space-catalog/shipyard/internal/errors"
	"space-catalog/shipyard/internal/metrics"
	"space-catalog/shipyard/internal/models/entities"
)

type mockShipStats struct {
	pingErr  error
	count    int64
	countErr error
}

func (m *mockShipStats) Ping(ctx context.Context) error { return m.pingErr }

func (m *mockShipStats) CountShips(ctx context.Context) (int64, error) {
	return m.count, m.countErr
}

func TestHealthCheckHandler_OK(t *testing.T) {
	reg := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	h := HealthCheckHandler(&mockShipStats{count: 12}, reg, time.Now().Add(-time.Minute))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp entities.HealthCheckResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "12 ships stored", resp.Services["database"].Details)
	assert.Equal(t, 12.0, testutil.ToFloat64(reg.ShipsStored))
}

func TestHealthCheckHandler_Down(t *testing.T) {
	cases := map[string]*mockShipStats{
		"ping":  {pingErr: errors.New("dial tcp 10.0.0.5:5432: connection refused")},
		"count": {countErr: errors.New(`pq: relation "ships" does not exist`)},
	}
	for name, stats := range cases {
		t.Run(name, func(t *testing.T) {
			h := HealthCheckHandler(stats, nil, time.Now())

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))
			assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

			var resp entities.HealthCheckResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "down", resp.Status)
			assert.Equal(t, "Database unavailable", resp.Services["database"].Details)
			assert.NotContains(t, rr.Body.String(), "10.0.0.5")
			assert.NotContains(t, rr.Body.String(), "relation")
		})
	}
}
