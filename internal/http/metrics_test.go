package httpapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"geoconnect-backend-go/internal/models"
)

func TestMetricsHistory(t *testing.T) {
	var gotLimit int
	s := newTestServer(&fakeStore{
		latestMetrics: func(ctx context.Context, limit int) ([]models.MetricSample, error) {
			gotLimit = limit
			return []models.MetricSample{}, nil
		},
	})

	rec := doRequest(s, http.MethodGet, "/api/metrics/history", "", bearerFor(t, s, 1, "admin"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 120, gotLimit)

	// the window is capped
	rec = doRequest(s, http.MethodGet, "/api/metrics/history?limit=9999", "", bearerFor(t, s, 1, "admin"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 500, gotLimit)
}
