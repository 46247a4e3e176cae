package httpapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"geoconnect-backend-go/internal/models"
	"geoconnect-backend-go/internal/store"
)

func TestJobsLimit(t *testing.T) {
	var gotLimit int
	s := newTestServer(&fakeStore{
		getJobs: func(ctx context.Context, limit int) ([]models.JobDetail, error) {
			gotLimit = limit
			return []models.JobDetail{}, nil
		},
	})

	rec := doRequest(s, http.MethodGet, "/api/jobs/?limit=5", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, gotLimit)

	rec = doRequest(s, http.MethodGet, "/api/jobs/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, gotLimit)
}

func TestJobNotFound(t *testing.T) {
	s := newTestServer(&fakeStore{
		getJob: func(ctx context.Context, id int64) (*models.JobDetail, error) {
			return nil, store.ErrNotFound
		},
	})

	rec := doRequest(s, http.MethodGet, "/api/jobs/42", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Job not found")
}

func TestCreateJobInjectsPoster(t *testing.T) {
	var got models.InsertJob
	s := newTestServer(&fakeStore{
		createJob: func(ctx context.Context, in models.InsertJob) (*models.Job, error) {
			got = in
			return &models.Job{ID: 1, Title: in.Title, PostedByID: in.PostedByID}, nil
		},
	})

	body := `{"title":"Field Geologist","company":"TerraCore","location":"Denver, CO","type":"full-time","description":"Mapping","contactEmail":"jobs@terracore.example","requirements":["BSc Geology"],"postedById":999}`
	rec := doRequest(s, http.MethodPost, "/api/jobs/", body, bearerFor(t, s, 3, "recruiter"))
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, int64(3), got.PostedByID)
	assert.Equal(t, models.StringList{"BSc Geology"}, got.Requirements)
}
