package httpapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"geoconnect-backend-go/internal/models"
	"geoconnect-backend-go/internal/store"
)

func TestMediaContentNotFound(t *testing.T) {
	s := newTestServer(&fakeStore{
		getMediaAsset: func(ctx context.Context, id string) (*models.MediaAsset, error) {
			return nil, store.ErrNotFound
		},
	})

	rec := doRequest(s, http.MethodGet, "/api/media/assets/ghost/content", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Media not found")
}

func TestMediaContentStoreFailure(t *testing.T) {
	s := newTestServer(&fakeStore{
		getMediaAsset: func(ctx context.Context, id string) (*models.MediaAsset, error) {
			return nil, context.DeadlineExceeded
		},
	})

	rec := doRequest(s, http.MethodGet, "/api/media/assets/x/content", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server error")
}

func TestUploadResourceFileRequiresAuth(t *testing.T) {
	s := newTestServer(&fakeStore{})
	rec := doRequest(s, http.MethodPost, "/api/media/uploads/resource", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access token required")
}
