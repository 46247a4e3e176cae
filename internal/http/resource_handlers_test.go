package httpapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"geoconnect-backend-go/internal/models"
	"geoconnect-backend-go/internal/store"
)

func TestResourcesCategoryFilter(t *testing.T) {
	var gotCategory string
	s := newTestServer(&fakeStore{
		getResources: func(ctx context.Context, category string) ([]models.ResourceDetail, error) {
			gotCategory = category
			return []models.ResourceDetail{}, nil
		},
	})

	rec := doRequest(s, http.MethodGet, "/api/resources/?category=maps", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "maps", gotCategory)

	rec = doRequest(s, http.MethodGet, "/api/resources/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", gotCategory)
}

func TestDownloadResource(t *testing.T) {
	var incremented int64
	s := newTestServer(&fakeStore{
		incrementDownload: func(ctx context.Context, id int64) error {
			incremented = id
			return nil
		},
	})

	rec := doRequest(s, http.MethodPost, "/api/resources/7/download", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), incremented)
	assert.Contains(t, rec.Body.String(), "Download count incremented")
}

func TestCreateResourceInjectsUploader(t *testing.T) {
	var got models.InsertResource
	s := newTestServer(&fakeStore{
		createResource: func(ctx context.Context, in models.InsertResource) (*models.Resource, error) {
			got = in
			return &models.Resource{ID: 1, Title: in.Title, Category: in.Category, UploadedByID: in.UploadedByID}, nil
		},
	})

	body := `{"title":"Core log template","category":"templates","uploadedById":999}`
	rec := doRequest(s, http.MethodPost, "/api/resources/", body, bearerFor(t, s, 5, "ana"))
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	// the uploader comes from the token, not the payload
	assert.Equal(t, int64(5), got.UploadedByID)
}

func TestDeleteResourceOwnership(t *testing.T) {
	deleted := false
	st := &fakeStore{
		getResource: func(ctx context.Context, id int64) (*models.ResourceDetail, error) {
			if id != 7 {
				return nil, store.ErrNotFound
			}
			return &models.ResourceDetail{
				Resource: models.Resource{ID: 7, Title: "Core log template", UploadedByID: 5},
			}, nil
		},
		deleteResource: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}
	s := newTestServer(st)

	// someone else's resource
	rec := doRequest(s, http.MethodDelete, "/api/resources/7", "", bearerFor(t, s, 6, "bogdan"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not authorized to delete this resource")
	assert.False(t, deleted)

	// the owner
	rec = doRequest(s, http.MethodDelete, "/api/resources/7", "", bearerFor(t, s, 5, "ana"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, deleted)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	// absent resource
	rec = doRequest(s, http.MethodDelete, "/api/resources/99", "", bearerFor(t, s, 5, "ana"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Resource not found")
}
