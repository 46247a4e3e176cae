package httpapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoconnect-backend-go/internal/models"
	"geoconnect-backend-go/internal/store"
)

func TestMe(t *testing.T) {
	s := newTestServer(&fakeStore{
		getUser: func(ctx context.Context, id int64) (*models.User, error) {
			if id != 5 {
				return nil, store.ErrNotFound
			}
			return &models.User{ID: 5, Username: "ana", Email: "ana@example.com", PasswordHash: "hash"}, nil
		},
	})

	rec := doRequest(s, http.MethodGet, "/api/users/me", "", bearerFor(t, s, 5, "ana"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"ana"`)
	assert.NotContains(t, rec.Body.String(), "hash")

	rec = doRequest(s, http.MethodGet, "/api/users/me", "", bearerFor(t, s, 404, "ghost"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

func TestUpdateMe(t *testing.T) {
	var gotID int64
	var gotUpdate models.UpdateUser
	s := newTestServer(&fakeStore{
		updateUser: func(ctx context.Context, id int64, in models.UpdateUser) (*models.User, error) {
			gotID = id
			gotUpdate = in
			return &models.User{ID: id, Username: "ana", FullName: *in.FullName}, nil
		},
	})

	body := `{"fullName":"Ana Maria Pop","skills":["mapping","gis"]}`
	rec := doRequest(s, http.MethodPut, "/api/users/me", body, bearerFor(t, s, 5, "ana"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, int64(5), gotID)
	require.NotNil(t, gotUpdate.FullName)
	assert.Equal(t, "Ana Maria Pop", *gotUpdate.FullName)
	require.NotNil(t, gotUpdate.Skills)
	assert.Equal(t, models.StringList{"mapping", "gis"}, *gotUpdate.Skills)
	assert.Nil(t, gotUpdate.Bio)
}
