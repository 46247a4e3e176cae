package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"geoconnect-backend-go/internal/services"
	"geoconnect-backend-go/internal/store"
)

func parseInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// pathID extracts a positive integer id from a route parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// writeStoreError translates gateway errors to the response taxonomy.
// notFoundMsg is used for ErrNotFound; everything unclassified is a 500.
func writeStoreError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		WriteError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, store.ErrDuplicate):
		WriteError(w, http.StatusBadRequest, "Already exists")
	case errors.Is(err, store.ErrForeignKey):
		WriteError(w, http.StatusBadRequest, "Referenced record does not exist")
	default:
		WriteError(w, http.StatusInternalServerError, "Server error")
	}
}

func mapServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	var serr services.ServiceError
	if errors.As(err, &serr) {
		WriteError(w, serr.Status, serr.Message)
		return true
	}
	return false
}
