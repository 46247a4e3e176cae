package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"geoconnect-backend-go/internal/models"
)

func (s *Server) Resources(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	resources, err := s.Store.GetResources(r.Context(), category)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, resources)
}

func (s *Server) Resource(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "resourceId")
	if !ok {
		WriteError(w, http.StatusNotFound, "Resource not found")
		return
	}
	resource, err := s.Store.GetResource(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "Resource not found")
		return
	}
	WriteJSON(w, http.StatusOK, resource)
}

func (s *Server) CreateResource(w http.ResponseWriter, r *http.Request) {
	identity := CurrentIdentity(r)
	var req models.InsertResource
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	req.UploadedByID = identity.UserID
	if err := req.Validate(); err != nil {
		WriteValidationError(w, err)
		return
	}
	resource, err := s.Store.CreateResource(r.Context(), req)
	if err != nil {
		writeStoreError(w, err, "User not found")
		return
	}
	WriteJSON(w, http.StatusOK, resource)
}

func (s *Server) DownloadResource(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "resourceId")
	if !ok {
		WriteError(w, http.StatusNotFound, "Resource not found")
		return
	}
	if err := s.Store.IncrementDownloadCount(r.Context(), id); err != nil {
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Download count incremented"})
}

// DeleteResource is owner-only: the ownership predicate lives here, not in
// the gateway.
func (s *Server) DeleteResource(w http.ResponseWriter, r *http.Request) {
	identity := CurrentIdentity(r)
	id, ok := pathID(r, "resourceId")
	if !ok {
		WriteError(w, http.StatusNotFound, "Resource not found")
		return
	}
	resource, err := s.Store.GetResource(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "Resource not found")
		return
	}
	if resource.UploadedByID != identity.UserID {
		WriteError(w, http.StatusForbidden, "Not authorized to delete this resource")
		return
	}
	if err := s.Store.DeleteResource(r.Context(), id); err != nil {
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
