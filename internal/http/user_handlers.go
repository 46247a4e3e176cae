package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"geoconnect-backend-go/internal/models"
	"geoconnect-backend-go/internal/store"
)

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	identity := CurrentIdentity(r)
	user, err := s.Store.GetUser(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "User not found")
			return
		}
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

func (s *Server) UpdateMe(w http.ResponseWriter, r *http.Request) {
	identity := CurrentIdentity(r)
	var req models.UpdateUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	user, err := s.Store.UpdateUser(r.Context(), identity.UserID, req)
	if err != nil {
		writeStoreError(w, err, "User not found")
		return
	}
	WriteJSON(w, http.StatusOK, user)
}
