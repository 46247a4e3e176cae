package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"geoconnect-backend-go/internal/models"
	"geoconnect-backend-go/internal/store"
)

func (s *Server) Events(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 0)
	events, err := s.Store.GetEvents(r.Context(), limit)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, events)
}

func (s *Server) Event(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "eventId")
	if !ok {
		WriteError(w, http.StatusNotFound, "Event not found")
		return
	}
	event, err := s.Store.GetEvent(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "Event not found")
		return
	}
	WriteJSON(w, http.StatusOK, event)
}

func (s *Server) CreateEvent(w http.ResponseWriter, r *http.Request) {
	identity := CurrentIdentity(r)
	var req models.InsertEvent
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	req.OrganizerID = identity.UserID
	if err := req.Validate(); err != nil {
		WriteValidationError(w, err)
		return
	}
	event, err := s.Store.CreateEvent(r.Context(), req)
	if err != nil {
		writeStoreError(w, err, "User not found")
		return
	}
	WriteJSON(w, http.StatusOK, event)
}

func (s *Server) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	identity := CurrentIdentity(r)
	eventID, ok := pathID(r, "eventId")
	if !ok {
		WriteError(w, http.StatusNotFound, "Event not found")
		return
	}
	registered, err := s.Store.IsUserRegisteredForEvent(r.Context(), eventID, identity.UserID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if registered {
		WriteError(w, http.StatusBadRequest, "Already registered for this event")
		return
	}
	registration, err := s.Store.RegisterForEvent(r.Context(), models.InsertEventRegistration{
		EventID: eventID,
		UserID:  identity.UserID,
	})
	if err != nil {
		// two racing requests can both pass the pre-check; the unique
		// constraint decides
		if errors.Is(err, store.ErrDuplicate) {
			WriteError(w, http.StatusBadRequest, "Already registered for this event")
			return
		}
		writeStoreError(w, err, "Event not found")
		return
	}
	WriteJSON(w, http.StatusOK, registration)
}
