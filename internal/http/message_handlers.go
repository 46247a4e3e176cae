package httpapi

import (
	"encoding/json"
	"net/http"

	"geoconnect-backend-go/internal/models"
)

func (s *Server) Messages(w http.ResponseWriter, r *http.Request) {
	identity := CurrentIdentity(r)
	messages, err := s.Store.GetMessages(r.Context(), identity.UserID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, messages)
}

func (s *Server) CreateMessage(w http.ResponseWriter, r *http.Request) {
	identity := CurrentIdentity(r)
	var req models.InsertMessage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	req.SenderID = identity.UserID
	if err := req.Validate(); err != nil {
		WriteValidationError(w, err)
		return
	}
	message, err := s.Store.CreateMessage(r.Context(), req)
	if err != nil {
		writeStoreError(w, err, "Receiver not found")
		return
	}
	WriteJSON(w, http.StatusOK, message)
}

func (s *Server) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "messageId")
	if !ok {
		WriteError(w, http.StatusNotFound, "Message not found")
		return
	}
	if err := s.Store.MarkMessageAsRead(r.Context(), id); err != nil {
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Message marked as read"})
}
