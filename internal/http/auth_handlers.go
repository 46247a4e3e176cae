package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"geoconnect-backend-go/internal/models"
	"geoconnect-backend-go/internal/store"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req models.InsertUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := req.Validate(); err != nil {
		WriteValidationError(w, err)
		return
	}

	if _, err := s.Store.GetUserByEmail(r.Context(), req.Email); err == nil {
		WriteError(w, http.StatusBadRequest, "User already exists")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	hash, err := s.Tokens.HashPassword(req.Password)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	user, err := s.Store.CreateUser(r.Context(), req, hash)
	if err != nil {
		// the unique constraints still win any race the pre-check lost
		if errors.Is(err, store.ErrDuplicate) {
			WriteError(w, http.StatusBadRequest, "User already exists")
			return
		}
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	token, _, err := s.Tokens.CreateAccessToken(user.ID, user.Username)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, AuthResponse{User: user, Token: token})
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	user, err := s.Store.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			WriteError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if !s.Tokens.VerifyPassword(req.Password, user.PasswordHash) {
		WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, _, err := s.Tokens.CreateAccessToken(user.ID, user.Username)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, AuthResponse{User: user, Token: token})
}
