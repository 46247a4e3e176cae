package httpapi

import (
	"net/http"

	"geoconnect-backend-go/internal/models"
	"geoconnect-backend-go/internal/services"
)

type SearchResponse struct {
	Items []models.SearchResult `json:"items"`
}

func (s *Server) SearchContent(w http.ResponseWriter, r *http.Request) {
	term := services.CleanSearchTerm(r.URL.Query().Get("q"))
	if term == "" {
		WriteJSON(w, http.StatusOK, SearchResponse{Items: []models.SearchResult{}})
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	items, err := s.Store.Search(r.Context(), term, limit)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, SearchResponse{Items: items})
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Ping(r.Context()); err != nil {
		WriteError(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
