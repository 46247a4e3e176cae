package httpapi

import (
	"net/http"

	"github.com/gorilla/websocket"

	"geoconnect-backend-go/internal/models"
)

type MetricsHistoryResponse struct {
	Items []models.MetricSample `json:"items"`
}

func (s *Server) MetricsHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 120)
	if limit > 500 {
		limit = 500
	}
	items, err := s.Store.LatestMetricSamples(r.Context(), limit)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, MetricsHistoryResponse{Items: items})
}

// MetricsSocket streams live samples. Browsers cannot set the Authorization
// header on websocket upgrades, so the token rides in the query string.
func (s *Server) MetricsSocket(w http.ResponseWriter, r *http.Request) {
	if _, err := s.Tokens.Authenticate(r.URL.Query().Get("token")); err != nil {
		if !mapServiceError(w, err) {
			WriteError(w, http.StatusForbidden, "Invalid token")
		}
		return
	}
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.MetricsHub.Add(conn)
	defer func() {
		s.MetricsHub.Remove(conn)
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
