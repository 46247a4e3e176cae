package httpapi

import (
	"encoding/json"
	"net/http"

	"geoconnect-backend-go/internal/models"
)

func (s *Server) Jobs(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 0)
	jobs, err := s.Store.GetJobs(r.Context(), limit)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, jobs)
}

func (s *Server) Job(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "jobId")
	if !ok {
		WriteError(w, http.StatusNotFound, "Job not found")
		return
	}
	job, err := s.Store.GetJob(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "Job not found")
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

func (s *Server) CreateJob(w http.ResponseWriter, r *http.Request) {
	identity := CurrentIdentity(r)
	var req models.InsertJob
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	req.PostedByID = identity.UserID
	if err := req.Validate(); err != nil {
		WriteValidationError(w, err)
		return
	}
	job, err := s.Store.CreateJob(r.Context(), req)
	if err != nil {
		writeStoreError(w, err, "User not found")
		return
	}
	WriteJSON(w, http.StatusOK, job)
}
