package httpapi

import (
	"encoding/json"
	"net/http"

	"viralalchemy-backend-go/internal/llm"
)

func (s *Server) GetModelSettings(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Settings.Get())
}

func (s *Server) UpdateModelSettings(w http.ResponseWriter, r *http.Request) {
	var req llm.ModelSettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	updated, err := s.Settings.Update(req)
	if mapServiceError(w, err) {
		return
	}
	WriteJSON(w, http.StatusOK, updated)
}

func (s *Server) ResetModelSettings(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Settings.Reset())
}
