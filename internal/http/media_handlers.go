package httpapi

import (
	"encoding/json"
	"net/http"

	"viralalchemy-backend-go/internal/models"
	"viralalchemy-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type GenerateMediaRequest struct {
	Type models.MediaType `json:"type"`
}

// GenerateMedia kicks off a background derivation for the asset. The client
// gets 202 immediately and learns about completion over the events socket or
// by re-reading the asset.
func (s *Server) GenerateMedia(w http.ResponseWriter, r *http.Request) {
	var req GenerateMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	assetID := chi.URLParam(r, "assetId")
	if err := s.Workflow.Request(assetID, req.Type); err != nil {
		if !mapServiceError(w, err) {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	WriteJSON(w, http.StatusAccepted, map[string]string{
		"assetId": assetID,
		"status":  string(models.MediaPending),
	})
}

func (s *Server) DiscardMedia(w http.ResponseWriter, r *http.Request) {
	if err := s.Workflow.Discard(chi.URLParam(r, "assetId")); err != nil {
		if !mapServiceError(w, err) {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) MediaContent(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "fileId")
	// File ids are always uuids; rejecting anything else keeps path
	// traversal out.
	if _, err := uuid.Parse(fileID); err != nil {
		WriteError(w, http.StatusNotFound, "Media not found")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, services.MediaFilePath(s.Config.MediaStoragePath, services.BucketPosters, fileID))
}
