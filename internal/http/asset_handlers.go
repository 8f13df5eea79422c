package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"viralalchemy-backend-go/internal/models"
	"viralalchemy-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CreateAssetRequest struct {
	SourceType models.AssetSource `json:"sourceType"`
	Title      string             `json:"title"`
	Platform   string             `json:"platform"`
	ViralDNA   models.ViralDNA    `json:"viralDNA"`
	Content    string             `json:"content"`
	Tags       []string           `json:"tags"`
	Notes      *string            `json:"notes"`
}

type UpdateAssetRequest struct {
	Title    *string  `json:"title"`
	Platform *string  `json:"platform"`
	Content  *string  `json:"content"`
	Notes    *string  `json:"notes"`
	Tags     []string `json:"tags"`
}

type AssetListResponse struct {
	Items []models.Asset `json:"items"`
	Total int            `json:"total"`
}

type UpdateAssetResponse struct {
	Asset *models.Asset `json:"asset"`
	Found bool          `json:"found"`
}

func (s *Server) ListAssets(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	filter := services.AssetFilter(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("type"))))
	if filter == "" {
		filter = services.FilterAll
	}
	if !filter.Valid() {
		WriteError(w, http.StatusBadRequest, "type must be one of ALL, ANALYSIS, GENERATION")
		return
	}
	items := services.QueryAssets(s.Assets.All(), search, filter)
	WriteJSON(w, http.StatusOK, AssetListResponse{Items: items, Total: len(items)})
}

func (s *Server) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if !req.SourceType.Valid() {
		WriteError(w, http.StatusBadRequest, "sourceType must be ANALYSIS or GENERATION")
		return
	}
	title := trimString(req.Title, 300)
	if title == "" {
		WriteError(w, http.StatusBadRequest, "title is required")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		WriteError(w, http.StatusBadRequest, "content is required")
		return
	}
	platform := trimString(req.Platform, 100)
	if platform == "" {
		platform = string(services.PlatformGeneric)
	}
	now := time.Now().UTC()
	asset := models.Asset{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		UpdatedAt:  now,
		SourceType: req.SourceType,
		Title:      title,
		Platform:   platform,
		ViralDNA:   req.ViralDNA,
		Content:    req.Content,
		Tags:       cleanTags(req.Tags),
		Notes:      req.Notes,
	}
	if err := s.Assets.Create(asset); err != nil {
		if !mapServiceError(w, err) {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	WriteJSON(w, http.StatusCreated, asset)
}

func (s *Server) GetAsset(w http.ResponseWriter, r *http.Request) {
	asset, exists := s.Assets.Get(chi.URLParam(r, "assetId"))
	if !exists {
		WriteError(w, http.StatusNotFound, "Asset not found")
		return
	}
	WriteJSON(w, http.StatusOK, asset)
}

// UpdateAsset applies a partial update. An unknown id is not an error; the
// response carries found=false so callers can tell the write went nowhere.
func (s *Server) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	var req UpdateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	patch := services.AssetPatch{
		Title:    req.Title,
		Platform: req.Platform,
		Content:  req.Content,
		Notes:    req.Notes,
	}
	if req.Tags != nil {
		patch.Tags = cleanTags(req.Tags)
	}
	asset, found, err := s.Assets.Update(chi.URLParam(r, "assetId"), patch)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !found {
		WriteJSON(w, http.StatusOK, UpdateAssetResponse{Found: false})
		return
	}
	WriteJSON(w, http.StatusOK, UpdateAssetResponse{Asset: &asset, Found: true})
}

func (s *Server) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "assetId")
	if asset, exists := s.Assets.Get(assetID); exists && asset.Media != nil {
		_ = s.Workflow.Discard(assetID)
	}
	if err := s.Assets.Delete(assetID); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportAsset streams the script as a plain-text download, mirroring the
// in-app export button.
func (s *Server) ExportAsset(w http.ResponseWriter, r *http.Request) {
	asset, exists := s.Assets.Get(chi.URLParam(r, "assetId"))
	if !exists {
		WriteError(w, http.StatusNotFound, "Asset not found")
		return
	}
	filename := fmt.Sprintf("ViralAlchemy_%s_%d.txt",
		strings.ReplaceAll(asset.Title, " ", "_"), time.Now().UnixMilli())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	_, _ = w.Write([]byte(asset.Content))
}

func cleanTags(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	seen := map[string]bool{}
	for _, tag := range tags {
		value := trimString(tag, 60)
		if value == "" || seen[strings.ToLower(value)] {
			continue
		}
		seen[strings.ToLower(value)] = true
		cleaned = append(cleaned, value)
	}
	return cleaned
}
