package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"viralalchemy-backend-go/internal/llm"
	"viralalchemy-backend-go/internal/models"

	"github.com/google/uuid"
)

type AnalyzeRequest struct {
	Input    string `json:"input"`
	Language string `json:"language"`
	Save     bool   `json:"save"`
}

type AnalyzeResponse struct {
	Result           llm.BilingualAnalysis `json:"result"`
	CreditsRemaining int                   `json:"creditsRemaining"`
	SavedAsset       *models.Asset         `json:"savedAsset,omitempty"`
}

// Analyze deconstructs pasted content or a URL. Free accounts pay one credit
// per successful run; the credit is charged after the collaborator answers,
// and archiving is best effort on top of that.
func (s *Server) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if strings.TrimSpace(req.Input) == "" {
		WriteError(w, http.StatusBadRequest, "input is required")
		return
	}
	userID := CurrentUserID(r)
	if _, exists := s.Users.FindByID(userID); !exists {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	if !s.Users.CanAnalyze(userID) {
		WriteError(w, http.StatusPaymentRequired, "Not enough credits")
		return
	}
	lang := llm.ParseLanguage(req.Language)
	result, err := s.LLM.AnalyzeContent(r.Context(), req.Input, lang, s.Settings.Get())
	if err != nil {
		log.Printf("analyze: collaborator call failed: %v", err)
		WriteError(w, http.StatusBadGateway, "Failed to analyze content")
		return
	}
	remaining, _ := s.Users.ChargeForAnalysis(userID)

	resp := AnalyzeResponse{Result: result, CreditsRemaining: remaining}
	if req.Save {
		if asset, err := s.saveAnalysisAsset(result, lang); err != nil {
			log.Printf("analyze: could not archive asset: %v", err)
		} else {
			resp.SavedAsset = &asset
		}
	}
	WriteJSON(w, http.StatusOK, resp)
}

// saveAnalysisAsset archives the deconstruction in the requested language
// rendition, snapshotting the detected engines as the asset's fingerprint.
func (s *Server) saveAnalysisAsset(result llm.BilingualAnalysis, lang llm.Language) (models.Asset, error) {
	analysis := result.For(lang)
	content, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return models.Asset{}, err
	}
	title := analysis.Title
	if strings.TrimSpace(title) == "" {
		title = "Untitled Analysis"
	}
	now := time.Now().UTC()
	asset := models.Asset{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		UpdatedAt:  now,
		SourceType: models.SourceAnalysis,
		Title:      title,
		Platform:   "Generic",
		ViralDNA: models.ViralDNA{
			Hook:      analysis.HookEngine.Type,
			Emotion:   analysis.EmotionEngine.Primary,
			Structure: analysis.StructureEngine.Type,
		},
		Content: string(content),
		Tags:    cleanTags(append(analysis.Tags, "Analyzed")),
	}
	if err := s.Assets.Create(asset); err != nil {
		return models.Asset{}, err
	}
	return asset, nil
}
