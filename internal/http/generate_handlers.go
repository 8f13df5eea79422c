package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"viralalchemy-backend-go/internal/llm"
	"viralalchemy-backend-go/internal/models"
	"viralalchemy-backend-go/internal/services"

	"github.com/google/uuid"
)

type GenerateRequest struct {
	Topic    string                   `json:"topic"`
	Persona  services.PersonaProfile  `json:"persona"`
	Params   services.GeneratorParams `json:"params"`
	Language string                   `json:"language"`
}

type GenerateResponse struct {
	Script      string       `json:"script"`
	Explanation string       `json:"explanation"`
	Asset       models.Asset `json:"asset"`
}

// Generate produces a new script from the persona and engine configuration
// and archives the result as a generation asset in one step.
func (s *Server) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	topic := trimString(req.Topic, 300)
	if topic == "" {
		WriteError(w, http.StatusBadRequest, "topic is required")
		return
	}
	if err := req.Persona.Validate(); mapServiceError(w, err) {
		return
	}
	params := req.Params
	if params.HookType == "" {
		params.HookType = services.HookPainPoint
	}
	if params.StructureType == "" || params.EmotionType == "" {
		params = services.DeriveParams(req.Persona, params)
	}

	lang := llm.ParseLanguage(req.Language)
	audience := services.AudienceSummary(req.Persona)
	content, err := s.LLM.GenerateScript(r.Context(), llm.ScriptParams{
		Topic:         topic,
		Audience:      audience,
		HookType:      string(params.HookType),
		StructureType: string(params.StructureType),
		EmotionType:   string(params.EmotionType),
	}, lang, s.Settings.Get())
	if err != nil {
		log.Printf("generate: collaborator call failed: %v", err)
		WriteError(w, http.StatusBadGateway, "Failed to generate content")
		return
	}
	if strings.TrimSpace(content.Script) == "" {
		WriteError(w, http.StatusBadGateway, "Failed to generate content")
		return
	}

	now := time.Now().UTC()
	notes := "Audience: " + audience
	asset := models.Asset{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		UpdatedAt:  now,
		SourceType: models.SourceGeneration,
		Title:      topic,
		Platform:   string(req.Persona.Platform),
		ViralDNA: models.ViralDNA{
			Hook:      string(params.HookType),
			Emotion:   string(params.EmotionType),
			Structure: string(params.StructureType),
		},
		Content: content.Script,
		Tags:    cleanTags([]string{string(req.Persona.Platform), string(req.Persona.Identity), "Generated"}),
		Notes:   &notes,
	}
	if err := s.Assets.Create(asset); err != nil {
		log.Printf("generate: could not archive asset: %v", err)
	}
	WriteJSON(w, http.StatusOK, GenerateResponse{
		Script:      content.Script,
		Explanation: content.Explanation,
		Asset:       asset,
	})
}
