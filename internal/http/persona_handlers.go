package httpapi

import (
	"encoding/json"
	"net/http"

	"viralalchemy-backend-go/internal/services"
)

type PersonaOptionsResponse struct {
	Platforms          []services.Option `json:"platforms"`
	Stages             []services.Option `json:"stages"`
	Identities         []services.Option `json:"identities"`
	PainPoints         []services.Option `json:"painPoints"`
	DesiredResults     []services.Option `json:"desiredResults"`
	EmotionalStates    []services.Option `json:"emotionalStates"`
	ContentPreferences []services.Option `json:"contentPreferences"`
	Hooks              []services.Option `json:"hooks"`
	Structures         []services.Option `json:"structures"`
	Emotions           []services.Option `json:"emotions"`
	MaxPainPoints      int               `json:"maxPainPoints"`
}

func (s *Server) PersonaOptions(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, PersonaOptionsResponse{
		Platforms:          services.PlatformOptions,
		Stages:             services.StageOptions,
		Identities:         services.IdentityOptions,
		PainPoints:         services.PainPointOptions,
		DesiredResults:     services.DesiredResultOptions,
		EmotionalStates:    services.EmotionalStateOptions,
		ContentPreferences: services.ContentPreferenceOptions,
		Hooks:              services.HookOptions,
		Structures:         services.StructureOptions,
		Emotions:           services.EmotionOptions,
		MaxPainPoints:      services.MaxPainPoints,
	})
}

type PersonaDeriveRequest struct {
	Persona services.PersonaProfile  `json:"persona"`
	Params  services.GeneratorParams `json:"params"`
}

type PersonaDeriveResponse struct {
	Params        services.GeneratorParams `json:"params"`
	SuggestedHook services.HookType        `json:"suggestedHook,omitempty"`
	Audience      string                   `json:"audience"`
}

// PersonaDerive recomputes the engine configuration for a persona. The
// structure template and emotion follow the mapping rules; the hook from the
// request is kept as-is, with the rule-table hook echoed back as a
// suggestion only.
func (s *Server) PersonaDerive(w http.ResponseWriter, r *http.Request) {
	var req PersonaDeriveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := req.Persona.Validate(); mapServiceError(w, err) {
		return
	}
	params := req.Params
	if params.HookType == "" {
		params.HookType = services.HookPainPoint
	}
	params = services.DeriveParams(req.Persona, params)
	suggested, _, _ := services.PreferenceRule(req.Persona.ContentPreference)
	WriteJSON(w, http.StatusOK, PersonaDeriveResponse{
		Params:        params,
		SuggestedHook: suggested,
		Audience:      services.AudienceSummary(req.Persona),
	})
}
