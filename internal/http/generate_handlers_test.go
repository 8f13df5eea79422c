package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viralalchemy-backend-go/internal/llm"
	"viralalchemy-backend-go/internal/models"
	"viralalchemy-backend-go/internal/services"
)

func TestGenerateArchivesAsset(t *testing.T) {
	server := newTestServer(t, stubLLM{content: llm.GeneratedContent{
		Script:      "开头三秒抓住注意力...",
		Explanation: "Hook first, then payoff.",
	}})
	router := server.Router()
	tokens := registerUser(t, router, "ada@example.com")

	recorder := doJSON(t, router, http.MethodPost, "/api/generate", tokens.AccessToken, GenerateRequest{
		Topic:    "副业避坑指南",
		Persona:  services.DefaultPersona(),
		Language: "zh",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	var resp GenerateResponse
	decodeBody(t, recorder, &resp)
	assert.Equal(t, "开头三秒抓住注意力...", resp.Script)
	assert.Equal(t, "Hook first, then payoff.", resp.Explanation)

	asset := resp.Asset
	assert.Equal(t, models.SourceGeneration, asset.SourceType)
	assert.Equal(t, "副业避坑指南", asset.Title)
	assert.Equal(t, string(services.PlatformXiaohongshu), asset.Platform)
	assert.Contains(t, asset.Tags, "Generated")
	require.NotNil(t, asset.Notes)
	assert.Contains(t, *asset.Notes, "Audience:")

	// Params were derived from the default persona's preference and state.
	assert.Equal(t, string(services.HookPainPoint), asset.ViralDNA.Hook)
	assert.Equal(t, string(services.StructureProblemAmplifySolve), asset.ViralDNA.Structure)
	assert.Equal(t, string(services.EmotionAnxiety), asset.ViralDNA.Emotion)

	// And the archive landed in the library.
	listRec := doJSON(t, router, http.MethodGet, "/api/assets/?type=GENERATION", tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, listRec.Code)
	var list AssetListResponse
	decodeBody(t, listRec, &list)
	assert.Equal(t, 1, list.Total)
}

func TestGenerateRejectsBadPersona(t *testing.T) {
	server := newTestServer(t, stubLLM{content: llm.GeneratedContent{Script: "x"}})
	router := server.Router()
	tokens := registerUser(t, router, "ada@example.com")

	persona := services.DefaultPersona()
	persona.Platform = "Myspace"
	recorder := doJSON(t, router, http.MethodPost, "/api/generate", tokens.AccessToken, GenerateRequest{
		Topic: "topic", Persona: persona,
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doJSON(t, router, http.MethodPost, "/api/generate", tokens.AccessToken, GenerateRequest{
		Topic: "  ", Persona: services.DefaultPersona(),
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGenerateUpstreamFailure(t *testing.T) {
	server := newTestServer(t, stubLLM{contentErr: errStub})
	router := server.Router()
	tokens := registerUser(t, router, "ada@example.com")

	recorder := doJSON(t, router, http.MethodPost, "/api/generate", tokens.AccessToken, GenerateRequest{
		Topic: "topic", Persona: services.DefaultPersona(),
	})
	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}

func TestGenerateEmptyScriptIsUpstreamFailure(t *testing.T) {
	server := newTestServer(t, stubLLM{content: llm.GeneratedContent{Script: "   "}})
	router := server.Router()
	tokens := registerUser(t, router, "ada@example.com")

	recorder := doJSON(t, router, http.MethodPost, "/api/generate", tokens.AccessToken, GenerateRequest{
		Topic: "topic", Persona: services.DefaultPersona(),
	})
	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}

func TestPersonaOptionsAndDerive(t *testing.T) {
	server := newTestServer(t, stubLLM{})
	router := server.Router()

	recorder := doJSON(t, router, http.MethodGet, "/api/persona/options", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var options PersonaOptionsResponse
	decodeBody(t, recorder, &options)
	assert.Len(t, options.Platforms, len(services.PlatformOptions))
	assert.Equal(t, services.MaxPainPoints, options.MaxPainPoints)

	persona := services.DefaultPersona()
	persona.ContentPreference = services.PrefStory
	persona.EmotionalState = services.StateHopeful
	recorder = doJSON(t, router, http.MethodPost, "/api/persona/derive", "", PersonaDeriveRequest{
		Persona: persona,
		Params:  services.GeneratorParams{HookType: services.HookRiskWarning},
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	var derived PersonaDeriveResponse
	decodeBody(t, recorder, &derived)
	assert.Equal(t, services.HookRiskWarning, derived.Params.HookType)
	assert.Equal(t, services.StructureStoryConflictTwist, derived.Params.StructureType)
	assert.Equal(t, services.EmotionHope, derived.Params.EmotionType)
	assert.Equal(t, services.HookIdentityResonance, derived.SuggestedHook)
	assert.NotEmpty(t, derived.Audience)
}
