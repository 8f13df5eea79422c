package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viralalchemy-backend-go/internal/llm"
	"viralalchemy-backend-go/internal/models"
)

func TestGenerateMediaEndToEnd(t *testing.T) {
	server := newTestServer(t, stubLLM{prompts: llm.MediaPrompts{
		PosterPrompt: "poster prompt",
		VideoPrompt:  "video prompt",
		VisualStyle:  "Bold",
	}})
	router := server.Router()
	tokens := registerUser(t, router, "ada@example.com")

	asset := createAsset(t, router, tokens.AccessToken, CreateAssetRequest{
		SourceType: models.SourceGeneration, Title: "Poster me", Platform: "小红书", Content: "script",
	})

	recorder := doJSON(t, router, http.MethodPost, "/api/assets/"+asset.ID+"/media", tokens.AccessToken, GenerateMediaRequest{Type: models.MediaPoster})
	require.Equal(t, http.StatusAccepted, recorder.Code, recorder.Body.String())
	var accepted map[string]string
	decodeBody(t, recorder, &accepted)
	assert.Equal(t, string(models.MediaPending), accepted["status"])

	var generated models.Asset
	require.Eventually(t, func() bool {
		rec := doJSON(t, router, http.MethodGet, "/api/assets/"+asset.ID, tokens.AccessToken, nil)
		if rec.Code != http.StatusOK {
			return false
		}
		var current models.Asset
		if err := json.Unmarshal(rec.Body.Bytes(), &current); err != nil {
			return false
		}
		if current.Media == nil || current.Media.Status != models.MediaGenerated {
			return false
		}
		generated = current
		return true
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, models.MediaPoster, generated.Media.Type)
	assert.Equal(t, "poster prompt", generated.Media.Prompt)
	assert.Equal(t, "1080x1920", generated.Media.Resolution)
	assert.Equal(t, "9:16", generated.Media.AspectRatio)

	// The rendered file is served on the public media route.
	rec := doJSON(t, router, http.MethodGet, generated.Media.URL, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotZero(t, rec.Body.Len())

	// Discard clears the attachment again.
	rec = doJSON(t, router, http.MethodDelete, "/api/assets/"+asset.ID+"/media", tokens.AccessToken, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, router, http.MethodGet, "/api/assets/"+asset.ID, tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var bare models.Asset
	decodeBody(t, rec, &bare)
	assert.Nil(t, bare.Media)
}

func TestGenerateMediaValidation(t *testing.T) {
	server := newTestServer(t, stubLLM{})
	router := server.Router()
	tokens := registerUser(t, router, "ada@example.com")

	recorder := doJSON(t, router, http.MethodPost, "/api/assets/nope/media", tokens.AccessToken, GenerateMediaRequest{Type: models.MediaPoster})
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	asset := createAsset(t, router, tokens.AccessToken, CreateAssetRequest{
		SourceType: models.SourceGeneration, Title: "t", Platform: "抖音", Content: "c",
	})
	recorder = doJSON(t, router, http.MethodPost, "/api/assets/"+asset.ID+"/media", tokens.AccessToken, GenerateMediaRequest{Type: "hologram"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDiscardMediaWithoutMediaIsQuiet(t *testing.T) {
	server := newTestServer(t, stubLLM{})
	router := server.Router()
	tokens := registerUser(t, router, "ada@example.com")

	asset := createAsset(t, router, tokens.AccessToken, CreateAssetRequest{
		SourceType: models.SourceGeneration, Title: "t", Platform: "抖音", Content: "c",
	})
	recorder := doJSON(t, router, http.MethodDelete, "/api/assets/"+asset.ID+"/media", tokens.AccessToken, nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = doJSON(t, router, http.MethodDelete, "/api/assets/unknown/media", tokens.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestMediaContentRejectsNonUUIDIds(t *testing.T) {
	server := newTestServer(t, stubLLM{})
	router := server.Router()

	recorder := doJSON(t, router, http.MethodGet, "/api/media/assets/..%2f..%2fsecret/content", "", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
