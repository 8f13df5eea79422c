package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"viralalchemy-backend-go/internal/config"
	"viralalchemy-backend-go/internal/db"
	"viralalchemy-backend-go/internal/llm"
	"viralalchemy-backend-go/internal/migrations"
	"viralalchemy-backend-go/internal/services"
)

type stubLLM struct {
	analysis    llm.BilingualAnalysis
	analysisErr error
	content     llm.GeneratedContent
	contentErr  error
	prompts     llm.MediaPrompts
}

func (s stubLLM) AnalyzeContent(ctx context.Context, input string, lang llm.Language, settings llm.ModelSettings) (llm.BilingualAnalysis, error) {
	return s.analysis, s.analysisErr
}

func (s stubLLM) GenerateScript(ctx context.Context, params llm.ScriptParams, lang llm.Language, settings llm.ModelSettings) (llm.GeneratedContent, error) {
	return s.content, s.contentErr
}

func (s stubLLM) GenerateMediaPrompts(ctx context.Context, script, platform string, settings llm.ModelSettings) (llm.MediaPrompts, error) {
	return s.prompts, nil
}

func newTestServer(t *testing.T, client llm.Client) *Server {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, migrations.Apply(database, "../../migrations"))

	cfg := config.Config{
		DatabasePath:      "unused",
		JWTSecret:         "test-secret",
		JWTIssuer:         "viralalchemy-test",
		AccessTTLSeconds:  3600,
		RefreshTTLSeconds: 7200,
		ModelName:         "test-model",
		MediaStoragePath:  t.TempDir(),
		MediaTimeout:      30 * time.Second,
		FreeCredits:       2,
		AdminEmails:       []string{"ops@example.com"},
	}
	assets := services.NewAssetStore(database)
	require.NoError(t, assets.Load())
	users := services.NewUserRegistry(cfg.FreeCredits, cfg.AdminEmails)
	settings := services.NewSettingsStore(llm.DefaultSettings(cfg.ModelName))
	hub := services.NewEventHub()
	workflow := services.NewMediaWorkflow(assets, client, settings, hub, cfg.MediaStoragePath, cfg.MediaTimeout)
	return NewServer(database, cfg, users, assets, settings, workflow, client, hub)
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}

func registerUser(t *testing.T, handler http.Handler, email string) TokenResponse {
	t.Helper()
	recorder := doJSON(t, handler, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: "hunter22",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	var tokens TokenResponse
	decodeBody(t, recorder, &tokens)
	require.NotEmpty(t, tokens.AccessToken)
	return tokens
}

var errStub = errors.New("stub failure")
