package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viralalchemy-backend-go/internal/llm"
)

func TestSettingsStoreValidatesRanges(t *testing.T) {
	store := NewSettingsStore(llm.DefaultSettings("test-model"))

	_, err := store.Update(llm.ModelSettings{ModelName: "", Temperature: 1, TopK: 64, TopP: 0.95})
	require.Error(t, err)

	_, err = store.Update(llm.ModelSettings{ModelName: "m", Temperature: 2.5, TopK: 64, TopP: 0.95})
	require.Error(t, err)

	_, err = store.Update(llm.ModelSettings{ModelName: "m", Temperature: 1, TopK: 0, TopP: 0.95})
	require.Error(t, err)

	_, err = store.Update(llm.ModelSettings{ModelName: "m", Temperature: 1, TopK: 64, TopP: 1.5})
	require.Error(t, err)

	// Failed updates leave the current settings untouched.
	assert.Equal(t, "test-model", store.Get().ModelName)

	updated, err := store.Update(llm.ModelSettings{ModelName: "other-model", Temperature: 0.7, TopK: 40, TopP: 0.9})
	require.NoError(t, err)
	assert.Equal(t, updated, store.Get())
}

func TestSettingsStoreReset(t *testing.T) {
	defaults := llm.DefaultSettings("test-model")
	store := NewSettingsStore(defaults)

	_, err := store.Update(llm.ModelSettings{ModelName: "tuned", Temperature: 0.2, TopK: 10, TopP: 0.5})
	require.NoError(t, err)
	assert.Equal(t, defaults, store.Reset())
	assert.Equal(t, defaults, store.Get())
}
