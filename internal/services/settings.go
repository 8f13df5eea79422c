package services

import (
	"strings"
	"sync"

	"viralalchemy-backend-go/internal/llm"
)

// SettingsStore guards the process-wide model settings behind a lock. The
// values live only in memory and reset to the configured defaults on
// restart.
type SettingsStore struct {
	mu       sync.RWMutex
	defaults llm.ModelSettings
	current  llm.ModelSettings
}

func NewSettingsStore(defaults llm.ModelSettings) *SettingsStore {
	return &SettingsStore{defaults: defaults, current: defaults}
}

func (s *SettingsStore) Get() llm.ModelSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *SettingsStore) Update(next llm.ModelSettings) (llm.ModelSettings, error) {
	if strings.TrimSpace(next.ModelName) == "" {
		return llm.ModelSettings{}, ErrBadRequest("modelName is required")
	}
	if next.Temperature < 0 || next.Temperature > 2 {
		return llm.ModelSettings{}, ErrBadRequest("temperature must be between 0.0 and 2.0")
	}
	if next.TopK < 1 {
		return llm.ModelSettings{}, ErrBadRequest("topK must be at least 1")
	}
	if next.TopP < 0 || next.TopP > 1 {
		return llm.ModelSettings{}, ErrBadRequest("topP must be between 0.0 and 1.0")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = next
	return s.current, nil
}

// Reset restores the configured defaults.
func (s *SettingsStore) Reset() llm.ModelSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.defaults
	return s.current
}
