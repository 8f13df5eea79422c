package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"viralalchemy-backend-go/internal/services"
)

func parseInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func hasRole(roles []string, role string) bool {
	for _, r := range roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

// trimString trims whitespace and caps the value at maxLen bytes, backing
// off to a rune boundary so a multi-byte character is never split.
func trimString(value string, maxLen int) string {
	value = strings.TrimSpace(value)
	if len(value) <= maxLen {
		return value
	}
	for maxLen > 0 && !utf8.RuneStart(value[maxLen]) {
		maxLen--
	}
	return value[:maxLen]
}

// mapServiceError writes a typed service error and reports whether it
// handled the error.
func mapServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	if serr, ok := err.(services.ServiceError); ok {
		WriteError(w, serr.Status, serr.Message)
		return true
	}
	return false
}
