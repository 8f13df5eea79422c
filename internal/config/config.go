package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	DatabasePath         string
	JWTSecret            string
	JWTIssuer            string
	AccessTTLSeconds     int64
	RefreshTTLSeconds    int64
	AnthropicAPIKey      string
	ModelName            string
	MediaStoragePath     string
	MediaTimeout         time.Duration
	FreeCredits          int
	MetricsDiskPath      string
	MetricsSampleSeconds int
	AdminEmails          []string
	CorsOrigins          []string
}

func Load() Config {
	return Config{
		DatabasePath:         envOr("DATABASE_PATH", "storage/viralalchemy.db"),
		JWTSecret:            mustEnv("JWT_SECRET"),
		JWTIssuer:            envOr("JWT_ISSUER", "viralalchemy"),
		AccessTTLSeconds:     int64(envOrInt("ACCESS_TTL_SECONDS", 14400)),
		RefreshTTLSeconds:    int64(envOrInt("REFRESH_TTL_SECONDS", 1209600)),
		AnthropicAPIKey:      mustEnv("ANTHROPIC_API_KEY"),
		ModelName:            envOr("MODEL_NAME", "claude-sonnet-4-20250514"),
		MediaStoragePath:     envOr("MEDIA_STORAGE_PATH", "storage/media"),
		MediaTimeout:         time.Duration(envOrInt("MEDIA_TIMEOUT_SECONDS", 60)) * time.Second,
		FreeCredits:          envOrInt("FREE_CREDITS", 5),
		MetricsDiskPath:      envOr("METRICS_DISK_PATH", "storage"),
		MetricsSampleSeconds: envOrInt("METRICS_SAMPLE_INTERVAL", 5),
		AdminEmails:          parseCSV(envOr("ADMIN_EMAILS", "")),
		CorsOrigins:          parseCSV(envOr("CORS_ORIGINS", "")),
	}
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		panic("missing env var: " + key)
	}
	return value
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
