package models

import "time"

type AssetSource string

const (
	SourceAnalysis   AssetSource = "ANALYSIS"
	SourceGeneration AssetSource = "GENERATION"
)

func (s AssetSource) Valid() bool {
	return s == SourceAnalysis || s == SourceGeneration
}

type MediaType string

const (
	MediaPoster MediaType = "poster"
	MediaVideo  MediaType = "video"
)

func (t MediaType) Valid() bool {
	return t == MediaPoster || t == MediaVideo
}

type MediaStatus string

const (
	MediaPending   MediaStatus = "pending"
	MediaGenerated MediaStatus = "generated"
)

// ViralDNA is the fingerprint captured when an asset is produced. It is a
// snapshot of the parameters in effect at creation time and is never
// recomputed afterwards.
type ViralDNA struct {
	Hook      string `json:"hook"`
	Emotion   string `json:"emotion"`
	Structure string `json:"structure"`
}

type MediaMetadata struct {
	Type        MediaType   `json:"type"`
	Status      MediaStatus `json:"status"`
	Prompt      string      `json:"prompt"`
	URL         string      `json:"url"`
	Resolution  string      `json:"resolution"`
	AspectRatio string      `json:"aspectRatio"`
	GeneratedAt time.Time   `json:"generatedAt"`
}

// Asset is a single library entry. The whole collection is serialized as a
// JSON array into the asset_collections table, so the json tags double as the
// storage schema.
type Asset struct {
	ID         string         `json:"id"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	SourceType AssetSource    `json:"sourceType"`
	Title      string         `json:"title"`
	Platform   string         `json:"platform"`
	ViralDNA   ViralDNA       `json:"viralDNA"`
	Content    string         `json:"content"`
	Media      *MediaMetadata `json:"media,omitempty"`
	Tags       []string       `json:"tags"`
	Notes      *string        `json:"notes,omitempty"`
}

type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Plan         string     `json:"plan"`
	IsPro        bool       `json:"isPro"`
	Credits      int        `json:"credits"`
	Roles        []string   `json:"roles"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

type ServerMetricSample struct {
	ID                string    `db:"id"`
	CapturedAt        time.Time `db:"-"`
	HeapUsedBytes     int64     `db:"heap_used_bytes"`
	HeapMaxBytes      int64     `db:"heap_max_bytes"`
	SystemMemoryTotal int64     `db:"system_memory_total_bytes"`
	SystemMemoryUsed  int64     `db:"system_memory_used_bytes"`
	DiskTotalBytes    int64     `db:"disk_total_bytes"`
	DiskUsedBytes     int64     `db:"disk_used_bytes"`
	ProcessCpuLoad    float64   `db:"process_cpu_load"`
	SystemCpuLoad     float64   `db:"system_cpu_load"`
}
