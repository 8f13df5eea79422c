package services

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"viralalchemy-backend-go/internal/models"
)

// AssetNamespace is the single row key under which the whole asset
// collection is persisted.
const AssetNamespace = "viralAlchemy_assets"

// AssetPatch describes a partial update. Nil fields are left untouched.
type AssetPatch struct {
	Title      *string
	Platform   *string
	Content    *string
	Notes      *string
	Tags       []string
	Media      *models.MediaMetadata
	ClearMedia bool
}

// AssetStore keeps the library in memory and writes the full collection back
// to the database on every mutation. Reads never touch the database after
// Load.
type AssetStore struct {
	mu     sync.RWMutex
	db     *sqlx.DB
	assets map[string]models.Asset
	order  []string
}

func NewAssetStore(db *sqlx.DB) *AssetStore {
	return &AssetStore{
		db:     db,
		assets: map[string]models.Asset{},
	}
}

// Load reads the persisted collection. A missing row yields an empty store.
// A row that fails to decode is treated the same way so a corrupted payload
// never blocks startup.
func (s *AssetStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var payload string
	err := s.db.Get(&payload, `SELECT payload FROM asset_collections WHERE namespace = ?`, AssetNamespace)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}
	var assets []models.Asset
	if err := json.Unmarshal([]byte(payload), &assets); err != nil {
		log.Printf("asset store: discarding unreadable collection payload: %v", err)
		s.assets = map[string]models.Asset{}
		s.order = nil
		return nil
	}
	s.assets = make(map[string]models.Asset, len(assets))
	s.order = make([]string, 0, len(assets))
	for _, asset := range assets {
		if _, exists := s.assets[asset.ID]; exists {
			continue
		}
		s.assets[asset.ID] = asset
		s.order = append(s.order, asset.ID)
	}
	return nil
}

func (s *AssetStore) Create(asset models.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.assets[asset.ID]; exists {
		return ErrBadRequest("asset id already exists")
	}
	if asset.Tags == nil {
		asset.Tags = []string{}
	}
	s.assets[asset.ID] = asset
	s.order = append([]string{asset.ID}, s.order...)
	return s.persist()
}

// Update applies the patch and refreshes updatedAt. A missing id is reported
// through the bool, not as an error.
func (s *AssetStore) Update(id string, patch AssetPatch) (models.Asset, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	asset, exists := s.assets[id]
	if !exists {
		return models.Asset{}, false, nil
	}
	if patch.Title != nil {
		asset.Title = *patch.Title
	}
	if patch.Platform != nil {
		asset.Platform = *patch.Platform
	}
	if patch.Content != nil {
		asset.Content = *patch.Content
	}
	if patch.Notes != nil {
		asset.Notes = patch.Notes
	}
	if patch.Tags != nil {
		asset.Tags = patch.Tags
	}
	if patch.Media != nil {
		media := *patch.Media
		asset.Media = &media
	}
	if patch.ClearMedia {
		asset.Media = nil
	}
	asset.UpdatedAt = time.Now().UTC()
	s.assets[id] = asset
	return cloneAsset(asset), true, s.persist()
}

// Delete removes the asset if present. Deleting an unknown id is a no-op.
func (s *AssetStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.assets[id]; !exists {
		return nil
	}
	delete(s.assets, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return s.persist()
}

func (s *AssetStore) Get(id string) (models.Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	asset, exists := s.assets[id]
	if !exists {
		return models.Asset{}, false
	}
	return cloneAsset(asset), true
}

// All returns a snapshot sorted newest first. Tags and media are copied, so
// callers may mutate the result freely.
func (s *AssetStore) All() []models.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *AssetStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.assets)
}

func (s *AssetStore) snapshot() []models.Asset {
	assets := make([]models.Asset, 0, len(s.order))
	for _, id := range s.order {
		assets = append(assets, cloneAsset(s.assets[id]))
	}
	sort.SliceStable(assets, func(i, j int) bool {
		return assets[i].CreatedAt.After(assets[j].CreatedAt)
	})
	return assets
}

// cloneAsset copies the mutable parts so callers cannot reach back into
// store state through a returned asset.
func cloneAsset(asset models.Asset) models.Asset {
	if asset.Tags != nil {
		asset.Tags = append([]string(nil), asset.Tags...)
	}
	if asset.Media != nil {
		media := *asset.Media
		asset.Media = &media
	}
	return asset
}

// persist is called with the write lock held.
func (s *AssetStore) persist() error {
	payload, err := json.Marshal(s.snapshot())
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
INSERT INTO asset_collections (namespace, payload, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(namespace) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		AssetNamespace, string(payload), time.Now().UTC().Format(time.RFC3339Nano))
	return err
}
