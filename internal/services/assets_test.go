package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viralalchemy-backend-go/internal/db"
	"viralalchemy-backend-go/internal/migrations"
	"viralalchemy-backend-go/internal/models"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, migrations.Apply(database, "../../migrations"))
	return database
}

func testAsset(title string) models.Asset {
	now := time.Now().UTC()
	return models.Asset{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		UpdatedAt:  now,
		SourceType: models.SourceGeneration,
		Title:      title,
		Platform:   "Xiaohongshu",
		ViralDNA:   models.ViralDNA{Hook: "Pain Point", Emotion: "Anxiety", Structure: "Problem-Amplify-Solve"},
		Content:    "script body",
		Tags:       []string{"Xiaohongshu", "Generated"},
	}
}

func TestAssetStoreCreateRejectsDuplicateID(t *testing.T) {
	store := NewAssetStore(newTestDB(t))
	require.NoError(t, store.Load())

	asset := testAsset("first")
	require.NoError(t, store.Create(asset))

	dup := testAsset("second")
	dup.ID = asset.ID
	err := store.Create(dup)
	require.Error(t, err)
	serr, ok := err.(ServiceError)
	require.True(t, ok)
	assert.Equal(t, 400, serr.Status)
	assert.Equal(t, 1, store.Count())
}

func TestAssetStoreUpdateRefreshesUpdatedAt(t *testing.T) {
	store := NewAssetStore(newTestDB(t))
	require.NoError(t, store.Load())

	asset := testAsset("original")
	asset.CreatedAt = asset.CreatedAt.Add(-time.Hour)
	asset.UpdatedAt = asset.CreatedAt
	require.NoError(t, store.Create(asset))

	title := "renamed"
	updated, found, err := store.Update(asset.ID, AssetPatch{Title: &title})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, asset.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(asset.UpdatedAt))
	// Untouched fields survive.
	assert.Equal(t, asset.Content, updated.Content)
	assert.Equal(t, asset.ViralDNA, updated.ViralDNA)
}

func TestAssetStoreUpdateUnknownIDIsSilent(t *testing.T) {
	store := NewAssetStore(newTestDB(t))
	require.NoError(t, store.Load())

	title := "ghost"
	_, found, err := store.Update("missing-id", AssetPatch{Title: &title})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAssetStoreDeleteIsIdempotent(t *testing.T) {
	store := NewAssetStore(newTestDB(t))
	require.NoError(t, store.Load())

	asset := testAsset("doomed")
	require.NoError(t, store.Create(asset))
	require.NoError(t, store.Delete(asset.ID))
	require.NoError(t, store.Delete(asset.ID))
	require.NoError(t, store.Delete("never-existed"))
	assert.Equal(t, 0, store.Count())
}

func TestAssetStorePersistsAcrossReload(t *testing.T) {
	database := newTestDB(t)

	store := NewAssetStore(database)
	require.NoError(t, store.Load())
	older := testAsset("older")
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	newer := testAsset("newer")
	require.NoError(t, store.Create(older))
	require.NoError(t, store.Create(newer))

	reloaded := NewAssetStore(database)
	require.NoError(t, reloaded.Load())
	items := reloaded.All()
	require.Len(t, items, 2)
	assert.Equal(t, "newer", items[0].Title)
	assert.Equal(t, "older", items[1].Title)

	got, exists := reloaded.Get(older.ID)
	require.True(t, exists)
	assert.Equal(t, older.Tags, got.Tags)
	assert.Equal(t, older.ViralDNA, got.ViralDNA)
}

func TestAssetStoreUpdateWithSamePatchIsIdempotent(t *testing.T) {
	store := NewAssetStore(newTestDB(t))
	require.NoError(t, store.Load())

	asset := testAsset("original")
	require.NoError(t, store.Create(asset))

	title := "renamed"
	first, found, err := store.Update(asset.ID, AssetPatch{Title: &title})
	require.NoError(t, err)
	require.True(t, found)

	time.Sleep(time.Millisecond)
	second, found, err := store.Update(asset.ID, AssetPatch{Title: &title})
	require.NoError(t, err)
	require.True(t, found)

	// Repeating the same patch changes nothing but the timestamp.
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.Tags, second.Tags)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestAssetStoreIDsStayUnique(t *testing.T) {
	store := NewAssetStore(newTestDB(t))
	require.NoError(t, store.Load())

	const n = 50
	seen := map[string]bool{}
	for i := 0; i < n; i++ {
		asset := testAsset("bulk")
		require.NoError(t, store.Create(asset))
		assert.False(t, seen[asset.ID])
		seen[asset.ID] = true
	}
	require.Equal(t, n, store.Count())

	items := store.All()
	distinct := map[string]bool{}
	for _, item := range items {
		distinct[item.ID] = true
	}
	assert.Len(t, distinct, n)
}

func TestAssetStoreSnapshotsAreIsolated(t *testing.T) {
	store := NewAssetStore(newTestDB(t))
	require.NoError(t, store.Load())

	asset := testAsset("guarded")
	asset.Media = &models.MediaMetadata{Type: models.MediaPoster, Status: models.MediaPending}
	require.NoError(t, store.Create(asset))

	items := store.All()
	require.Len(t, items, 1)
	items[0].Tags[0] = "tampered"
	items[0].Media.Status = models.MediaGenerated

	kept, exists := store.Get(asset.ID)
	require.True(t, exists)
	assert.Equal(t, "Xiaohongshu", kept.Tags[0])
	assert.Equal(t, models.MediaPending, kept.Media.Status)

	// Get hands out copies too.
	kept.Media.Status = models.MediaGenerated
	again, _ := store.Get(asset.ID)
	assert.Equal(t, models.MediaPending, again.Media.Status)
}

func TestAssetStoreRecoversFromCorruptPayload(t *testing.T) {
	database := newTestDB(t)
	_, err := database.Exec(`INSERT INTO asset_collections (namespace, payload, updated_at) VALUES (?, ?, ?)`,
		AssetNamespace, "{not json", time.Now().UTC().Format(time.RFC3339Nano))
	require.NoError(t, err)

	store := NewAssetStore(database)
	require.NoError(t, store.Load())
	assert.Equal(t, 0, store.Count())

	// The store stays usable after recovery.
	require.NoError(t, store.Create(testAsset("fresh start")))
	assert.Equal(t, 1, store.Count())
}
