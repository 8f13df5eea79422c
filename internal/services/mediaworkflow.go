package services

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"viralalchemy-backend-go/internal/llm"
	"viralalchemy-backend-go/internal/models"
)

// MediaWorkflow drives media derivation for assets. One derivation per asset
// may be in flight at a time; completion attaches the metadata back onto the
// asset and pushes an event.
type MediaWorkflow struct {
	store    *AssetStore
	llm      llm.Client
	settings *SettingsStore
	hub      *EventHub
	basePath string
	timeout  time.Duration

	mu       sync.Mutex
	inflight map[string]bool
}

func NewMediaWorkflow(store *AssetStore, client llm.Client, settings *SettingsStore, hub *EventHub, basePath string, timeout time.Duration) *MediaWorkflow {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &MediaWorkflow{
		store:    store,
		llm:      client,
		settings: settings,
		hub:      hub,
		basePath: basePath,
		timeout:  timeout,
		inflight: map[string]bool{},
	}
}

// Request starts a derivation in the background. It fails fast when the
// asset is unknown or a derivation for it is already running.
func (w *MediaWorkflow) Request(assetID string, mediaType models.MediaType) error {
	if err := w.begin(assetID, mediaType); err != nil {
		return err
	}
	go w.finish(context.Background(), assetID, mediaType)
	return nil
}

func (w *MediaWorkflow) begin(assetID string, mediaType models.MediaType) error {
	if !mediaType.Valid() {
		return ErrBadRequest("media type must be poster or video")
	}
	if _, exists := w.store.Get(assetID); !exists {
		return ErrNotFound("asset not found")
	}
	w.mu.Lock()
	if w.inflight[assetID] {
		w.mu.Unlock()
		return ErrConflict("media derivation already in progress for this asset")
	}
	w.inflight[assetID] = true
	w.mu.Unlock()

	pending := &models.MediaMetadata{Type: mediaType, Status: models.MediaPending}
	if _, found, err := w.store.Update(assetID, AssetPatch{Media: pending}); err != nil || !found {
		w.clear(assetID)
		if err != nil {
			return err
		}
		return ErrNotFound("asset not found")
	}
	return nil
}

// finish runs the derivation to completion. The collaborator step may fail;
// rendering happens locally and always yields an image, so a prompt failure
// only downgrades the prompt to the fallback triple.
func (w *MediaWorkflow) finish(ctx context.Context, assetID string, mediaType models.MediaType) {
	defer w.clear(assetID)
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	asset, exists := w.store.Get(assetID)
	if !exists {
		return
	}

	prompts, err := w.llm.GenerateMediaPrompts(ctx, asset.Content, asset.Platform, w.settings.Get())
	if err != nil {
		log.Printf("media workflow: prompt generation failed for asset %s, using fallback: %v", assetID, err)
		prompts = llm.FallbackMediaPrompts()
	}

	data, aspect, err := RenderPoster(asset.Title, asset.Platform, prompts.VisualStyle)
	if err != nil {
		log.Printf("media workflow: render failed for asset %s: %v", assetID, err)
		w.reset(assetID)
		return
	}
	fileID, mediaURL, err := SaveMediaFile(w.basePath, BucketPosters, data)
	if err != nil {
		log.Printf("media workflow: could not store media for asset %s: %v", assetID, err)
		w.reset(assetID)
		return
	}

	prompt := prompts.PosterPrompt
	if mediaType == models.MediaVideo {
		prompt = prompts.VideoPrompt
	}
	width, height, _ := PosterSpecs(asset.Platform)
	media := &models.MediaMetadata{
		Type:        mediaType,
		Status:      models.MediaGenerated,
		Prompt:      prompt,
		URL:         mediaURL,
		Resolution:  resolutionLabel(width, height),
		AspectRatio: aspect,
		GeneratedAt: time.Now().UTC(),
	}
	updated, found, err := w.store.Update(assetID, AssetPatch{Media: media})
	if err != nil {
		log.Printf("media workflow: could not attach media to asset %s: %v", assetID, err)
		return
	}
	if !found {
		// Asset was deleted while we were rendering; drop the output.
		DeleteMediaFile(w.basePath, BucketPosters, fileID)
		return
	}
	w.hub.Broadcast(Event{Type: EventMediaGenerated, Payload: updated})
}

// Discard detaches any media from the asset, returning it to the bare state.
// Discarding an asset without media is a no-op.
func (w *MediaWorkflow) Discard(assetID string) error {
	asset, exists := w.store.Get(assetID)
	if !exists {
		return ErrNotFound("asset not found")
	}
	if asset.Media == nil {
		return nil
	}
	fileID := mediaFileID(asset.Media.URL)
	if _, _, err := w.store.Update(assetID, AssetPatch{ClearMedia: true}); err != nil {
		return err
	}
	DeleteMediaFile(w.basePath, BucketPosters, fileID)
	w.hub.Broadcast(Event{Type: EventMediaDiscarded, Payload: map[string]string{"assetId": assetID}})
	return nil
}

func (w *MediaWorkflow) InFlight(assetID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inflight[assetID]
}

func (w *MediaWorkflow) clear(assetID string) {
	w.mu.Lock()
	delete(w.inflight, assetID)
	w.mu.Unlock()
}

// reset clears the pending marker after a failed derivation.
func (w *MediaWorkflow) reset(assetID string) {
	_, _, _ = w.store.Update(assetID, AssetPatch{ClearMedia: true})
}

func resolutionLabel(width, height int) string {
	return strconv.Itoa(width) + "x" + strconv.Itoa(height)
}

func mediaFileID(mediaURL string) string {
	trimmed := strings.TrimSuffix(mediaURL, "/content")
	idx := strings.LastIndex(trimmed, "/")
	if idx == -1 {
		return ""
	}
	return trimmed[idx+1:]
}
