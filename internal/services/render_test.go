package services

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerticalPlatformDetection(t *testing.T) {
	vertical := []string{"TikTok", "Xiaohongshu", "WeChat Channel", "rednote", "YouTube Shorts", "Instagram Reels"}
	for _, platform := range vertical {
		assert.True(t, VerticalPlatform(platform), platform)
	}
	horizontal := []string{"Bilibili", "Generic", "YouTube", ""}
	for _, platform := range horizontal {
		assert.False(t, VerticalPlatform(platform), platform)
	}
}

func TestRenderPosterDimensions(t *testing.T) {
	data, aspect, err := RenderPoster("How I gained 10k followers in 30 days", "TikTok", "Modern, Clean")
	require.NoError(t, err)
	assert.Equal(t, AspectVertical, aspect)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1080, img.Bounds().Dx())
	assert.Equal(t, 1920, img.Bounds().Dy())

	data, aspect, err = RenderPoster("Quarterly strategy recap", "Generic", "Minimal")
	require.NoError(t, err)
	assert.Equal(t, AspectHorizontal, aspect)
	img, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1920, img.Bounds().Dx())
	assert.Equal(t, 1080, img.Bounds().Dy())
}

func TestRenderPosterIsDeterministic(t *testing.T) {
	first, _, err := RenderPoster("Same input", "TikTok", "Clean")
	require.NoError(t, err)
	second, _, err := RenderPoster("Same input", "TikTok", "Clean")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
