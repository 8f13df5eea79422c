package services

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Platform specs mirror the posting surfaces: short-video platforms get a
// vertical canvas, everything else renders widescreen.
const (
	AspectVertical   = "9:16"
	AspectHorizontal = "16:9"

	verticalWidth    = 1080
	verticalHeight   = 1920
	horizontalWidth  = 1920
	horizontalHeight = 1080
)

var verticalHints = []string{"tiktok", "douyin", "xiaohongshu", "shorts", "reel", "rednote", "channel"}

func VerticalPlatform(platform string) bool {
	p := strings.ToLower(platform)
	for _, hint := range verticalHints {
		if strings.Contains(p, hint) {
			return true
		}
	}
	return false
}

func PosterSpecs(platform string) (width, height int, aspect string) {
	if VerticalPlatform(platform) {
		return verticalWidth, verticalHeight, AspectVertical
	}
	return horizontalWidth, horizontalHeight, AspectHorizontal
}

var (
	gradientStart = color.RGBA{R: 0x1e, G: 0x1b, B: 0x4b, A: 0xff}
	gradientEnd   = color.RGBA{R: 0x4c, G: 0x1d, B: 0x95, A: 0xff}
	textWhite     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	styleAmber    = color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}
)

// RenderPoster draws the placeholder cover art locally: a diagonal gradient,
// the platform badge, the wrapped title and the visual style tag. The output
// is deterministic for a given input.
func RenderPoster(title, platform, style string) ([]byte, string, error) {
	width, height, aspect := PosterSpecs(platform)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillGradient(img, width, height)

	face := basicfont.Face7x13
	drawCentered(img, face, strings.ToUpper(platform), width/2, height/8, textWhite)

	lines := wrapText(face, title, width-200)
	y := height/2 - len(lines)*20/2
	for _, line := range lines {
		drawCentered(img, face, line, width/2, y, textWhite)
		y += 20
	}

	drawCentered(img, face, "Style: "+style, width/2, height-height/8, styleAmber)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), aspect, nil
}

func fillGradient(img *image.RGBA, width, height int) {
	span := float64(width + height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := float64(x+y) / span
			img.SetRGBA(x, y, color.RGBA{
				R: lerp(gradientStart.R, gradientEnd.R, t),
				G: lerp(gradientStart.G, gradientEnd.G, t),
				B: lerp(gradientStart.B, gradientEnd.B, t),
				A: 0xff,
			})
		}
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func drawCentered(img *image.RGBA, face font.Face, text string, cx, y int, col color.RGBA) {
	width := font.MeasureString(face, text).Ceil()
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(cx-width/2, y),
	}
	drawer.DrawString(text)
}

func wrapText(face font.Face, text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	lines := []string{}
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if font.MeasureString(face, candidate).Ceil() > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
