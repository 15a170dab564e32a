package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"scribble-quest/api/internal/util"
)

// A pixel counts as ink when its 8-bit R+G+B sum is below this. Alpha is
// ignored, matching the reference behavior.
const inkChannelSum = 750

// DefaultInkPixelThreshold is the absolute ink-pixel count above which a
// canvas counts as drawn on. It is deliberately not resolution-normalized;
// the reference calibrates against one fixed canvas size.
const DefaultInkPixelThreshold = 100

// DecodeSubmission turns a data-URL (or bare base64) canvas payload into a
// raster image plus its MIME type and raw bytes.
func DecodeSubmission(dataURL string) (image.Image, []byte, string, error) {
	raw, hintMIME, err := util.DecodeBase64MaybeDataURL(dataURL)
	if err != nil {
		return nil, nil, "", fmt.Errorf("bad base64: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, "", fmt.Errorf("bad image: %w", err)
	}
	return img, raw, util.PickMIME("", hintMIME, raw), nil
}

// Analyze counts non-near-white pixels. threshold <= 0 means the default.
func Analyze(img image.Image, threshold int) Analysis {
	if threshold <= 0 {
		threshold = DefaultInkPixelThreshold
	}
	b := img.Bounds()
	ink := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if (r>>8)+(g>>8)+(bl>>8) < inkChannelSum {
				ink++
			}
		}
	}
	total := b.Dx() * b.Dy()
	a := Analysis{
		Width:     b.Dx(),
		Height:    b.Dy(),
		InkPixels: ink,
	}
	if total > 0 {
		a.InkDensity = float64(ink) / float64(total)
	}
	a.HasContent = ink > threshold
	return a
}
