package imaging

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
)

// QualitySignal is an objective measurement of an uploaded image, used for
// logging and warnings only; it never gates recognition.
type QualitySignal struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	MeanBrightness float64 `json:"mean_brightness"`
}

// Analyze measures resolution and mean luminance of the image. A decode
// failure degrades to the zero signal, which reads as low quality, rather
// than aborting the request.
func Analyze(imageData []byte) QualitySignal {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		slog.Warn("Failed to decode image for quality analysis", "error", err)
		return QualitySignal{}
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Sample on a coarse grid; exact brightness is not needed.
	stepX := max(1, width/64)
	stepY := max(1, height/64)

	var sum float64
	var samples int
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			r, g, b, _ := img.At(x, y).RGBA()
			sum += 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			samples++
		}
	}

	var mean float64
	if samples > 0 {
		mean = sum / float64(samples)
	}

	return QualitySignal{Width: width, Height: height, MeanBrightness: mean}
}

const (
	minWidth      = 800
	minHeight     = 600
	minBrightness = 40.0
	maxBrightness = 235.0
)

// LowQuality reports whether the signal suggests the photo is too small, too
// dark or blown out to transcribe reliably.
func LowQuality(sig QualitySignal) bool {
	if sig.Width < minWidth || sig.Height < minHeight {
		return true
	}
	return sig.MeanBrightness < minBrightness || sig.MeanBrightness > maxBrightness
}
