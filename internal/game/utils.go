package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/iburimskiy/balloon-pop/internal/palette"
	"github.com/iburimskiy/balloon-pop/internal/scene"
)

// toNRGBA turns a palette colour and a 0-255 alpha into a straight-alpha colour.
func toNRGBA(c palette.RGB, alpha float64) color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: uint8(scene.Clamp01(alpha/255)*255 + 0.5)}
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
