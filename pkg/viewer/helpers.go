package viewer

import (
	"fmt"

	"github.com/gucio321/hsvwheel/pkg/wheel"
)

const (
	margin     = 10
	swatchSize = 34
	swatchGap  = 20
	minScale   = 0.25
	maxScale   = 4
)

// swatch returns outline and fill rects of the preview swatch placed right of the picker.
func swatch(bounds wheel.Rect) (outline, fill wheel.Rect) {
	outline = wheel.Rect{
		X:      bounds.X + bounds.Width + swatchGap,
		Y:      bounds.Y,
		Width:  swatchSize,
		Height: swatchSize,
	}

	fill = wheel.Rect{
		X:      outline.X + 1,
		Y:      outline.Y + 1,
		Width:  swatchSize - 2,
		Height: swatchSize - 2,
	}

	return outline, fill
}

func clampScale(s float64) float64 {
	switch {
	case s < minScale:
		return minScale
	case s > maxScale:
		return maxScale
	}

	return s
}

func label(c wheel.HSV) string {
	return fmt.Sprintf("H %6.2f\nS %6.4f\nV %6.4f\n%s", c.Hue, c.Saturation, c.Value, c.Hex())
}
