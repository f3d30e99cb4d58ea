package wheel

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSV is a color in hue/saturation/value form.
// Hue is in degrees [0, 360), Saturation and Value are in [0, 1].
type HSV struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
}

// RGB is a normalized color (every channel in [0, 1]).
type RGB struct {
	R, G, B float64
}

var (
	White = RGB{1, 1, 1}
	Black = RGB{0, 0, 0}
)

// NormalizeHue wraps h into [0, 360). Non-finite values become 0.
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}

	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	// -1e-18 + 360 rounds up to 360
	if h >= 360 {
		h = 0
	}

	return h
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v):
		return lo
	case v < lo:
		return lo
	case v > hi:
		return hi
	}

	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

// Normalized returns c with hue wrapped and saturation/value clamped.
// Valid colors are returned unchanged.
func (c HSV) Normalized() HSV {
	return HSV{
		Hue:        NormalizeHue(c.Hue),
		Saturation: clamp01(c.Saturation),
		Value:      clamp01(c.Value),
	}
}

// HSVToRGB converts HSV into RGB using 60 degree sectors.
// Saturation <= 0 gives gray of brightness v.
func HSVToRGB(h, s, v float64) RGB {
	if s <= 0 {
		return RGB{v, v, v}
	}

	hh := NormalizeHue(h) / 60
	sector := int(math.Floor(hh)) % 6
	f := hh - math.Floor(hh)

	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch sector {
	case 0:
		return RGB{v, t, p}
	case 1:
		return RGB{q, v, p}
	case 2:
		return RGB{p, v, t}
	case 3:
		return RGB{p, q, v}
	case 4:
		return RGB{t, p, v}
	default:
		return RGB{v, p, q}
	}
}

// RGB converts c with HSVToRGB.
func (c HSV) RGB() RGB {
	return HSVToRGB(c.Hue, c.Saturation, c.Value)
}

// RGBA converts c into opaque color.RGBA.
func (c HSV) RGBA() color.RGBA {
	return c.RGB().RGBA()
}

// Hex returns "#rrggbb" representation of c.
func (c HSV) Hex() string {
	rgb := c.RGB()
	return colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.Clamped().Hex()
}

func (c HSV) String() string {
	return fmt.Sprintf("hsv(%.2f, %.4f, %.4f)", c.Hue, c.Saturation, c.Value)
}

// RGBA converts normalized rgb into opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	r, g, b := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// RGBFromColor normalizes any color.Color (alpha is dropped).
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{float64(r) / 0xffff, float64(g) / 0xffff, float64(b) / 0xffff}
}

// FromColor returns HSV representation of an RGB color.
func FromColor(c color.Color) HSV {
	rgb := RGBFromColor(c)
	h, s, v := colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.Hsv()

	return HSV{Hue: h, Saturation: s, Value: v}.Normalized()
}

// ParseHex parses "#rrggbb" into HSV.
func ParseHex(s string) (HSV, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return HSV{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
	}

	h, sat, v := c.Hsv()

	return HSV{Hue: h, Saturation: sat, Value: v}.Normalized(), nil
}
