package wheel

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

const (
	DefaultRingThickness    = 20
	DefaultTriangleInset    = 15
	DefaultSegments         = 60
	DefaultMarkerRadius     = 3
	DefaultHueLineThickness = 4
	DefaultHueLineOverhang  = 4

	// MaxSegments keeps ring vertex count within 16-bit indices (4 vertices per segment).
	MaxSegments = 4096
)

var (
	DefaultIdleColor      = colornames.Gray
	DefaultSelectingColor = colornames.Dodgerblue
)

// Converter converts HSV into RGB. HSVToRGB is the default one.
type Converter func(h, s, v float64) RGB

// Config describes picker layout and style.
// Zero value is not usable; use NewConfig.
type Config struct {
	ringThickness    float64
	triangleInset    float64
	segments         int
	markerRadius     float64
	hueLineThickness float64
	hueLineOverhang  float64
	idleColor        color.RGBA
	selectingColor   color.RGBA
	convert          Converter
}

// NewConfig creates Config with default values.
func NewConfig() *Config {
	return &Config{
		ringThickness:    DefaultRingThickness,
		triangleInset:    DefaultTriangleInset,
		segments:         DefaultSegments,
		markerRadius:     DefaultMarkerRadius,
		hueLineThickness: DefaultHueLineThickness,
		hueLineOverhang:  DefaultHueLineOverhang,
		idleColor:        DefaultIdleColor,
		selectingColor:   DefaultSelectingColor,
		convert:          HSVToRGB,
	}
}

// RingThickness sets width of the hue ring (outer - inner radius).
func (c *Config) RingThickness(t float64) *Config {
	c.ringThickness = t
	return c
}

// TriangleInset sets gap between inner ring edge and triangle corners.
func (c *Config) TriangleInset(inset float64) *Config {
	c.triangleInset = inset
	return c
}

// Segments sets number of ring segments. 0 hides the ring and stops it from picking hue.
func (c *Config) Segments(n int) *Config {
	c.segments = n
	return c
}

// MarkerRadius sets half-size of the sample marker square.
func (c *Config) MarkerRadius(r float64) *Config {
	c.markerRadius = r
	return c
}

// HueLine sets hue indicator thickness and how far it sticks out of the ring on both sides.
func (c *Config) HueLine(thickness, overhang float64) *Config {
	c.hueLineThickness = thickness
	c.hueLineOverhang = overhang
	return c
}

// Highlight sets colors used for indicators when idle and while dragging.
func (c *Config) Highlight(idle, selecting color.Color) *Config {
	c.idleColor = color.RGBAModel.Convert(idle).(color.RGBA)
	c.selectingColor = color.RGBAModel.Convert(selecting).(color.RGBA)
	return c
}

// Converter replaces HSV to RGB conversion used for ring and triangle colors.
func (c *Config) Converter(fn Converter) *Config {
	c.convert = fn
	return c
}

func (c *Config) GetSegments() int {
	return c.segments
}

func (c *Config) GetRingThickness() float64 {
	return c.ringThickness
}

func (c *Config) GetTriangleInset() float64 {
	return c.triangleInset
}

func (c *Config) GetMarkerRadius() float64 {
	return c.markerRadius
}

// Validate checks if c is usable.
func (c *Config) Validate() error {
	// negated comparisons so NaN fails too
	switch {
	case !(c.ringThickness > 0) || math.IsInf(c.ringThickness, 0):
		return fmt.Errorf("%w: %v", ErrRingThickness, c.ringThickness)
	case !(c.triangleInset >= 0) || math.IsInf(c.triangleInset, 0):
		return fmt.Errorf("%w: %v", ErrNegativeInset, c.triangleInset)
	case !(c.markerRadius >= 0) || math.IsInf(c.markerRadius, 0):
		return fmt.Errorf("%w: %v", ErrNegativeMarkerRadius, c.markerRadius)
	case c.segments < 0 || c.segments > MaxSegments:
		return fmt.Errorf("%w: %d not in [0, %d]", ErrSegmentsOutOfRange, c.segments, MaxSegments)
	case c.convert == nil:
		return ErrNilConverter
	}

	return nil
}
