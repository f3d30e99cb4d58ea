package wheel

import "image/color"

// RingSegment is one quad of the hue ring. A corners are colored ColorA, B corners ColorB.
type RingSegment struct {
	OuterA, InnerA, InnerB, OuterB Point
	ColorA, ColorB                 RGB
}

// Vertex is a colored triangle corner.
type Vertex struct {
	Position Point
	Color    RGB
}

// Line is the hue indicator.
type Line struct {
	Start, End Point
	Thickness  float64
	Color      color.RGBA
	Active     bool
}

// Marker is the sample square showing the selected saturation/value.
type Marker struct {
	Center       Point
	Fill         Rect
	Outline      Rect
	FillColor    RGB
	OutlineColor color.RGBA
	Active       bool
}

// RenderDescriptor tells a rasterizer what to draw for one frame.
// Triangle relies on linear vertex color interpolation.
type RenderDescriptor struct {
	Geometry Geometry
	Corners  Corners
	Zone     HitZone
	Color    HSV

	// Ring is empty and HueLine is nil when the picker has no ring (0 segments).
	Ring     []RingSegment
	HueLine  *Line
	Triangle [3]Vertex
	Marker   Marker
}

// Describe builds the drawing of a picker showing resolved.
func (p *Picker) Describe(bounds Rect, resolved HSV, hit HitState) *RenderDescriptor {
	cfg := p.cfg
	resolved = resolved.Normalized()
	g, corners := cfg.BuildGeometry(bounds, resolved.Hue)

	result := &RenderDescriptor{
		Geometry: g,
		Corners:  corners,
		Zone:     hit.Zone,
		Color:    resolved,
	}

	// 1.0: ring + hue line
	if cfg.segments > 0 {
		result.Ring = cfg.ring(g)
		result.HueLine = &Line{
			Start:     Polar(g.Center, resolved.Hue, g.InnerRadius-cfg.hueLineOverhang),
			End:       Polar(g.Center, resolved.Hue, g.OuterRadius+cfg.hueLineOverhang),
			Thickness: cfg.hueLineThickness,
			Color:     cfg.highlight(hit.Dragging(ZoneRing)),
			Active:    hit.Dragging(ZoneRing),
		}
	}

	// 2.0: triangle
	result.Triangle = [3]Vertex{
		{corners.Color, cfg.convert(resolved.Hue, 1, 1)},
		{corners.White, White},
		{corners.Black, Black},
	}

	// 3.0: marker
	center := SamplePosition(corners, resolved.Saturation, resolved.Value)
	r := cfg.markerRadius
	result.Marker = Marker{
		Center:       center,
		Fill:         Rect{center.X - r, center.Y - r, 2 * r, 2 * r},
		Outline:      Rect{center.X - r - 1, center.Y - r - 1, 2*r + 2, 2*r + 2},
		FillColor:    cfg.convert(resolved.Hue, resolved.Saturation, resolved.Value),
		OutlineColor: cfg.highlight(hit.Dragging(ZoneTriangle)),
		Active:       hit.Dragging(ZoneTriangle),
	}

	return result
}

func (c *Config) ring(g Geometry) []RingSegment {
	result := make([]RingSegment, 0, c.segments)
	step := 360.0 / float64(c.segments)

	colorA := c.convert(0, 1, 1)
	outerA := Polar(g.Center, 0, g.OuterRadius)
	innerA := Polar(g.Center, 0, g.InnerRadius)

	for i := 1; i <= c.segments; i++ {
		hue := float64(i) * step
		colorB := c.convert(hue, 1, 1)
		outerB := Polar(g.Center, hue, g.OuterRadius)
		innerB := Polar(g.Center, hue, g.InnerRadius)

		result = append(result, RingSegment{
			OuterA: outerA,
			InnerA: innerA,
			InnerB: innerB,
			OuterB: outerB,
			ColorA: colorA,
			ColorB: colorB,
		})

		colorA, outerA, innerA = colorB, outerB, innerB
	}

	return result
}

func (c *Config) highlight(active bool) color.RGBA {
	if active {
		return c.selectingColor
	}

	return c.idleColor
}
