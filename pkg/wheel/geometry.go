package wheel

import "math"

// Corner angles relative to hue. Order matters: Project relies on it.
const (
	ColorCornerAngle = 0
	WhiteCornerAngle = 120
	BlackCornerAngle = 240
)

// Geometry describes the wheel laid out in some bounds.
type Geometry struct {
	Center         Point
	OuterRadius    float64
	InnerRadius    float64
	TriangleRadius float64
}

// Degenerate reports whether there is no triangle to pick from.
func (g Geometry) Degenerate() bool {
	return !(g.TriangleRadius > 0)
}

// Corners are triangle vertices for a given hue.
type Corners struct {
	Color, White, Black Point
}

// BuildGeometry lays the wheel out in bounds and places triangle corners for hue.
// Radii never go below zero, so too small bounds give a zero-size (degenerate) wheel.
func (c *Config) BuildGeometry(bounds Rect, hue float64) (Geometry, Corners) {
	g := c.geometry(bounds)
	return g, g.Corners(hue)
}

func (c *Config) geometry(bounds Rect) Geometry {
	halfWidth, halfHeight := bounds.Width/2, bounds.Height/2
	outer := math.Max(math.Min(halfWidth, halfHeight), 0)
	inner := math.Max(outer-c.ringThickness, 0)
	triangle := math.Max(inner-c.triangleInset, 0)

	return Geometry{
		Center:         bounds.Center(),
		OuterRadius:    outer,
		InnerRadius:    inner,
		TriangleRadius: triangle,
	}
}

// Corners places triangle corners at hue + {0, 120, 240} degrees.
func (g Geometry) Corners(hue float64) Corners {
	hue = NormalizeHue(hue)

	return Corners{
		Color: Polar(g.Center, hue+ColorCornerAngle, g.TriangleRadius),
		White: Polar(g.Center, hue+WhiteCornerAngle, g.TriangleRadius),
		Black: Polar(g.Center, hue+BlackCornerAngle, g.TriangleRadius),
	}
}

// Classify finds the zone p lies in.
func (g Geometry) Classify(p Point) HitZone {
	if !(g.OuterRadius > 0) {
		return ZoneOutside
	}

	d := p.DistanceSqr(g.Center)
	switch {
	case d < g.InnerRadius*g.InnerRadius:
		return ZoneTriangle
	case d <= g.OuterRadius*g.OuterRadius:
		return ZoneRing
	}

	return ZoneOutside
}

// HueAt returns hue pointed by p (angle around center), in [0, 360).
func (g Geometry) HueAt(p Point) float64 {
	return NormalizeHue(math.Atan2(p.Y-g.Center.Y, p.X-g.Center.X) * 180 / math.Pi)
}

// SamplePosition returns the point inside the triangle that represents saturation s and value v.
func SamplePosition(c Corners, s, v float64) Point {
	return Lerp(c.Black, Lerp(c.White, c.Color, s), v)
}
