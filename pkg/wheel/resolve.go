package wheel

import "math"

// Input is polled once per Update for pointer state.
type Input interface {
	PointerPosition() Point
	PrimaryPressed() bool
}

// PointerState is a fixed Input snapshot.
type PointerState struct {
	Position Point
	Pressed  bool
}

func (p PointerState) PointerPosition() Point {
	return p.Position
}

func (p PointerState) PrimaryPressed() bool {
	return p.Pressed
}

// HitState is what Resolve found out about the pointer.
type HitState struct {
	Zone    HitZone
	Pressed bool
}

// Dragging reports whether zone z is being dragged.
func (h HitState) Dragging(z HitZone) bool {
	return h.Pressed && h.Zone == z
}

// Resolve returns current updated by the pointer.
// With the button released current is returned as is.
func (p *Picker) Resolve(bounds Rect, pointer Point, pressed bool, current HSV) HSV {
	result, _ := p.ResolveHit(bounds, pointer, pressed, current)
	return result
}

// ResolveHit is Resolve that also reports the zone under the pointer.
func (p *Picker) ResolveHit(bounds Rect, pointer Point, pressed bool, current HSV) (HSV, HitState) {
	current = current.Normalized()

	// 1.0: lay out with the hue we got
	g := p.cfg.geometry(bounds)
	state := HitState{
		Zone:    g.Classify(pointer),
		Pressed: pressed,
	}

	if !pressed {
		return current, state
	}

	result := current

	// 2.0: pick
	switch state.Zone {
	case ZoneRing:
		// no ring drawn, nothing to pick from
		if p.cfg.segments == 0 {
			break
		}

		result.Hue = g.HueAt(pointer)
	case ZoneTriangle:
		if g.Degenerate() {
			break
		}

		// corners must follow the (maybe new) hue
		corners := g.Corners(result.Hue)
		result.Saturation, result.Value = Project(corners, pointer)
	}

	return result, state
}

// Project maps point s onto the triangle and returns saturation and value it represents.
// It is the inverse of SamplePosition: the triangle is drawn with linear
// vertex color interpolation, so the same linear relation is solved here.
func Project(c Corners, s Point) (saturation, value float64) {
	p0, p1, p2 := c.Black, c.White, c.Color

	colorDir := p2.Sub(p0).Normalize()
	whiteDir := p1.Sub(p0).Normalize()
	rel := s.Sub(p0)
	tColor := colorDir.Dot(rel)
	tWhite := whiteDir.Dot(rel)

	// 1.0: behind the black corner
	if tColor <= 0 && tWhite <= 0 {
		return 0, 0
	}

	// 1.1: points beyond black-color or black-white edge go onto that edge
	clamped := s
	if tColor >= 0 {
		foot := p0.Add(colorDir.Mul(tColor))
		if p1.DistanceSqr(foot) < p1.DistanceSqr(s) {
			clamped = foot
		}
	}

	if tWhite >= 0 {
		foot := p0.Add(whiteDir.Mul(tWhite))
		if p2.DistanceSqr(foot) < p2.DistanceSqr(s) {
			clamped = foot
		}
	}

	dir := clamped.Sub(p0)
	edge := p2.Sub(p1)
	edgeLenSqr := edge.Dot(edge)
	if dir.Dot(dir) == 0 || edgeLenSqr == 0 {
		return 0, 0
	}

	// 2.0: where the ray black->clamped crosses white-color edge
	var u float64
	if den := edge.Cross(dir); den != 0 {
		u = p0.Sub(p1).Cross(dir) / den
	} else {
		u = clamped.Sub(p1).Dot(edge) / edgeLenSqr
	}

	u = clamp01(u)
	p := Lerp(p1, p2, u)

	reach := p.DistanceSqr(p0)
	if reach == 0 {
		return 0, 0
	}

	// sqrt(a/b) == sqrt(a)/sqrt(b)
	value = clamp01(math.Sqrt(clamped.DistanceSqr(p0) / reach))
	saturation = clamp01(math.Sqrt(p.DistanceSqr(p1) / edgeLenSqr))

	return saturation, value
}
