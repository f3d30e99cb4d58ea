package wheel

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/colornames"
)

func pointsOf(d *RenderDescriptor) []Point {
	result := []Point{d.Geometry.Center, d.Corners.Color, d.Corners.White, d.Corners.Black, d.Marker.Center}
	for _, s := range d.Ring {
		result = append(result, s.OuterA, s.InnerA, s.InnerB, s.OuterB)
	}

	if d.HueLine != nil {
		result = append(result, d.HueLine.Start, d.HueLine.End)
	}

	return result
}

func TestPicker_Describe_ring(t *testing.T) {
	p := NewPicker(nil)
	d := p.Describe(testBounds, HSV{Hue: 90, Saturation: 0.5, Value: 0.5}, HitState{})

	if len(d.Ring) != DefaultSegments {
		t.Fatalf("expected %d segments, got %d", DefaultSegments, len(d.Ring))
	}

	if d.Ring[0].ColorA != (RGB{1, 0, 0}) {
		t.Errorf("ring should start red, got %v", d.Ring[0].ColorA)
	}

	last := d.Ring[len(d.Ring)-1]
	if !nearlyEqual(last.ColorB.R, 1, 1e-9) || !nearlyEqual(last.ColorB.G, 0, 1e-9) || !nearlyEqual(last.ColorB.B, 0, 1e-9) {
		t.Errorf("ring should end red, got %v", last.ColorB)
	}

	if last.OuterB.DistanceSqr(d.Ring[0].OuterA) > 1e-18 {
		t.Errorf("ring is not closed: %v != %v", last.OuterB, d.Ring[0].OuterA)
	}

	for i := 1; i < len(d.Ring); i++ {
		prev, cur := d.Ring[i-1], d.Ring[i]
		if prev.OuterB != cur.OuterA || prev.InnerB != cur.InnerA || prev.ColorB != cur.ColorA {
			t.Fatalf("segment %d does not continue segment %d", i, i-1)
		}

		if r := math.Sqrt(cur.OuterB.DistanceSqr(d.Geometry.Center)); !nearlyEqual(r, d.Geometry.OuterRadius, 1e-9) {
			t.Errorf("segment %d outer vertex at radius %v", i, r)
		}

		if r := math.Sqrt(cur.InnerB.DistanceSqr(d.Geometry.Center)); !nearlyEqual(r, d.Geometry.InnerRadius, 1e-9) {
			t.Errorf("segment %d inner vertex at radius %v", i, r)
		}
	}

	// 6 degrees per segment: segment 10 ends at hue 60 (yellow)
	if c := d.Ring[9].ColorB; !nearlyEqual(c.R, 1, 1e-9) || !nearlyEqual(c.G, 1, 1e-9) || !nearlyEqual(c.B, 0, 1e-9) {
		t.Errorf("expected yellow at 60 degrees, got %v", c)
	}
}

func TestPicker_Describe_triangle(t *testing.T) {
	p := NewPicker(nil)
	d := p.Describe(testBounds, HSV{Hue: 120, Saturation: 0.2, Value: 0.9}, HitState{})

	expected := [3]Vertex{
		{d.Corners.Color, RGB{0, 1, 0}},
		{d.Corners.White, White},
		{d.Corners.Black, Black},
	}

	for i := range expected {
		got := d.Triangle[i]
		if got.Position != expected[i].Position {
			t.Errorf("vertex %d at %v, expected %v", i, got.Position, expected[i].Position)
		}

		if !nearlyEqual(got.Color.R, expected[i].Color.R, 1e-9) ||
			!nearlyEqual(got.Color.G, expected[i].Color.G, 1e-9) ||
			!nearlyEqual(got.Color.B, expected[i].Color.B, 1e-9) {
			t.Errorf("vertex %d colored %v, expected %v", i, got.Color, expected[i].Color)
		}
	}
}

func TestPicker_Describe_marker(t *testing.T) {
	p := NewPicker(nil)
	hsv := HSV{Hue: 270, Saturation: 0.35, Value: 0.8}
	d := p.Describe(testBounds, hsv, HitState{Zone: ZoneTriangle, Pressed: true})

	if want := SamplePosition(d.Corners, hsv.Saturation, hsv.Value); d.Marker.Center != want {
		t.Errorf("marker at %v, expected %v", d.Marker.Center, want)
	}

	s, v := Project(d.Corners, d.Marker.Center)
	if !nearlyEqual(s, hsv.Saturation, 1e-4) || !nearlyEqual(v, hsv.Value, 1e-4) {
		t.Errorf("marker does not project back: s=%v v=%v", s, v)
	}

	r := float64(DefaultMarkerRadius)
	fill := Rect{d.Marker.Center.X - r, d.Marker.Center.Y - r, 2 * r, 2 * r}
	if d.Marker.Fill != fill {
		t.Errorf("fill rect %v, expected %v", d.Marker.Fill, fill)
	}

	outline := Rect{fill.X - 1, fill.Y - 1, fill.Width + 2, fill.Height + 2}
	if d.Marker.Outline != outline {
		t.Errorf("outline rect %v, expected %v", d.Marker.Outline, outline)
	}

	if d.Marker.FillColor != hsv.RGB() {
		t.Errorf("marker fill %v, expected %v", d.Marker.FillColor, hsv.RGB())
	}

	if !d.Marker.Active || d.Marker.OutlineColor != DefaultSelectingColor {
		t.Errorf("marker should be highlighted while dragging the triangle: %+v", d.Marker)
	}

	if d.HueLine.Active || d.HueLine.Color != DefaultIdleColor {
		t.Errorf("hue line should be idle while dragging the triangle: %+v", d.HueLine)
	}
}

func TestPicker_Describe_hueLine(t *testing.T) {
	p := NewPicker(NewConfig().Highlight(colornames.Red, colornames.Green))
	d := p.Describe(testBounds, HSV{Hue: 90}, HitState{Zone: ZoneRing, Pressed: true})

	if d.HueLine == nil {
		t.Fatal("hue line missing")
	}

	start, end := Pt(100, 100+80-4), Pt(100, 100+100+4)
	if d.HueLine.Start.DistanceSqr(start) > 1e-12 || d.HueLine.End.DistanceSqr(end) > 1e-12 {
		t.Errorf("hue line %v-%v, expected %v-%v", d.HueLine.Start, d.HueLine.End, start, end)
	}

	if !d.HueLine.Active || d.HueLine.Color != colornames.Green {
		t.Errorf("hue line should be highlighted while dragging the ring: %+v", d.HueLine)
	}

	if d.Marker.Active || d.Marker.OutlineColor != colornames.Red {
		t.Errorf("marker should be idle while dragging the ring: %+v", d.Marker)
	}

	// hovering is not dragging
	d = p.Describe(testBounds, HSV{Hue: 90}, HitState{Zone: ZoneRing})
	if d.HueLine.Active {
		t.Error("hue line should not be active without button held")
	}
}

func TestPicker_Describe_noRing(t *testing.T) {
	p := NewPicker(NewConfig().Segments(0))
	d := p.Describe(testBounds, HSV{Hue: 10, Saturation: 1, Value: 1}, HitState{Zone: ZoneRing, Pressed: true})

	if len(d.Ring) != 0 || d.HueLine != nil {
		t.Errorf("ring should be hidden, got %d segments and line %v", len(d.Ring), d.HueLine)
	}

	if d.Triangle[1].Color != White {
		t.Errorf("triangle still expected, got %+v", d.Triangle)
	}
}

func TestPicker_Describe_degenerate(t *testing.T) {
	p := NewPicker(nil)

	for _, bounds := range []Rect{{}, {X: 40, Y: 40}, {Width: -30, Height: -30}} {
		d := p.Describe(bounds, HSV{Hue: 200, Saturation: 0.5, Value: 0.5}, HitState{Zone: ZoneTriangle, Pressed: true})

		for _, pt := range pointsOf(d) {
			if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
				t.Fatalf("bounds %v: non-finite point %v in descriptor", bounds, pt)
			}
		}
	}
}

func TestPicker_Describe_converter(t *testing.T) {
	gray := func(_, _, v float64) RGB { return RGB{v, v, v} }
	p := NewPicker(NewConfig().Converter(gray))
	d := p.Describe(testBounds, HSV{Hue: 0, Saturation: 1, Value: 0.5}, HitState{})

	if d.Triangle[0].Color != (RGB{1, 1, 1}) {
		t.Errorf("custom converter ignored for triangle: %v", d.Triangle[0].Color)
	}

	if d.Marker.FillColor != (RGB{0.5, 0.5, 0.5}) {
		t.Errorf("custom converter ignored for marker: %v", d.Marker.FillColor)
	}
}

func TestPicker_Update(t *testing.T) {
	p := NewPicker(nil)
	in := PointerState{Position: Pt(100, 20), Pressed: true}

	result, d := p.Update(testBounds, in, HSV{Hue: 0, Saturation: 1, Value: 1})

	if hueDistance(result.Hue, 270) > 1e-9 {
		t.Errorf("pointer straight above centre should give hue 270, got %v", result.Hue)
	}

	if d.Zone != ZoneRing || d.Color != result || !d.HueLine.Active {
		t.Errorf("descriptor does not match update: %+v", d)
	}

	// triangle corners follow the new hue in the same frame
	if want := Polar(d.Geometry.Center, 270, d.Geometry.TriangleRadius); d.Corners.Color.DistanceSqr(want) > 1e-12 {
		t.Errorf("color corner at %v, expected %v", d.Corners.Color, want)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		Config   *Config
		Expected error
	}{
		{NewConfig(), nil},
		{NewConfig().Segments(0), nil},
		{NewConfig().Segments(MaxSegments), nil},
		{NewConfig().Segments(-1), ErrSegmentsOutOfRange},
		{NewConfig().Segments(MaxSegments + 1), ErrSegmentsOutOfRange},
		{NewConfig().RingThickness(-1), ErrRingThickness},
		{NewConfig().RingThickness(0), ErrRingThickness},
		{NewConfig().RingThickness(math.NaN()), ErrRingThickness},
		{NewConfig().RingThickness(math.Inf(1)), ErrRingThickness},
		{NewConfig().TriangleInset(0), nil},
		{NewConfig().TriangleInset(math.NaN()), ErrNegativeInset},
		{NewConfig().MarkerRadius(math.NaN()), ErrNegativeMarkerRadius},
		{NewConfig().MarkerRadius(math.Inf(1)), ErrNegativeMarkerRadius},
		{NewConfig().TriangleInset(-0.5), ErrNegativeInset},
		{NewConfig().MarkerRadius(-3), ErrNegativeMarkerRadius},
		{NewConfig().Converter(nil), ErrNilConverter},
	}

	for i, c := range tests {
		err := c.Config.Validate()
		if c.Expected == nil && err != nil {
			t.Errorf("case %d: unexpected error %v", i, err)
		}

		if c.Expected != nil && !errors.Is(err, c.Expected) {
			t.Errorf("case %d: expected %v, got %v", i, c.Expected, err)
		}
	}
}

func TestConfig_Highlight(t *testing.T) {
	cfg := NewConfig().Highlight(color.Gray{Y: 0x80}, color.NRGBA{0, 0, 0xff, 0xff})

	if cfg.highlight(false) != (color.RGBA{0x80, 0x80, 0x80, 0xff}) {
		t.Errorf("unexpected idle color %v", cfg.highlight(false))
	}

	if cfg.highlight(true) != (color.RGBA{0, 0, 0xff, 0xff}) {
		t.Errorf("unexpected selecting color %v", cfg.highlight(true))
	}
}
