package snapshot

import (
	"fmt"
	"os"

	"github.com/kpango/glg"

	"github.com/gucio321/hsvwheel/pkg/wheel"
)

// New draws d in a document as large as d's bounding square.
func New(d *wheel.RenderDescriptor) (*Builder, error) {
	return NewWithSteps(d, DefaultTriangleSteps)
}

// NewWithSteps is New with custom triangle subdivision.
func NewWithSteps(d *wheel.RenderDescriptor, steps int) (*Builder, error) {
	g := d.Geometry
	if g.OuterRadius <= 0 {
		return nil, ErrNothingToDraw
	}

	if steps < 1 {
		steps = 1
	}

	margin := 0.0
	if d.HueLine != nil {
		margin = d.HueLine.Thickness
	}

	// move everything so the wheel starts at (margin, margin)
	offset := wheel.Pt(g.OuterRadius+margin, g.OuterRadius+margin).Sub(g.Center)
	size := 2 * (g.OuterRadius + margin)

	b := NewBuilder(size, size)
	b.Commentf("wheel %v", d.Color)

	// 1.0: ring
	if len(d.Ring) > 0 {
		b.Commentf("BEGIN ring (%d segments)", len(d.Ring))
		for _, s := range d.Ring {
			b.Polygon(mix(s.ColorA, s.ColorB, 0.5).RGBA(),
				s.OuterA.Add(offset), s.InnerA.Add(offset), s.InnerB.Add(offset), s.OuterB.Add(offset))
		}
		b.Comment("END ring")
	}

	// 1.1: hue line
	if l := d.HueLine; l != nil {
		b.Comment("hue line")
		b.Line(l.Start.Add(offset), l.End.Add(offset), l.Thickness, l.Color)
	}

	// 2.0: triangle
	if !g.Degenerate() {
		b.Commentf("BEGIN triangle (%d pieces)", steps*steps)
		triangle(b, d.Triangle, offset, steps)
		b.Comment("END triangle")
	}

	// 3.0: marker
	b.Comment("marker")
	b.Rect(move(d.Marker.Outline, offset), d.Marker.OutlineColor)
	b.Rect(move(d.Marker.Fill, offset), d.Marker.FillColor.RGBA())

	return b, nil
}

// Write writes SVG snapshot of d to path.
func Write(path string, d *wheel.RenderDescriptor) error {
	b, err := New(d)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("cannot write snapshot %s: %w", path, err)
	}

	glg.Infof("snapshot with %d paths written to %s", b.Paths(), path)

	return nil
}

// triangle splits the triangle into steps^2 flat pieces.
// Grid point (i, j) is black + i/steps*(color-black) + j/steps*(white-black).
func triangle(b *Builder, t [3]wheel.Vertex, offset wheel.Point, steps int) {
	colorV, whiteV, blackV := t[0], t[1], t[2]
	n := float64(steps)

	at := func(i, j int) wheel.Point {
		a, w := float64(i)/n, float64(j)/n
		p := blackV.Position.
			Add(colorV.Position.Sub(blackV.Position).Mul(a)).
			Add(whiteV.Position.Sub(blackV.Position).Mul(w))

		return p.Add(offset)
	}

	colorAt := func(a, w float64) wheel.RGB {
		k := 1 - a - w
		return wheel.RGB{
			R: a*colorV.Color.R + w*whiteV.Color.R + k*blackV.Color.R,
			G: a*colorV.Color.G + w*whiteV.Color.G + k*blackV.Color.G,
			B: a*colorV.Color.B + w*whiteV.Color.B + k*blackV.Color.B,
		}
	}

	for i := 0; i < steps; i++ {
		for j := 0; i+j < steps; j++ {
			fi, fj := float64(i), float64(j)

			// pointing "up"
			b.Polygon(colorAt((fi+1.0/3)/n, (fj+1.0/3)/n).RGBA(), at(i, j), at(i+1, j), at(i, j+1))

			// and "down" one, when it fits
			if i+j < steps-1 {
				b.Polygon(colorAt((fi+2.0/3)/n, (fj+2.0/3)/n).RGBA(), at(i+1, j), at(i+1, j+1), at(i, j+1))
			}
		}
	}
}

func mix(a, b wheel.RGB, t float64) wheel.RGB {
	return wheel.RGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

func move(r wheel.Rect, offset wheel.Point) wheel.Rect {
	r.X += offset.X
	r.Y += offset.Y

	return r
}
