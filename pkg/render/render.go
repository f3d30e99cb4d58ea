// Package render rasterizes wheel.RenderDescriptor with ebiten.
//
// Ring quads and the triangle are drawn with DrawTriangles and per-vertex
// colors. Ebiten interpolates vertex colors linearly in screen space, which
// is what wheel.Project assumes.
package render

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gucio321/hsvwheel/pkg/wheel"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// white returns 1x1 white source image for DrawTriangles.
// Sampling the middle pixel of a 3x3 image keeps edges clean.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})

	return whiteSubImage
}

func vertex(p wheel.Point, c wheel.RGB) ebiten.Vertex {
	pos := wheel.Redefine[float32](p)
	return ebiten.Vertex{
		DstX:   pos.X,
		DstY:   pos.Y,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R),
		ColorG: float32(c.G),
		ColorB: float32(c.B),
		ColorA: 1,
	}
}

// RingVertices returns ring quads as triangles (two per segment).
func RingVertices(d *wheel.RenderDescriptor) ([]ebiten.Vertex, []uint16) {
	vertices := make([]ebiten.Vertex, 0, 4*len(d.Ring))
	indices := make([]uint16, 0, 6*len(d.Ring))

	for i, s := range d.Ring {
		base := uint16(4 * i)
		vertices = append(vertices,
			vertex(s.OuterA, s.ColorA),
			vertex(s.InnerA, s.ColorA),
			vertex(s.InnerB, s.ColorB),
			vertex(s.OuterB, s.ColorB),
		)
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	return vertices, indices
}

// TriangleVertices returns the saturation/value triangle.
func TriangleVertices(d *wheel.RenderDescriptor) ([]ebiten.Vertex, []uint16) {
	vertices := make([]ebiten.Vertex, 0, len(d.Triangle))
	for _, v := range d.Triangle {
		vertices = append(vertices, vertex(v.Position, v.Color))
	}

	return vertices, []uint16{0, 1, 2}
}

// Draw draws d onto dst: ring, hue line, triangle and then the marker.
func Draw(dst *ebiten.Image, d *wheel.RenderDescriptor) {
	if d.Geometry.OuterRadius <= 0 {
		return
	}

	src := white()
	opts := &ebiten.DrawTrianglesOptions{AntiAlias: true}

	// 1.0: ring
	if len(d.Ring) > 0 {
		vs, is := RingVertices(d)
		dst.DrawTriangles(vs, is, src, opts)
	}

	// 1.1: hue line
	if l := d.HueLine; l != nil {
		start, end := wheel.Redefine[float32](l.Start), wheel.Redefine[float32](l.End)
		vector.StrokeLine(dst, start.X, start.Y, end.X, end.Y, float32(l.Thickness), l.Color, true)
	}

	// 2.0: triangle
	if !d.Geometry.Degenerate() {
		vs, is := TriangleVertices(d)
		dst.DrawTriangles(vs, is, src, opts)
	}

	// 3.0: marker (outline first, fill on top)
	fillRect(dst, d.Marker.Outline, d.Marker.OutlineColor)
	fillRect(dst, d.Marker.Fill, d.Marker.FillColor.RGBA())
}

func fillRect(dst *ebiten.Image, r wheel.Rect, c color.Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}

	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}
