// Package snapshot writes a wheel.RenderDescriptor as SVG.
package snapshot

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gucio321/hsvwheel/pkg/wheel"
)

// DefaultTriangleSteps is how many times triangle edges are split.
// SVG has no per-vertex colors, so the triangle is drawn as
// DefaultTriangleSteps^2 flat pieces colored at their centroids.
const DefaultTriangleSteps = 16

// Builder builds SVG document out of flat-colored paths.
type Builder struct {
	code          string
	width, height float64
	comments      bool
	paths         int
}

// NewBuilder creates empty document of given size.
func NewBuilder(width, height float64) *Builder {
	return &Builder{
		width:    width,
		height:   height,
		comments: true,
	}
}

// Comments enables/disables <!-- --> comments in output.
func (b *Builder) Comments(enabled bool) *Builder {
	b.comments = enabled
	return b
}

// Comment writes comment to the document.
func (b *Builder) Comment(comment string) *Builder {
	if b.comments {
		b.code += fmt.Sprintf("<!-- %s -->\n", strings.ReplaceAll(comment, "--", "- -"))
	}

	return b
}

func (b *Builder) Commentf(format string, args ...interface{}) *Builder {
	return b.Comment(fmt.Sprintf(format, args...))
}

// Polygon draws closed polygon filled with c.
func (b *Builder) Polygon(c color.RGBA, points ...wheel.Point) *Builder {
	if len(points) < 3 {
		return b
	}

	b.code += fmt.Sprintf("<path d=\"%s Z\" fill=\"%s\" stroke=\"%[2]s\" stroke-width=\"0.5\"/>\n", pathData(points), hex(c))
	b.paths++

	return b
}

// Line draws a line of given thickness.
func (b *Builder) Line(p0, p1 wheel.Point, thickness float64, c color.RGBA) *Builder {
	b.code += fmt.Sprintf("<path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\"/>\n", pathData([]wheel.Point{p0, p1}), hex(c), num(thickness))
	b.paths++

	return b
}

// Rect draws filled rectangle.
func (b *Builder) Rect(r wheel.Rect, c color.RGBA) *Builder {
	if r.Width <= 0 || r.Height <= 0 {
		return b
	}

	return b.Polygon(c,
		wheel.Pt(r.X, r.Y),
		wheel.Pt(r.X+r.Width, r.Y),
		wheel.Pt(r.X+r.Width, r.Y+r.Height),
		wheel.Pt(r.X, r.Y+r.Height),
	)
}

// Paths returns number of paths drawn so far.
func (b *Builder) Paths() int {
	return b.paths
}

// String returns the whole SVG document.
func (b *Builder) String() string {
	return fmt.Sprintf(
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%[1]s\" height=\"%[2]s\" viewBox=\"0 0 %[1]s %[2]s\">\n%[3]s</svg>\n",
		num(b.width), num(b.height), b.code,
	)
}

func pathData(points []wheel.Point) string {
	parts := make([]string, 0, len(points))
	for i, p := range points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}

		parts = append(parts, fmt.Sprintf("%s%s,%s", cmd, num(p.X), num(p.Y)))
	}

	return strings.Join(parts, " ")
}

func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	if s == "-0" || s == "" {
		return "0"
	}

	return s
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
