// Package viewer hosts a single picker in an ebiten window.
package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kpango/glg"
	"golang.org/x/image/colornames"

	"github.com/gucio321/hsvwheel/pkg/render"
	"github.com/gucio321/hsvwheel/pkg/wheel"
)

var _ ebiten.Game = &Viewer{}

var (
	backgroundColor = colornames.Black
	swatchBorder    = colornames.Gray
)

// Viewer shows a picker and owns the selected color between frames.
type Viewer struct {
	picker *wheel.Picker
	input  wheel.Input
	size   wheel.Rect
	scale  float64

	color wheel.HSV
	desc  *wheel.RenderDescriptor
	hit   wheel.HitState

	onChange func(wheel.HSV)
}

// NewViewer creates a viewer of picker with preferred size (only Width/Height are used)
// starting with color c.
func NewViewer(picker *wheel.Picker, size wheel.Rect, c wheel.HSV) *Viewer {
	result := &Viewer{
		picker: picker,
		input:  pointer{},
		size:   size,
		scale:  1,
		color:  c.Normalized(),
	}

	result.desc = picker.Describe(result.bounds(), result.color, wheel.HitState{})

	return result
}

// OnChange registers callback called whenever the color changes.
func (v *Viewer) OnChange(cb func(wheel.HSV)) *Viewer {
	v.onChange = cb
	return v
}

// Color returns currently selected color.
func (v *Viewer) Color() wheel.HSV {
	return v.color
}

func (v *Viewer) bounds() wheel.Rect {
	return wheel.Rect{
		X:      margin,
		Y:      margin,
		Width:  v.size.Width * v.scale,
		Height: v.size.Height * v.scale,
	}
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	_, wheelY := ebiten.Wheel()
	v.tick(v.input, wheelY)

	return nil
}

// tick advances one frame with given input.
func (v *Viewer) tick(in wheel.Input, wheelY float64) {
	v.scale = clampScale(v.scale + wheelY*0.1)

	bounds := v.bounds()
	pos, pressed := in.PointerPosition(), in.PrimaryPressed()
	newColor, hit := v.picker.ResolveHit(bounds, pos, pressed, v.color)

	if hit != v.hit {
		glg.Debugf("pointer %v: zone %v, pressed %v", pos, hit.Zone, hit.Pressed)
		v.hit = hit
	}

	if newColor != v.color {
		glg.Debugf("color changed: %v -> %v", v.color, newColor)
		v.color = newColor

		if v.onChange != nil {
			v.onChange(newColor)
		}
	}

	v.desc = v.picker.Describe(bounds, v.color, hit)
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	render.Draw(screen, v.desc)

	outline, fill := swatch(v.bounds())
	fillRect(screen, outline, swatchBorder)
	fillRect(screen, fill, v.color.RGBA())

	ebitenutil.DebugPrintAt(screen, label(v.color), int(outline.X), int(outline.Y+outline.Height)+4)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}
