package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gucio321/hsvwheel/pkg/wheel"
)

var _ wheel.Input = pointer{}

// pointer reads mouse or (if any) first touch.
type pointer struct{}

func (pointer) PointerPosition() wheel.Point {
	var x, y int
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y = ebiten.TouchPosition(ids[0])
	} else {
		x, y = ebiten.CursorPosition()
	}

	return wheel.Pt(float64(x), float64(y))
}

func (pointer) PrimaryPressed() bool {
	ids := ebiten.AppendTouchIDs(nil)
	switch {
	case len(ids) > 1:
		// two fingers are a gesture, not a pick
		return false
	case len(ids) == 1:
		return true
	}

	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
