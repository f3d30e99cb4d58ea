package snapshot

import "errors"

var (
	ErrNothingToDraw = errors.New("nothing to draw - degenerate wheel")
	ErrInkscape      = errors.New("inkscape export failed")
	ErrParse         = errors.New("cannot parse svg")
)
