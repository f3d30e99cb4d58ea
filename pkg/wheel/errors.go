package wheel

import "errors"

var (
	ErrInvalidColor         = errors.New("invalid color")
	ErrRingThickness        = errors.New("ring thickness must be a positive number")
	ErrNegativeInset        = errors.New("triangle inset must be a non-negative number")
	ErrNegativeMarkerRadius = errors.New("marker radius must be a non-negative number")
	ErrSegmentsOutOfRange   = errors.New("segments out of range")
	ErrNilConverter         = errors.New("nil HSV to RGB converter")
)
