package wheel

import "math"

// BetterPoint is image.Point but better (and floating).
type BetterPoint[T ~float32 | ~float64] struct {
	X, Y T
}

// Point is a screen-space position used all over the picker.
type Point = BetterPoint[float64]

// Pt creates a Point.
func Pt(x, y float64) Point {
	return Point{x, y}
}

func (b BetterPoint[T]) Add(other BetterPoint[T]) BetterPoint[T] {
	return BetterPoint[T]{b.X + other.X, b.Y + other.Y}
}

func (b BetterPoint[T]) Sub(other BetterPoint[T]) BetterPoint[T] {
	return BetterPoint[T]{b.X - other.X, b.Y - other.Y}
}

func (b BetterPoint[T]) Mul(scalar T) BetterPoint[T] {
	return BetterPoint[T]{b.X * scalar, b.Y * scalar}
}

func (b BetterPoint[T]) Dot(other BetterPoint[T]) T {
	return b.X*other.X + b.Y*other.Y
}

// Cross returns z component of the 3D cross product.
func (b BetterPoint[T]) Cross(other BetterPoint[T]) T {
	return b.X*other.Y - b.Y*other.X
}

// DistanceSqr returns squared euclidean distance between b and other.
func (b BetterPoint[T]) DistanceSqr(other BetterPoint[T]) T {
	d := b.Sub(other)
	return d.Dot(d)
}

func (b BetterPoint[T]) Length() T {
	return T(math.Sqrt(float64(b.Dot(b))))
}

// Normalize returns unit vector of b. Zero vector stays zero.
func (b BetterPoint[T]) Normalize() BetterPoint[T] {
	l := b.Length()
	if l == 0 {
		return b
	}

	return BetterPoint[T]{b.X / l, b.Y / l}
}

// Lerp interpolates linearly: t=0 is a, t=1 is b.
func Lerp[T ~float32 | ~float64](a, b BetterPoint[T], t T) BetterPoint[T] {
	return BetterPoint[T]{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// Redefine converts point between two floating types.
func Redefine[T2, T1 ~float32 | ~float64](a BetterPoint[T1]) BetterPoint[T2] {
	return BetterPoint[T2]{T2(a.X), T2(a.Y)}
}

// Polar returns a point at angle (degrees) and distance r from center.
// Screen coordinates: angle grows clockwise since Y points down.
func Polar(center Point, degrees, r float64) Point {
	rad := degrees * math.Pi / 180
	return Point{
		X: center.X + math.Cos(rad)*r,
		Y: center.Y + math.Sin(rad)*r,
	}
}

// Rect is a bounding rectangle (top-left corner and size).
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// CircleBounds returns the square bounds of a wheel centered at center with given outer radius.
func CircleBounds(center Point, outerRadius float64) Rect {
	return Rect{
		X:      center.X - outerRadius,
		Y:      center.Y - outerRadius,
		Width:  2 * outerRadius,
		Height: 2 * outerRadius,
	}
}
