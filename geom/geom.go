package geom

import "math"

// Vec2 is a 2D vector in pixel space
type Vec2 struct {
	X, Y float32
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s on both axes
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the euclidean length of v
func (v Vec2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Normalize returns the unit vector pointing the same way as v.
// The zero vector maps to the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y, W, H float32
}

// NewRect builds a rectangle from a position and a size
func NewRect(pos, size Vec2) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// Overlaps reports whether r and o share a region of positive area.
// Rectangles that only touch along an edge or a corner do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Axes is a directional intent, each axis in {-1, 0, +1}
type Axes struct {
	X, Y int8
}

// Direction returns the unit vector for the intent (zero intent yields the zero vector)
func (a Axes) Direction() Vec2 {
	return Vec2{X: float32(clampAxis(a.X)), Y: float32(clampAxis(a.Y))}.Normalize()
}

// IsZero reports whether there is no intent on either axis
func (a Axes) IsZero() bool {
	return a.X == 0 && a.Y == 0
}

func clampAxis(v int8) int8 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// AxesFromKeys folds four directional key states into an intent.
// Opposing keys cancel out.
func AxesFromKeys(up, down, left, right bool) Axes {
	var a Axes
	if down {
		a.Y++
	}
	if up {
		a.Y--
	}
	if right {
		a.X++
	}
	if left {
		a.X--
	}
	return a
}
