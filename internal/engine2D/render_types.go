package engine2D

import "math"

type Vec2 struct {
	X, Y float64
}

// Size is the drawable area in pixels.
type Size struct {
	Width, Height float64
}

func (s Size) Center() Vec2 {
	return Vec2{X: s.Width / 2, Y: s.Height / 2}
}

// Bounds is the rectangle [0, 0, Width, Height].
func (s Size) Bounds() Rect {
	return Rect{X: 0, Y: 0, Width: s.Width, Height: s.Height}
}

// MinSide returns the shorter of the two sides.
func (s Size) MinSide() float64 {
	return math.Min(s.Width, s.Height)
}

type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}
