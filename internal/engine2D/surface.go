package engine2D

import "image/color"

// Surface is the set of drawing primitives a backend provides for one frame.
type Surface interface {
	Clear(c color.RGBA)
	// StrokeEllipse draws a ring of the given thickness just inside the
	// ellipse inscribed in bounds.
	StrokeEllipse(bounds Rect, thickness float64, c color.RGBA)
	StrokeLine(from, to Vec2, width float64, c color.RGBA)
	// DrawText draws text centered on the given point.
	DrawText(text string, center Vec2, size float64, c color.RGBA)
}
