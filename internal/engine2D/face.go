package engine2D

import "strconv"

// LabelCount is the number of digit labels around the face.
const LabelCount = 10

// ClockFace is the static ring and its digit labels for one frame.
type ClockFace struct {
	Bounds Rect
	Style  Style
}

func NewClockFace(size Size, style Style) ClockFace {
	return ClockFace{Bounds: size.Bounds(), Style: style}
}

func (f ClockFace) Center() Vec2 {
	return f.Bounds.Center()
}

// LabelRadius is the distance of the label centers from the face center.
func (f ClockFace) LabelRadius() float64 {
	short := f.Bounds.Width
	if f.Bounds.Height < short {
		short = f.Bounds.Height
	}
	return short/2 - f.Style.LabelInset
}

// LabelPositions returns the center of each label, "0" at 12 o'clock and
// proceeding clockwise.
func (f ClockFace) LabelPositions() [LabelCount]Vec2 {
	var positions [LabelCount]Vec2
	center := f.Center()
	radius := f.LabelRadius()
	for i := range positions {
		positions[i] = Endpoint(center, radius, DigitAngle*float64(i))
	}
	return positions
}

func (f ClockFace) Draw(surface Surface) {
	surface.StrokeEllipse(f.Bounds, f.Style.BorderThickness, f.Style.Face)

	for i, pos := range f.LabelPositions() {
		surface.DrawText(strconv.Itoa(i), pos, f.Style.LabelSize, f.Style.Face)
	}
}
