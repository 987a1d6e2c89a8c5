package engine2D

import (
	"fmt"
	"image/color"
)

// recordingSurface keeps every call as a readable op string.
type recordingSurface struct {
	ops   []string
	lines [][2]Vec2
	texts map[string]Vec2
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{texts: make(map[string]Vec2)}
}

func (s *recordingSurface) Clear(c color.RGBA) {
	s.ops = append(s.ops, fmt.Sprintf("clear %v", c))
}

func (s *recordingSurface) StrokeEllipse(bounds Rect, thickness float64, c color.RGBA) {
	s.ops = append(s.ops, fmt.Sprintf("ellipse %v %.2f %v", bounds, thickness, c))
}

func (s *recordingSurface) StrokeLine(from, to Vec2, width float64, c color.RGBA) {
	s.lines = append(s.lines, [2]Vec2{from, to})
	s.ops = append(s.ops, fmt.Sprintf("line %.4f,%.4f -> %.4f,%.4f %.2f %v", from.X, from.Y, to.X, to.Y, width, c))
}

func (s *recordingSurface) DrawText(text string, center Vec2, size float64, c color.RGBA) {
	s.texts[text] = center
	s.ops = append(s.ops, fmt.Sprintf("text %s %.4f,%.4f %.1f %v", text, center.X, center.Y, size, c))
}
