package main

import (
	"image/color"

	"unix-clock/internal/engine2D"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ringSegments is the raylib tessellation used for circular faces.
const ringSegments = 96

// rlSurface draws into the current raylib frame. It is only valid between
// BeginDrawing and EndDrawing.
type rlSurface struct {
	font rl.Font
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func toVector(v engine2D.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

func (s *rlSurface) Clear(c color.RGBA) {
	rl.ClearBackground(toRL(c))
}

func (s *rlSurface) StrokeEllipse(bounds engine2D.Rect, thickness float64, c color.RGBA) {
	center := bounds.Center()
	rx, ry := bounds.Width/2, bounds.Height/2

	if rx == ry {
		inner := rx - thickness
		if inner < 0 {
			inner = 0
		}
		rl.DrawRing(toVector(center), float32(inner), float32(rx), 0, 360, ringSegments, toRL(c))
		return
	}

	// raylib has no thick ellipse outline; stack one-pixel outlines inwards
	for i := 0.0; i < thickness; i++ {
		rl.DrawEllipseLines(int32(center.X), int32(center.Y), float32(rx-i), float32(ry-i), toRL(c))
	}
}

func (s *rlSurface) StrokeLine(from, to engine2D.Vec2, width float64, c color.RGBA) {
	rl.DrawLineEx(toVector(from), toVector(to), float32(width), toRL(c))
}

func (s *rlSurface) DrawText(text string, center engine2D.Vec2, size float64, c color.RGBA) {
	fontSize := float32(size)
	if s.font.BaseSize == 0 {
		width := rl.MeasureText(text, int32(fontSize))
		rl.DrawText(text, int32(center.X)-width/2, int32(center.Y-size/2), int32(fontSize), toRL(c))
		return
	}

	extent := rl.MeasureTextEx(s.font, text, fontSize, 0)
	pos := rl.NewVector2(float32(center.X)-extent.X/2, float32(center.Y)-extent.Y/2)
	rl.DrawTextEx(s.font, text, pos, fontSize, 0, toRL(c))
}
