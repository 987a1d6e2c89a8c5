// Package raster draws clock frames into an in-memory RGBA image. It backs
// the headless snapshot mode and lets rendering be checked pixel by pixel.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"unix-clock/internal/engine2D"
	"unix-clock/internal/utils"
)

// ellipseSegments is the polygon resolution used for the face ring.
const ellipseSegments = 180

type Surface struct {
	img   *image.RGBA
	font  *opentype.Font
	faces map[float64]font.Face
}

// New returns a width x height surface. Text is skipped when f is nil.
func New(width, height int, f *opentype.Font) *Surface {
	return &Surface{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		font:  f,
		faces: make(map[float64]font.Face),
	}
}

func ParseFont(data []byte) (*opentype.Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return f, nil
}

func (s *Surface) Image() *image.RGBA {
	return s.img
}

func (s *Surface) Size() engine2D.Size {
	b := s.img.Bounds()
	return engine2D.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (s *Surface) Clear(c color.RGBA) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *Surface) StrokeEllipse(bounds engine2D.Rect, thickness float64, c color.RGBA) {
	center := bounds.Center()
	rx, ry := bounds.Width/2, bounds.Height/2
	if rx <= 0 || ry <= 0 {
		return
	}

	s.fill(c, func(z *vector.Rasterizer) {
		ellipsePath(z, center, rx, ry, false)
		if irx, iry := rx-thickness, ry-thickness; irx > 0 && iry > 0 {
			// the inner contour runs the other way so it cuts a hole
			ellipsePath(z, center, irx, iry, true)
		}
	})
}

func (s *Surface) StrokeLine(from, to engine2D.Vec2, width float64, c color.RGBA) {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}

	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	s.fill(c, func(z *vector.Rasterizer) {
		z.MoveTo(float32(from.X+nx), float32(from.Y+ny))
		z.LineTo(float32(to.X+nx), float32(to.Y+ny))
		z.LineTo(float32(to.X-nx), float32(to.Y-ny))
		z.LineTo(float32(from.X-nx), float32(from.Y-ny))
		z.ClosePath()
	})
}

func (s *Surface) DrawText(text string, center engine2D.Vec2, size float64, c color.RGBA) {
	face := s.face(size)
	if face == nil {
		return
	}

	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: face,
	}

	advance := d.MeasureString(text)
	metrics := face.Metrics()
	baseline := center.Y + float64(metrics.Ascent-metrics.Descent)/64/2

	d.Dot = fixed.Point26_6{
		X: toFixed(center.X) - advance/2,
		Y: toFixed(baseline),
	}
	d.DrawString(text)
}

// WritePNG encodes the current image.
func (s *Surface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func (s *Surface) Close() {
	for size, face := range s.faces {
		face.Close()
		delete(s.faces, size)
	}
}

func (s *Surface) face(size float64) font.Face {
	if s.font == nil {
		return nil
	}
	if face, ok := s.faces[size]; ok {
		return face
	}

	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		utils.Warn("Failed to build %.1fpx font face: %v", size, err)
		return nil
	}

	s.faces[size] = face
	return face
}

func (s *Surface) fill(c color.RGBA, path func(z *vector.Rasterizer)) {
	b := s.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	path(z)
	z.Draw(s.img, b, image.NewUniform(c), image.Point{})
}

func ellipsePath(z *vector.Rasterizer, center engine2D.Vec2, rx, ry float64, reverse bool) {
	for i := 0; i <= ellipseSegments; i++ {
		step := i
		if reverse {
			step = ellipseSegments - i
		}
		theta := 2 * math.Pi * float64(step) / ellipseSegments
		x := float32(center.X + rx*math.Sin(theta))
		y := float32(center.Y - ry*math.Cos(theta))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
