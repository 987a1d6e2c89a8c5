package engine2D

import "image/color"

var (
	Black = color.RGBA{0, 0, 0, 255}
	Red   = color.RGBA{255, 0, 0, 255}
)

const (
	DefaultBorderThickness = 5.0
	DefaultLabelInset      = 20.0
	DefaultLabelSize       = 20.0
)

// Style holds the colors and fixed measurements shared by the face and hands.
type Style struct {
	Background      color.RGBA
	Face            color.RGBA
	Hand            color.RGBA
	BorderThickness float64
	LabelInset      float64
	LabelSize       float64
}

func DefaultStyle() Style {
	return Style{
		Background:      Black,
		Face:            Red,
		Hand:            Red,
		BorderThickness: DefaultBorderThickness,
		LabelInset:      DefaultLabelInset,
		LabelSize:       DefaultLabelSize,
	}
}
