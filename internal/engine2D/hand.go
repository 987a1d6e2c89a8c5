package engine2D

import (
	"image/color"

	"unix-clock/internal/timesource"
)

const (
	DefaultHandThickness = 2.5
	DefaultDigitWindow   = 3
	DefaultHandCount     = 10

	baseHandRadius = 50.0
	handRadiusStep = 20.0
)

// HandSpec is one row of the hand table.
type HandSpec struct {
	Position  int     `yaml:"position"`
	Radius    float64 `yaml:"radius"`
	Thickness float64 `yaml:"thickness"`
	// Window is how many digits, starting at Position, feed the angle.
	Window int `yaml:"window"`
}

// DefaultHand is the table row for position: 20px longer per position, a
// thin stroke, and the given digit window.
func DefaultHand(position, window int) HandSpec {
	if window < 1 {
		window = DefaultDigitWindow
	}
	return HandSpec{
		Position:  position,
		Radius:    float64(position)*handRadiusStep + baseHandRadius,
		Thickness: DefaultHandThickness,
		Window:    window,
	}
}

// DefaultHands builds n hands for positions 0..n-1.
func DefaultHands(n, window int) []HandSpec {
	hands := make([]HandSpec, n)
	for i := range hands {
		hands[i] = DefaultHand(i, window)
	}
	return hands
}

// HandState describes what a hand did in one frame.
type HandState struct {
	Position int
	Angle    float64
	Endpoint Vec2
	Drawn    bool
}

type ClockHand struct {
	Spec  HandSpec
	Color color.RGBA
}

// Draw strokes the hand from center towards the angle read from snap.
// Nothing is drawn when snap has no digit at the hand's position.
func (h ClockHand) Draw(surface Surface, center Vec2, snap timesource.Snapshot) HandState {
	state := HandState{Position: h.Spec.Position}

	angle, ok := HandAngle(snap, h.Spec.Position, h.Spec.Window)
	if !ok {
		return state
	}

	state.Angle = angle
	state.Endpoint = Endpoint(center, h.Spec.Radius, angle)
	state.Drawn = true

	surface.StrokeLine(center, state.Endpoint, h.Spec.Thickness, h.Color)
	return state
}
