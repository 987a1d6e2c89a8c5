package engine2D

import (
	"math"

	"unix-clock/internal/timesource"
)

// DigitAngle is the sweep of one digit step on a ten-label face.
const DigitAngle = 360.0 / LabelCount

// HandAngle returns the rotation in degrees, clockwise from 12 o'clock, for
// a hand reading snap at position. The digit at position contributes 36° per
// unit and each of the following window-1 digits contributes a tenth of the
// previous one. A missing lookahead digit counts as 0; a missing digit at
// position itself yields ok == false.
func HandAngle(snap timesource.Snapshot, position, window int) (angle float64, ok bool) {
	if window < 1 {
		window = 1
	}

	digit, ok := snap.Digit(position)
	if !ok {
		return 0, false
	}

	step := DigitAngle
	angle = step * float64(digit)
	for k := 1; k < window; k++ {
		step /= 10
		if d, present := snap.Digit(position + k); present {
			angle += step * float64(d)
		}
	}

	return WrapDegrees(angle), true
}

// WrapDegrees maps any angle into [0, 360).
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Endpoint is the point at distance radius from center in the direction of
// deg, measured clockwise from straight up.
func Endpoint(center Vec2, radius, deg float64) Vec2 {
	rad := deg * math.Pi / 180.0
	return Vec2{
		X: center.X + radius*math.Sin(rad),
		Y: center.Y - radius*math.Cos(rad),
	}
}
