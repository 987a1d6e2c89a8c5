package engine2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unix-clock/internal/timesource"
)

func TestHandAngleRefiningDigits(t *testing.T) {
	angle, ok := HandAngle("1234567890", 0, 3)
	require.True(t, ok)
	assert.InDelta(t, 44.28, angle, 1e-9)

	end := Endpoint(Vec2{X: 250, Y: 250}, 50, angle)
	assert.InDelta(t, 284.9, end.X, 0.05)
	assert.InDelta(t, 214.2, end.Y, 0.05)
}

func TestHandAngleSingleDigitWindow(t *testing.T) {
	angle, ok := HandAngle("1234567890", 3, 1)
	require.True(t, ok)
	assert.InDelta(t, 144.0, angle, 1e-9)

	// a zero window behaves like a window of one
	angle, ok = HandAngle("1234567890", 3, 0)
	require.True(t, ok)
	assert.InDelta(t, 144.0, angle, 1e-9)
}

func TestHandAngleZeroPointsUp(t *testing.T) {
	angle, ok := HandAngle("000", 0, 3)
	require.True(t, ok)
	assert.Equal(t, 0.0, angle)

	end := Endpoint(Vec2{X: 100, Y: 100}, 40, angle)
	assert.InDelta(t, 100.0, end.X, 1e-9)
	assert.InDelta(t, 60.0, end.Y, 1e-9)
}

func TestHandAngleStaysBelowFullTurn(t *testing.T) {
	for _, snap := range []timesource.Snapshot{"999", "9999999", "0999", "1759000000000"} {
		for pos := 0; pos < snap.Len(); pos++ {
			for window := 1; window <= 4; window++ {
				angle, ok := HandAngle(snap, pos, window)
				require.True(t, ok)
				assert.GreaterOrEqual(t, angle, 0.0)
				assert.Less(t, angle, 360.0)
			}
		}
	}
}

func TestHandAngleSecondDigitSweep(t *testing.T) {
	for lead := 0; lead <= 9; lead++ {
		base, ok := HandAngle(timesource.Snapshot(string(rune('0'+lead))+"00"), 0, 3)
		require.True(t, ok)

		prev := base
		for second := 0; second <= 9; second++ {
			snap := timesource.Snapshot(string([]rune{rune('0' + lead), rune('0' + second), '0'}))
			angle, ok := HandAngle(snap, 0, 3)
			require.True(t, ok)

			assert.GreaterOrEqual(t, angle, prev, "snapshot %s", snap)
			assert.GreaterOrEqual(t, angle-base, 0.0)
			assert.LessOrEqual(t, angle-base, DigitAngle)
			prev = angle
		}
	}
}

func TestHandAngleMissingLookaheadCountsAsZero(t *testing.T) {
	angle, ok := HandAngle("1234567890", 8, 3)
	require.True(t, ok)
	assert.InDelta(t, 324.0, angle, 1e-9)

	angle, ok = HandAngle("1234567890", 9, 3)
	require.True(t, ok)
	assert.Equal(t, 0.0, angle)
}

func TestHandAngleMissingPrimaryDigit(t *testing.T) {
	_, ok := HandAngle("1234567890", 10, 3)
	assert.False(t, ok)

	_, ok = HandAngle("", 0, 3)
	assert.False(t, ok)
}

func TestWrapDegrees(t *testing.T) {
	assert.InDelta(t, 350.0, WrapDegrees(-10), 1e-9)
	assert.InDelta(t, 0.0, WrapDegrees(720), 1e-9)
	assert.InDelta(t, 44.28, WrapDegrees(404.28), 1e-9)
}
