package engine2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockFaceBoundsAndLabelsInsideWindow(t *testing.T) {
	sizes := []Size{
		{Width: 41, Height: 41},
		{Width: 500, Height: 500},
		{Width: 800, Height: 300},
		{Width: 120, Height: 960},
	}

	for _, size := range sizes {
		face := NewClockFace(size, DefaultStyle())
		assert.Equal(t, Rect{X: 0, Y: 0, Width: size.Width, Height: size.Height}, face.Bounds)

		for i, pos := range face.LabelPositions() {
			assert.True(t, face.Bounds.Contains(pos), "label %d at %v outside %v", i, pos, size)
		}
	}
}

func TestClockFaceLabelZeroAtTwelve(t *testing.T) {
	face := NewClockFace(Size{Width: 500, Height: 500}, DefaultStyle())
	labels := face.LabelPositions()

	assert.InDelta(t, 250.0, labels[0].X, 1e-9)
	assert.InDelta(t, 20.0, labels[0].Y, 1e-9)

	// label 5 sits at six o'clock
	assert.InDelta(t, 250.0, labels[5].X, 1e-9)
	assert.InDelta(t, 480.0, labels[5].Y, 1e-9)

	// clockwise: label 1 is right of center
	assert.Greater(t, labels[1].X, 250.0)
}

func TestClockFaceDraw(t *testing.T) {
	surface := newRecordingSurface()
	NewClockFace(Size{Width: 500, Height: 500}, DefaultStyle()).Draw(surface)

	require.Len(t, surface.ops, 1+LabelCount)
	assert.Contains(t, surface.ops[0], "ellipse {0 0 500 500} 5.00")
	for i := 0; i < LabelCount; i++ {
		_, ok := surface.texts[string(rune('0'+i))]
		assert.True(t, ok, "label %d not drawn", i)
	}
}

func TestDefaultHands(t *testing.T) {
	hands := DefaultHands(10, 0)
	require.Len(t, hands, 10)

	for i, h := range hands {
		assert.Equal(t, i, h.Position)
		assert.Equal(t, float64(i)*20+50, h.Radius)
		assert.Equal(t, DefaultHandThickness, h.Thickness)
		assert.Equal(t, DefaultDigitWindow, h.Window)
	}

	assert.Equal(t, 1, DefaultHands(2, 1)[1].Window)
}

func TestClockDrawsFaceThenHandsInOrder(t *testing.T) {
	surface := newRecordingSurface()
	clock := NewClock(Size{Width: 500, Height: 500}, DefaultHands(10, 3), DefaultStyle())

	states := clock.Draw(surface, "1234567890123")

	require.Len(t, states, 10)
	require.Len(t, surface.ops, 1+LabelCount+10)
	assert.Contains(t, surface.ops[0], "ellipse")
	for i := 0; i < 10; i++ {
		assert.Contains(t, surface.ops[1+LabelCount+i], "line 250.0000,250.0000")
		assert.True(t, states[i].Drawn)
		assert.Equal(t, i, states[i].Position)
	}

	assert.InDelta(t, 44.28, states[0].Angle, 1e-9)
	assert.InDelta(t, 284.9, states[0].Endpoint.X, 0.05)
	assert.InDelta(t, 214.2, states[0].Endpoint.Y, 0.05)
}

func TestClockSkipsHandsPastTheSnapshot(t *testing.T) {
	surface := newRecordingSurface()
	clock := NewClock(Size{Width: 500, Height: 500}, DefaultHands(12, 3), DefaultStyle())

	states := clock.Draw(surface, "1234567890")

	require.Len(t, states, 12)
	assert.Len(t, surface.lines, 10)
	assert.True(t, states[8].Drawn)
	assert.InDelta(t, 324.0, states[8].Angle, 1e-9)
	assert.False(t, states[10].Drawn)
	assert.False(t, states[11].Drawn)
}

func TestHandLength(t *testing.T) {
	surface := newRecordingSurface()
	hand := ClockHand{Spec: HandSpec{Position: 2, Radius: 90, Thickness: 2.5, Window: 1}, Color: Red}

	// digit 5 points straight down
	state := hand.Draw(surface, Vec2{X: 250, Y: 250}, "005")

	require.True(t, state.Drawn)
	assert.InDelta(t, 250.0, state.Endpoint.X, 1e-9)
	assert.InDelta(t, 340.0, state.Endpoint.Y, 1e-9)
}
