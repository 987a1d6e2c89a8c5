package engine2D

import "unix-clock/internal/timesource"

// Clock is a face plus its hands, built fresh for every frame.
type Clock struct {
	Face  ClockFace
	Hands []ClockHand
}

func NewClock(size Size, hands []HandSpec, style Style) *Clock {
	clock := &Clock{
		Face:  NewClockFace(size, style),
		Hands: make([]ClockHand, 0, len(hands)),
	}
	for _, spec := range hands {
		clock.Hands = append(clock.Hands, ClockHand{Spec: spec, Color: style.Hand})
	}
	return clock
}

// Draw paints the face and then every hand in table order.
func (c *Clock) Draw(surface Surface, snap timesource.Snapshot) []HandState {
	c.Face.Draw(surface)

	center := c.Face.Center()
	states := make([]HandState, len(c.Hands))
	for i, hand := range c.Hands {
		states[i] = hand.Draw(surface, center, snap)
	}
	return states
}
