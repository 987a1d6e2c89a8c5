package engine2D

import (
	"fmt"

	"unix-clock/internal/timesource"
	"unix-clock/internal/utils"
)

// SnapshotSource yields the digits for the current instant.
type SnapshotSource interface {
	Snapshot() (timesource.Snapshot, error)
}

// Renderer turns a render tick into pixels. It keeps no drawing state
// between frames.
type Renderer struct {
	Source SnapshotSource
	Hands  []HandSpec
	Style  Style

	reportedSkips map[int]bool
}

func NewRenderer(source SnapshotSource, hands []HandSpec, style Style) *Renderer {
	return &Renderer{
		Source:        source,
		Hands:         hands,
		Style:         style,
		reportedSkips: make(map[int]bool),
	}
}

// Frame reports what was drawn in one render tick.
type Frame struct {
	Size   Size
	Digits timesource.Snapshot
	Hands  []HandState
}

// Skipped lists the positions of hands that were not drawn.
func (f Frame) Skipped() []int {
	var skipped []int
	for _, h := range f.Hands {
		if !h.Drawn {
			skipped = append(skipped, h.Position)
		}
	}
	return skipped
}

// Render samples the time source once and draws the whole clock with that
// sample.
func (r *Renderer) Render(surface Surface, size Size) (Frame, error) {
	snap, err := r.Source.Snapshot()
	if err != nil {
		return Frame{Size: size}, fmt.Errorf("sample time: %w", err)
	}
	return r.RenderSnapshot(surface, size, snap), nil
}

// RenderSnapshot draws the clock for a given digit snapshot.
func (r *Renderer) RenderSnapshot(surface Surface, size Size, snap timesource.Snapshot) Frame {
	surface.Clear(r.Style.Background)

	clock := NewClock(size, r.Hands, r.Style)
	frame := Frame{
		Size:   size,
		Digits: snap,
		Hands:  clock.Draw(surface, snap),
	}

	for _, pos := range frame.Skipped() {
		if r.reportedSkips == nil {
			r.reportedSkips = make(map[int]bool)
		}
		if !r.reportedSkips[pos] {
			r.reportedSkips[pos] = true
			utils.Debug("Hand %d skipped: snapshot %q has only %d digits", pos, snap, snap.Len())
		}
	}

	return frame
}
