package debug

import (
	"fmt"

	"unix-clock/internal/engine2D"
)

func (d *DebugOverlay) drawHands(ui *UIContext, frame engine2D.Frame) {
	ui.Header(fmt.Sprintf("Digits: %s (%d)", frame.Digits, frame.Digits.Len()))
	for _, h := range frame.Hands {
		if !h.Drawn {
			ui.DimLabel(fmt.Sprintf("#%d  skipped", h.Position), 10)
			continue
		}
		ui.IndentLabel(fmt.Sprintf("#%d  %7.2f deg", h.Position, h.Angle), 10)
	}
}
