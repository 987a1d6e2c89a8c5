package debug

import (
	"runtime"
	"time"

	"unix-clock/internal/engine2D"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DebugOverlay is the F8 panel drawn over the clock.
type DebugOverlay struct {
	fontHeight int
	lineHeight int
	panelWidth int

	font rl.Font

	lastUpdateTime time.Time
	frameCount     int
	fps            float64
	memStats       runtime.MemStats
}

// NewDebugOverlay uses font for its text; a font with BaseSize 0 falls back
// to raylib's built-in font.
func NewDebugOverlay(font rl.Font) *DebugOverlay {
	d := &DebugOverlay{
		font:           font,
		lastUpdateTime: time.Now(),
	}
	d.updateLayout()
	runtime.ReadMemStats(&d.memStats)
	return d
}

func (d *DebugOverlay) updateLayout() {
	d.fontHeight = 14
	d.lineHeight = 18
	d.panelWidth = 230
}

// Update refreshes the once-per-second statistics.
func (d *DebugOverlay) Update() {
	d.frameCount++
	now := time.Now()
	if elapsed := now.Sub(d.lastUpdateTime); elapsed >= time.Second {
		d.fps = float64(d.frameCount) / elapsed.Seconds()
		d.frameCount = 0
		d.lastUpdateTime = now
		runtime.ReadMemStats(&d.memStats)
	}
}

func (d *DebugOverlay) Draw(frame engine2D.Frame) {
	rows := 11 + len(frame.Hands)
	panelHeight := int32(rows*d.lineHeight + d.lineHeight)
	rl.DrawRectangle(0, 0, int32(d.panelWidth), panelHeight, rl.NewColor(0, 0, 0, 200))

	ui := NewUIContext(8, 6, d.lineHeight, d.fontHeight, d.font)
	d.drawPerformance(ui, frame)
	ui.Separator()
	d.drawHands(ui, frame)
}
