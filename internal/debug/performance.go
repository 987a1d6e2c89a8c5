package debug

import (
	"fmt"
	"runtime"

	"unix-clock/internal/engine2D"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (d *DebugOverlay) drawPerformance(ui *UIContext, frame engine2D.Frame) {
	ui.Header("Timing:")
	ui.IndentLabel(fmt.Sprintf("FPS: %d (avg %.1f)", rl.GetFPS(), d.fps), 10)
	ui.IndentLabel(fmt.Sprintf("Frame Time: %.2f ms", rl.GetFrameTime()*1000), 10)

	ui.Separator()

	ui.Header("Memory:")
	ui.IndentLabel(fmt.Sprintf("Heap Alloc: %.2f MB", float64(d.memStats.HeapAlloc)/1024/1024), 10)
	ui.IndentLabel(fmt.Sprintf("Goroutines: %d", runtime.NumGoroutine()), 10)

	ui.Separator()

	ui.Header("Window:")
	ui.IndentLabel(fmt.Sprintf("Size: %.0fx%.0f", frame.Size.Width, frame.Size.Height), 10)
	ui.IndentLabel(fmt.Sprintf("OS/Arch: %s/%s", runtime.GOOS, runtime.GOARCH), 10)
}
