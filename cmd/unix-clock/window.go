package main

import (
	"unix-clock/internal/config"
	"unix-clock/internal/debug"
	"unix-clock/internal/engine2D"
	"unix-clock/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Window struct {
	renderer     *engine2D.Renderer
	surface      *rlSurface
	font         rl.Font
	targetFPS    int32
	lastFrame    engine2D.Frame
	debugOverlay *debug.DebugOverlay
}

// NewWindow expects openWindow to have succeeded.
func NewWindow(cfg *config.Config, renderer *engine2D.Renderer, fontData []byte) (*Window, error) {
	font, err := loadRaylibFont(cfg, fontData, renderer.Style.LabelSize)
	if err != nil {
		return nil, err
	}

	return &Window{
		renderer:     renderer,
		surface:      &rlSurface{font: font},
		font:         font,
		targetFPS:    int32(cfg.Window.FPS),
		debugOverlay: debug.NewDebugOverlay(font),
	}, nil
}

// Run drives update and render ticks until the window is asked to close.
func (window *Window) Run() error {
	rl.SetTargetFPS(window.targetFPS)

	for !rl.WindowShouldClose() {
		window.Update()

		rl.BeginDrawing()
		err := window.Draw()
		rl.EndDrawing()

		if err != nil {
			return err
		}
	}

	utils.Info("Window closed")
	return nil
}

// Update handles input and overlay bookkeeping. Clock state is never
// carried between ticks.
func (window *Window) Update() {
	if rl.IsKeyPressed(rl.KeyF8) {
		utils.ShowDebugUI = !utils.ShowDebugUI
	}

	if utils.ShowDebugUI {
		window.debugOverlay.Update()
	}
}

func (window *Window) Draw() error {
	size := engine2D.Size{
		Width:  float64(rl.GetScreenWidth()),
		Height: float64(rl.GetScreenHeight()),
	}

	frame, err := window.renderer.Render(window.surface, size)
	if err != nil {
		return err
	}
	window.lastFrame = frame

	if utils.ShowDebugUI {
		window.debugOverlay.Draw(window.lastFrame)
	}
	return nil
}

func (window *Window) Close() {
	rl.UnloadFont(window.font)
	rl.CloseWindow()
}
