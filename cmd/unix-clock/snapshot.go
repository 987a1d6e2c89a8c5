package main

import (
	"fmt"

	"unix-clock/internal/config"
	"unix-clock/internal/engine2D"
	"unix-clock/internal/raster"
	"unix-clock/internal/utils"
)

// renderSnapshot draws a single frame without opening a window.
func renderSnapshot(cfg *config.Config, renderer *engine2D.Renderer, fontData []byte, out string) error {
	f, err := raster.ParseFont(fontData)
	if err != nil {
		return err
	}

	surface := raster.New(cfg.Window.Width, cfg.Window.Height, f)
	defer surface.Close()

	frame, err := renderer.Render(surface, surface.Size())
	if err != nil {
		return err
	}

	if err := surface.SavePNG(out); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	utils.Info("Snapshot of %s written to %s", frame.Digits, out)
	if skipped := frame.Skipped(); len(skipped) > 0 {
		utils.Warn("Hands %v had no digit to read and were not drawn", skipped)
	}
	return nil
}
