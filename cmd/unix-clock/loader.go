package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"unix-clock/internal/config"
	"unix-clock/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// loadFontData reads the configured font once at startup.
func loadFontData(cfg *config.Config) ([]byte, error) {
	data, from, err := utils.ReadFontAsset(cfg.Font.Path, cfg.Font.SystemFallback)
	if err != nil {
		return nil, err
	}
	if from != cfg.Font.Path {
		utils.Info("Using font %s", from)
	}
	return data, nil
}

// fontFileType maps a font path to the extension raylib expects for
// in-memory loading.
func fontFileType(path string) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(path, ".lz4")))
	if ext == "" {
		return ".ttf"
	}
	return ext
}

// loadRaylibFont uploads the font atlas. It needs an open window.
func loadRaylibFont(cfg *config.Config, data []byte, size float64) (rl.Font, error) {
	font := rl.LoadFontFromMemory(fontFileType(cfg.Font.Path), data, int32(size*2), nil)
	if font.BaseSize == 0 || font.Texture.ID == 0 {
		return font, fmt.Errorf("raylib could not load font %s", cfg.Font.Path)
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font, nil
}

// openWindow creates the non-resizable clock window.
func openWindow(cfg *config.Config) error {
	rl.SetTraceLogCallback(utils.RaylibLogCallback)

	if cfg.Window.MSAA {
		rl.SetConfigFlags(rl.FlagMsaa4xHint)
	}

	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	if !rl.IsWindowReady() {
		return fmt.Errorf("failed to create %dx%d window", cfg.Window.Width, cfg.Window.Height)
	}

	if cfg.Window.Center {
		centerWindow(cfg.Window.Width, cfg.Window.Height)
	}
	return nil
}

func centerWindow(width, height int) {
	screenW, screenH, err := utils.RootScreenSize()
	if err != nil {
		utils.Debug("X11 unavailable, leaving window placement to the window manager: %v", err)
		return
	}
	defer utils.CloseX11()

	x, y := utils.CenteredOrigin(screenW, screenH, width, height)
	rl.SetWindowPosition(x, y)
	utils.Debug("Window centered at %d,%d on %dx%d screen", x, y, screenW, screenH)
}
