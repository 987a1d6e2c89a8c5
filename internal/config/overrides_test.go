package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unix-clock/internal/engine2D"
	"unix-clock/internal/timesource"
	"unix-clock/internal/utils"
)

func TestApplyZeroOverridesKeepsConfig(t *testing.T) {
	cfg := Default()
	cfg.Apply(Overrides{})
	assert.Equal(t, Default(), cfg)
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.Hands.Table = []engine2D.HandSpec{{Position: 3}}

	cfg.Apply(Overrides{
		Font:   "/tmp/x.ttf",
		Title:  "clock",
		Width:  800,
		Height: 600,
		FPS:    30,
		Unit:   "s",
		Hands:  5,
		Window: 1,
		Debug:  true,
	})
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/tmp/x.ttf", cfg.Font.Path)
	assert.Equal(t, "clock", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, 30, cfg.Window.FPS)
	assert.Equal(t, timesource.Seconds, cfg.Unit())
	assert.Equal(t, utils.LevelDebug, cfg.LogLevel())
	assert.Equal(t, engine2D.DefaultHands(5, 1), cfg.HandSpecs(), "hand count replaces the table")
}

func TestApplyLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Apply(Overrides{LogLevel: "warn"})
	assert.Equal(t, utils.LevelWarn, cfg.LogLevel())
}
