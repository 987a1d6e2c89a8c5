package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"unix-clock/internal/engine2D"
	"unix-clock/internal/timesource"
	"unix-clock/internal/utils"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// minWindowSide keeps the label ring radius positive.
const minWindowSide = 41

// Config represents the optional unix-clock.yaml configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Window WindowConfig `yaml:"window"`
	Font   FontConfig   `yaml:"font"`
	Time   TimeConfig   `yaml:"time"`
	Style  StyleConfig  `yaml:"style"`
	Hands  HandsConfig  `yaml:"hands"`
}

type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

type WindowConfig struct {
	Title  string `yaml:"title,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	FPS    int    `yaml:"fps,omitempty"`
	MSAA   bool   `yaml:"msaa"`
	Center bool   `yaml:"center"`
}

type FontConfig struct {
	Path           string `yaml:"path,omitempty"`
	SystemFallback bool   `yaml:"system_fallback"`
}

type TimeConfig struct {
	Unit string `yaml:"unit,omitempty"`
}

// StyleConfig colors are "r g b" or "r g b a" triples of floats in [0,1].
type StyleConfig struct {
	Background      string  `yaml:"background,omitempty"`
	Face            string  `yaml:"face,omitempty"`
	Hand            string  `yaml:"hand,omitempty"`
	BorderThickness float64 `yaml:"border_thickness,omitempty"`
	LabelInset      float64 `yaml:"label_inset,omitempty"`
	LabelSize       float64 `yaml:"label_size,omitempty"`
}

type HandsConfig struct {
	Count  int `yaml:"count,omitempty"`
	Window int `yaml:"window,omitempty"`
	// Table replaces the generated hands when present.
	Table []engine2D.HandSpec `yaml:"table,omitempty"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Window: WindowConfig{
			Title:  "unix_clock",
			Width:  500,
			Height: 500,
			FPS:    60,
			MSAA:   true,
			Center: true,
		},
		Font: FontConfig{Path: "assets/FiraSans-Regular.ttf"},
		Time: TimeConfig{Unit: "ms"},
		Style: StyleConfig{
			Background:      "0 0 0",
			Face:            "1 0 0",
			Hand:            "1 0 0",
			BorderThickness: engine2D.DefaultBorderThickness,
			LabelInset:      engine2D.DefaultLabelInset,
			LabelSize:       engine2D.DefaultLabelSize,
		},
		Hands: HandsConfig{
			Count:  engine2D.DefaultHandCount,
			Window: engine2D.DefaultDigitWindow,
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	utils.Debug("Config loaded from %s", path)
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width < minWindowSide || c.Window.Height < minWindowSide {
		return fmt.Errorf("%w: window %dx%d is smaller than %dx%d", ErrInvalid, c.Window.Width, c.Window.Height, minWindowSide, minWindowSide)
	}
	if c.Window.FPS < 0 {
		return fmt.Errorf("%w: fps %d is negative", ErrInvalid, c.Window.FPS)
	}
	if strings.TrimSpace(c.Font.Path) == "" {
		return fmt.Errorf("%w: font path is empty", ErrInvalid)
	}
	if _, err := utils.ParseLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := timesource.ParseUnit(c.Time.Unit); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.EngineStyle(); err != nil {
		return err
	}
	if c.Hands.Count < 0 {
		return fmt.Errorf("%w: hand count %d is negative", ErrInvalid, c.Hands.Count)
	}
	for i, h := range c.Hands.Table {
		if h.Position < 0 {
			return fmt.Errorf("%w: hand %d has negative position %d", ErrInvalid, i, h.Position)
		}
		if h.Radius < 0 || h.Thickness < 0 || h.Window < 0 {
			return fmt.Errorf("%w: hand %d has a negative measurement", ErrInvalid, i)
		}
	}
	return nil
}

func (c *Config) Unit() timesource.Unit {
	unit, _ := timesource.ParseUnit(c.Time.Unit)
	return unit
}

func (c *Config) LogLevel() utils.LogLevel {
	level, _ := utils.ParseLogLevel(c.Log.Level)
	return level
}

// EngineStyle converts the style section, failing on unparsable colors.
func (c *Config) EngineStyle() (engine2D.Style, error) {
	style := engine2D.DefaultStyle()

	for _, field := range []struct {
		name  string
		value string
		dst   *color.RGBA
	}{
		{"background", c.Style.Background, &style.Background},
		{"face", c.Style.Face, &style.Face},
		{"hand", c.Style.Hand, &style.Hand},
	} {
		if field.value == "" {
			continue
		}
		parsed, err := ParseColor(field.value)
		if err != nil {
			return style, fmt.Errorf("%w: style.%s: %v", ErrInvalid, field.name, err)
		}
		*field.dst = parsed
	}

	if c.Style.BorderThickness > 0 {
		style.BorderThickness = c.Style.BorderThickness
	}
	if c.Style.LabelInset > 0 {
		style.LabelInset = c.Style.LabelInset
	}
	if c.Style.LabelSize > 0 {
		style.LabelSize = c.Style.LabelSize
	}
	return style, nil
}

// HandSpecs returns the explicit table with blanks filled in, or the
// generated default hands.
func (c *Config) HandSpecs() []engine2D.HandSpec {
	if len(c.Hands.Table) == 0 {
		return engine2D.DefaultHands(c.Hands.Count, c.Hands.Window)
	}

	hands := make([]engine2D.HandSpec, len(c.Hands.Table))
	for i, h := range c.Hands.Table {
		generated := engine2D.DefaultHand(h.Position, c.Hands.Window)
		if h.Radius == 0 {
			h.Radius = generated.Radius
		}
		if h.Thickness == 0 {
			h.Thickness = generated.Thickness
		}
		if h.Window == 0 {
			h.Window = generated.Window
		}
		hands[i] = h
	}
	return hands
}

func ParseColor(s string) (color.RGBA, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 && len(parts) != 4 {
		return color.RGBA{}, fmt.Errorf("color %q needs 3 or 4 components", s)
	}

	channels := [4]float64{0, 0, 0, 1}
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
		}
		if v < 0 || v > 1 {
			return color.RGBA{}, fmt.Errorf("color %q: component %g outside [0,1]", s, v)
		}
		channels[i] = v
	}

	return color.RGBA{
		R: uint8(channels[0]*255 + 0.5),
		G: uint8(channels[1]*255 + 0.5),
		B: uint8(channels[2]*255 + 0.5),
		A: uint8(channels[3]*255 + 0.5),
	}, nil
}
