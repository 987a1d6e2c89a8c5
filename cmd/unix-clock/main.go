package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"

	"unix-clock/internal/config"
	"unix-clock/internal/engine2D"
	"unix-clock/internal/timesource"
	"unix-clock/internal/utils"
)

type CLI struct {
	Config   string `help:"YAML config file." type:"path" short:"c"`
	Font     string `help:"Font used for the face labels."`
	Title    string `help:"Window title."`
	Width    int    `help:"Window width in pixels."`
	Height   int    `help:"Window height in pixels."`
	FPS      int    `help:"Target frames per second." name:"fps"`
	Unit     string `help:"Unit of the digit string: ms or s."`
	Hands    int    `help:"Number of hands, one per digit position."`
	Window   int    `help:"Digits feeding each hand angle (1 reads a single digit)." name:"digit-window"`
	LogLevel string `help:"Log level: debug, info, warn or error."`
	Debug    bool   `help:"Verbose logging and the debug overlay (toggle with F8)."`
	Snapshot string `help:"Render one frame to this PNG file and exit." type:"path"`
	At       int64  `help:"Render this Unix time in milliseconds instead of now."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("unix-clock"),
		kong.Description("An analog clock whose hands follow the digits of Unix time."),
		kong.UsageOnError(),
	)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		utils.Error("Failed to load config: %v", err)
		os.Exit(1)
	}

	cfg.Apply(config.Overrides{
		Font:     cli.Font,
		Title:    cli.Title,
		Width:    cli.Width,
		Height:   cli.Height,
		FPS:      cli.FPS,
		Unit:     cli.Unit,
		Hands:    cli.Hands,
		Window:   cli.Window,
		LogLevel: cli.LogLevel,
		Debug:    cli.Debug,
	})

	if err := cfg.Validate(); err != nil {
		utils.Error("%v", err)
		os.Exit(1)
	}

	utils.CurrentLevel = cfg.LogLevel()
	utils.SetDebug(cli.Debug)
	utils.ShowDebugUI = cli.Debug

	style, _ := cfg.EngineStyle()
	source := timesource.New(cfg.Unit())
	if cli.At != 0 {
		source.Clock = timesource.FixedClock{Time: time.UnixMilli(cli.At)}
	}
	renderer := engine2D.NewRenderer(source, cfg.HandSpecs(), style)

	utils.Info("--- unix-clock: %d hands, %s digits ---", len(renderer.Hands), cfg.Unit())

	fontData, err := loadFontData(cfg)
	if err != nil {
		utils.Error("Failed to load font: %v", err)
		os.Exit(1)
	}

	if cli.Snapshot != "" {
		if err := renderSnapshot(cfg, renderer, fontData, cli.Snapshot); err != nil {
			utils.Error("Snapshot failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := openWindow(cfg); err != nil {
		utils.Error("%v", err)
		os.Exit(1)
	}

	window, err := NewWindow(cfg, renderer, fontData)
	if err != nil {
		utils.Error("Failed to load font: %v", err)
		os.Exit(1)
	}

	utils.Info("Starting render loop at %d FPS...", cfg.Window.FPS)
	err = window.Run()
	window.Close()
	if err != nil {
		utils.Error("Render loop stopped: %v", err)
		os.Exit(1)
	}
}
