package config

// Overrides carries command-line values. Zero values leave the config as is.
type Overrides struct {
	Font     string
	Title    string
	Width    int
	Height   int
	FPS      int
	Unit     string
	Hands    int
	Window   int
	LogLevel string
	Debug    bool
}

func (c *Config) Apply(o Overrides) {
	if o.Font != "" {
		c.Font.Path = o.Font
	}
	if o.Title != "" {
		c.Window.Title = o.Title
	}
	if o.Width != 0 {
		c.Window.Width = o.Width
	}
	if o.Height != 0 {
		c.Window.Height = o.Height
	}
	if o.FPS != 0 {
		c.Window.FPS = o.FPS
	}
	if o.Unit != "" {
		c.Time.Unit = o.Unit
	}
	if o.Hands != 0 {
		c.Hands.Count = o.Hands
		c.Hands.Table = nil
	}
	if o.Window != 0 {
		c.Hands.Window = o.Window
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.Debug {
		c.Log.Level = "debug"
	}
}
