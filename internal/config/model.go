package config

var defaultConfig = Config{
	ZoomStep:     1.05,
	PreviewScale: 0,
	Background:   "#202020",
	Fit:          "original",
	Layouts:      []Layout{},
}

type Config struct {
	// ZoomStep is the scale factor applied per wheel notch.
	ZoomStep float64 `json:"zoom_step" yaml:"zoom_step"`
	// PreviewScale fixes the canvas-to-window factor. 0 fits the window.
	PreviewScale float64 `json:"preview_scale" yaml:"preview_scale"`
	// Background is the window background as "#rrggbb".
	Background string `json:"background" yaml:"background"`
	// Fit is the placement applied at startup [original, width, height].
	Fit string `json:"fit" yaml:"fit"`
	// NoCommands disables printing the swaybg/swaylock commands after export.
	NoCommands bool     `json:"no_commands" yaml:"no_commands"`
	Layouts    []Layout `json:"layouts" yaml:"layouts"`
}

// Layout is a manual monitor layout, selected by name. It takes priority over
// host detection.
type Layout struct {
	UUID     string    `json:"uuid" yaml:"uuid"`
	Name     string    `json:"name" yaml:"name"`
	Monitors []Monitor `json:"monitors" yaml:"monitors"`
}

type Monitor struct {
	Name string `json:"name" yaml:"name"`
	X    int    `json:"x" yaml:"x"`
	Y    int    `json:"y" yaml:"y"`
	W    int    `json:"w" yaml:"w"`
	H    int    `json:"h" yaml:"h"`
}
