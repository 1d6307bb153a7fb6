// Package config describes the board wiring and runtime settings.
package config

type Config struct {
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
	Feed    FeedConfig    `yaml:"feed"`
	Log     LogConfig     `yaml:"log"`
}

// ---- DISPLAY ----

type DisplayConfig struct {
	// Startup names the function bound to each slot at boot, in slot order.
	Startup []string `yaml:"startup"`
}

// ---- INPUT ----

type InputConfig struct {
	Encoders []EncoderConfig `yaml:"encoders"`
	Buttons  []int           `yaml:"buttons"`
}

// EncoderConfig wires one quadrature encoder. The last encoder drives
// menu navigation; with two, the first is the auxiliary knob.
type EncoderConfig struct {
	A      int  `yaml:"a"`
	B      int  `yaml:"b"`
	Button *int `yaml:"button"` // push switch (optional)
}

// ---- FEED ----

type FeedConfig struct {
	URL        string `yaml:"url"`
	IntervalMs int    `yaml:"interval_ms"`
	TimeoutMs  int    `yaml:"timeout_ms"`
}

// ---- LOG ----

type LogConfig struct {
	Level string `yaml:"level"`
}

// MaxPin is the highest GPIO number of the target board.
const MaxPin = 29

// Default returns the wiring of the reference board.
func Default() *Config {
	btn := func(p int) *int { return &p }
	return &Config{
		Display: DisplayConfig{
			Startup: []string{"misc_graph", "cpu_graph", "color_test", "snake"},
		},
		Input: InputConfig{
			Encoders: []EncoderConfig{
				{A: 5, B: 4, Button: btn(28)},
				{A: 20, B: 21, Button: btn(22)},
			},
			Buttons: []int{19, 26, 27, 18},
		},
		Feed: FeedConfig{
			URL:        "http://192.168.1.10:8700/measurements",
			IntervalMs: 5000,
			TimeoutMs:  2000,
		},
		Log: LogConfig{Level: "info"},
	}
}
