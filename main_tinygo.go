//go:build tinygo && rp2040

package main

import (
	"machine"

	"minilcd/app"
	"minilcd/hal"
	"minilcd/internal/config"
)

func main() {
	h := hal.New()
	app.Run(h, loadConfig(h), app.SerialFeed(h.Serial()))
}

// loadConfig reads the config from the flash data partition. Anything that
// does not load or validate falls back to the built-in defaults.
func loadConfig(h hal.HAL) *config.Config {
	l := h.Logger()
	st, err := config.OpenStore(machine.Flash)
	if err != nil {
		l.WriteLineString("config: " + err.Error() + ", using defaults")
		return config.Default()
	}
	defer st.Close()

	cfg, err := st.Load()
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		l.WriteLineString("config: " + err.Error() + ", using defaults")
		return config.Default()
	}
	config.Normalize(cfg)
	return cfg
}
