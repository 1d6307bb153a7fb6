package config

import (
	"strings"
	"time"

	"minilcd/internal/logx"
	"minilcd/internal/system"
)

// Normalize applies post-validation normalization.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	for i, name := range cfg.Display.Startup {
		cfg.Display.Startup[i] = strings.ToLower(strings.TrimSpace(name))
	}

	// A request may not outlive the poll interval.
	if cfg.Feed.TimeoutMs == 0 || cfg.Feed.TimeoutMs > cfg.Feed.IntervalMs {
		cfg.Feed.TimeoutMs = cfg.Feed.IntervalMs
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
}

// Startup resolves the startup table of a validated config.
func (c *Config) Startup() [system.SlotCount]system.Function {
	var out [system.SlotCount]system.Function
	for i := range out {
		if i < len(c.Display.Startup) {
			out[i], _ = system.ParseFunction(c.Display.Startup[i])
		}
	}
	return out
}

// Level resolves the log level of a validated config.
func (c *Config) Level() logx.Level {
	l, _ := logx.ParseLevel(c.Log.Level)
	return l
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Feed.IntervalMs) * time.Millisecond
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Feed.TimeoutMs) * time.Millisecond
}
