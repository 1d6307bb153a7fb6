package config

import (
	"fmt"
	"net/url"

	"minilcd/internal/logx"
	"minilcd/internal/system"
)

// Validate checks configuration correctness.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: missing")
	}

	// ------------------------------------------------------------
	// DISPLAY
	// ------------------------------------------------------------

	if len(cfg.Display.Startup) != system.SlotCount {
		return fmt.Errorf(
			"display.startup: want %d entries, got %d",
			system.SlotCount,
			len(cfg.Display.Startup),
		)
	}

	bound := make(map[system.Function]int)
	for i, name := range cfg.Display.Startup {
		fn, err := system.ParseFunction(name)
		if err != nil {
			return fmt.Errorf("display.startup[%d]: %w", i, err)
		}
		if fn == system.None {
			continue
		}
		if prev, ok := bound[fn]; ok {
			return fmt.Errorf(
				"display.startup[%d]: %s already bound to slot %d",
				i,
				name,
				prev,
			)
		}
		bound[fn] = i
	}

	// ------------------------------------------------------------
	// INPUT (every pin claimed once)
	// ------------------------------------------------------------

	owner := make(map[int]string)
	claim := func(pin int, what string) error {
		if pin < 0 || pin > MaxPin {
			return fmt.Errorf("%s: pin %d out of range 0..%d", what, pin, MaxPin)
		}
		if prev, ok := owner[pin]; ok {
			return fmt.Errorf("%s: pin %d already used by %s", what, pin, prev)
		}
		owner[pin] = what
		return nil
	}

	if len(cfg.Input.Encoders) > 2 {
		return fmt.Errorf("input.encoders: at most 2 supported, got %d", len(cfg.Input.Encoders))
	}
	for i, e := range cfg.Input.Encoders {
		if err := claim(e.A, fmt.Sprintf("input.encoders[%d].a", i)); err != nil {
			return err
		}
		if err := claim(e.B, fmt.Sprintf("input.encoders[%d].b", i)); err != nil {
			return err
		}
		if e.Button != nil {
			if err := claim(*e.Button, fmt.Sprintf("input.encoders[%d].button", i)); err != nil {
				return err
			}
		}
	}
	for i, p := range cfg.Input.Buttons {
		if err := claim(p, fmt.Sprintf("input.buttons[%d]", i)); err != nil {
			return err
		}
	}

	// ------------------------------------------------------------
	// FEED
	// ------------------------------------------------------------

	if cfg.Feed.URL != "" {
		u, err := url.Parse(cfg.Feed.URL)
		if err != nil {
			return fmt.Errorf("feed.url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("feed.url: unsupported scheme %q", u.Scheme)
		}
	}
	if cfg.Feed.IntervalMs <= 0 {
		return fmt.Errorf("feed.interval_ms must be > 0")
	}
	if cfg.Feed.TimeoutMs < 0 {
		return fmt.Errorf("feed.timeout_ms must be >= 0")
	}

	// ------------------------------------------------------------
	// LOG
	// ------------------------------------------------------------

	if _, err := logx.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}
