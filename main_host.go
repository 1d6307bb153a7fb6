//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"minilcd/app"
	"minilcd/hal"
	"minilcd/internal/config"
)

func main() {
	var hcfg hal.HeadlessConfig
	var cfgPath, feedURL, level string
	flag.StringVar(&cfgPath, "config", "", "YAML config file (empty = built-in defaults).")
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&feedURL, "url", "", "Override feed.url.")
	flag.StringVar(&level, "log", "", "Override log.level (trace, debug, info, warn, error).")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			fail(err)
		}
	}
	if feedURL != "" {
		cfg.Feed.URL = feedURL
	}
	if level != "" {
		cfg.Log.Level = level
	}
	if err := config.Validate(cfg); err != nil {
		fail(fmt.Errorf("config validation failed: %w", err))
	}
	config.Normalize(cfg)

	newApp := func(h hal.HAL) func() error {
		return app.New(h, cfg, app.HTTPFeed(cfg))
	}

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if err == context.Canceled {
				return
			}
			fail(err)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
