package app

import (
	"context"
	"fmt"
	"time"

	"minilcd/hal"
	"minilcd/internal/buildinfo"
	"minilcd/internal/config"
	"minilcd/internal/feed"
	"minilcd/internal/logx"
)

// serialPollMs is how often the serial feed is drained.
const serialPollMs = 50

// Feed selects where the network core gets its measurements. A nil Source
// leaves the network core idle.
type Feed struct {
	Source   feed.Source
	Interval uint64 // ms
	Timeout  time.Duration
}

// HTTPFeed polls cfg.Feed.URL.
func HTTPFeed(cfg *config.Config) Feed {
	if cfg.Feed.URL == "" {
		return Feed{}
	}
	return Feed{
		Source:   feed.NewHTTPSource(cfg.Feed.URL, cfg.RequestTimeout()),
		Interval: uint64(cfg.Feed.IntervalMs),
		Timeout:  cfg.RequestTimeout(),
	}
}

// SerialFeed reads newline-delimited JSON from the board's USB serial.
func SerialFeed(s hal.Serial) Feed {
	return Feed{Source: feed.NewLineSource(s), Interval: serialPollMs}
}

// NewLogger returns the root logger at the configured level.
func NewLogger(h hal.HAL, cfg *config.Config) *logx.Logger {
	return logx.New(h.Logger(), cfg.Level(), h.Clock().Millis)
}

// New builds the firmware for the host runners and returns its main-loop
// step. The network core runs on its own goroutine.
func New(h hal.HAL, cfg *config.Config, fd Feed) func() error {
	log := NewLogger(h, cfg)
	log.Infof("minilcd %s", buildinfo.String())

	fw, err := NewFirmware(h, cfg, log)
	if err != nil {
		log.Errorf("init: %v", err)
		return func() error { return fmt.Errorf("init: %w", err) }
	}
	if fd.Source != nil {
		net := NewNetwork(h, fd.Source, fd.Interval, fd.Timeout, log)
		h.StartCore1(func() { net.Run(context.Background()) })
	}
	return func() error {
		fw.Step()
		return nil
	}
}

// Run starts the board and never returns. Core 0 runs the network side,
// core 1 the panels and controls.
func Run(h hal.HAL, cfg *config.Config, fd Feed) {
	log := NewLogger(h, cfg)
	log.Infof("minilcd %s", buildinfo.String())

	h.StartCore1(func() {
		fw, err := NewFirmware(h, cfg, log)
		if err != nil {
			showPanic(h, err)
			select {}
		}
		for {
			fw.Step()
		}
	})

	if fd.Source == nil {
		select {}
	}
	NewNetwork(h, fd.Source, fd.Interval, fd.Timeout, log).Run(context.Background())
}
