//go:build !tinygo

package app

import (
	"context"
	"testing"

	"minilcd/hal"
	"minilcd/internal/comm"
	"minilcd/internal/config"
	"minilcd/internal/system"
)

type staticSource struct {
	body  []byte
	calls int
}

func (s *staticSource) Fetch(context.Context) ([]byte, error) {
	s.calls++
	return s.body, nil
}

func newTestFirmware(t *testing.T) (hal.HAL, *Firmware) {
	t.Helper()
	h := hal.New()
	cfg := config.Default()
	cfg.Log.Level = "error"
	fw, err := NewFirmware(h, cfg, NewLogger(h, cfg))
	if err != nil {
		t.Fatalf("NewFirmware() error: %v", err)
	}
	return h, fw
}

func TestFirmwareAppliesStartupTable(t *testing.T) {
	_, fw := newTestFirmware(t)
	want := [system.SlotCount]system.Function{system.MiscGraph, system.CPUGraph, system.ColorTest, system.Snake}
	if got := fw.Router().Functions(); got != want {
		t.Fatalf("Functions() = %v, want %v", got, want)
	}
}

func TestNavButtonOpensSettings(t *testing.T) {
	h, fw := newTestFirmware(t)
	drv := h.GPIO().(hal.PinDriver)

	drv.Drive(22, false)
	fw.Step()
	drv.Drive(22, true)
	fw.Step()

	slot, ok := fw.Router().SettingsOpen()
	if !ok || slot != system.SettingsSlot {
		t.Fatalf("SettingsOpen() = %d, %v, want %d, true", slot, ok, system.SettingsSlot)
	}
}

func TestNetworkToFirmware(t *testing.T) {
	h, fw := newTestFirmware(t)
	src := &staticSource{body: []byte(`{"measurements":[{"CPU0":"50","RAM":"8192"}]}`)}
	net := NewNetwork(h, src, 1000, 0, nil)

	// A message is longer than the FIFO, so the producer needs a consumer.
	done := make(chan struct{})
	go func() {
		net.Step(context.Background())
		close(done)
	}()
	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
			fw.Step()
		}
	}
	fw.Step()

	if src.calls != 1 {
		t.Fatalf("fetches = %d, want 1", src.calls)
	}
	if n := net.Sender().Pending(); n != 0 {
		t.Fatalf("Pending() = %d, want 0", n)
	}
	if _, ok := h.FIFO().TryPop(); ok {
		t.Fatalf("FIFO not drained")
	}
	if fw.Crashed() {
		t.Fatalf("Crashed() = true")
	}

	net.Step(context.Background())
	if src.calls != 1 {
		t.Fatalf("fetches = %d, want 1 within the interval", src.calls)
	}
}

func TestFirmwareRejectsSharedPins(t *testing.T) {
	h := hal.New()
	cfg := config.Default()
	cfg.Input.Encoders[0].B = cfg.Input.Encoders[0].A
	if _, err := NewFirmware(h, cfg, nil); err == nil {
		t.Fatalf("NewFirmware() = nil error, want encoder pin error")
	}
}

func TestFirmwareSurvivesBadMessage(t *testing.T) {
	h, fw := newTestFirmware(t)
	h.FIFO().Push(uint32(comm.KindUnknown))
	fw.Step()
	if fw.Crashed() {
		t.Fatalf("Crashed() = true after an unknown kind")
	}
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("héllo world", 5)
	if p != "héllo" || r != " world" {
		t.Fatalf("takeRunes() = %q, %q", p, r)
	}
	p, r = takeRunes("abc", 5)
	if p != "abc" || r != "" {
		t.Fatalf("takeRunes() = %q, %q", p, r)
	}
}
