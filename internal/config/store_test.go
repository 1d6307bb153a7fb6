//go:build tinygo || cgo

package config

import (
	"testing"

	"tinygo.org/x/tinyfs"
)

func TestStoreSeedsAndPersists(t *testing.T) {
	dev := tinyfs.NewMemoryDevice(256, 4096, 64)

	st, err := OpenStore(dev)
	if err != nil {
		t.Fatalf("OpenStore() error: %v", err)
	}
	cfg, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Feed.IntervalMs != 5000 {
		t.Fatalf("seeded IntervalMs = %d, want 5000", cfg.Feed.IntervalMs)
	}

	cfg.Display.Startup = []string{"snake", "none", "none", "none"}
	if err := st.Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	st, err = OpenStore(dev)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer st.Close()
	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load() after reopen error: %v", err)
	}
	if got.Display.Startup[0] != "snake" || got.Display.Startup[1] != "none" {
		t.Fatalf("Startup = %v, want persisted table", got.Display.Startup)
	}
}
