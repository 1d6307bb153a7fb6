package system

import (
	"testing"

	"minilcd/internal/logx"
)

// pick moves the highlight to row idx and clicks it.
func pick(h *harness, idx int) {
	m := h.r.Menu()
	for m.Selected() != idx {
		m.Down()
	}
	h.r.NavPress()
}

func TestSettingsCancelRestores(t *testing.T) {
	h := newHarness(t, Inputs{})
	h.r.NavPress()
	if got := h.r.Functions()[SettingsSlot]; got != Settings {
		t.Fatalf("slot %d = %s, want Settings", SettingsSlot, got)
	}
	if !h.surfaces[SettingsSlot].HasText("Logger verbosity") {
		t.Fatalf("main menu not drawn: %v", h.surfaces[SettingsSlot].Texts())
	}

	pick(h, itemCancel)
	if got := h.r.Functions(); got != startup {
		t.Fatalf("Functions() = %v, want %v", got, startup)
	}
	if _, ok := h.r.SettingsOpen(); ok {
		t.Fatalf("settings still open after cancel")
	}
	if h.r.settings.slot != -1 || h.r.settings.last != None {
		t.Fatalf("settings bookkeeping left behind: slot=%d last=%s", h.r.settings.slot, h.r.settings.last)
	}
}

func TestSettingsPickReplacedFunctionElsewhere(t *testing.T) {
	h := newHarness(t, Inputs{})
	h.r.NavPress()
	pick(h, itemDisplayFunctions)
	pick(h, 0) // Top Left
	pick(h, int(Snake))

	want := [SlotCount]Function{Snake, CPUGraph, ColorTest, None}
	if got := h.r.Functions(); got != want {
		t.Fatalf("Functions() = %v, want %v", got, want)
	}
	checkExclusive(t, h.r.Functions())
}

func TestSettingsPickOtherFunction(t *testing.T) {
	h := newHarness(t, Inputs{})
	h.r.NavPress()
	pick(h, itemDisplayFunctions)
	pick(h, 1) // Top Right
	pick(h, int(ColorTest))

	want := [SlotCount]Function{MiscGraph, ColorTest, None, Snake}
	if got := h.r.Functions(); got != want {
		t.Fatalf("Functions() = %v, want %v", got, want)
	}
}

func TestSettingsFunctionPickerLabels(t *testing.T) {
	h := newHarness(t, Inputs{})
	h.r.NavPress()
	pick(h, itemDisplayFunctions)
	if got := h.r.Menu().Items(); len(got) != SlotCount || got[3] != "Bottom Right" {
		t.Fatalf("display picker items = %v", got)
	}
	pick(h, 2)
	items := h.r.Menu().Items()
	if len(items) != int(functionCount) || items[int(CPUGraph)] != "CPU Graph" {
		t.Fatalf("function picker items = %v", items)
	}
}

func TestSettingsVerbosity(t *testing.T) {
	h := newHarness(t, Inputs{})
	h.r.NavPress()
	pick(h, itemLoggerVerbosity)
	if got := h.r.Menu().Items(); len(got) != 5 || got[0] != "Trace" || got[4] != "Error" {
		t.Fatalf("verbosity items = %v", got)
	}
	pick(h, 3) // Warn
	if got := h.log.Level(); got != logx.LevelWarn {
		t.Fatalf("Level() = %s, want WARN", got)
	}
	if got := h.r.Functions(); got != startup {
		t.Fatalf("Functions() = %v, want %v", got, startup)
	}
}

func TestSettingsReboot(t *testing.T) {
	h := newHarness(t, Inputs{})
	h.r.NavPress()
	pick(h, itemReboot)
	if h.reboots.n != 1 {
		t.Fatalf("reboots = %d, want 1", h.reboots.n)
	}
}

func TestSettingsBackFromPicker(t *testing.T) {
	h := newHarness(t, Inputs{})
	h.r.NavPress()
	pick(h, itemDisplayFunctions)
	h.r.AuxPress()
	if got := h.r.Menu().Items(); len(got) != len(mainMenuItems) || got[0] != mainMenuItems[0] {
		t.Fatalf("items after back = %v, want main menu", got)
	}
	h.r.AuxPress()
	if got := h.r.Functions(); got != startup {
		t.Fatalf("Functions() = %v, want %v", got, startup)
	}
	// Back with the menu closed does nothing.
	h.r.AuxPress()
	if got := h.r.Functions(); got != startup {
		t.Fatalf("Functions() = %v after stray back, want %v", got, startup)
	}
}

func TestSettingsOnBlankSlotRestoresNone(t *testing.T) {
	h := newHarness(t, Inputs{})
	if err := h.r.SetDisplayFunction(SettingsSlot, None); err != nil {
		t.Fatalf("SetDisplayFunction: %v", err)
	}
	h.r.NavPress()
	pick(h, itemCancel)
	if got := h.r.Functions()[SettingsSlot]; got != None {
		t.Fatalf("slot %d = %s, want None", SettingsSlot, got)
	}
}

func TestParseFunction(t *testing.T) {
	for _, f := range AllFunctions() {
		got, err := ParseFunction(f.Key())
		if err != nil || got != f {
			t.Fatalf("ParseFunction(%q) = %s, %v", f.Key(), got, err)
		}
	}
	if _, err := ParseFunction("tetris"); err == nil {
		t.Fatalf("ParseFunction(tetris) error = nil, want error")
	}
}
