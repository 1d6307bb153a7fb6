package input

import (
	"sync"
	"testing"

	"minilcd/hal"
)

func newTestRegistry(t *testing.T) (*hal.VirtualGPIO, *Registry) {
	t.Helper()
	g := hal.NewVirtualGPIO(30)
	return g, NewRegistry(g, &sync.Mutex{})
}

func TestRegistryDispatchByPin(t *testing.T) {
	g, r := newTestRegistry(t)
	id0, err := r.AddEncoder(5, 4, 28)
	if err != nil {
		t.Fatalf("AddEncoder: %v", err)
	}
	id1, err := r.AddEncoder(20, 21, 22)
	if err != nil {
		t.Fatalf("AddEncoder: %v", err)
	}

	log0, log1 := &stepLog{}, &stepLog{}
	r.Encoder(id0).SetHandler(log0)
	r.Encoder(id1).SetHandler(log1)

	// B-lead cycle on encoder 1 only.
	g.Drive(21, false)
	g.Drive(20, false)
	g.Drive(21, true)
	g.Drive(20, true)
	r.Process()

	if len(log0.steps) != 0 {
		t.Fatalf("encoder 0 steps = %v, want none", log0.steps)
	}
	if len(log1.steps) != 1 || log1.steps[0] != Right {
		t.Fatalf("encoder 1 steps = %v, want [right]", log1.steps)
	}
}

func TestRegistryRejectsSharedPins(t *testing.T) {
	_, r := newTestRegistry(t)
	if _, err := r.AddEncoder(5, 4, -1); err != nil {
		t.Fatalf("AddEncoder: %v", err)
	}
	if _, err := r.AddEncoder(4, 6, -1); err == nil {
		t.Fatalf("AddEncoder(reused pin) error = nil, want error")
	}
	if _, err := r.AddEncoder(7, 7, -1); err == nil {
		t.Fatalf("AddEncoder(A == B) error = nil, want error")
	}
	if _, err := r.AddEncoder(40, 41, -1); err == nil {
		t.Fatalf("AddEncoder(out of range) error = nil, want error")
	}
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistryIgnoresUnknownPins(t *testing.T) {
	_, r := newTestRegistry(t)
	r.Dispatch(3)
	r.Dispatch(-1)
	r.Dispatch(99)
	if r.Encoder(0) != nil {
		t.Fatalf("Encoder(0) on empty registry = non-nil")
	}
}

func TestKeySimDrivesEncodersAndButtons(t *testing.T) {
	g, r := newTestRegistry(t)
	nav, err := r.AddEncoder(20, 21, 22)
	if err != nil {
		t.Fatalf("AddEncoder: %v", err)
	}
	steps := &stepLog{}
	r.Encoder(nav).SetHandler(steps)
	var presses int
	r.Encoder(nav).Button().SetHandler(ButtonFuncs{Down: func() { presses++ }})

	btn, err := NewButton(g.Pin(19))
	if err != nil {
		t.Fatalf("NewButton: %v", err)
	}
	var clicks int
	btn.SetHandler(ButtonFuncs{Down: func() { clicks++ }})

	sim := NewKeySim(g, KeyMap{
		Nav:     EncoderPins{A: 20, B: 21, Button: 22},
		Aux:     EncoderPins{A: 5, B: 4, Button: -1},
		Buttons: []int{19},
	})

	sim.HandleKey(hal.KeyEvent{Code: hal.KeyUp, Press: true})
	sim.HandleKey(hal.KeyEvent{Code: hal.KeyUp, Press: false})
	sim.HandleKey(hal.KeyEvent{Code: hal.KeyDown, Press: true})
	sim.HandleKey(hal.KeyEvent{Code: hal.KeyEnter, Press: true})
	sim.HandleKey(hal.KeyEvent{Press: true, Rune: '1'})
	r.Process()
	btn.Process()

	if len(steps.steps) != 2 || steps.steps[0] != Left || steps.steps[1] != Right {
		t.Fatalf("steps = %v, want [left right]", steps.steps)
	}
	if presses != 1 {
		t.Fatalf("presses = %d, want 1", presses)
	}
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}

	sim.Tick()
	btn.Process()
	if btn.Pressed() {
		t.Fatalf("pulsed button still pressed after Tick")
	}
}
