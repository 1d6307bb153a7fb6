package input

import (
	"testing"

	"minilcd/hal"
)

func TestButtonEdgesOnChange(t *testing.T) {
	g := hal.NewVirtualGPIO(8)
	b, err := NewButton(g.Pin(3))
	if err != nil {
		t.Fatalf("NewButton: %v", err)
	}
	var downs, ups int
	b.SetHandler(ButtonFuncs{Down: func() { downs++ }, Up: func() { ups++ }})

	b.Process()
	if downs != 0 || ups != 0 {
		t.Fatalf("idle button fired down=%d up=%d", downs, ups)
	}

	g.Drive(3, false)
	b.Process()
	b.Process()
	if downs != 1 || !b.Pressed() {
		t.Fatalf("downs = %d pressed = %v, want 1 true", downs, b.Pressed())
	}

	g.Drive(3, true)
	b.Process()
	if ups != 1 || b.Pressed() {
		t.Fatalf("ups = %d pressed = %v, want 1 false", ups, b.Pressed())
	}
}

func TestButtonFuncsNilFields(t *testing.T) {
	g := hal.NewVirtualGPIO(1)
	b, err := NewButton(g.Pin(0))
	if err != nil {
		t.Fatalf("NewButton: %v", err)
	}
	b.SetHandler(ButtonFuncs{})
	g.Drive(0, false)
	b.Process()
	g.Drive(0, true)
	b.Process()
}

func TestNewButtonMissingPin(t *testing.T) {
	g := hal.NewVirtualGPIO(1)
	if _, err := NewButton(g.Pin(5)); err == nil {
		t.Fatalf("NewButton(missing) error = nil, want error")
	}
}
