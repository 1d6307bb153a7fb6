package input

import (
	"fmt"

	"minilcd/hal"
)

// ButtonHandler receives press and release edges.
type ButtonHandler interface {
	OnDown()
	OnUp()
}

// ButtonFuncs adapts plain functions to ButtonHandler. Nil fields are
// skipped.
type ButtonFuncs struct {
	Down func()
	Up   func()
}

func (f ButtonFuncs) OnDown() {
	if f.Down != nil {
		f.Down()
	}
}

func (f ButtonFuncs) OnUp() {
	if f.Up != nil {
		f.Up()
	}
}

// Button is an active-low push switch with a pull-up, polled from the main
// loop. It reports a callback only when the level changes.
type Button struct {
	pin     hal.GPIOPin
	level   bool
	handler ButtonHandler
}

// NewButton configures pin as a pulled-up input. The button starts
// released.
func NewButton(pin hal.GPIOPin) (*Button, error) {
	if pin == nil {
		return nil, fmt.Errorf("input: button: no such pin")
	}
	if err := pin.Configure(hal.GPIOModeInput, hal.GPIOPullUp); err != nil {
		return nil, fmt.Errorf("input: button %s: %w", pin.Name(), err)
	}
	return &Button{pin: pin, level: true}, nil
}

func (b *Button) SetHandler(h ButtonHandler) { b.handler = h }

// Pin returns the GPIO number.
func (b *Button) Pin() int { return b.pin.ID() }

// Pressed reports the last level seen by Process.
func (b *Button) Pressed() bool { return !b.level }

func (b *Button) Process() {
	level, err := b.pin.Read()
	if err != nil || level == b.level {
		return
	}
	b.level = level
	if b.handler == nil {
		return
	}
	if level {
		b.handler.OnUp()
	} else {
		b.handler.OnDown()
	}
}
