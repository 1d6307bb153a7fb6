//go:build tinygo && rp2040

package hal

import (
	"fmt"
	"machine"
)

const machinePinCount = 30

type machineGPIO struct {
	pins [machinePinCount]*machinePin
}

func (g *machineGPIO) PinCount() int { return machinePinCount }

func (g *machineGPIO) Pin(id int) GPIOPin {
	if id < 0 || id >= machinePinCount {
		return nil
	}
	if g.pins[id] == nil {
		g.pins[id] = &machinePin{id: id, pin: machine.Pin(id)}
	}
	return g.pins[id]
}

type machinePin struct {
	id   int
	pin  machine.Pin
	mode GPIOMode
}

func (p *machinePin) ID() int      { return p.id }
func (p *machinePin) Name() string { return fmt.Sprintf("GP%d", p.id) }

func (p *machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	var m machine.PinMode
	switch {
	case mode == GPIOModeOutput:
		m = machine.PinOutput
	case pull == GPIOPullUp:
		m = machine.PinInputPullup
	case pull == GPIOPullDown:
		m = machine.PinInputPulldown
	case mode == GPIOModeInput:
		m = machine.PinInput
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.Name())
	}
	p.pin.Configure(machine.PinConfig{Mode: m})
	p.mode = mode
	return nil
}

func (p *machinePin) Read() (bool, error) {
	return p.pin.Get(), nil
}

func (p *machinePin) SetInterrupt(edge Edge, fn func(id int)) error {
	if p.mode != GPIOModeInput {
		return fmt.Errorf("gpio: pin %s: interrupts need input mode", p.Name())
	}
	if fn == nil {
		return p.pin.SetInterrupt(0, nil)
	}
	var change machine.PinChange
	if edge&EdgeFalling != 0 {
		change |= machine.PinFalling
	}
	if edge&EdgeRising != 0 {
		change |= machine.PinRising
	}
	id := p.id
	return p.pin.SetInterrupt(change, func(machine.Pin) { fn(id) })
}
