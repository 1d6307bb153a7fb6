package hal

import (
	"fmt"
	"sync"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// Edge selects which level transitions raise a pin interrupt.
type Edge uint8

const (
	EdgeFalling Edge = 1 << iota
	EdgeRising
)

// GPIO provides access to general-purpose IO pins by GPIO number.
type GPIO interface {
	PinCount() int
	Pin(id int) GPIOPin
}

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	ID() int
	Name() string
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	// SetInterrupt installs fn as the edge handler. fn runs in interrupt
	// context on the board: it must not block or allocate. A nil fn
	// disables the interrupt.
	SetInterrupt(edge Edge, fn func(id int)) error
}

// PinDriver forces input levels on simulated pins.
type PinDriver interface {
	Drive(id int, level bool)
}

// VirtualGPIO is an in-memory pin bank. Inputs read their pull level
// until driven.
type VirtualGPIO struct {
	pins []*virtualPin
}

// NewVirtualGPIO returns count simulated pins numbered from 0.
func NewVirtualGPIO(count int) *VirtualGPIO {
	g := &VirtualGPIO{pins: make([]*virtualPin, count)}
	for i := range g.pins {
		g.pins[i] = newVirtualPin(i)
	}
	return g
}

func (g *VirtualGPIO) PinCount() int {
	if g == nil {
		return 0
	}
	return len(g.pins)
}

func (g *VirtualGPIO) Pin(id int) GPIOPin {
	if g == nil || id < 0 || id >= len(g.pins) {
		return nil
	}
	return g.pins[id]
}

// Drive sets the external level of an input pin, firing its interrupt
// handler synchronously on a matching edge.
func (g *VirtualGPIO) Drive(id int, level bool) {
	if g == nil || id < 0 || id >= len(g.pins) {
		return
	}
	g.pins[id].drive(level)
}

type virtualPin struct {
	mu    sync.Mutex
	id    int
	mode  GPIOMode
	pull  GPIOPull
	level bool

	// driven reports whether something outside pulls the pin; when false
	// the level follows the pull resistor.
	driven bool

	edge Edge
	fn   func(id int)
}

func newVirtualPin(id int) *virtualPin {
	return &virtualPin{id: id, mode: GPIOModeInput}
}

func (p *virtualPin) ID() int      { return p.id }
func (p *virtualPin) Name() string { return fmt.Sprintf("GPIO%d", p.id) }

func (p *virtualPin) Configure(mode GPIOMode, pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch mode {
	case GPIOModeInput, GPIOModeOutput:
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.Name())
	}
	switch pull {
	case GPIOPullNone, GPIOPullUp, GPIOPullDown:
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull", p.Name())
	}

	p.mode = mode
	p.pull = pull
	if !p.driven {
		p.level = pull == GPIOPullUp
	}
	return nil
}

func (p *virtualPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level, nil
}

func (p *virtualPin) SetInterrupt(edge Edge, fn func(id int)) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != GPIOModeInput {
		return fmt.Errorf("gpio: pin %s: interrupts need input mode", p.Name())
	}
	p.edge = edge
	p.fn = fn
	return nil
}

func (p *virtualPin) drive(level bool) {
	p.mu.Lock()
	prev := p.level
	p.level = level
	p.driven = true
	fn := p.fn
	edge := p.edge
	p.mu.Unlock()

	if fn == nil || prev == level {
		return
	}
	if (!level && edge&EdgeFalling != 0) || (level && edge&EdgeRising != 0) {
		fn(p.id)
	}
}
