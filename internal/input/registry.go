package input

import (
	"fmt"
	"sync"

	"minilcd/hal"
)

// EncoderID indexes an encoder inside a Registry.
type EncoderID int

type pinSlot struct {
	id    EncoderID
	phase Phase
	used  bool
}

type encoderEntry struct {
	enc  *Encoder
	a, b hal.GPIOPin
}

// Registry owns every encoder and routes pin interrupts to them by index.
// Encoders live as long as the registry.
type Registry struct {
	gpio     hal.GPIO
	guard    sync.Locker
	encoders []encoderEntry
	pins     []pinSlot
}

// NewRegistry returns an empty registry. guard protects each encoder's
// event queue against the interrupt handler.
func NewRegistry(gpio hal.GPIO, guard sync.Locker) *Registry {
	return &Registry{
		gpio:  gpio,
		guard: guard,
		pins:  make([]pinSlot, gpio.PinCount()),
	}
}

// AddEncoder claims pins a and b, arms falling-edge interrupts on both and
// returns the new encoder's ID. A non-negative button pin attaches the
// encoder's push switch.
//
// Call it on the core that runs Process: GPIO interrupts are delivered to
// the core that enabled them.
func (r *Registry) AddEncoder(a, b, button int) (EncoderID, error) {
	if a == b {
		return 0, fmt.Errorf("input: encoder: pins A and B are both %d", a)
	}
	pa, err := r.claim(a)
	if err != nil {
		return 0, err
	}
	pb, err := r.claim(b)
	if err != nil {
		return 0, err
	}

	enc := NewEncoder(r.guard)
	if button >= 0 {
		btn, err := NewButton(r.gpio.Pin(button))
		if err != nil {
			return 0, err
		}
		enc.SetButton(btn)
	}

	id := EncoderID(len(r.encoders))
	r.encoders = append(r.encoders, encoderEntry{enc: enc, a: pa, b: pb})
	r.pins[a] = pinSlot{id: id, phase: PhaseA, used: true}
	r.pins[b] = pinSlot{id: id, phase: PhaseB, used: true}

	for _, p := range []hal.GPIOPin{pa, pb} {
		if err := p.SetInterrupt(hal.EdgeFalling, r.Dispatch); err != nil {
			return 0, fmt.Errorf("input: encoder %d: %w", id, err)
		}
	}
	return id, nil
}

func (r *Registry) claim(id int) (hal.GPIOPin, error) {
	p := r.gpio.Pin(id)
	if p == nil {
		return nil, fmt.Errorf("input: encoder: no pin %d", id)
	}
	if r.pins[id].used {
		return nil, fmt.Errorf("input: encoder: pin %d already in use", id)
	}
	if err := p.Configure(hal.GPIOModeInput, hal.GPIOPullUp); err != nil {
		return nil, fmt.Errorf("input: encoder: %w", err)
	}
	return p, nil
}

// Encoder returns the encoder registered under id, or nil.
func (r *Registry) Encoder(id EncoderID) *Encoder {
	if id < 0 || int(id) >= len(r.encoders) {
		return nil
	}
	return r.encoders[id].enc
}

// Len returns the number of registered encoders.
func (r *Registry) Len() int { return len(r.encoders) }

// Dispatch is the pin interrupt handler: it samples both phases of the
// encoder owning pin and feeds the edge to it. Unknown pins are ignored.
func (r *Registry) Dispatch(pin int) {
	if pin < 0 || pin >= len(r.pins) || !r.pins[pin].used {
		return
	}
	slot := r.pins[pin]
	e := r.encoders[slot.id]
	levelA, _ := e.a.Read()
	levelB, _ := e.b.Read()
	e.enc.Edge(slot.phase, levelA, levelB)
}

// Process drains every encoder in registration order.
func (r *Registry) Process() {
	for _, e := range r.encoders {
		e.enc.Process()
	}
}
