// Package input decodes rotary encoders and push buttons wired to GPIO pins.
package input

import (
	"sync"

	"minilcd/internal/ringbuf"
)

// Direction is one detent of encoder rotation.
type Direction uint8

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// ALeadDirection is reported when phase A falls before phase B. It is set
// by calibration against the mounted encoders; the opposite phase order
// reports the other direction.
const ALeadDirection = Left

func bLeadDirection() Direction {
	if ALeadDirection == Left {
		return Right
	}
	return Left
}

// Phase names one of the two encoder signals.
type Phase uint8

const (
	PhaseA Phase = iota
	PhaseB
)

// RotaryHandler receives decoded rotation steps on the main loop.
type RotaryHandler interface {
	OnLeft()
	OnRight()
}

// Encoder is a two-latch quadrature decoder. Edge runs in interrupt
// context and only queues directions; Process delivers them.
type Encoder struct {
	// Latches written only by Edge.
	aFell bool
	bFell bool

	events  *ringbuf.Queue[Direction]
	handler RotaryHandler
	button  *Button
}

// NewEncoder returns a decoder whose event queue is guarded by guard.
func NewEncoder(guard sync.Locker) *Encoder {
	return &Encoder{events: ringbuf.New[Direction](ringbuf.DefaultCapacity, guard)}
}

// SetHandler binds rotation callbacks. A nil handler drops events.
func (e *Encoder) SetHandler(h RotaryHandler) { e.handler = h }

// SetButton attaches the encoder's push switch so Process polls it too.
func (e *Encoder) SetButton(b *Button) { e.button = b }

// Button returns the attached push switch, or nil.
func (e *Encoder) Button() *Button { return e.button }

// Edge handles a falling edge on phase p, given both pin levels sampled in
// the interrupt.
func (e *Encoder) Edge(p Phase, levelA, levelB bool) {
	switch p {
	case PhaseA:
		if !e.aFell && !levelA && levelB {
			e.aFell = true
		}
		if e.bFell && !levelA && !levelB {
			e.aFell, e.bFell = false, false
			e.events.Push(bLeadDirection())
		}
	case PhaseB:
		if !e.bFell && levelA && !levelB {
			e.bFell = true
		}
		if e.aFell && !levelA && !levelB {
			e.aFell, e.bFell = false, false
			e.events.Push(ALeadDirection)
		}
	}
}

// Process delivers queued steps in order, then polls the push switch.
// Call it from the main loop only.
func (e *Encoder) Process() {
	for {
		d, ok := e.events.PopFront()
		if !ok {
			break
		}
		if e.handler == nil {
			continue
		}
		if d == Left {
			e.handler.OnLeft()
		} else {
			e.handler.OnRight()
		}
	}
	if e.button != nil {
		e.button.Process()
	}
}

// Pending reports how many steps are waiting for Process.
func (e *Encoder) Pending() int { return e.events.Len() }
