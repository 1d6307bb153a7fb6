package input

import "minilcd/hal"

// KeyMap binds keyboard keys to simulated encoder and button pins.
type KeyMap struct {
	// Nav is turned by Up/Down and pressed by Enter.
	Nav EncoderPins
	// Aux is turned by Left/Right and pressed by Escape.
	Aux EncoderPins
	// Buttons are pulsed by the runes '1', '2', ... in order.
	Buttons []int
}

// EncoderPins names the GPIOs of one encoder. Button < 0 means none.
type EncoderPins struct {
	A, B, Button int
}

// KeySim turns keyboard events into pin level sequences on a simulated
// GPIO bank, so the host drives the same interrupt path as the board.
type KeySim struct {
	drv     hal.PinDriver
	keys    KeyMap
	release []int
}

func NewKeySim(drv hal.PinDriver, keys KeyMap) *KeySim {
	return &KeySim{drv: drv, keys: keys}
}

// HandleKey applies one keyboard event.
func (s *KeySim) HandleKey(ev hal.KeyEvent) {
	if ev.Rune >= '1' && ev.Rune <= '9' {
		i := int(ev.Rune - '1')
		if i < len(s.keys.Buttons) {
			s.pulse(s.keys.Buttons[i])
		}
		return
	}

	switch ev.Code {
	case hal.KeyUp:
		if ev.Press {
			s.step(s.keys.Nav, Left)
		}
	case hal.KeyDown:
		if ev.Press {
			s.step(s.keys.Nav, Right)
		}
	case hal.KeyLeft:
		if ev.Press {
			s.step(s.keys.Aux, Left)
		}
	case hal.KeyRight:
		if ev.Press {
			s.step(s.keys.Aux, Right)
		}
	case hal.KeyEnter:
		s.hold(s.keys.Nav.Button, ev.Press)
	case hal.KeyEscape:
		s.hold(s.keys.Aux.Button, ev.Press)
	}
}

// Tick releases buttons pulsed since the previous Tick.
func (s *KeySim) Tick() {
	for _, pin := range s.release {
		s.drv.Drive(pin, true)
	}
	s.release = s.release[:0]
}

// step plays one full quadrature cycle that decodes as d.
func (s *KeySim) step(e EncoderPins, d Direction) {
	lead, lag := e.A, e.B
	if d != ALeadDirection {
		lead, lag = e.B, e.A
	}
	s.drv.Drive(lead, false)
	s.drv.Drive(lag, false)
	s.drv.Drive(lead, true)
	s.drv.Drive(lag, true)
}

func (s *KeySim) hold(pin int, pressed bool) {
	if pin < 0 {
		return
	}
	s.drv.Drive(pin, !pressed)
}

func (s *KeySim) pulse(pin int) {
	s.drv.Drive(pin, false)
	s.release = append(s.release, pin)
}
