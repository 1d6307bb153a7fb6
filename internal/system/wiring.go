package system

import "minilcd/internal/input"

// Button roles by board position.
const (
	buttonSnakeLeft  = 2
	buttonSnakeRight = 3
)

// navKnob scrolls the settings menu while it is showing.
type navKnob struct{ r *Router }

func (k navKnob) OnLeft() {
	if _, ok := k.r.SettingsOpen(); ok {
		k.r.menu.Up()
	}
}

func (k navKnob) OnRight() {
	if _, ok := k.r.SettingsOpen(); ok {
		k.r.menu.Down()
	}
}

// auxKnob has no function yet beyond logging.
type auxKnob struct{ r *Router }

func (k auxKnob) OnLeft()  { k.r.log.Debugf("encoder 0: left") }
func (k auxKnob) OnRight() { k.r.log.Debugf("encoder 0: right") }

// NavPress clicks the settings menu when it is showing and opens it on
// SettingsSlot otherwise.
func (r *Router) NavPress() {
	if _, ok := r.SettingsOpen(); ok {
		r.menu.Click()
		return
	}
	r.SetDisplayFunction(SettingsSlot, Settings)
}

// AuxPress steps back in the settings menu.
func (r *Router) AuxPress() {
	r.settings.back()
}

func (r *Router) wireInputs() {
	in := r.inputs
	if reg := in.Encoders; reg != nil {
		if nav := reg.Encoder(in.Nav); nav != nil {
			nav.SetHandler(navKnob{r})
			if b := nav.Button(); b != nil {
				b.SetHandler(input.ButtonFuncs{Down: r.NavPress})
			}
		}
		if aux := reg.Encoder(in.Aux); aux != nil && in.Aux != in.Nav {
			aux.SetHandler(auxKnob{r})
			if b := aux.Button(); b != nil {
				b.SetHandler(input.ButtonFuncs{Down: r.AuxPress})
			}
		}
	}

	for i, b := range in.Buttons {
		if b == nil {
			continue
		}
		i := i
		h := input.ButtonFuncs{Up: func() { r.log.Debugf("button %d up", i) }}
		switch i {
		case buttonSnakeLeft:
			h.Down = r.snake.TurnLeft
		case buttonSnakeRight:
			h.Down = r.snake.TurnRight
		}
		b.SetHandler(h)
	}
}
