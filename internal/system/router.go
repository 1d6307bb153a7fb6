// Package system binds display functions to the four panel slots and runs
// the settings menu that changes those bindings at runtime.
package system

import (
	"minilcd/internal/applet/colortest"
	"minilcd/internal/applet/perfgraph"
	"minilcd/internal/applet/snake"
	"minilcd/internal/comm"
	"minilcd/internal/gfx"
	"minilcd/internal/input"
	"minilcd/internal/logx"
	"minilcd/internal/menu"
)

// SlotCount is the number of display slots.
const SlotCount = 4

// SettingsSlot is where the nav encoder's press opens the settings menu.
const SettingsSlot = 3

// Slot names in slot order.
var slotNames = []string{"Top Left", "Top Right", "Bottom Left", "Bottom Right"}

// Applet is a function instance that draws on a slot while attached.
type Applet interface {
	// Attach starts drawing on s.
	Attach(s gfx.Surface)
	// Detach stops drawing and releases the surface.
	Detach()
	// Process runs one main-loop tick; now is in milliseconds.
	Process(now uint64)
}

// Rebooter restarts the board. Reboot does not return on hardware.
type Rebooter interface {
	Reboot()
}

// Inputs are the controls the router wires to its functions. Any field may
// be zero; missing controls are not wired.
type Inputs struct {
	Encoders *input.Registry
	// Nav drives the settings menu; Aux only logs.
	Nav, Aux input.EncoderID
	// Buttons in board order; 2 and 3 steer the snake.
	Buttons []*input.Button
}

// Config assembles a Router.
type Config struct {
	Log      *logx.Logger
	Surfaces [SlotCount]gfx.Surface
	Rebooter Rebooter
	Inputs   Inputs
	// Seed feeds the snake's apple placement.
	Seed uint32
}

// Router owns every function instance and the slot table. All methods run
// on the display core's main loop.
type Router struct {
	log      *logx.Logger
	surfaces [SlotCount]gfx.Surface
	slots    [SlotCount]Function
	applets  [functionCount]Applet
	reboot   Rebooter
	inputs   Inputs

	perf  *perfgraph.Store
	snake *snake.Game
	menu  *menu.Menu

	settings settingsFlow
	now      uint64
}

// New builds the router with every slot set to None. Call Init to apply
// the startup table.
func New(cfg Config) *Router {
	r := &Router{
		log:      cfg.Log,
		surfaces: cfg.Surfaces,
		reboot:   cfg.Rebooter,
		inputs:   cfg.Inputs,
		perf:     perfgraph.NewStore(),
		snake:    snake.New(cfg.Seed),
		menu:     menu.New(),
	}
	r.settings = settingsFlow{r: r, slot: -1, selected: -1}

	r.applets[None] = blank{}
	r.applets[ColorTest] = colortest.New()
	r.applets[CPUGraph] = r.perf.CPUView()
	r.applets[MiscGraph] = r.perf.MiscView()
	r.applets[Snake] = r.snake
	r.applets[Settings] = &r.settings

	r.wireInputs()
	return r
}

// Init applies a startup table slot by slot.
func (r *Router) Init(startup [SlotCount]Function) error {
	var first error
	for i, fn := range startup {
		if err := r.SetDisplayFunction(i, fn); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// SetDisplayFunction binds fn to slot idx. A function already shown on
// another slot is moved: that slot is cleared first. Binding a function to
// the slot that already shows it does nothing.
//
// Bad slots and unknown functions are logged and leave the table
// unchanged.
func (r *Router) SetDisplayFunction(idx int, fn Function) error {
	if idx < 0 || idx >= SlotCount {
		r.log.Errorf("invalid display index: %d", idx)
		return ErrInvalidSlot
	}
	if !fn.Valid() {
		r.log.Errorf("unknown function: %d", uint8(fn))
		return ErrUnknownFunction
	}
	r.log.Debugf("setting function %s on display %d; current %v", fn, idx, r.slots)

	if fn != None {
		for i, cur := range r.slots {
			if cur != fn {
				continue
			}
			if i == idx {
				return nil
			}
			r.log.Infof("function %s already set on display %d", fn, i)
			r.SetDisplayFunction(i, None)
		}
	}

	prev := r.slots[idx]
	r.applets[prev].Detach()
	if fn == Settings {
		r.settings.open(idx, prev)
	}
	r.applets[fn].Attach(r.surfaces[idx])
	r.slots[idx] = fn
	return nil
}

// OnMessage routes a message from the network core.
func (r *Router) OnMessage(msg comm.Message) {
	switch msg.Kind {
	case comm.KindMeasurements:
		m, _ := comm.DecodeMeasurements(msg)
		r.perf.Add(m)
		r.perf.Draw(r.now)
	case comm.KindSnake:
		cmd, _ := comm.DecodeSnake(msg)
		r.log.Debugf("remote snake command: %s", cmd)
		r.snake.Command(cmd)
	default:
		r.log.Errorf("unknown message type: %d", uint32(msg.Kind))
	}
}

// Process polls buttons and encoders, then ticks every bound function.
func (r *Router) Process(now uint64) {
	r.now = now
	for _, b := range r.inputs.Buttons {
		if b != nil {
			b.Process()
		}
	}
	if r.inputs.Encoders != nil {
		r.inputs.Encoders.Process()
	}
	for _, fn := range r.slots {
		r.applets[fn].Process(now)
	}
}

// Functions returns a snapshot of the slot table.
func (r *Router) Functions() [SlotCount]Function { return r.slots }

// SettingsOpen reports whether the settings menu is showing and where.
func (r *Router) SettingsOpen() (slot int, ok bool) {
	s := r.settings.slot
	if s < 0 || r.slots[s] != Settings {
		return -1, false
	}
	return s, true
}

// Menu exposes the settings menu for navigation.
func (r *Router) Menu() *menu.Menu { return r.menu }

// SnakeGame exposes the game for steering.
func (r *Router) SnakeGame() *snake.Game { return r.snake }

// blank is the None function: it clears its slot and does nothing else.
type blank struct{}

func (blank) Attach(s gfx.Surface) {
	if s == nil {
		return
	}
	s.Clear(gfx.Black)
	s.Flush()
}

func (blank) Detach()            {}
func (blank) Process(now uint64) {}
