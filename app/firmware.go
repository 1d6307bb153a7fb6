package app

import (
	"fmt"

	"minilcd/hal"
	"minilcd/internal/comm"
	"minilcd/internal/config"
	"minilcd/internal/gfx"
	"minilcd/internal/input"
	"minilcd/internal/logx"
	"minilcd/internal/system"
)

// Firmware is the display core: panels, controls, the receiving end of the
// cross-core channel and the router that ties them together. Build it on
// the core that runs Step; GPIO interrupts stay on the core that armed them.
type Firmware struct {
	h      hal.HAL
	log    *logx.Logger
	router *system.Router
	recv   *comm.Receiver
	keys   *input.KeySim
	kbd    <-chan hal.KeyEvent

	crashed bool
}

// NewFirmware wires the display core from cfg, which must be validated.
func NewFirmware(h hal.HAL, cfg *config.Config, log *logx.Logger) (*Firmware, error) {
	f := &Firmware{
		h:    h,
		log:  log,
		recv: comm.NewReceiver(h.FIFO(), log.With("comm")),
	}

	var surfaces [system.SlotCount]gfx.Surface
	if d := h.Display(); d != nil {
		for i := range surfaces {
			if p := d.Panel(i); p != nil {
				surfaces[i] = gfx.NewCanvas(p)
			}
		}
	}

	inputs, keymap, err := buildInputs(h, cfg)
	if err != nil {
		return nil, err
	}

	f.router = system.New(system.Config{
		Log:      log.With("system"),
		Surfaces: surfaces,
		Rebooter: h,
		Inputs:   inputs,
		Seed:     uint32(h.Clock().Millis()) ^ 0x9e3779b9,
	})
	if err := f.router.Init(cfg.Startup()); err != nil {
		return nil, err
	}

	if drv, ok := h.GPIO().(hal.PinDriver); ok {
		if kbd := h.Keyboard(); kbd != nil {
			f.keys = input.NewKeySim(drv, keymap)
			f.kbd = kbd.Events()
		}
	}
	return f, nil
}

func buildInputs(h hal.HAL, cfg *config.Config) (system.Inputs, input.KeyMap, error) {
	var (
		in     system.Inputs
		keymap input.KeyMap
	)
	gpio := h.GPIO()
	if gpio == nil {
		return in, keymap, nil
	}

	reg := input.NewRegistry(gpio, h.Interrupts())
	ids := make([]input.EncoderID, 0, len(cfg.Input.Encoders))
	pins := make([]input.EncoderPins, 0, len(cfg.Input.Encoders))
	for i, e := range cfg.Input.Encoders {
		btn := -1
		if e.Button != nil {
			btn = *e.Button
		}
		id, err := reg.AddEncoder(e.A, e.B, btn)
		if err != nil {
			return in, keymap, fmt.Errorf("app: encoder %d: %w", i, err)
		}
		ids = append(ids, id)
		pins = append(pins, input.EncoderPins{A: e.A, B: e.B, Button: btn})
	}
	if n := len(ids); n > 0 {
		in.Encoders = reg
		in.Nav, keymap.Nav = ids[n-1], pins[n-1]
		in.Aux, keymap.Aux = ids[0], pins[0]
		if n == 1 {
			keymap.Aux = input.EncoderPins{A: -1, B: -1, Button: -1}
		}
	}

	for i, p := range cfg.Input.Buttons {
		b, err := input.NewButton(gpio.Pin(p))
		if err != nil {
			return in, keymap, fmt.Errorf("app: button %d: %w", i, err)
		}
		in.Buttons = append(in.Buttons, b)
		keymap.Buttons = append(keymap.Buttons, p)
	}
	return in, keymap, nil
}

// Step runs one main-loop tick. After a panic the panic screen stays up and
// Step does nothing.
func (f *Firmware) Step() {
	if f.crashed {
		return
	}
	defer func() {
		if v := recover(); v != nil {
			f.crashed = true
			showPanic(f.h, v)
		}
	}()

	if f.keys != nil {
		f.keys.Tick()
		for drained := false; !drained; {
			select {
			case ev := <-f.kbd:
				f.keys.HandleKey(ev)
			default:
				drained = true
			}
		}
	}

	// A whole message fits in one tick; Process takes one word per call.
	for i := 0; i <= comm.PayloadWords; i++ {
		msg, ok := f.recv.Process()
		if ok {
			f.router.OnMessage(msg)
		}
	}

	f.router.Process(f.h.Clock().Millis())
}

func (f *Firmware) Router() *system.Router { return f.router }

// Crashed reports whether a panic stopped the main loop.
func (f *Firmware) Crashed() bool { return f.crashed }
