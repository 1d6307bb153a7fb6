//go:build tinygo && rp2040

package hal

import (
	"machine"

	"tinygo.org/x/drivers/st7735"
)

// panelPins lists DC and CS for each panel slot, in slot order
// (top left, top right, bottom left, bottom right).
var panelPins = [PanelCount]struct{ dc, cs machine.Pin }{
	{dc: machine.GP3, cs: machine.GP2},
	{dc: machine.GP6, cs: machine.GP7},
	{dc: machine.GP0, cs: machine.GP1},
	{dc: machine.GP17, cs: machine.GP16},
}

// st7735Panel wraps the driver so SetEnabled maps to the backlight.
type st7735Panel struct {
	st7735.Device
}

func (p *st7735Panel) SetEnabled(on bool) {
	p.EnableBacklight(on)
}

func newPanels() [PanelCount]*st7735Panel {
	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP14,
		SDO:       machine.GP11,
		Frequency: 15_000_000, // datasheet for st7735 says 66ns (~15.15MHz) is the max speed
	})
	machine.GP15.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	var panels [PanelCount]*st7735Panel
	for i, pins := range panelPins {
		d := st7735.New(machine.SPI1, machine.NoPin, pins.dc, pins.cs, machine.NoPin)
		d.Configure(st7735.Config{
			Width:    PanelWidth,
			Height:   PanelHeight,
			Rotation: st7735.NO_ROTATION,
		})
		panels[i] = &st7735Panel{Device: d}
	}
	return panels
}
