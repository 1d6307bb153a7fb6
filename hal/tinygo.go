//go:build tinygo && rp2040

package hal

import (
	"machine"
	"sync"
	"time"
)

type tinyGoHAL struct {
	usb    *sharedPort
	panels [PanelCount]*st7735Panel
	gpio   *machineGPIO
	fifo   *wordFIFO
	clock  *monoClock
	crit   *interruptLocker
}

// New returns the RP2040 board HAL.
//
// Logs go to the USB CDC serial port; GP0/GP1 drive a panel, so UART0 is
// unavailable. Panels: SPI1, SCK GP14, SDO GP11.
func New() HAL {
	h := &tinyGoHAL{
		usb:    &sharedPort{dev: machine.Serial},
		gpio:   &machineGPIO{},
		fifo:   &wordFIFO{},
		clock:  newMonoClock(),
		crit:   &interruptLocker{},
	}
	h.panels = newPanels()
	return h
}

func (h *tinyGoHAL) Logger() Logger          { return h.usb }
func (h *tinyGoHAL) Display() Display        { return tinyGoDisplay{h: h} }
func (h *tinyGoHAL) GPIO() GPIO              { return h.gpio }
func (h *tinyGoHAL) Keyboard() Keyboard      { return nil }
func (h *tinyGoHAL) FIFO() FIFO              { return h.fifo }
func (h *tinyGoHAL) Clock() Clock            { return h.clock }
func (h *tinyGoHAL) Serial() Serial          { return h.usb }
func (h *tinyGoHAL) Interrupts() sync.Locker { return h.crit }

func (h *tinyGoHAL) StartCore1(fn func()) {
	machine.Core1.Start(fn)
}

// Reboot arms the watchdog with the shortest timeout and waits for it.
func (h *tinyGoHAL) Reboot() {
	h.usb.WriteLineString("rebooting")
	if err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 1}); err == nil {
		machine.Watchdog.Start()
	}
	for {
		time.Sleep(time.Millisecond)
	}
}

type tinyGoDisplay struct {
	h *tinyGoHAL
}

func (d tinyGoDisplay) Panel(i int) Panel {
	if i < 0 || i >= PanelCount {
		return nil
	}
	return d.h.panels[i]
}
