//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// hostPinCount mirrors the RP2040 bank-0 GPIO count.
const hostPinCount = 30

// ExitReboot is the process exit status used when the firmware asks for a
// reboot on the host.
const ExitReboot = 3

type hostHAL struct {
	logger *hostLogger
	panels [PanelCount]*hostPanel
	gpio   *VirtualGPIO
	kbd    *hostKeyboard
	fifo   *wordFIFO
	clock  *monoClock
	crit   sync.Mutex
	exit   func(code int)
}

// New returns a host HAL implementation.
func New() HAL {
	h := &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		gpio:   NewVirtualGPIO(hostPinCount),
		kbd:    newHostKeyboard(),
		fifo:   &wordFIFO{},
		clock:  newMonoClock(),
		exit:   os.Exit,
	}
	for i := range h.panels {
		h.panels[i] = newHostPanel(PanelWidth, PanelHeight)
	}
	return h
}

func (h *hostHAL) Logger() Logger          { return h.logger }
func (h *hostHAL) Display() Display        { return hostDisplay{h: h} }
func (h *hostHAL) GPIO() GPIO              { return h.gpio }
func (h *hostHAL) Keyboard() Keyboard      { return h.kbd }
func (h *hostHAL) FIFO() FIFO              { return h.fifo }
func (h *hostHAL) Clock() Clock            { return h.clock }
func (h *hostHAL) Serial() Serial          { return nullSerial{} }
func (h *hostHAL) Interrupts() sync.Locker { return &h.crit }

// StartCore1 runs fn on its own goroutine; the Go scheduler stands in for
// the second core.
func (h *hostHAL) StartCore1(fn func()) {
	go fn()
}

func (h *hostHAL) Reboot() {
	h.logger.WriteLineString(fmt.Sprintf("reboot requested, exiting with status %d", ExitReboot))
	h.exit(ExitReboot)
}

type hostDisplay struct {
	h *hostHAL
}

func (d hostDisplay) Panel(i int) Panel {
	if i < 0 || i >= PanelCount {
		return nil
	}
	return d.h.panels[i]
}

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// nullSerial is the board's USB serial on a host without a board attached.
type nullSerial struct{}

func (nullSerial) Read([]byte) (int, error)  { return 0, ErrNotImplemented }
func (nullSerial) Write([]byte) (int, error) { return 0, ErrNotImplemented }
