package hal

import (
	"errors"
	"image/color"
	"sync"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PanelCount is the number of physical LCD panels on the board.
const PanelCount = 4

// Panel geometry in pixels, portrait orientation.
const (
	PanelWidth  = 128
	PanelHeight = 160
)

// Panel is one LCD panel. Drawing goes through the TinyGo drivers
// Displayer contract so tinyfont can render onto it directly.
type Panel interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
	// SetEnabled switches the panel backlight.
	SetEnabled(on bool)
}

// Display provides the panels, indexed 0..PanelCount-1.
type Display interface {
	Panel(i int) Panel
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// FIFO is the word queue from the network core to the display core.
//
// There is exactly one pushing core and one popping core; implementations
// are safe for that pairing only.
type FIFO interface {
	TryPop() (uint32, bool)
	Push(word uint32)
}

// Clock is a monotonic millisecond clock.
type Clock interface {
	Millis() uint64
}

// Serial is a byte stream to the host computer (USB CDC on the board).
type Serial interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
}

// HAL provides the only contact point between the firmware and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	GPIO() GPIO
	// Keyboard returns nil on platforms without one.
	Keyboard() Keyboard
	FIFO() FIFO
	Clock() Clock
	Serial() Serial
	// Interrupts returns a critical section that excludes GPIO interrupt
	// handlers on the calling core.
	Interrupts() sync.Locker
	// StartCore1 runs fn on the second core.
	StartCore1(fn func())
	// Reboot restarts the board. It does not return.
	Reboot()
}
