//go:build !tinygo && !cgo

package hal

// hostKeyboard without the window backend never produces events; the
// encoders and buttons stay idle at their pull-up level.
type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) poll() {}
