//go:build tinygo && rp2040

package hal

import "runtime/interrupt"

// interruptLocker masks interrupts on the calling core between Lock and
// Unlock. It does not nest.
type interruptLocker struct {
	state interrupt.State
}

func (l *interruptLocker) Lock() {
	l.state = interrupt.Disable()
}

func (l *interruptLocker) Unlock() {
	interrupt.Restore(l.state)
}
