package hal

import (
	"runtime"
	"sync/atomic"
)

// fifoSlots matches the depth of the RP2040 inter-core FIFO.
const fifoSlots = 8

// wordFIFO is a fixed-size single-producer/single-consumer word queue
// between the two cores. No allocations; Push busy-waits with Gosched
// like a hardware push spinning on FIFO_ST.RDY.
//
// On the RP2040 the SIO mailbox is left to the TinyGo runtime, which uses
// it for its own core synchronisation.
type wordFIFO struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	slots [fifoSlots]uint32
}

func (f *wordFIFO) tryPush(word uint32) bool {
	head := f.head.Load()
	tail := f.tail.Load()
	if head-tail >= fifoSlots {
		return false
	}
	f.slots[head%fifoSlots] = word
	f.head.Store(head + 1)
	return true
}

// Push enqueues a word, blocking while the FIFO is full.
func (f *wordFIFO) Push(word uint32) {
	for !f.tryPush(word) {
		runtime.Gosched()
	}
}

// TryPop dequeues one word, returning false if empty.
func (f *wordFIFO) TryPop() (uint32, bool) {
	tail := f.tail.Load()
	head := f.head.Load()
	if tail == head {
		return 0, false
	}
	word := f.slots[tail%fifoSlots]
	f.tail.Store(tail + 1)
	return word, true
}
