package comm

import (
	"container/list"

	"minilcd/internal/logx"
)

// FIFO is the cross-core word queue. Exactly one side pushes and one side
// pops; the platform makes that safe without further locking.
type FIFO interface {
	// TryPop returns the next word if one is available.
	TryPop() (uint32, bool)
	// Push blocks until the word is accepted.
	Push(word uint32)
}

type rxState uint8

const (
	rxIdle rxState = iota
	rxReceiving
)

// Receiver reassembles messages on the consuming core. It is owned by that
// core and is not safe for concurrent use.
type Receiver struct {
	fifo FIFO
	log  *logx.Logger

	state    rxState
	msg      Message
	received int
	want     int
}

// NewReceiver returns an idle receiver reading from fifo.
func NewReceiver(fifo FIFO, log *logx.Logger) *Receiver {
	return &Receiver{fifo: fifo, log: log}
}

// Process consumes at most one word and returns a message once its last
// word has arrived. It never blocks.
//
// A partial message has no timeout: if the producer stops mid-message the
// receiver waits forever.
func (r *Receiver) Process() (Message, bool) {
	word, ok := r.fifo.TryPop()
	if !ok {
		return Message{}, false
	}

	switch r.state {
	case rxIdle:
		kind := Kind(word)
		n, known := Size(kind)
		if !known {
			r.log.Errorf("bad message kind %d, dropped", word)
			return Message{}, false
		}
		r.msg = Message{Kind: kind}
		r.received = 0
		r.want = n
		if n == 0 {
			return r.msg, true
		}
		r.state = rxReceiving
		return Message{}, false

	case rxReceiving:
		r.msg.Payload[r.received] = word
		r.received++
		r.log.Tracef("received %d of %d words", r.received, r.want)
		if r.received < r.want {
			return Message{}, false
		}
		r.state = rxIdle
		r.received = 0
		return r.msg, true
	}
	return Message{}, false
}

// Receiving reports whether a message is partially assembled.
func (r *Receiver) Receiving() bool { return r.state == rxReceiving }

// Sender queues outgoing messages on the producing core and writes one
// whole message per Process call.
//
// The queue is unbounded; a stalled consumer makes it grow.
type Sender struct {
	fifo    FIFO
	log     *logx.Logger
	pending list.List
}

// NewSender returns a sender writing to fifo.
func NewSender(fifo FIFO, log *logx.Logger) *Sender {
	return &Sender{fifo: fifo, log: log}
}

// Send enqueues msg. Messages with a kind outside the size table are
// rejected and logged, never framed.
func (s *Sender) Send(msg Message) {
	if _, ok := Size(msg.Kind); !ok {
		s.log.Errorf("refusing to send %s", msg.Kind)
		return
	}
	s.pending.PushBack(msg)
}

// Process writes the oldest queued message, if any, and reports whether
// one was written.
func (s *Sender) Process() bool {
	front := s.pending.Front()
	if front == nil {
		return false
	}
	msg := front.Value.(Message)
	s.fifo.Push(uint32(msg.Kind))
	for _, w := range msg.Words() {
		s.fifo.Push(w)
	}
	s.pending.Remove(front)
	s.log.Tracef("sent %s", msg.Kind)
	return true
}

// Pending returns the number of queued messages.
func (s *Sender) Pending() int { return s.pending.Len() }
