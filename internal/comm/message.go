// Package comm carries typed messages between the network core and the
// display core over a FIFO of 32-bit words.
//
// Wire format: one word holding the Kind, followed by exactly Size(kind)
// payload words. The size table below is the only place that knows the
// framing; producers, Sender and Receiver all go through it.
package comm

import (
	"errors"
	"fmt"
)

// Kind identifies the message type and, through Size, its payload length.
type Kind uint32

const (
	KindUnknown Kind = iota
	KindMeasurements
	KindSnake
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindMeasurements:
		return "measurements"
	case KindSnake:
		return "snake"
	default:
		return fmt.Sprintf("kind(%d)", uint32(k))
	}
}

// PayloadWords is the fixed payload capacity of a Message.
const PayloadWords = 32

var sizes = map[Kind]int{
	KindMeasurements: MeasurementsWords,
	KindSnake:        1,
}

// Size returns the payload word count for kind. Kinds absent from the
// table are not part of the protocol.
func Size(kind Kind) (int, bool) {
	n, ok := sizes[kind]
	return n, ok
}

var (
	ErrUnknownKind = errors.New("comm: unknown message kind")
	ErrPayloadSize = errors.New("comm: payload size does not match kind")
)

// Message is a kind plus a fixed-capacity payload. Only the first
// Size(Kind) payload words are meaningful.
type Message struct {
	Kind    Kind
	Payload [PayloadWords]uint32
}

// NewMessage builds a message, refusing kinds outside the size table and
// payloads whose length does not match it.
func NewMessage(kind Kind, words ...uint32) (Message, error) {
	n, ok := Size(kind)
	if !ok {
		return Message{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if len(words) != n {
		return Message{}, fmt.Errorf("%w: %s wants %d words, got %d", ErrPayloadSize, kind, n, len(words))
	}
	msg := Message{Kind: kind}
	copy(msg.Payload[:], words)
	return msg, nil
}

// Words returns the valid part of the payload, or nil for an invalid kind.
func (m *Message) Words() []uint32 {
	n, ok := Size(m.Kind)
	if !ok {
		return nil
	}
	return m.Payload[:n]
}
