package hal

import (
	"io"
	"sync"
)

// byteDevice is the subset of a USB CDC or UART port the board uses.
type byteDevice interface {
	io.Writer
	WriteByte(c byte) error
	ReadByte() (byte, error)
	Buffered() int
}

// sharedPort is one serial device used by both cores: the logger writes
// from either, and the feed reads on core 0. mu guards every access.
type sharedPort struct {
	mu  sync.Mutex
	dev byteDevice
}

func (p *sharedPort) WriteLineString(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := 0; i < len(s); i++ {
		p.dev.WriteByte(s[i])
	}
	p.dev.WriteByte('\r')
	p.dev.WriteByte('\n')
}

func (p *sharedPort) WriteLineBytes(b []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dev.Write(b)
	p.dev.WriteByte('\r')
	p.dev.WriteByte('\n')
}

// Read returns whatever is buffered and never blocks.
func (p *sharedPort) Read(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for n < len(b) && p.dev.Buffered() > 0 {
		c, err := p.dev.ReadByte()
		if err != nil {
			return n, err
		}
		b[n] = c
		n++
	}
	return n, nil
}

func (p *sharedPort) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dev.Write(b)
}
