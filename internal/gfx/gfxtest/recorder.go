// Package gfxtest provides a recording gfx.Surface for tests.
package gfxtest

import (
	"fmt"
	"image/color"
	"strings"
	"sync"
)

// Op is one recorded drawing call.
type Op struct {
	Name  string
	X, Y  int
	W, H  int
	Text  string
	Color color.RGBA
}

func (o Op) String() string {
	if o.Name == "text" {
		return fmt.Sprintf("text(%d,%d,%q)", o.X, o.Y, o.Text)
	}
	return fmt.Sprintf("%s(%d,%d,%d,%d)", o.Name, o.X, o.Y, o.W, o.H)
}

// Recorder implements gfx.Surface by appending every call to Ops.
type Recorder struct {
	mu      sync.Mutex
	W, H    int
	Ops     []Op
	Enabled bool
	Flushes int
}

// New returns a recorder of the given size, enabled.
func New(w, h int) *Recorder {
	return &Recorder{W: w, H: h, Enabled: true}
}

func (r *Recorder) add(op Op) {
	r.mu.Lock()
	r.Ops = append(r.Ops, op)
	r.mu.Unlock()
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear(c color.RGBA) {
	r.add(Op{Name: "clear", W: r.W, H: r.H, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h int, c color.RGBA) {
	r.add(Op{Name: "fill", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) Rect(x, y, w, h int, c color.RGBA) {
	r.add(Op{Name: "rect", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) Line(x0, y0, x1, y1 int, c color.RGBA) {
	r.add(Op{Name: "line", X: x0, Y: y0, W: x1, H: y1, Color: c})
}

func (r *Recorder) Text(x, y int, s string, c color.RGBA) {
	r.add(Op{Name: "text", X: x, Y: y, Text: s, Color: c})
}

func (r *Recorder) SetEnabled(on bool) {
	r.mu.Lock()
	r.Enabled = on
	r.mu.Unlock()
}

func (r *Recorder) Flush() {
	r.mu.Lock()
	r.Flushes++
	r.mu.Unlock()
}

// Reset forgets recorded operations.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.Ops = nil
	r.Flushes = 0
	r.mu.Unlock()
}

// Count returns how many operations named name were recorded.
func (r *Recorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Texts returns the recorded strings in draw order.
func (r *Recorder) Texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, op := range r.Ops {
		if op.Name == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// HasText reports whether any recorded text contains sub.
func (r *Recorder) HasText(sub string) bool {
	for _, s := range r.Texts() {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// TextOp returns the first text operation equal to s.
func (r *Recorder) TextOp(s string) (Op, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, op := range r.Ops {
		if op.Name == "text" && op.Text == s {
			return op, true
		}
	}
	return Op{}, false
}

// Last returns the most recent operation.
func (r *Recorder) Last() (Op, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Ops) == 0 {
		return Op{}, false
	}
	return r.Ops[len(r.Ops)-1], true
}
