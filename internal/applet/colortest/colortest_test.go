package colortest

import (
	"testing"

	"minilcd/internal/gfx"
	"minilcd/internal/gfx/gfxtest"
)

func TestPatternFillsGrid(t *testing.T) {
	r := gfxtest.New(128, 160)
	p := New()
	p.Attach(r)

	// 6 x 8 whole cells fit on a 128x160 panel.
	if got := r.Count("fill"); got != 48 {
		t.Fatalf("fills = %d, want 48", got)
	}
	op, ok := r.TextOp("32")
	if !ok {
		t.Fatalf("cell 32 not labelled")
	}
	if op.X != 2*cellSize+1 || op.Y != 5*cellSize+1 {
		t.Fatalf("cell 32 label at (%d,%d), want (%d,%d)", op.X, op.Y, 2*cellSize+1, 5*cellSize+1)
	}

	// The palette wraps after its last entry.
	var fills []gfxtest.Op
	for _, op := range r.Ops {
		if op.Name == "fill" {
			fills = append(fills, op)
		}
	}
	if fills[len(gfx.Palette)].Color != gfx.Palette[0] {
		t.Fatalf("cell %d colour = %v, want palette[0]", len(gfx.Palette), fills[len(gfx.Palette)].Color)
	}
}

func TestPatternDetachClears(t *testing.T) {
	r := gfxtest.New(128, 160)
	p := New()
	p.Attach(r)
	r.Reset()
	p.Detach()
	if r.Count("clear") != 1 || r.Flushes != 1 {
		t.Fatalf("Detach ops = %v flushes = %d, want one clear and flush", r.Ops, r.Flushes)
	}
}
