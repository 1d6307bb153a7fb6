package menu

import (
	"testing"

	"minilcd/internal/gfx"
	"minilcd/internal/gfx/gfxtest"
)

type picks []int

func (p *picks) Select(i int) { *p = append(*p, i) }

func TestMenuWrapsBothWays(t *testing.T) {
	m := New()
	m.SetItems([]string{"a", "b", "c"})

	m.Up()
	if got := m.Selected(); got != 2 {
		t.Fatalf("Up() from 0: Selected() = %d, want 2", got)
	}
	m.Down()
	m.Down()
	if got := m.Selected(); got != 1 {
		t.Fatalf("Selected() = %d, want 1", got)
	}
}

func TestMenuClickReportsSelection(t *testing.T) {
	m := New()
	var got picks
	m.SetOnSelect(&got)
	m.SetItems([]string{"a", "b"})
	m.Down()
	m.Click()
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("selections = %v, want [1]", got)
	}
}

func TestMenuEmptyIsInert(t *testing.T) {
	m := New()
	var got picks
	m.SetOnSelect(&got)
	m.SetItems(nil)
	m.Up()
	m.Down()
	m.Click()
	if m.Selected() != -1 || len(got) != 0 {
		t.Fatalf("Selected() = %d selections = %v, want -1 []", m.Selected(), got)
	}
}

func TestMenuDrawHighlightsSelectedRow(t *testing.T) {
	r := gfxtest.New(128, 160)
	m := New()
	m.Attach(r)
	m.SetItems([]string{"Reboot", "Cancel"})
	r.Reset()
	m.Down()

	op, ok := r.TextOp("Cancel")
	if !ok {
		t.Fatalf("Cancel not drawn")
	}
	if op.Color != gfx.White || op.Y != gfx.LineHeight {
		t.Fatalf("Cancel drawn as %v at y=%d, want white at %d", op.Color, op.Y, gfx.LineHeight)
	}
	op, _ = r.TextOp("Reboot")
	if op.Color != gfx.Gray {
		t.Fatalf("Reboot drawn as %v, want gray", op.Color)
	}
}

func TestMenuDetachClears(t *testing.T) {
	r := gfxtest.New(128, 160)
	m := New()
	m.SetItems([]string{"x"})
	m.Attach(r)
	m.Detach()
	r.Reset()
	m.Down()
	if len(r.Ops) != 0 {
		t.Fatalf("detached menu drew %v", r.Ops)
	}
}
