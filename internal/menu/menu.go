// Package menu implements a single-selection list drawn one row per item.
package menu

import (
	"minilcd/internal/gfx"
)

// Selector is told which row was clicked.
type Selector interface {
	Select(index int)
}

// Menu shows a list of labels with one highlighted row. Up and Down move
// the highlight with wraparound; Click reports the highlighted index.
type Menu struct {
	surface  gfx.Surface
	items    []string
	selected int
	onSelect Selector
}

func New() *Menu {
	return &Menu{selected: -1}
}

// SetItems replaces the list and highlights its first row. An empty list
// leaves nothing selected.
func (m *Menu) SetItems(items []string) {
	if len(items) == 0 {
		m.items = nil
		m.selected = -1
		return
	}
	m.items = items
	m.selected = 0
	m.draw()
}

func (m *Menu) SetOnSelect(s Selector) { m.onSelect = s }

// Selected returns the highlighted index, or -1.
func (m *Menu) Selected() int { return m.selected }

// Items returns the current labels.
func (m *Menu) Items() []string { return m.items }

func (m *Menu) Up() {
	if len(m.items) == 0 {
		return
	}
	m.selected = (m.selected - 1 + len(m.items)) % len(m.items)
	m.draw()
}

func (m *Menu) Down() {
	if len(m.items) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.items)
	m.draw()
}

// Click reports the highlighted row to the selector.
func (m *Menu) Click() {
	if m.selected < 0 || m.onSelect == nil {
		return
	}
	m.onSelect.Select(m.selected)
}

// Attach draws the menu on s.
func (m *Menu) Attach(s gfx.Surface) {
	m.surface = s
	m.draw()
}

// Detach blanks the surface and stops drawing.
func (m *Menu) Detach() {
	if m.surface != nil {
		m.surface.Clear(gfx.Black)
		m.surface.Flush()
	}
	m.surface = nil
}

// Process does nothing: the menu redraws on input only.
func (m *Menu) Process(now uint64) {}

func (m *Menu) draw() {
	if m.surface == nil || len(m.items) == 0 {
		return
	}
	w, _ := m.surface.Size()
	m.surface.Clear(gfx.Black)
	for i, label := range m.items {
		fg, bg := gfx.Gray, gfx.Black
		if i == m.selected {
			fg, bg = gfx.White, gfx.DarkGray
		}
		y := i * gfx.LineHeight
		if bg != gfx.Black {
			m.surface.FillRect(0, y, w, gfx.LineHeight, bg)
		}
		m.surface.Text(0, y, label, fg)
	}
	m.surface.Flush()
}
