// Package colortest paints the palette as a numbered grid.
package colortest

import (
	"strconv"

	"minilcd/internal/gfx"
)

const cellSize = 20

// Pattern draws once on Attach and is static afterwards.
type Pattern struct {
	surface gfx.Surface
}

func New() *Pattern { return &Pattern{} }

func (p *Pattern) Attach(s gfx.Surface) {
	p.surface = s
	w, h := s.Size()
	numX, numY := w/cellSize, h/cellSize

	s.Clear(gfx.Black)
	for y := 0; y < numY; y++ {
		for x := 0; x < numX; x++ {
			idx := (y*numX + x) % len(gfx.Palette)
			s.FillRect(x*cellSize, y*cellSize, cellSize, cellSize, gfx.Palette[idx])
			s.Text(x*cellSize+1, y*cellSize+1, strconv.Itoa(idx), gfx.White)
		}
	}
	s.Flush()
}

func (p *Pattern) Detach() {
	if p.surface != nil {
		p.surface.Clear(gfx.Black)
		p.surface.Flush()
	}
	p.surface = nil
}

func (p *Pattern) Process(now uint64) {}
