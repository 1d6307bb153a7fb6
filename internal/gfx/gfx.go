// Package gfx draws primitives and text onto a panel.
package gfx

import (
	"image/color"

	"minilcd/hal"

	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Text metrics for the built-in font.
const (
	// LineHeight is the row pitch used by menus and text blocks.
	LineHeight = 10
	// baseline is the distance from the top of a text row to the glyph
	// baseline tinyfont draws on.
	baseline = 8
)

// Surface is the drawing target an applet owns while attached to a slot.
// Coordinates are pixels from the top-left corner; y for Text is the top of
// the text row.
type Surface interface {
	Size() (w, h int)
	Clear(c color.RGBA)
	FillRect(x, y, w, h int, c color.RGBA)
	Rect(x, y, w, h int, c color.RGBA)
	Line(x0, y0, x1, y1 int, c color.RGBA)
	Text(x, y int, s string, c color.RGBA)
	SetEnabled(on bool)
	Flush()
}

// Canvas is a Surface backed by a hal.Panel.
type Canvas struct {
	panel hal.Panel
	font  tinyfont.Fonter
	w, h  int
}

// NewCanvas wraps panel. The panel size is read once.
func NewCanvas(panel hal.Panel) *Canvas {
	w, h := panel.Size()
	return &Canvas{panel: panel, font: &proggy.TinySZ8pt7b, w: int(w), h: int(h)}
}

func (c *Canvas) Size() (int, int) { return c.w, c.h }

func (c *Canvas) Clear(col color.RGBA) {
	c.panel.FillRectangle(0, 0, int16(c.w), int16(c.h), col)
}

// FillRect fills a clipped w x h block at (x, y).
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	x, y, w, h = c.clip(x, y, w, h)
	if w <= 0 || h <= 0 {
		return
	}
	c.panel.FillRectangle(int16(x), int16(y), int16(w), int16(h), col)
}

// Rect draws a one pixel outline.
func (c *Canvas) Rect(x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	c.FillRect(x, y, w, 1, col)
	c.FillRect(x, y+h-1, w, 1, col)
	c.FillRect(x, y, 1, h, col)
	c.FillRect(x+w-1, y, 1, h, col)
}

// Line draws from (x0, y0) to (x1, y1) inclusive. Endpoints are clipped to
// the canvas before plotting.
func (c *Canvas) Line(x0, y0, x1, y1 int, col color.RGBA) {
	x0, y0, x1, y1, ok := c.clipLine(x0, y0, x1, y1)
	if !ok {
		return
	}
	if y0 == y1 {
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		c.FillRect(x0, y0, x1-x0+1, 1, col)
		return
	}
	if x0 == x1 {
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		c.FillRect(x0, y0, 1, y1-y0+1, col)
		return
	}
	tinydraw.Line(c.panel, int16(x0), int16(y0), int16(x1), int16(y1), col)
}

const (
	outLeft = 1 << iota
	outRight
	outTop
	outBottom
)

func (c *Canvas) outcode(x, y int) int {
	code := 0
	switch {
	case x < 0:
		code |= outLeft
	case x >= c.w:
		code |= outRight
	}
	switch {
	case y < 0:
		code |= outTop
	case y >= c.h:
		code |= outBottom
	}
	return code
}

// clipLine is Cohen-Sutherland against the canvas bounds. It reports false
// when no part of the segment is visible.
func (c *Canvas) clipLine(x0, y0, x1, y1 int) (int, int, int, int, bool) {
	xmax, ymax := c.w-1, c.h-1
	code0, code1 := c.outcode(x0, y0), c.outcode(x1, y1)
	for {
		if code0|code1 == 0 {
			return x0, y0, x1, y1, true
		}
		if code0&code1 != 0 {
			return 0, 0, 0, 0, false
		}
		out := code0
		if out == 0 {
			out = code1
		}
		var x, y int
		switch {
		case out&outBottom != 0:
			x, y = x0+scaleStep(x1-x0, ymax-y0, y1-y0), ymax
		case out&outTop != 0:
			x, y = x0+scaleStep(x1-x0, -y0, y1-y0), 0
		case out&outRight != 0:
			x, y = xmax, y0+scaleStep(y1-y0, xmax-x0, x1-x0)
		default:
			x, y = 0, y0+scaleStep(y1-y0, -x0, x1-x0)
		}
		if out == code0 {
			x0, y0 = x, y
			code0 = c.outcode(x0, y0)
		} else {
			x1, y1 = x, y
			code1 = c.outcode(x1, y1)
		}
	}
}

// scaleStep returns d*num/den in 64 bits.
func scaleStep(d, num, den int) int {
	return int(int64(d) * int64(num) / int64(den))
}

func (c *Canvas) Text(x, y int, s string, col color.RGBA) {
	tinyfont.WriteLine(c.panel, c.font, int16(x), int16(y+baseline), s, col)
}

func (c *Canvas) SetEnabled(on bool) { c.panel.SetEnabled(on) }

func (c *Canvas) Flush() { c.panel.Display() }

func (c *Canvas) clip(x, y, w, h int) (int, int, int, int) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > c.w {
		w = c.w - x
	}
	if y+h > c.h {
		h = c.h - y
	}
	return x, y, w, h
}

// TextWidth returns the advance of s in pixels.
func TextWidth(s string) int {
	_, w := tinyfont.LineWidth(&proggy.TinySZ8pt7b, s)
	return int(w)
}
