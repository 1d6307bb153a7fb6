package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"minilcd/hal"
	"minilcd/internal/gfx"
)

// showPanic logs v with the stack and paints it on the first panel, black
// on white, wrapped to the panel width.
func showPanic(h hal.HAL, v any) {
	stack := debug.Stack()
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("minilcd panic: %v", v))
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	panel := disp.Panel(0)
	if panel == nil {
		return
	}
	c := gfx.NewCanvas(panel)
	c.SetEnabled(true)
	c.Clear(gfx.White)

	lines := []string{"Panic:", fmt.Sprint(v)}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
	}

	w, h2 := c.Size()
	cols := w / gfx.TextWidth("0")
	if cols <= 0 {
		cols = 1
	}
	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+gfx.LineHeight > h2 {
				c.Flush()
				return
			}
			chunk, rest := takeRunes(line, cols)
			c.Text(0, y, chunk, gfx.Black)
			y += gfx.LineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	c.Flush()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
