package gfx

import "image/color"

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xFF} }

var (
	Black    = rgb(0x00, 0x00, 0x00)
	White    = rgb(0xFF, 0xFF, 0xFF)
	Red      = rgb(0xFF, 0x00, 0x00)
	Green    = rgb(0x00, 0xFF, 0x00)
	Blue     = rgb(0x00, 0x00, 0xFF)
	Yellow   = rgb(0xFF, 0xFF, 0x00)
	Gray     = rgb(0x80, 0x80, 0x80)
	DarkGray = rgb(0x40, 0x40, 0x40)
)

// Palette is the named colour table shown by the colour test, in index
// order.
var Palette = []color.RGBA{
	Black, White, Red, Green, Blue, Yellow,
	rgb(0x00, 0xFF, 0xFF), // cyan
	rgb(0xFF, 0x00, 0xFF), // magenta
	Gray,
	rgb(0xC0, 0xC0, 0xC0), // light gray
	DarkGray,
	rgb(0xFF, 0xA5, 0x00), // orange
	rgb(0x80, 0x00, 0x80), // purple
	rgb(0xFF, 0xC0, 0xCB), // pink
	rgb(0xA5, 0x2A, 0x2A), // brown
	rgb(0x90, 0xEE, 0x90),
	rgb(0xFF, 0x47, 0x4C),
	rgb(0xFF, 0xFF, 0xE0),
	rgb(0xE0, 0xFF, 0xFF),
	rgb(0xFF, 0xE0, 0xFF),
	rgb(0xFF, 0xD7, 0x00),
	rgb(0xFF, 0xB6, 0xC1),
	rgb(0xCD, 0x85, 0x3F),
	rgb(0x00, 0x64, 0x00),
	rgb(0x8B, 0x00, 0x00),
	rgb(0x00, 0x00, 0x8B),
	rgb(0x8B, 0x80, 0x00),
	rgb(0x00, 0x8B, 0x8B),
	rgb(0x8B, 0x00, 0x8B),
	rgb(0xFF, 0x8C, 0x00),
	rgb(0x48, 0x00, 0x48),
	rgb(0xAA, 0x33, 0x6A),
	rgb(0x36, 0x22, 0x04),
}

// Series colours for multi-line graphs.
var Series = [16]color.RGBA{
	rgb(250, 20, 20), rgb(20, 250, 20), rgb(20, 20, 250), rgb(220, 70, 70),
	rgb(70, 220, 70), rgb(70, 70, 220), rgb(180, 180, 10), rgb(180, 10, 180),
	rgb(10, 180, 180), rgb(140, 138, 110), rgb(150, 125, 100), rgb(160, 112, 90),
	rgb(170, 99, 80), rgb(180, 86, 70), rgb(190, 73, 60), rgb(200, 60, 50),
}
