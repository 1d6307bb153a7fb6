//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// hostPanel is an RGB565 framebuffer standing in for one SPI LCD.
type hostPanel struct {
	mu      sync.Mutex
	width   int
	height  int
	buf     []uint16
	enabled bool
	flushes uint64
}

func newHostPanel(width, height int) *hostPanel {
	return &hostPanel{
		width:   width,
		height:  height,
		buf:     make([]uint16, width*height),
		enabled: true,
	}
}

func (p *hostPanel) Size() (x, y int16) { return int16(p.width), int16(p.height) }

func (p *hostPanel) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || int(x) >= p.width || int(y) >= p.height {
		return
	}
	p.mu.Lock()
	p.buf[int(y)*p.width+int(x)] = packRGB565(c)
	p.mu.Unlock()
}

func (p *hostPanel) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0, y0 := int(x), int(y)
	x1, y1 := x0+int(width), y0+int(height)
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > p.width {
		x1 = p.width
	}
	if y1 > p.height {
		y1 = p.height
	}
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := packRGB565(c)
	p.mu.Lock()
	defer p.mu.Unlock()
	for yy := y0; yy < y1; yy++ {
		row := p.buf[yy*p.width : (yy+1)*p.width]
		for xx := x0; xx < x1; xx++ {
			row[xx] = pixel
		}
	}
	return nil
}

// Display is a no-op beyond bookkeeping: the window reads the buffer on
// every frame.
func (p *hostPanel) Display() error {
	p.mu.Lock()
	p.flushes++
	p.mu.Unlock()
	return nil
}

func (p *hostPanel) SetEnabled(on bool) {
	p.mu.Lock()
	p.enabled = on
	p.mu.Unlock()
}

// snapshotRGBA converts the panel into dst (len width*height*4). A disabled
// panel reads as black, like a dark backlight.
func (p *hostPanel) snapshotRGBA(dst []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, px := range p.buf {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		if !p.enabled {
			dst[j], dst[j+1], dst[j+2], dst[j+3] = 0, 0, 0, 0xFF
			continue
		}
		r, g, b := unpackRGB565(px)
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}

func (p *hostPanel) pixel(x, y int) uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.buf[y*p.width+x]
}
