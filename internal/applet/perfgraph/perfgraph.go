// Package perfgraph keeps a short history of host measurements and draws
// it as a CPU view and a misc (RAM/GPU) view.
package perfgraph

import (
	"fmt"
	"image/color"
	"sort"

	"minilcd/internal/comm"
	"minilcd/internal/gfx"
)

const (
	// CPUSamples and MiscSamples are the history lengths of each view.
	CPUSamples  = 50
	MiscSamples = 35

	// RefreshInterval is the minimum time between redraws in milliseconds.
	RefreshInterval = 1000

	// totalRAMMiB is the host RAM the free-memory figure is subtracted from.
	totalRAMMiB = 64 * 1024

	bezelTop    = 5
	bezelBottom = 5
	graphHeight = 70
)

var (
	frameFill    = color.RGBA{R: 6, G: 6, B: 30, A: 0xFF}
	frameEdge    = color.RGBA{R: 12, G: 163, B: 196, A: 0xFF}
	cpuText      = color.RGBA{R: 5, G: 255, B: 60, A: 0xFF}
	miscBackdrop = color.RGBA{R: 26, G: 26, B: 10, A: 0xFF}
)

// Store is the shared sample history. Both views read from it; new data
// and newly attached views mark it dirty, and Draw repaints at most once
// per RefreshInterval.
type Store struct {
	cpu      [CPUSamples][comm.CPUCores]uint32
	cpuStart int

	ram       [MiscSamples]uint32
	gpu       [MiscSamples]uint32
	miscStart int

	gpuVD  uint32
	gpuVE  uint32
	gpuMem uint32

	lastUpdate uint64
	drawn      bool
	dirty      bool

	cpuView  *View
	miscView *View
}

func NewStore() *Store {
	s := &Store{}
	s.cpuView = &View{store: s, draw: s.drawCPU}
	s.miscView = &View{store: s, draw: s.drawMisc}
	return s
}

// CPUView returns the applet plotting per-core load, highest first.
func (s *Store) CPUView() *View { return s.cpuView }

// MiscView returns the applet showing RAM and GPU figures.
func (s *Store) MiscView() *View { return s.miscView }

// Add records one sample. Core loads are sorted in descending order so
// each series tracks a rank rather than a core.
func (s *Store) Add(m comm.Measurements) {
	row := m.CPU
	sort.Slice(row[:], func(i, j int) bool { return row[i] > row[j] })
	s.cpu[s.cpuStart] = row

	s.ram[s.miscStart] = m.RAM
	s.gpu[s.miscStart] = m.GPU
	s.gpuVD = m.GPUVD
	s.gpuVE = m.GPUVE
	s.gpuMem = m.GPUMem

	s.cpuStart = (s.cpuStart + 1) % CPUSamples
	s.miscStart = (s.miscStart + 1) % MiscSamples
	s.dirty = true
}

// Latest returns the most recent sorted CPU row.
func (s *Store) Latest() [comm.CPUCores]uint32 {
	return s.cpu[(s.cpuStart+CPUSamples-1)%CPUSamples]
}

// Draw repaints attached views if something changed and the refresh
// interval has elapsed. It reports whether it drew.
func (s *Store) Draw(now uint64) bool {
	if !s.dirty {
		return false
	}
	if s.drawn && now-s.lastUpdate < RefreshInterval {
		return false
	}
	s.lastUpdate = now
	s.drawn = true
	s.dirty = false
	for _, v := range []*View{s.cpuView, s.miscView} {
		if v.surface != nil {
			v.draw(v.surface)
			v.surface.Flush()
		}
	}
	return true
}

func drawFrame(sf gfx.Surface) {
	w, h := sf.Size()
	sf.Clear(gfx.Black)
	sf.FillRect(0, bezelTop, w, h-bezelTop-bezelBottom, frameFill)
	sf.Line(0, bezelTop, w-1, bezelTop, frameEdge)
	sf.Line(0, bezelTop, 0, h-bezelBottom-1, frameEdge)
	sf.Line(w-1, bezelTop, w-1, h-bezelBottom-1, frameEdge)
}

func (s *Store) drawCPU(sf gfx.Surface) {
	drawFrame(sf)
	w, h := sf.Size()
	base := h - bezelBottom
	stretch := float64(w) / float64(CPUSamples+1)

	for i := 0; i < CPUSamples-1; i++ {
		a := s.cpu[(s.cpuStart+i)%CPUSamples]
		b := s.cpu[(s.cpuStart+i+1)%CPUSamples]
		x0 := int(float64(i+1) * stretch)
		x1 := int(float64(i+2) * stretch)
		for core := 0; core < comm.CPUCores; core++ {
			y0 := base - loadHeight(a[core])
			y1 := base - loadHeight(b[core])
			sf.Line(x0, y0, x1, y1, gfx.Series[core])
		}
	}

	latest := s.Latest()
	for core := 0; core < 4; core++ {
		sf.Text(10, (core+1)*9, fmt.Sprintf("%d %%", latest[core]), cpuText)
	}
}

// loadHeight maps a core load in percent to pixels. Loads over 100 are
// pinned so a bad feed value stays on the graph.
func loadHeight(v uint32) int {
	if v > 100 {
		v = 100
	}
	return int(v * 3 / 2)
}

func (s *Store) drawMisc(sf gfx.Surface) {
	drawFrame(sf)
	w, h := sf.Size()
	last := (s.miscStart + MiscSamples - 1) % MiscSamples

	free := float64(totalRAMMiB-int64(s.ram[last])) / 1024
	lines := []string{
		fmt.Sprintf("RAM: %.1f GB", free),
		fmt.Sprintf("GPU: %d %%", s.gpu[last]),
		fmt.Sprintf("GPUVD: %d %%", s.gpuVD),
		fmt.Sprintf("GPUVE: %d %%", s.gpuVE),
		fmt.Sprintf("GPUMEM: %.1f GB", float64(s.gpuMem)/1024),
	}
	for i, line := range lines {
		sf.Text(10, 10*(i+1), line, gfx.White)
	}

	half := w / 2
	top := h - graphHeight
	sf.FillRect(2, top, half-3, graphHeight, miscBackdrop)
	sf.FillRect(half+2, top, half-4, graphHeight, miscBackdrop)

	base := h - bezelBottom
	stretch := float64(half) / float64(MiscSamples+1)
	scale := func(v, full uint32) int {
		if v > full {
			v = full
		}
		return int(uint64(v) * (graphHeight - bezelBottom) / uint64(full))
	}
	for i := 0; i < MiscSamples-1; i++ {
		a := (s.miscStart + i) % MiscSamples
		b := (s.miscStart + i + 1) % MiscSamples
		x0 := int(float64(i+1) * stretch)
		x1 := int(float64(i+2) * stretch)
		sf.Line(x0, base-scale(s.gpu[a], 100), x1, base-scale(s.gpu[b], 100), gfx.Series[3])
		sf.Line(x0+half, base-scale(s.ram[a], totalRAMMiB), x1+half, base-scale(s.ram[b], totalRAMMiB), gfx.Series[2])
	}
}

// View is one graph bound to at most one surface.
type View struct {
	store   *Store
	draw    func(gfx.Surface)
	surface gfx.Surface
}

// Attach binds the view and schedules a repaint with the current history.
func (v *View) Attach(sf gfx.Surface) {
	v.surface = sf
	v.store.dirty = true
	v.store.drawn = false
}

// Detach blanks the surface; the history keeps accumulating.
func (v *View) Detach() {
	if v.surface != nil {
		v.surface.Clear(gfx.Black)
		v.surface.Flush()
	}
	v.surface = nil
}

func (v *View) Process(now uint64) { v.store.Draw(now) }

// Attached reports whether the view has a surface.
func (v *View) Attached() bool { return v.surface != nil }
