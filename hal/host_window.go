//go:build !tinygo && cgo

package hal

import (
	"minilcd/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// panelGap is the bezel between panels in the window, in panel pixels.
const panelGap = 4

// RunWindow starts a desktop window showing the four panels in a 2x2 grid
// (slot i at column i%2, row i/2) and forwards keyboard input.
// It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error) error {
	h := New().(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	w, ht := g.Layout(0, 0)
	ebiten.SetWindowTitle("minilcd (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w*2, ht*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	images  [PanelCount]*ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.scratch == nil {
		g.scratch = make([]byte, PanelWidth*PanelHeight*4)
	}
	for i, p := range g.h.panels {
		if g.images[i] == nil {
			g.images[i] = ebiten.NewImage(PanelWidth, PanelHeight)
		}
		p.snapshotRGBA(g.scratch)
		g.images[i].WritePixels(g.scratch)

		op := &ebiten.DrawImageOptions{}
		col, row := i%2, i/2
		op.GeoM.Translate(float64(col*(PanelWidth+panelGap)), float64(row*(PanelHeight+panelGap)))
		screen.DrawImage(g.images[i], op)
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 2*PanelWidth + panelGap, 2*PanelHeight + panelGap
}
