// Package snake is a wall-bounded snake game steered by relative turns.
package snake

import (
	"image/color"

	"minilcd/internal/comm"
	"minilcd/internal/gfx"
)

type dir uint8

const (
	dirUp dir = iota
	dirRight
	dirDown
	dirLeft
)

// turn rotates d a quarter turn; cw selects clockwise.
func (d dir) turn(cw bool) dir {
	if cw {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

type point struct {
	x int
	y int
}

const (
	cell = 10
	// DefaultInterval is the step period in milliseconds.
	DefaultInterval = 200
)

var (
	wallColor  = color.RGBA{R: 10, G: 50, B: 255, A: 0xFF}
	appleColor = gfx.Green
	bodyColor  = gfx.Red
)

// Game draws onto the attached surface and advances one cell per
// interval. Turns are relative to the current heading and at most one is
// taken per step. After game over any turn starts a new game.
type Game struct {
	surface gfx.Surface

	cols int
	rows int

	snake   []point // head first
	heading dir
	turned  bool

	apple point
	rng   uint32
	seed  uint32

	over     bool
	score    int
	lastStep uint64
	interval uint64
}

// New returns an idle game. seed feeds apple placement.
func New(seed uint32) *Game {
	return &Game{seed: seed, rng: seed, interval: DefaultInterval}
}

// Attach resets the game onto s.
func (g *Game) Attach(s gfx.Surface) {
	if g.surface != nil && g.surface != s {
		g.surface.Clear(gfx.Black)
		g.surface.Flush()
	}
	g.surface = s
	g.reset()
}

// Detach blanks the surface and pauses the game.
func (g *Game) Detach() {
	if g.surface != nil {
		g.surface.Clear(gfx.Black)
		g.surface.Flush()
	}
	g.surface = nil
}

// Process advances the game if an interval has passed since the last
// step.
func (g *Game) Process(now uint64) {
	if g.surface == nil {
		return
	}
	if now-g.lastStep < g.interval {
		return
	}
	if g.over {
		return
	}
	g.turned = false
	g.lastStep = now
	g.step()
	g.surface.Flush()
}

func (g *Game) TurnLeft()  { g.turnTo(false) }
func (g *Game) TurnRight() { g.turnTo(true) }

// Command applies a steering message.
func (g *Game) Command(cmd comm.SnakeCommand) {
	switch cmd {
	case comm.SnakeTurnLeft:
		g.TurnLeft()
	case comm.SnakeTurnRight:
		g.TurnRight()
	case comm.SnakeRestart:
		g.reset()
	}
}

// Over reports whether the snake has crashed.
func (g *Game) Over() bool { return g.over }

// Score returns apples eaten this game.
func (g *Game) Score() int { return g.score }

func (g *Game) turnTo(cw bool) {
	if g.over {
		g.reset()
		return
	}
	if g.turned {
		return
	}
	g.turned = true
	g.heading = g.heading.turn(cw)
}

func (g *Game) reset() {
	g.over = false
	g.score = 0
	g.heading = dirRight
	g.turned = false
	g.snake = g.snake[:0]
	if g.surface == nil {
		return
	}

	w, h := g.surface.Size()
	g.cols = w / cell
	g.rows = h / cell

	g.surface.Clear(gfx.Black)
	g.drawWalls()
	g.snake = append(g.snake, point{5, 5}, point{4, 5}, point{3, 5})
	for _, p := range g.snake {
		g.drawSegment(p)
	}
	g.spawnApple()
	g.surface.Flush()
}

func (g *Game) step() {
	next := g.snake[0]
	switch g.heading {
	case dirUp:
		next.y--
	case dirDown:
		next.y++
	case dirLeft:
		next.x--
	case dirRight:
		next.x++
	}

	if next.x < 1 || next.x > g.cols-1 || next.y < 1 || next.y > g.rows-2 || g.occupied(next) {
		g.over = true
		g.surface.Text(10, 10, "Game Over", gfx.Red)
		return
	}

	g.snake = append(g.snake, point{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = next

	if next == g.apple {
		g.score++
		g.erase(g.apple)
		g.spawnApple()
	} else {
		tail := g.snake[len(g.snake)-1]
		g.erase(tail)
		g.snake = g.snake[:len(g.snake)-1]
	}
	g.drawSegment(next)
}

func (g *Game) spawnApple() {
	spanX, spanY := g.cols-2, g.rows-2
	if spanX <= 0 || spanY <= 0 {
		return
	}
	for tries := 0; tries < 1024; tries++ {
		g.rng = xorshift32(g.rng)
		x := int(g.rng%uint32(spanX)) + 1
		g.rng = xorshift32(g.rng)
		y := int(g.rng%uint32(spanY)) + 1
		p := point{x: x, y: y}
		if !g.occupied(p) {
			g.apple = p
			g.surface.FillRect(p.x*cell+1, p.y*cell+1, cell-2, cell-2, appleColor)
			return
		}
	}
}

func (g *Game) occupied(p point) bool {
	for _, s := range g.snake {
		if s == p {
			return true
		}
	}
	return false
}

func (g *Game) drawWalls() {
	for i := 0; i <= g.cols; i++ {
		g.surface.FillRect(i*cell, 0, cell, cell, wallColor)
		g.surface.FillRect(i*cell, (g.rows-1)*cell, cell, cell, wallColor)
	}
	for i := 1; i < g.rows-1; i++ {
		g.surface.FillRect(0, i*cell, cell, cell, wallColor)
		g.surface.FillRect(g.cols*cell, i*cell, cell, cell, wallColor)
	}
}

func (g *Game) drawSegment(p point) {
	g.surface.FillRect(p.x*cell+2, p.y*cell+2, cell-4, cell-4, bodyColor)
}

func (g *Game) erase(p point) {
	g.surface.FillRect(p.x*cell, p.y*cell, cell, cell, gfx.Black)
}

func xorshift32(x uint32) uint32 {
	if x == 0 {
		x = 0x6d2b79f5
	}
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}
