package input

import (
	"testing"
)

type stepLog struct {
	steps []Direction
}

func (l *stepLog) OnLeft()  { l.steps = append(l.steps, Left) }
func (l *stepLog) OnRight() { l.steps = append(l.steps, Right) }

// playALead feeds the falling edges of a cycle where A drops first.
func playALead(e *Encoder) {
	e.Edge(PhaseA, false, true)
	e.Edge(PhaseB, false, false)
}

func playBLead(e *Encoder) {
	e.Edge(PhaseB, true, false)
	e.Edge(PhaseA, false, false)
}

func TestEncoderPhaseOrder(t *testing.T) {
	e := NewEncoder(nil)
	log := &stepLog{}
	e.SetHandler(log)

	playALead(e)
	playBLead(e)
	playALead(e)
	e.Process()

	want := []Direction{ALeadDirection, bLeadDirection(), ALeadDirection}
	if len(log.steps) != len(want) {
		t.Fatalf("steps = %v, want %v", log.steps, want)
	}
	for i := range want {
		if log.steps[i] != want[i] {
			t.Fatalf("steps[%d] = %v, want %v", i, log.steps[i], want[i])
		}
	}
}

func TestEncoderBLeadReportsRight(t *testing.T) {
	e := NewEncoder(nil)
	log := &stepLog{}
	e.SetHandler(log)

	playBLead(e)
	e.Process()
	if len(log.steps) != 1 || log.steps[0] != Right {
		t.Fatalf("steps = %v, want [right]", log.steps)
	}
}

func TestEncoderIgnoresBounce(t *testing.T) {
	e := NewEncoder(nil)
	log := &stepLog{}
	e.SetHandler(log)

	// A bounces while B is still high: only the latch is set.
	e.Edge(PhaseA, false, true)
	e.Edge(PhaseA, false, true)
	e.Edge(PhaseA, true, true)
	if e.Pending() != 0 {
		t.Fatalf("Pending() = %d after bounce, want 0", e.Pending())
	}
	e.Edge(PhaseB, false, false)
	e.Process()
	if len(log.steps) != 1 {
		t.Fatalf("steps = %v, want exactly one", log.steps)
	}
}

func TestEncoderNilHandlerDrains(t *testing.T) {
	e := NewEncoder(nil)
	playALead(e)
	e.Process()
	if e.Pending() != 0 {
		t.Fatalf("Pending() = %d, want 0", e.Pending())
	}

	log := &stepLog{}
	e.SetHandler(log)
	e.Process()
	if len(log.steps) != 0 {
		t.Fatalf("late handler saw %v, want nothing", log.steps)
	}
}

func TestEncoderOverflowKeepsNewest(t *testing.T) {
	e := NewEncoder(nil)
	for i := 0; i < 200; i++ {
		playBLead(e)
	}
	if e.Pending() != 128 {
		t.Fatalf("Pending() = %d, want 128", e.Pending())
	}
}
