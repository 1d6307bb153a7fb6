package logx

import (
	"strings"
	"testing"
)

type lineSink struct {
	lines []string
}

func (s *lineSink) WriteLineString(line string) { s.lines = append(s.lines, line) }

func TestLoggerFiltersByLevel(t *testing.T) {
	sink := &lineSink{}
	log := New(sink, LevelInfo, func() uint64 { return 42 })

	log.Debugf("hidden %d", 1)
	log.Infof("shown %d", 2)
	log.Errorf("also shown")

	if len(sink.lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(sink.lines), sink.lines)
	}
	if sink.lines[0] != "42 [INFO] shown 2" {
		t.Fatalf("line = %q", sink.lines[0])
	}
}

func TestLoggerWithSharesLevel(t *testing.T) {
	sink := &lineSink{}
	root := New(sink, LevelWarn, nil)
	child := root.With("comm")

	child.Infof("dropped")
	root.SetLevel(LevelTrace)
	child.Tracef("kept")

	if len(sink.lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(sink.lines), sink.lines)
	}
	if !strings.HasSuffix(sink.lines[0], "[TRACE] comm: kept") {
		t.Fatalf("line = %q", sink.lines[0])
	}
}

func TestNilLoggerIsSilent(t *testing.T) {
	var log *Logger
	log.Errorf("nothing happens")
	log.SetLevel(LevelTrace)
	if log.With("x") != nil {
		t.Fatal("With on nil logger returned non-nil")
	}
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	if err != nil || l != LevelDebug {
		t.Fatalf("ParseLevel(debug) = (%v, %v), want (DEBUG, nil)", l, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("ParseLevel(loud) err = nil, want error")
	}
}
