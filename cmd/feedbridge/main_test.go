//go:build !tinygo

package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"minilcd/internal/feed"
)

type fixedSource struct {
	body []byte
	err  error
}

func (s fixedSource) Fetch(context.Context) ([]byte, error) { return s.body, s.err }

func TestEncodeLineCompacts(t *testing.T) {
	line, err := encodeLine([]byte("{\n  \"measurements\": [\n    {\"CPU0\": \"5\"}\n  ]\n}\n"))
	if err != nil {
		t.Fatalf("encodeLine() error: %v", err)
	}
	want := `{"measurements":[{"CPU0":"5"}]}` + "\n"
	if string(line) != want {
		t.Fatalf("encodeLine() = %q, want %q", line, want)
	}
}

func TestForwardFeedsLineSource(t *testing.T) {
	var wire bytes.Buffer
	src := fixedSource{body: []byte(`{"measurements":[{"CPU3":"77"}]}`)}
	if err := forward(context.Background(), src, &wire); err != nil {
		t.Fatalf("forward() error: %v", err)
	}

	line, err := feed.NewLineSource(&wire).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	msg, err := feed.Parse(line)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if msg.Payload[3] != 77 {
		t.Fatalf("CPU3 = %d, want 77", msg.Payload[3])
	}
}

func TestForwardSkipsBadBodies(t *testing.T) {
	var wire bytes.Buffer
	if err := forward(context.Background(), fixedSource{body: []byte(`{"x":1}`)}, &wire); err == nil {
		t.Fatalf("forward() = nil error for a body without measurements")
	}
	if err := forward(context.Background(), fixedSource{err: errors.New("down")}, &wire); err == nil {
		t.Fatalf("forward() = nil error for a failed fetch")
	}
	if wire.Len() != 0 {
		t.Fatalf("wrote %d bytes, want 0", wire.Len())
	}
}
