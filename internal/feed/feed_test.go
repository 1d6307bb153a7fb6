package feed

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"minilcd/internal/comm"
)

const sampleJSON = `{"measurements":[
 {"time":"12:00:00","CPU0":"10","CPU1":20,"CPU15":"99.6","RAM":"16384","GPU":"45","GPUVD":3,"GPUVE":"4","GPUMEM":"2048"},
 {"time":"12:00:05","CPU0":"11","CPU1":"21","RAM":"17000","GPU":"50","GPUMEM":"1024"}
]}`

func mustMeasurements(t *testing.T, msg comm.Message) comm.Measurements {
	t.Helper()
	m, ok := comm.DecodeMeasurements(msg)
	if !ok {
		t.Fatalf("message kind = %v, want measurements", msg.Kind)
	}
	return m
}

func TestParseLastSampleWins(t *testing.T) {
	msg, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	m := mustMeasurements(t, msg)
	if m.CPU[0] != 11 || m.CPU[1] != 21 {
		t.Fatalf("CPU[0:2] = %v, want [11 21]", m.CPU[:2])
	}
	if m.CPU[15] != 0 {
		t.Fatalf("CPU[15] = %d, want 0 (missing in last sample)", m.CPU[15])
	}
	if m.RAM != 17000 || m.GPU != 50 || m.GPUMem != 1024 {
		t.Fatalf("RAM/GPU/GPUMem = %d/%d/%d, want 17000/50/1024", m.RAM, m.GPU, m.GPUMem)
	}
	if m.GPUVD != 0 || m.GPUVE != 0 {
		t.Fatalf("GPUVD/GPUVE = %d/%d, want 0/0", m.GPUVD, m.GPUVE)
	}
}

func TestParseNumbersAndStrings(t *testing.T) {
	msg, err := Parse([]byte(`{"measurements":[{"CPU0":"42.7","CPU1":17,"CPU2":-5,"CPU3":"x","GPUVD":"7"}]}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	m := mustMeasurements(t, msg)
	want := [4]uint32{42, 17, 0, 0}
	for i, w := range want {
		if m.CPU[i] != w {
			t.Fatalf("CPU[%d] = %d, want %d", i, m.CPU[i], w)
		}
	}
	if m.GPUVD != 7 {
		t.Fatalf("GPUVD = %d, want 7", m.GPUVD)
	}
}

func TestParseSkipsHeader(t *testing.T) {
	body := "HTTP/1.1 200 OK\r\nContent-Type: application/json\r\n\r\n" + sampleJSON
	if _, err := Parse([]byte(body)); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"no json here", ErrNoJSON},
		{`{"other":[]}`, ErrNoMeasurements},
		{`{"measurements":{"CPU0":1}}`, ErrNoMeasurements},
		{`{"measurements":[1,"a"]}`, ErrNoSamples},
	}
	for _, c := range cases {
		if _, err := Parse([]byte(c.in)); !errors.Is(err, c.want) {
			t.Fatalf("Parse(%q) = %v, want %v", c.in, err, c.want)
		}
	}
	if _, err := Parse([]byte(`{"measurements":[`)); err == nil {
		t.Fatalf("Parse(truncated) = nil error")
	}
}

type sink struct{ msgs []comm.Message }

func (s *sink) Send(msg comm.Message) { s.msgs = append(s.msgs, msg) }

type fakeSource struct {
	bodies [][]byte
	errs   []error
	calls  int
}

func (f *fakeSource) Fetch(ctx context.Context) ([]byte, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.bodies) {
		return f.bodies[i], nil
	}
	return nil, ErrNoData
}

func TestPollerIntervalGuard(t *testing.T) {
	src := &fakeSource{bodies: [][]byte{[]byte(sampleJSON), []byte(sampleJSON)}}
	out := &sink{}
	p := NewPoller(src, out, nil, 5000, 0)
	ctx := context.Background()

	p.Process(ctx, 100)
	p.Process(ctx, 4000)
	if src.calls != 1 {
		t.Fatalf("fetches = %d, want 1", src.calls)
	}
	p.Process(ctx, 5100)
	if src.calls != 2 || len(out.msgs) != 2 {
		t.Fatalf("fetches/sent = %d/%d, want 2/2", src.calls, len(out.msgs))
	}
	if p.Sent() != 2 || p.Failures() != 0 {
		t.Fatalf("Sent/Failures = %d/%d, want 2/0", p.Sent(), p.Failures())
	}
}

func TestPollerCountsFailures(t *testing.T) {
	src := &fakeSource{
		bodies: [][]byte{nil, []byte("garbage")},
		errs:   []error{errors.New("connect refused")},
	}
	out := &sink{}
	p := NewPoller(src, out, nil, 0, 0)
	for now := uint64(0); now < 3; now++ {
		p.Process(context.Background(), now)
	}
	if p.Failures() != 2 {
		t.Fatalf("Failures() = %d, want 2", p.Failures())
	}
	if len(out.msgs) != 0 {
		t.Fatalf("sent %d messages, want 0", len(out.msgs))
	}
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/measurements" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	body, err := NewHTTPSource(srv.URL+"/measurements", time.Second).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if _, err := Parse(body); err != nil {
		t.Fatalf("Parse(body) error: %v", err)
	}

	if _, err := NewHTTPSource(srv.URL+"/nope", time.Second).Fetch(context.Background()); err == nil {
		t.Fatalf("Fetch(404) = nil error")
	}
}

// chunkReader hands out one chunk per Read, then nothing.
type chunkReader struct{ chunks [][]byte }

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, nil
	}
	n := copy(p, r.chunks[0])
	r.chunks[0] = r.chunks[0][n:]
	if len(r.chunks[0]) == 0 {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}

func TestLineSource(t *testing.T) {
	r := &chunkReader{}
	src := NewLineSource(r)
	ctx := context.Background()

	r.chunks = [][]byte{[]byte(`{"measurements":[{"CPU0":"1"}]`)}
	if _, err := src.Fetch(ctx); !errors.Is(err, ErrNoData) {
		t.Fatalf("Fetch(partial) = %v, want ErrNoData", err)
	}

	r.chunks = [][]byte{[]byte("}\n{\"measurements\":[{\"CPU0\":\"2\"}]}\n{\"meas")}
	line, err := src.Fetch(ctx)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	msg, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse(line) error: %v", err)
	}
	if m := mustMeasurements(t, msg); m.CPU[0] != 2 {
		t.Fatalf("CPU[0] = %d, want 2 (newest line)", m.CPU[0])
	}

	r.chunks = [][]byte{[]byte("urements\":[{\"CPU0\":\"3\"}]}\r\n")}
	line, err = src.Fetch(ctx)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if !bytes.HasPrefix(line, []byte(`{"measurements"`)) {
		t.Fatalf("Fetch() = %q, want the joined line", line)
	}
}
