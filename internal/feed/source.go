package feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNoData means the source has nothing new yet. It is not a failure.
var ErrNoData = errors.New("feed: no data")

// Source yields raw response bodies.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// maxBody bounds a single response.
const maxBody = 64 << 10

// HTTPSource issues GET requests against a fixed URL.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource returns a source with its own client and request timeout.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{URL: url, Client: &http.Client{Timeout: timeout}}
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed: %s: %s", s.URL, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("feed: read body: %w", err)
	}
	return body, nil
}

// LineSource collects newline-terminated documents from a non-blocking
// byte stream such as the board's USB serial. Each Fetch drains what is
// available and returns the most recent complete line.
type LineSource struct {
	r   io.Reader
	buf []byte
	tmp [128]byte
}

func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{r: r}
}

func (s *LineSource) Fetch(ctx context.Context) ([]byte, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := s.r.Read(s.tmp[:])
		s.buf = append(s.buf, s.tmp[:n]...)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("feed: %w", err)
		}
		if n == 0 || errors.Is(err, io.EOF) {
			break
		}
	}

	end := bytes.LastIndexByte(s.buf, '\n')
	if end < 0 {
		if len(s.buf) > maxBody {
			s.buf = s.buf[:0]
		}
		return nil, ErrNoData
	}
	start := bytes.LastIndexByte(s.buf[:end], '\n') + 1
	line := bytes.TrimSpace(append([]byte(nil), s.buf[start:end]...))
	s.buf = append(s.buf[:0], s.buf[end+1:]...)
	if len(line) == 0 {
		return nil, ErrNoData
	}
	return line, nil
}
