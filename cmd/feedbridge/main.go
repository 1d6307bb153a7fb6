//go:build !tinygo

// Command feedbridge polls the measurements endpoint on the host and
// forwards each response as one JSON line over the board's USB serial, for
// boards without a network link.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/tarm/serial"

	"minilcd/internal/feed"
)

func main() {
	var (
		url      = flag.String("url", "http://127.0.0.1:8700/measurements", "Measurements endpoint.")
		port     = flag.String("port", "/dev/ttyACM0", "Board serial device.")
		baud     = flag.Int("baud", 115200, "Baud rate (ignored by USB CDC).")
		interval = flag.Duration("interval", 5*time.Second, "Poll interval.")
	)
	flag.Parse()

	p, err := serial.OpenPort(&serial.Config{
		Name:        *port,
		Baud:        *baud,
		ReadTimeout: 100 * time.Millisecond,
	})
	if err != nil {
		log.Fatalf("failed to open serial port %s: %v", *port, err)
	}
	defer p.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	src := feed.NewHTTPSource(*url, *interval)
	if err := bridge(ctx, src, p, *interval); err != nil && err != context.Canceled {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bridge forwards one line per interval until ctx ends. Fetch and parse
// failures are logged and skipped.
func bridge(ctx context.Context, src feed.Source, w io.Writer, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		if err := forward(ctx, src, w); err != nil {
			log.Printf("feedbridge: %v", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

func forward(ctx context.Context, src feed.Source, w io.Writer) error {
	body, err := src.Fetch(ctx)
	if err != nil {
		return err
	}
	line, err := encodeLine(body)
	if err != nil {
		return err
	}
	if _, err := w.Write(line); err != nil {
		return fmt.Errorf("serial write: %w", err)
	}
	return nil
}

// encodeLine checks body parses as a measurements document and compacts
// it onto a single newline-terminated line.
func encodeLine(body []byte) ([]byte, error) {
	if _, err := feed.Parse(body); err != nil {
		return nil, err
	}
	start := bytes.IndexByte(body, '{')
	var buf bytes.Buffer
	if err := json.Compact(&buf, body[start:]); err != nil {
		return nil, fmt.Errorf("compact: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
