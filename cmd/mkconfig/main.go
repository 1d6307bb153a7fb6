//go:build !tinygo && cgo

// Command mkconfig validates a YAML config and writes it into a LittleFS
// flash image for the board's data partition.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"minilcd/internal/config"
)

const (
	defaultImagePath = "config.bin"
	defaultFlashSize = 1 << 20
	defaultEraseSize = 4096
	writeBlockSize   = 256
)

// flashFile is a NOR-flash image in a host file: erased bytes are 0xFF and
// a write may only clear bits.
type flashFile struct {
	f         *os.File
	size      int64
	eraseSize int64

	scratch []byte
}

func openFlashFile(path string, size, eraseSize int64) (*flashFile, error) {
	if eraseSize == 0 || eraseSize%writeBlockSize != 0 {
		return nil, fmt.Errorf("flash: invalid erase size %d", eraseSize)
	}
	if size == 0 || size%eraseSize != 0 {
		return nil, fmt.Errorf("flash: size %d not multiple of erase size %d", size, eraseSize)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open flash file %q: %w", path, err)
	}
	if err := f.Truncate(size); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("truncate flash file %q to %d: %w", path, size, err)
	}

	ff := &flashFile{
		f:         f,
		size:      size,
		eraseSize: eraseSize,
		scratch:   make([]byte, eraseSize),
	}
	for i := range ff.scratch {
		ff.scratch[i] = 0xFF
	}
	if err := ff.EraseBlocks(0, size/eraseSize); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("erase flash file %q: %w", path, err)
	}
	return ff, nil
}

func (f *flashFile) Close() error { return f.f.Close() }

func (f *flashFile) Size() int64           { return f.size }
func (f *flashFile) WriteBlockSize() int64 { return writeBlockSize }
func (f *flashFile) EraseBlockSize() int64 { return f.eraseSize }

func (f *flashFile) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= f.size {
		return 0, fmt.Errorf("flash read at %d: %w", off, os.ErrInvalid)
	}
	if maxN := f.size - off; int64(len(p)) > maxN {
		p = p[:maxN]
	}
	return f.f.ReadAt(p, off)
}

func (f *flashFile) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= f.size {
		return 0, fmt.Errorf("flash write at %d: %w", off, os.ErrInvalid)
	}
	if maxN := f.size - off; int64(len(p)) > maxN {
		p = p[:maxN]
	}

	prev := make([]byte, len(p))
	if _, err := f.f.ReadAt(prev, off); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("flash read before write at %d: %w", off, err)
	}
	for i := range p {
		if prev[i]&p[i] != p[i] {
			return 0, errors.New("flash write requires erase")
		}
	}
	return f.f.WriteAt(p, off)
}

// EraseBlocks erases n blocks starting at block start.
func (f *flashFile) EraseBlocks(start, n int64) error {
	if start < 0 || n < 0 || (start+n)*f.eraseSize > f.size {
		return fmt.Errorf("flash erase start=%d n=%d: %w", start, n, os.ErrInvalid)
	}
	for b := start; b < start+n; b++ {
		if _, err := f.f.WriteAt(f.scratch, b*f.eraseSize); err != nil {
			return fmt.Errorf("flash erase block %d: %w", b, err)
		}
	}
	return nil
}

func main() {
	var cfgPath string
	var outPath string
	var flashSize uint
	var eraseSize uint
	flag.StringVar(&cfgPath, "config", "", "YAML config to store (empty = built-in defaults).")
	flag.StringVar(&outPath, "out", defaultImagePath, "Output flash image path.")
	flag.UintVar(&flashSize, "size", defaultFlashSize, "Data partition size (bytes).")
	flag.UintVar(&eraseSize, "erase", defaultEraseSize, "Erase block size (bytes).")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}

	if err := run(cfgPath, outPath, int64(flashSize), int64(eraseSize)); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cfgPath, outPath string, flashSize, eraseSize int64) error {
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)

	ff, err := openFlashFile(outPath, flashSize, eraseSize)
	if err != nil {
		return err
	}
	defer func() { _ = ff.Close() }()

	st, err := config.OpenStore(ff)
	if err != nil {
		return err
	}
	if err := st.Save(cfg); err != nil {
		_ = st.Close()
		return err
	}
	return st.Close()
}
