//go:build tinygo || cgo

package config

import (
	"fmt"
	"io"
	"os"

	"tinygo.org/x/tinyfs"
	"tinygo.org/x/tinyfs/littlefs"
)

const (
	storePath  = "/minilcd.yaml"
	tempSuffix = ".tmp"
	maxFile    = 8 << 10
)

// Store keeps the YAML config on a LittleFS volume, used by boards
// without a host filesystem.
type Store struct {
	fs *littlefs.LFS
}

// OpenStore mounts the LittleFS volume on dev, formatting it when it
// does not mount.
func OpenStore(dev tinyfs.BlockDevice) (*Store, error) {
	lfs := littlefs.New(dev)
	lfs.Configure(&littlefs.Config{
		CacheSize:     512,
		LookaheadSize: 128,
	})
	if err := lfs.Mount(); err != nil {
		if err := lfs.Format(); err != nil {
			return nil, fmt.Errorf("config: format: %w", err)
		}
		if err := lfs.Mount(); err != nil {
			return nil, fmt.Errorf("config: mount: %w", err)
		}
	}
	return &Store{fs: lfs}, nil
}

func (s *Store) Close() error { return s.fs.Unmount() }

// Load returns the stored config. A missing file is seeded with Default.
func (s *Store) Load() (*Config, error) {
	f, err := s.fs.Open(storePath)
	if err != nil {
		cfg := Default()
		if err := s.Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	defer f.Close()

	data, err := readAll(f)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", storePath, err)
	}
	return Parse(data)
}

// Save replaces the stored config. The old file stays intact until the new
// one is fully written.
func (s *Store) Save(cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	tmp := storePath + tempSuffix
	s.fs.Remove(tmp)

	f, err := s.fs.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return fmt.Errorf("config: create: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		s.fs.Remove(tmp)
		return fmt.Errorf("config: write: %w", err)
	}
	if syncer, ok := f.(interface{ Sync() error }); ok {
		if err := syncer.Sync(); err != nil {
			f.Close()
			s.fs.Remove(tmp)
			return fmt.Errorf("config: sync: %w", err)
		}
	}
	if err := f.Close(); err != nil {
		s.fs.Remove(tmp)
		return fmt.Errorf("config: close: %w", err)
	}

	// LittleFS rename does not replace.
	s.fs.Remove(storePath)
	if err := s.fs.Rename(tmp, storePath); err != nil {
		s.fs.Remove(tmp)
		return fmt.Errorf("config: rename: %w", err)
	}
	return nil
}

func readAll(r io.Reader) ([]byte, error) {
	var out []byte
	buf := make([]byte, 256)
	for len(out) < maxFile {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF || n == 0 {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("file larger than %d bytes", maxFile)
}
