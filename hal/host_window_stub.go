//go:build !tinygo && !cgo

package hal

import "errors"

// RunWindow needs ebiten, which needs cgo on most hosts. Use -headless.
func RunWindow(_ func(h HAL) func() error) error {
	return errors.New("window mode requires cgo (CGO_ENABLED=1); run with -headless instead")
}
