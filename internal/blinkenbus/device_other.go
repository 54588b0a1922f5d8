//go:build !unix

package blinkenbus

import (
	"errors"
	"fmt"
)

// Device is only available on unix hosts.
type Device struct{}

func Open(path string) (*Device, error) {
	return nil, fmt.Errorf("blinkenbus: could not open %q: %w", path, errors.ErrUnsupported)
}

func (dev *Device) Path() string { return "" }

func (dev *Device) ReadRegisters(board, first uint8, count int) ([]byte, error) {
	return nil, ErrBus
}

func (dev *Device) WriteRegisters(board, first uint8, data []byte) error {
	return ErrBus
}

func (dev *Device) Close() error { return nil }

var _ Bus = (*Device)(nil)
