//go:build unix

package blinkenbus

import (
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// Device accesses the bus through the kblinkenbus driver file. The driver
// maps the 9 bit bus address space onto file offsets.
type Device struct {
	path string
	fd   int
}

// Open acquires the bus device.
func Open(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("blinkenbus: could not open %q: %w", path, err)
	}
	return &Device{path: path, fd: fd}, nil
}

func (dev *Device) Path() string { return dev.path }

func (dev *Device) seek(addr uint16) error {
	off, err := unix.Seek(dev.fd, int64(addr), io.SeekStart)
	if err != nil {
		return fmt.Errorf("%w: could not seek to 0x%03x: %v", ErrBus, addr, err)
	}
	if off != int64(addr) {
		return fmt.Errorf("%w: seek to 0x%03x landed at 0x%03x", ErrBus, addr, off)
	}
	return nil
}

func (dev *Device) ReadRegisters(board, first uint8, count int) ([]byte, error) {
	if err := checkSpan(first, count); err != nil {
		return nil, err
	}
	addr := IOAddress(board, first)
	if err := dev.seek(addr); err != nil {
		return nil, err
	}
	buf := make([]byte, count)
	n, err := unix.Read(dev.fd, buf)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read %d registers at 0x%03x: %v", ErrBus, count, addr, err)
	}
	if n != count {
		return nil, fmt.Errorf("%w: short read at 0x%03x: %d/%d", ErrBus, addr, n, count)
	}
	return buf, nil
}

func (dev *Device) WriteRegisters(board, first uint8, data []byte) error {
	if err := checkSpan(first, len(data)); err != nil {
		return err
	}
	addr := IOAddress(board, first)
	if err := dev.seek(addr); err != nil {
		return err
	}
	n, err := unix.Write(dev.fd, data)
	if err != nil {
		return fmt.Errorf("%w: could not write %d registers at 0x%03x: %v", ErrBus, len(data), addr, err)
	}
	if n != len(data) {
		return fmt.Errorf("%w: short write at 0x%03x: %d/%d", ErrBus, addr, n, len(data))
	}
	return nil
}

func (dev *Device) Close() error {
	if dev.fd < 0 {
		return nil
	}
	err := unix.Close(dev.fd)
	dev.fd = -1
	return err
}

var _ Bus = (*Device)(nil)
