package blinkenbus

import (
	"errors"
	"fmt"
)

// ErrBus marks a failed access to the register file.
var ErrBus = errors.New("blinkenbus: i/o failure")

// Bus is the register file of one BlinkenBus.
// Reads and writes address count consecutive registers of one board.
type Bus interface {
	ReadRegisters(board, first uint8, count int) ([]byte, error)
	WriteRegisters(board, first uint8, data []byte) error
	Close() error
}

func checkSpan(first uint8, count int) error {
	if count <= 0 || int(first)+count > RegistersPerBoard {
		return fmt.Errorf("%w: register span %d+%d outside board window", ErrBus, first, count)
	}
	return nil
}
