package blinkenbus

import (
	"fmt"
)

// Access is one recorded bus transaction.
type Access struct {
	Addr  uint16
	Data  []byte
	Write bool
}

// Memory is a loopback register file. Everything written can be read back,
// which makes it usable for bench runs without boards attached and for tests.
// Only a recording Memory keeps a log of accesses.
type Memory struct {
	regs   [MaxRegisterAddr + 1]byte
	record bool
	log    []Access

	// Fail, when set, is returned by every subsequent access.
	Fail error
}

func NewMemory() *Memory {
	return &Memory{}
}

// NewRecordingMemory returns a Memory that logs every register access.
// The log grows without bound, use it for tests only.
func NewRecordingMemory() *Memory {
	return &Memory{record: true}
}

func (mem *Memory) ReadRegisters(board, first uint8, count int) ([]byte, error) {
	if err := checkSpan(first, count); err != nil {
		return nil, err
	}
	addr := IOAddress(board, first)
	if mem.Fail != nil {
		return nil, fmt.Errorf("%w: could not read at 0x%03x: %v", ErrBus, addr, mem.Fail)
	}
	buf := make([]byte, count)
	copy(buf, mem.regs[addr:])
	if mem.record {
		mem.log = append(mem.log, Access{Addr: addr, Data: append([]byte(nil), buf...)})
	}
	return buf, nil
}

func (mem *Memory) WriteRegisters(board, first uint8, data []byte) error {
	if err := checkSpan(first, len(data)); err != nil {
		return err
	}
	addr := IOAddress(board, first)
	if mem.Fail != nil {
		return fmt.Errorf("%w: could not write at 0x%03x: %v", ErrBus, addr, mem.Fail)
	}
	copy(mem.regs[addr:], data)
	if mem.record {
		mem.log = append(mem.log, Access{Addr: addr, Data: append([]byte(nil), data...), Write: true})
	}
	return nil
}

// Peek returns the raw register byte at a flat address.
func (mem *Memory) Peek(addr uint16) byte { return mem.regs[addr] }

// Poke sets a register byte without recording an access,
// the way an input line changes under the server.
func (mem *Memory) Poke(addr uint16, v byte) { mem.regs[addr] = v }

// Log returns the recorded accesses. It is always empty unless the Memory
// was created with NewRecordingMemory.
func (mem *Memory) Log() []Access { return mem.log }

// Written returns, per flat address, how many times it was written.
func (mem *Memory) Written() map[uint16]int {
	o := make(map[uint16]int)
	for _, acc := range mem.log {
		if !acc.Write {
			continue
		}
		for i := range acc.Data {
			o[acc.Addr+uint16(i)]++
		}
	}
	return o
}

func (mem *Memory) Reset() { mem.log = mem.log[:0] }

func (mem *Memory) Close() error { return nil }

var _ Bus = (*Memory)(nil)
