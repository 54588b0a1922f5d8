package blinkenbus

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestMemory(t *testing.T) {
	mem := NewRecordingMemory()

	err := mem.WriteRegisters(3, 2, []byte{0xa5, 0x5a})
	if err != nil {
		t.Fatalf("could not write registers: %+v", err)
	}
	if got, want := mem.Peek(0x32), byte(0xa5); got != want {
		t.Fatalf("invalid register: got=0x%x, want=0x%x", got, want)
	}

	got, err := mem.ReadRegisters(3, 2, 2)
	if err != nil {
		t.Fatalf("could not read registers: %+v", err)
	}
	if want := []byte{0xa5, 0x5a}; !bytes.Equal(got, want) {
		t.Fatalf("invalid read-back: got=%x, want=%x", got, want)
	}

	written := mem.Written()
	if written[0x32] != 1 || written[0x33] != 1 || len(written) != 2 {
		t.Fatalf("invalid write log: %v", written)
	}

	mem.Reset()
	if n := len(mem.Log()); n != 0 {
		t.Fatalf("log not reset: %d entries", n)
	}
}

func TestMemoryNotRecording(t *testing.T) {
	mem := NewMemory()

	for i := 0; i < 1000; i++ {
		if err := mem.WriteRegisters(1, 0, []byte{byte(i)}); err != nil {
			t.Fatalf("could not write registers: %+v", err)
		}
		if _, err := mem.ReadRegisters(1, 0, 1); err != nil {
			t.Fatalf("could not read registers: %+v", err)
		}
	}
	if got := mem.Peek(0x10); got != byte(999&0xff) {
		t.Fatalf("invalid register: got=0x%x", got)
	}
	if n := len(mem.Log()); n != 0 {
		t.Fatalf("accesses recorded: %d entries", n)
	}
	if cap(mem.log) != 0 {
		t.Fatalf("log storage allocated: cap=%d", cap(mem.log))
	}
}

func TestMemoryErrors(t *testing.T) {
	mem := NewMemory()

	for _, tc := range []struct {
		name string
		f    func() error
	}{
		{
			name: "span-too-long",
			f: func() error {
				_, err := mem.ReadRegisters(0, 14, 3)
				return err
			},
		},
		{
			name: "empty-write",
			f: func() error {
				return mem.WriteRegisters(0, 0, nil)
			},
		},
		{
			name: "injected",
			f: func() error {
				mem.Fail = io.ErrUnexpectedEOF
				defer func() { mem.Fail = nil }()
				return mem.WriteRegisters(0, 0, []byte{1})
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.f()
			if !errors.Is(err, ErrBus) {
				t.Fatalf("invalid error: got=%v, want=%v", err, ErrBus)
			}
		})
	}
}

func TestDevice(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no device access on windows")
	}

	fname := filepath.Join(t.TempDir(), "blinkenbus")
	err := os.WriteFile(fname, make([]byte, MaxRegisterAddr+1), 0644)
	if err != nil {
		t.Fatalf("could not create fake device: %+v", err)
	}

	dev, err := Open(fname)
	if err != nil {
		t.Fatalf("could not open fake device: %+v", err)
	}
	defer dev.Close()

	err = dev.WriteRegisters(31, 13, []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("could not write: %+v", err)
	}

	got, err := dev.ReadRegisters(31, 13, 3)
	if err != nil {
		t.Fatalf("could not read: %+v", err)
	}
	if want := []byte{1, 2, 3}; !bytes.Equal(got, want) {
		t.Fatalf("invalid read-back: got=%v, want=%v", got, want)
	}

	raw, err := os.ReadFile(fname)
	if err != nil {
		t.Fatalf("could not read fake device: %+v", err)
	}
	if got, want := raw[0x1fd:], []byte{1, 2, 3}; !bytes.Equal(got, want) {
		t.Fatalf("invalid file content: got=%v, want=%v", got, want)
	}

	if err := dev.Close(); err != nil {
		t.Fatalf("could not close device: %+v", err)
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatalf("expected an error")
	}
}
