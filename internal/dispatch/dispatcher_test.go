package dispatch

import (
	"errors"
	"strings"
	"testing"

	"github.com/KevinKickass/BlinkenCore/internal/blinkenbus"
	"github.com/KevinKickass/BlinkenCore/internal/hardware"
	"github.com/KevinKickass/BlinkenCore/internal/panels"
	"github.com/KevinKickass/BlinkenCore/internal/panelsim"
	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"
)

type fakeNotifier struct {
	controls []map[string]uint64
	states   map[string]panels.BoardState
}

func (n *fakeNotifier) ControlsChanged(panel string, values map[string]uint64) {
	n.controls = append(n.controls, values)
}

func (n *fakeNotifier) StateChanged(panel string, state panels.BoardState) {
	if n.states == nil {
		n.states = make(map[string]panels.BoardState)
	}
	n.states[panel] = state
}

func newTestRegistry() *panels.Registry {
	return panels.NewRegistry([]*panels.Panel{
		{Name: "console", Info: "test console", DefaultRadix: 8, Controls: []*panels.Control{
			{Name: "switches", Direction: panels.Input, Width: 16, Wiring: []panels.Wiring{
				{Board: 2, Register: 0, Width: 8},
				{Board: 2, Register: 1, ControlBit: 8, Width: 8},
			}},
			{Name: "address", Direction: panels.Output, Width: 36, Wiring: []panels.Wiring{
				{Board: 2, Register: 4, ControlBit: 18, Width: 8},
				{Board: 2, Register: 5, ControlBit: 26, Width: 8},
				{Board: 3, Register: 0, ControlBit: 34, Width: 2},
			}},
			{Name: "run", Direction: panels.Output, Width: 1, Wiring: []panels.Wiring{{Board: 2, Register: 6}}},
		}},
		{Name: "aux", Controls: []*panels.Control{
			{Name: "power", Direction: panels.Output, Width: 1, Wiring: []panels.Wiring{{Board: 3, Register: 1}}},
		}},
	})
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *blinkenbus.Memory, *fakeNotifier) {
	t.Helper()
	reg := newTestRegistry()
	mem := blinkenbus.NewMemory()
	logger := zaptest.NewLogger(t)
	info := ServerInfo{
		InstanceID: uuid.New(),
		Version:    "v1.0.0",
		Program:    "blinkenlightd",
		Options:    "-c panels.yaml",
		BuildTime:  "2026-10-19T12:00:00Z",
	}
	d := New(reg, hardware.NewBackend(mem, reg, logger), info, logger)
	n := &fakeNotifier{}
	d.SetNotifier(n)
	return d, mem, n
}

func TestPanelList(t *testing.T) {
	d, _, _ := newTestDispatcher(t)

	list := d.GetPanelList()
	if len(list) != 2 {
		t.Fatalf("invalid number of panels: %d", len(list))
	}

	pi := list[0]
	if pi.Name != "console" || pi.InputsCount != 1 || pi.OutputsCount != 2 {
		t.Fatalf("invalid panel info: %+v", pi)
	}
	if got, want := pi.OutputsValueBytes, 5+1; got != want {
		t.Fatalf("invalid output value bytes: got=%d, want=%d", got, want)
	}
	if c := pi.Controls[1]; c.ValueBitLen != 36 || c.ValueByteLen != 5 || c.Direction != "output" {
		t.Fatalf("invalid control info: %+v", c)
	}

	if _, err := d.GetPanel(2); !errors.Is(err, panels.ErrInvalidHandle) {
		t.Fatalf("invalid error: %v", err)
	}
	if h, err := d.ControlHandle(0, "run"); err != nil || h != 2 {
		t.Fatalf("invalid control lookup: h=%d, err=%v", h, err)
	}
	if _, err := d.ControlHandle(1, "run"); !errors.Is(err, panels.ErrInvalidHandle) {
		t.Fatalf("invalid error: %v", err)
	}
}

func TestControlValues(t *testing.T) {
	d, mem, n := newTestDispatcher(t)

	mem.Poke(blinkenbus.IOAddress(2, 0), 0x34)
	mem.Poke(blinkenbus.IOAddress(2, 1), 0x12)
	got, err := d.GetControlValues(0)
	if err != nil {
		t.Fatalf("could not get values: %+v", err)
	}
	if len(got) != 1 || got[0] != 0x1234 {
		t.Fatalf("invalid values: got=%x, want=[1234]", got)
	}

	// low 18 bits of address are not wired and dropped silently
	err = d.SetControlValues(0, []uint64{0xf_ffff_ffff, 1}, false)
	if err != nil {
		t.Fatalf("could not set values: %+v", err)
	}
	v, err := d.GetControlValue(0, 1)
	if err != nil {
		t.Fatalf("could not get value: %+v", err)
	}
	if want := uint64(0xf_fffc_0000); v != want {
		t.Fatalf("invalid masked value: got=0x%x, want=0x%x", v, want)
	}
	if mem.Peek(blinkenbus.IOAddress(3, 0)) != 0x03 || mem.Peek(blinkenbus.IOAddress(2, 6)) != 0x01 {
		t.Fatalf("outputs not written")
	}
	if len(n.controls) != 1 || n.controls[0]["run"] != 1 {
		t.Fatalf("invalid notification: %v", n.controls)
	}

	for _, tc := range []struct {
		name   string
		ph     int
		values []uint64
		want   error
	}{
		{"too-few", 0, []uint64{1}, ErrValueCount},
		{"too-many", 0, []uint64{1, 1, 1}, ErrValueCount},
		{"too-wide", 0, []uint64{1 << 36, 1}, panels.ErrValueRange},
		{"bad-panel", 7, nil, panels.ErrInvalidHandle},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if err := d.SetControlValues(tc.ph, tc.values, false); !errors.Is(err, tc.want) {
				t.Fatalf("invalid error: got=%v, want=%v", err, tc.want)
			}
		})
	}

	v, _ = d.GetControlValue(0, 2)
	if v != 1 {
		t.Fatalf("failed set modified a control: run=%d", v)
	}
}

func TestSetControlValue(t *testing.T) {
	d, mem, _ := newTestDispatcher(t)

	if err := d.SetControlValue(1, 0, 1); err != nil {
		t.Fatalf("could not set value: %+v", err)
	}
	if got := mem.Peek(blinkenbus.IOAddress(3, 1)); got != 1 {
		t.Fatalf("output not written: 0x%02x", got)
	}
	if err := d.SetControlValue(0, 0, 1); !errors.Is(err, ErrDirection) {
		t.Fatalf("invalid error: %v", err)
	}
	if err := d.SetControlValue(1, 0, 2); !errors.Is(err, panels.ErrValueRange) {
		t.Fatalf("invalid error: %v", err)
	}
	if _, err := d.GetControlValue(1, 1); !errors.Is(err, panels.ErrInvalidHandle) {
		t.Fatalf("invalid error: %v", err)
	}
}

func TestBoardsState(t *testing.T) {
	d, _, n := newTestDispatcher(t)

	if err := d.SetBoardsState(1, panels.StateTest); err != nil {
		t.Fatalf("could not set state: %+v", err)
	}
	s, err := d.GetBoardsState(0)
	if err != nil {
		t.Fatalf("could not get state: %+v", err)
	}
	// console starts with board 2, which aux does not use
	if s != panels.StateNormal {
		t.Fatalf("invalid state: got=%v, want=%v", s, panels.StateNormal)
	}
	if n.states["console"] != panels.StateTest || n.states["aux"] != panels.StateTest {
		t.Fatalf("invalid notifications: %v", n.states)
	}

	if err := d.SetBoardsState(0, panels.StateOff); err != nil {
		t.Fatalf("could not set state: %+v", err)
	}
	if s, _ := d.GetBoardsState(1); s != panels.StateOff {
		t.Fatalf("invalid state of sharing panel: got=%v, want=%v", s, panels.StateOff)
	}

	if err := d.SetBoardsState(0, panels.BoardState(3)); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("invalid error: %v", err)
	}
	if _, err := d.GetBoardsState(-1); !errors.Is(err, panels.ErrInvalidHandle) {
		t.Fatalf("invalid error: %v", err)
	}
}

func TestServerInfo(t *testing.T) {
	d, _, _ := newTestDispatcher(t)

	lines := strings.Split(strings.TrimSuffix(d.GetServerInfo(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("invalid number of info lines: %q", lines)
	}
	for i, want := range []string{
		"Server info ...............: blinkenlightd - Blinkenlight API server daemon v1.0.0",
		"Server program name........: blinkenlightd",
		"Server command line options: -c panels.yaml",
		"Server compile time .......: 2026-10-19T12:00:00Z",
	} {
		if lines[i] != want {
			t.Fatalf("invalid line %d: got=%q, want=%q", i, lines[i], want)
		}
	}
}

func TestSimulatedInput(t *testing.T) {
	d, _, _ := newTestDispatcher(t)
	if err := d.SetSimulatedInput(0, 0, 1); !errors.Is(err, ErrNotSimulated) {
		t.Fatalf("invalid error: %v", err)
	}

	reg := newTestRegistry()
	logger := zaptest.NewLogger(t)
	sim := New(reg, panelsim.NewSimulator(reg, logger), ServerInfo{}, logger)
	if err := sim.SetSimulatedInput(0, 0, 0xbeef); err != nil {
		t.Fatalf("could not set input: %+v", err)
	}
	got, err := sim.GetControlValues(0)
	if err != nil {
		t.Fatalf("could not get values: %+v", err)
	}
	if len(got) != 1 || got[0] != 0xbeef {
		t.Fatalf("invalid values: got=%x", got)
	}
}
