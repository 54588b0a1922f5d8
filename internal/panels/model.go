package panels

import (
	"fmt"
	"strings"

	"github.com/KevinKickass/BlinkenCore/internal/blinkenbus"
)

type Direction int

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "input", "in":
		return Input, nil
	case "output", "out":
		return Output, nil
	}
	return 0, fmt.Errorf("panels: invalid direction %q", s)
}

// BoardState is the tri-state mode of a board. The numeric value is the
// code written into the board control register.
type BoardState int

const (
	StateNormal BoardState = 0
	StateOff    BoardState = 1
	StateTest   BoardState = 2
)

func (s BoardState) Valid() bool {
	return s >= StateNormal && s <= StateTest
}

func (s BoardState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateOff:
		return "off"
	case StateTest:
		return "test"
	default:
		return fmt.Sprintf("BoardState(%d)", int(s))
	}
}

func ParseBoardState(s string) (BoardState, error) {
	switch strings.ToLower(s) {
	case "normal":
		return StateNormal, nil
	case "off", "disabled":
		return StateOff, nil
	case "test":
		return StateTest, nil
	}
	return 0, fmt.Errorf("panels: invalid board state %q", s)
}

// Wiring binds a run of Width control bits, starting at ControlBit, to the
// register bits starting at RegisterBit of one board register.
type Wiring struct {
	Board       uint8
	Register    uint8
	RegisterBit uint8
	ControlBit  uint8
	Width       uint8
	Inverted    bool
}

func (w Wiring) bits() uint64 { return 1<<w.Width - 1 }

// ControlMask returns the control value bits owned by w.
func (w Wiring) ControlMask() uint64 { return w.bits() << w.ControlBit }

// RegisterMask returns the register bits owned by w.
func (w Wiring) RegisterMask() byte { return byte(w.bits()) << w.RegisterBit }

// Extract returns the control bits carried by a raw register byte.
func (w Wiring) Extract(raw byte) uint64 {
	v := uint64(raw>>w.RegisterBit) & w.bits()
	if w.Inverted {
		v ^= w.bits()
	}
	return v << w.ControlBit
}

// Merge returns reg with the bits owned by w replaced from value.
func (w Wiring) Merge(reg byte, value uint64) byte {
	v := (value >> w.ControlBit) & w.bits()
	if w.Inverted {
		v ^= w.bits()
	}
	return reg&^w.RegisterMask() | byte(v)<<w.RegisterBit
}

type Control struct {
	Index     int
	Name      string
	Direction Direction
	Type      string
	Radix     int
	Width     int
	Wiring    []Wiring

	Value    uint64
	Previous uint64 // value at the last hardware write

	defined uint64
}

func (c *Control) IsInput() bool { return c.Direction == Input }

// WidthMask returns the bits allowed by the declared control width.
func (c *Control) WidthMask() uint64 {
	if c.Width >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(c.Width) - 1
}

// DefinedMask returns the control bits that have a wiring entry.
func (c *Control) DefinedMask() uint64 { return c.defined }

func (c *Control) ByteLen() int { return (c.Width + 7) / 8 }

// Assign stores v as the new control value. Bits beyond the declared width
// are an error, bits without wiring are dropped.
func (c *Control) Assign(v uint64) error {
	if v&^c.WidthMask() != 0 {
		return fmt.Errorf("%w: control %q value 0x%x exceeds %d bits", ErrValueRange, c.Name, v, c.Width)
	}
	c.Value = v & c.defined
	return nil
}

type Panel struct {
	Index        int
	Name         string
	Info         string
	DefaultRadix int
	Controls     []*Control
	Boards       []uint8 // sorted addresses of all boards used by the controls
}

// Board is one I/O board on the bus.
type Board struct {
	Address   uint8
	Registers int // highest used I/O register + 1
	State     BoardState
	Panels    []int

	// Image holds the computed output bytes, Sent the bytes last written.
	Image     [blinkenbus.RegistersPerBoard]byte
	Sent      [blinkenbus.RegistersPerBoard]byte
	SentValid [blinkenbus.RegistersPerBoard]bool
}

// Invalidate forgets what was last written, so that the next output pass
// sends every register again.
func (b *Board) Invalidate() {
	b.SentValid = [blinkenbus.RegistersPerBoard]bool{}
}
