// Package panelsim is a panel backend without hardware. Input values are set
// by clients, output values are kept and shown the way lamps would show them.
package panelsim

import (
	"fmt"

	"github.com/KevinKickass/BlinkenCore/internal/interfaces"
	"github.com/KevinKickass/BlinkenCore/internal/panels"
	"go.uber.org/zap"
)

type Simulator struct {
	reg    *panels.Registry
	logger *zap.Logger

	inputs [][]uint64 // per panel, per control
	shown  [][]uint64 // output values as last reported by Service
	ticks  uint64
}

func NewSimulator(reg *panels.Registry, logger *zap.Logger) *Simulator {
	sim := &Simulator{
		reg:    reg,
		logger: logger,
		inputs: make([][]uint64, len(reg.Panels)),
		shown:  make([][]uint64, len(reg.Panels)),
	}
	for i, p := range reg.Panels {
		sim.inputs[i] = make([]uint64, len(p.Controls))
		sim.shown[i] = make([]uint64, len(p.Controls))
	}
	return sim
}

func (sim *Simulator) GetInputs(p *panels.Panel) error {
	for _, c := range p.Controls {
		if c.IsInput() {
			c.Value = sim.inputs[p.Index][c.Index] & c.DefinedMask()
		}
	}
	return nil
}

// SetOutputs only records the write; lamps have no state of their own.
func (sim *Simulator) SetOutputs(p *panels.Panel, forceAll bool) error {
	for _, c := range p.Controls {
		if !c.IsInput() {
			c.Previous = c.Value
		}
	}
	return nil
}

func (sim *Simulator) GetBoardsState(p *panels.Panel) panels.BoardState {
	if len(p.Boards) == 0 {
		return panels.StateNormal
	}
	return sim.reg.Board(p.Boards[0]).State
}

func (sim *Simulator) SetBoardsState(p *panels.Panel, s panels.BoardState) error {
	if !s.Valid() {
		return fmt.Errorf("invalid board state %d", int(s))
	}
	for _, addr := range p.Boards {
		sim.reg.Board(addr).State = s
	}
	return nil
}

// SetInput sets the value an input control reports from now on.
func (sim *Simulator) SetInput(ph, ch int, v uint64) error {
	p, c, err := sim.reg.Control(ph, ch)
	if err != nil {
		return err
	}
	if !c.IsInput() {
		return fmt.Errorf("%w: control %q of panel %q is not an input", panels.ErrInvalidHandle, c.Name, p.Name)
	}
	if v&^c.WidthMask() != 0 {
		return fmt.Errorf("%w: control %q value 0x%x exceeds %d bits", panels.ErrValueRange, c.Name, v, c.Width)
	}
	sim.inputs[ph][ch] = v
	return nil
}

// Shown returns what the lamps of an output control display, given the
// state of the panel boards.
func (sim *Simulator) Shown(p *panels.Panel, c *panels.Control) uint64 {
	switch sim.GetBoardsState(p) {
	case panels.StateOff:
		return 0
	case panels.StateTest:
		return c.DefinedMask()
	default:
		return c.Value
	}
}

// Service is the periodic simulation tick. It reports changed lamps.
func (sim *Simulator) Service() {
	sim.ticks++
	for _, p := range sim.reg.Panels {
		for _, c := range p.Controls {
			if c.IsInput() {
				continue
			}
			v := sim.Shown(p, c)
			if v == sim.shown[p.Index][c.Index] {
				continue
			}
			sim.shown[p.Index][c.Index] = v
			sim.logger.Debug("Simulated output changed",
				zap.String("panel", p.Name),
				zap.String("control", c.Name),
				zap.Uint64("value", v),
				zap.Uint64("tick", sim.ticks))
		}
	}
}

func (sim *Simulator) Ticks() uint64 { return sim.ticks }

var _ interfaces.Simulator = (*Simulator)(nil)
