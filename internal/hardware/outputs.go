package hardware

import (
	"fmt"

	"github.com/KevinKickass/BlinkenCore/internal/blinkenbus"
	"github.com/KevinKickass/BlinkenCore/internal/panels"
)

// touched marks, per board, the registers an output pass has to look at.
type touched map[uint8]*[blinkenbus.RegistersPerBoard]bool

func (t touched) mark(board, register uint8) {
	regs, ok := t[board]
	if !ok {
		regs = new([blinkenbus.RegistersPerBoard]bool)
		t[board] = regs
	}
	regs[register] = true
}

// SetOutputs merges the output controls of p into the board images and
// writes the registers whose bytes changed. With forceAll every control is
// merged and every register it touches is written.
func (b *Backend) SetOutputs(p *panels.Panel, forceAll bool) error {
	t := make(touched)
	for _, c := range p.Controls {
		if c.IsInput() {
			continue
		}
		if !forceAll && c.Value == c.Previous {
			continue
		}
		for _, w := range c.Wiring {
			brd := b.reg.Board(w.Board)
			brd.Image[w.Register] = w.Merge(brd.Image[w.Register], c.Value)
			t.mark(w.Board, w.Register)
		}
	}

	for _, addr := range p.Boards {
		regs, ok := t[addr]
		if !ok {
			continue
		}
		if err := b.flush(b.reg.Board(addr), regs, forceAll); err != nil {
			return fmt.Errorf("could not write outputs of panel %q: %w", p.Name, err)
		}
	}

	for _, c := range p.Controls {
		if !c.IsInput() {
			c.Previous = c.Value
		}
	}
	return nil
}

// flush writes the touched registers of brd that differ from what was last
// sent. Runs of consecutive registers go out in a single bus write.
func (b *Backend) flush(brd *panels.Board, regs *[blinkenbus.RegistersPerBoard]bool, force bool) error {
	dirty := func(r int) bool {
		return regs[r] && (force || !brd.SentValid[r] || brd.Image[r] != brd.Sent[r])
	}

	for r := 0; r < blinkenbus.NumIORegisters; {
		if !dirty(r) {
			r++
			continue
		}
		first := r
		for r < blinkenbus.NumIORegisters && dirty(r) {
			r++
		}

		err := b.bus.WriteRegisters(brd.Address, uint8(first), brd.Image[first:r])
		if err != nil {
			return err
		}
		for i := first; i < r; i++ {
			brd.Sent[i] = brd.Image[i]
			brd.SentValid[i] = true
		}
	}
	return nil
}
