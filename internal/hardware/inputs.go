package hardware

import (
	"fmt"

	"github.com/KevinKickass/BlinkenCore/internal/panels"
)

type span struct {
	first, last uint8
}

func (b *Backend) GetInputs(p *panels.Panel) error {
	for _, c := range p.Controls {
		if !c.IsInput() {
			continue
		}
		if err := b.RefreshInput(c); err != nil {
			return fmt.Errorf("could not read control %q of panel %q: %w", c.Name, p.Name, err)
		}
	}
	return nil
}

// RefreshInput reads the registers wired to c and assembles its value.
// Every board is read once, over the register span c touches.
func (b *Backend) RefreshInput(c *panels.Control) error {
	spans := make(map[uint8]span)
	var boards []uint8
	for _, w := range c.Wiring {
		s, ok := spans[w.Board]
		if !ok {
			boards = append(boards, w.Board)
			s = span{first: w.Register, last: w.Register}
		}
		s.first = min(s.first, w.Register)
		s.last = max(s.last, w.Register)
		spans[w.Board] = s
	}

	raw := make(map[uint8][]byte, len(spans))
	for _, addr := range boards {
		s := spans[addr]
		data, err := b.bus.ReadRegisters(addr, s.first, int(s.last-s.first)+1)
		if err != nil {
			return err
		}
		raw[addr] = data
	}

	var v uint64
	for _, w := range c.Wiring {
		v |= w.Extract(raw[w.Board][w.Register-spans[w.Board].first])
	}
	c.Value = v & c.DefinedMask()
	return nil
}
