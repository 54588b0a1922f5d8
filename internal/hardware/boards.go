package hardware

import (
	"fmt"

	"github.com/KevinKickass/BlinkenCore/internal/blinkenbus"
	"github.com/KevinKickass/BlinkenCore/internal/panels"
	"go.uber.org/zap"
)

// GetBoardsState returns the recorded state of the first board of p.
// Boards of one panel are expected to share their state.
func (b *Backend) GetBoardsState(p *panels.Panel) panels.BoardState {
	if len(p.Boards) == 0 {
		return panels.StateNormal
	}
	return b.reg.Board(p.Boards[0]).State
}

// SetBoardsState writes s into the control register of every board of p.
// Other panels on these boards see the new state as well. When boards
// return to normal, the outputs of all panels on them are rewritten.
func (b *Backend) SetBoardsState(p *panels.Panel, s panels.BoardState) error {
	if !s.Valid() {
		return fmt.Errorf("invalid board state %d", int(s))
	}

	resume := false
	for _, addr := range p.Boards {
		brd := b.reg.Board(addr)
		if brd.State != panels.StateNormal && s == panels.StateNormal {
			resume = true
		}
		if err := b.writeState(brd, s); err != nil {
			return fmt.Errorf("could not set state of panel %q: %w", p.Name, err)
		}
	}

	b.logger.Debug("Boards state changed",
		zap.String("panel", p.Name),
		zap.String("state", s.String()),
		zap.Uint8s("boards", p.Boards))

	if !resume {
		return nil
	}
	for _, q := range b.reg.Sharing(p.Boards) {
		if err := b.SetOutputs(q, true); err != nil {
			return err
		}
	}
	return nil
}

func (b *Backend) writeState(brd *panels.Board, s panels.BoardState) error {
	err := b.bus.WriteRegisters(brd.Address, blinkenbus.ControlRegister, []byte{byte(s)})
	if err != nil {
		return err
	}
	brd.State = s
	return nil
}
