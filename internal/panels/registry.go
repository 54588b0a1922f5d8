package panels

import (
	"errors"
	"fmt"
	"sort"

	"github.com/KevinKickass/BlinkenCore/internal/blinkenbus"
)

var (
	ErrInvalidHandle = errors.New("invalid handle")
	ErrValueRange    = errors.New("value out of range")
)

// Registry owns all panels and boards of one server.
// Panel and control handles are indices into it.
type Registry struct {
	Panels []*Panel
	Boards [blinkenbus.MaxBoardAddr + 1]*Board
}

// NewRegistry indexes the panels and derives the board set.
// Wiring entries must reference valid boards and registers, see Check.
func NewRegistry(panels []*Panel) *Registry {
	reg := &Registry{Panels: panels}

	for ip, p := range panels {
		p.Index = ip
		used := make(map[uint8]bool)
		for ic, c := range p.Controls {
			c.Index = ic
			c.defined = 0
			for iw := range c.Wiring {
				w := &c.Wiring[iw]
				if w.Width == 0 {
					w.Width = 1
				}
				c.defined |= w.ControlMask()
				used[w.Board] = true

				if int(w.Board) >= len(reg.Boards) {
					continue
				}
				brd := reg.Boards[w.Board]
				if brd == nil {
					brd = &Board{Address: w.Board}
					reg.Boards[w.Board] = brd
				}
				if n := int(w.Register) + 1; n > brd.Registers {
					brd.Registers = n
				}
			}
			c.defined &= c.WidthMask()
		}

		p.Boards = p.Boards[:0]
		for addr := range used {
			p.Boards = append(p.Boards, addr)
		}
		sort.Slice(p.Boards, func(i, j int) bool { return p.Boards[i] < p.Boards[j] })
		for _, addr := range p.Boards {
			if brd := reg.Board(addr); brd != nil {
				brd.Panels = append(brd.Panels, ip)
			}
		}
	}

	return reg
}

func (reg *Registry) Panel(h int) (*Panel, error) {
	if h < 0 || h >= len(reg.Panels) {
		return nil, fmt.Errorf("%w: panel %d", ErrInvalidHandle, h)
	}
	return reg.Panels[h], nil
}

func (reg *Registry) Control(ph, ch int) (*Panel, *Control, error) {
	p, err := reg.Panel(ph)
	if err != nil {
		return nil, nil, err
	}
	if ch < 0 || ch >= len(p.Controls) {
		return nil, nil, fmt.Errorf("%w: control %d of panel %q", ErrInvalidHandle, ch, p.Name)
	}
	return p, p.Controls[ch], nil
}

// PanelByName returns the handle of the named panel.
func (reg *Registry) PanelByName(name string) (int, error) {
	for i, p := range reg.Panels {
		if p.Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: no panel named %q", ErrInvalidHandle, name)
}

func (reg *Registry) Board(addr uint8) *Board {
	if int(addr) >= len(reg.Boards) {
		return nil
	}
	return reg.Boards[addr]
}

// BoardList returns all boards in address order.
func (reg *Registry) BoardList() []*Board {
	var o []*Board
	for _, brd := range reg.Boards {
		if brd != nil {
			o = append(o, brd)
		}
	}
	return o
}

// Sharing returns the panels using any of the given boards, in handle order.
func (reg *Registry) Sharing(boards []uint8) []*Panel {
	seen := make(map[int]bool)
	for _, addr := range boards {
		brd := reg.Board(addr)
		if brd == nil {
			continue
		}
		for _, ip := range brd.Panels {
			seen[ip] = true
		}
	}
	var o []*Panel
	for i, p := range reg.Panels {
		if seen[i] {
			o = append(o, p)
		}
	}
	return o
}
