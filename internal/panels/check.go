package panels

import (
	"errors"
	"fmt"

	"github.com/KevinKickass/BlinkenCore/internal/blinkenbus"
)

// Check validates the semantic rules a schema cannot express and reports
// every violation found.
func Check(reg *Registry) error {
	var errs []error

	panelNames := make(map[string]bool)
	for _, p := range reg.Panels {
		if panelNames[p.Name] {
			errs = append(errs, fmt.Errorf("duplicate panel name %q", p.Name))
		}
		panelNames[p.Name] = true

		controlNames := make(map[string]bool)
		for _, c := range p.Controls {
			if controlNames[c.Name] {
				errs = append(errs, fmt.Errorf("panel %q: duplicate control name %q", p.Name, c.Name))
			}
			controlNames[c.Name] = true
			errs = append(errs, checkControl(p, c)...)
		}
	}

	return errors.Join(errs...)
}

func checkControl(p *Panel, c *Control) []error {
	var errs []error
	where := fmt.Sprintf("panel %q control %q", p.Name, c.Name)

	if c.Width < 1 || c.Width > 64 {
		errs = append(errs, fmt.Errorf("%s: invalid width %d", where, c.Width))
	}

	var seen uint64
	for i, w := range c.Wiring {
		if !blinkenbus.ValidBoard(int(w.Board)) {
			errs = append(errs, fmt.Errorf("%s: wiring %d: board address %d out of range", where, i, w.Board))
		}
		if !blinkenbus.ValidIORegister(int(w.Register)) {
			errs = append(errs, fmt.Errorf("%s: wiring %d: register %d out of range", where, i, w.Register))
		}
		if int(w.RegisterBit)+int(w.Width) > 8 {
			errs = append(errs, fmt.Errorf("%s: wiring %d: bits %d..%d exceed the register", where, i, w.RegisterBit, int(w.RegisterBit)+int(w.Width)-1))
		}
		if int(w.ControlBit)+int(w.Width) > c.Width {
			errs = append(errs, fmt.Errorf("%s: wiring %d: control bits %d..%d exceed width %d", where, i, w.ControlBit, int(w.ControlBit)+int(w.Width)-1, c.Width))
		}
		m := w.ControlMask()
		if seen&m != 0 {
			errs = append(errs, fmt.Errorf("%s: wiring %d: control bits wired twice", where, i))
		}
		seen |= m
	}
	return errs
}

// Hazard reports a register bit written by more than one output control.
type Hazard struct {
	Board, Register, Bit uint8
	Controls             []string
}

func (h Hazard) String() string {
	return fmt.Sprintf("board %d register %d bit %d shared by %v", h.Board, h.Register, h.Bit, h.Controls)
}

// Hazards lists output register bits that several controls claim.
// These are not rejected; the control written last wins.
func Hazards(reg *Registry) []Hazard {
	type key struct{ board, register, bit uint8 }
	owners := make(map[key][]string)
	var order []key

	for _, p := range reg.Panels {
		for _, c := range p.Controls {
			if c.IsInput() {
				continue
			}
			for _, w := range c.Wiring {
				for b := uint8(0); b < w.Width; b++ {
					k := key{w.Board, w.Register, w.RegisterBit + b}
					if _, ok := owners[k]; !ok {
						order = append(order, k)
					}
					owners[k] = append(owners[k], p.Name+"."+c.Name)
				}
			}
		}
	}

	var o []Hazard
	for _, k := range order {
		if names := owners[k]; len(names) > 1 {
			o = append(o, Hazard{Board: k.board, Register: k.register, Bit: k.bit, Controls: names})
		}
	}
	return o
}
