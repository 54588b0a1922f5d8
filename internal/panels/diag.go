package panels

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Dump writes a human readable listing of all panels, controls, wiring
// entries and boards.
func Dump(w io.Writer, reg *Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, p := range reg.Panels {
		fmt.Fprintf(tw, "panel[%d] %q", p.Index, p.Name)
		if p.Info != "" {
			fmt.Fprintf(tw, " (%s)", p.Info)
		}
		fmt.Fprintf(tw, " boards=%v radix=%d\n", p.Boards, p.DefaultRadix)

		for _, c := range p.Controls {
			fmt.Fprintf(tw, "  control[%d]\t%s\t%s\t%s\twidth=%d\tmask=0x%x\n",
				c.Index, c.Name, c.Direction, orDash(c.Type), c.Width, c.DefinedMask(),
			)
			for _, wr := range c.Wiring {
				inv := ""
				if wr.Inverted {
					inv = " inverted"
				}
				fmt.Fprintf(tw, "    \tboard=%d reg=%d bit=%d\t-> control bit %d\twidth=%d%s\n",
					wr.Board, wr.Register, wr.RegisterBit, wr.ControlBit, wr.Width, inv,
				)
			}
		}
	}

	for _, brd := range reg.BoardList() {
		fmt.Fprintf(tw, "board[%d]\tregisters=%d\tstate=%s\tpanels=%v\n",
			brd.Address, brd.Registers, brd.State, brd.Panels,
		)
	}

	for _, h := range Hazards(reg) {
		fmt.Fprintf(tw, "warning: %s\n", h)
	}

	return tw.Flush()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
