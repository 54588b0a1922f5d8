package dispatch

import (
	"fmt"

	"github.com/KevinKickass/BlinkenCore/internal/panels"
	"github.com/google/uuid"
)

type ControlInfo struct {
	Handle       int    `json:"handle"`
	Name         string `json:"name"`
	Direction    string `json:"direction"`
	Type         string `json:"type,omitempty"`
	Radix        int    `json:"radix"`
	ValueBitLen  int    `json:"value_bitlen"`
	ValueByteLen int    `json:"value_bytelen"`
}

type PanelInfo struct {
	Handle       int           `json:"handle"`
	Name         string        `json:"name"`
	Info         string        `json:"info,omitempty"`
	DefaultRadix int           `json:"default_radix"`
	Boards       []int         `json:"boards"`
	Controls     []ControlInfo `json:"controls"`

	InputsCount       int `json:"inputs_count"`
	OutputsCount      int `json:"outputs_count"`
	InputsValueBytes  int `json:"inputs_value_bytes"`
	OutputsValueBytes int `json:"outputs_value_bytes"`
}

func newPanelInfo(p *panels.Panel) PanelInfo {
	pi := PanelInfo{
		Handle:       p.Index,
		Name:         p.Name,
		Info:         p.Info,
		DefaultRadix: p.DefaultRadix,
		Boards:       make([]int, len(p.Boards)),
		Controls:     make([]ControlInfo, len(p.Controls)),
	}
	for i, addr := range p.Boards {
		pi.Boards[i] = int(addr)
	}
	for i, c := range p.Controls {
		pi.Controls[i] = newControlInfo(c)
		if c.IsInput() {
			pi.InputsCount++
			pi.InputsValueBytes += c.ByteLen()
		} else {
			pi.OutputsCount++
			pi.OutputsValueBytes += c.ByteLen()
		}
	}
	return pi
}

func newControlInfo(c *panels.Control) ControlInfo {
	return ControlInfo{
		Handle:       c.Index,
		Name:         c.Name,
		Direction:    c.Direction.String(),
		Type:         c.Type,
		Radix:        c.Radix,
		ValueBitLen:  c.Width,
		ValueByteLen: c.ByteLen(),
	}
}

// ServerInfo describes the running server process.
type ServerInfo struct {
	InstanceID uuid.UUID
	Version    string
	Program    string
	Options    string
	BuildTime  string
}

func (si ServerInfo) Description() string {
	return "blinkenlightd - Blinkenlight API server daemon " + si.Version
}

// String renders the info text returned to clients.
func (si ServerInfo) String() string {
	return fmt.Sprintf("Server info ...............: %s\n"+
		"Server program name........: %s\n"+
		"Server command line options: %s\n"+
		"Server compile time .......: %s\n",
		si.Description(), si.Program, si.Options, si.BuildTime,
	)
}
