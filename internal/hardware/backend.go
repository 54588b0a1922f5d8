package hardware

import (
	"fmt"

	"github.com/KevinKickass/BlinkenCore/internal/blinkenbus"
	"github.com/KevinKickass/BlinkenCore/internal/interfaces"
	"github.com/KevinKickass/BlinkenCore/internal/panels"
	"go.uber.org/zap"
)

// Backend drives panels through the register file of a BlinkenBus.
type Backend struct {
	bus    blinkenbus.Bus
	reg    *panels.Registry
	logger *zap.Logger
}

func NewBackend(bus blinkenbus.Bus, reg *panels.Registry, logger *zap.Logger) *Backend {
	return &Backend{
		bus:    bus,
		reg:    reg,
		logger: logger,
	}
}

// Init switches every board to normal mode and writes all outputs, so that
// the hardware matches the model.
func (b *Backend) Init() error {
	for _, brd := range b.reg.BoardList() {
		if err := b.writeState(brd, panels.StateNormal); err != nil {
			return err
		}
	}
	for _, p := range b.reg.Panels {
		if err := b.SetOutputs(p, true); err != nil {
			return fmt.Errorf("could not initialize outputs of panel %q: %w", p.Name, err)
		}
	}

	b.logger.Info("Hardware backend initialized",
		zap.Int("boards", len(b.reg.BoardList())),
		zap.Int("panels", len(b.reg.Panels)))
	return nil
}

var _ interfaces.PanelBackend = (*Backend)(nil)
