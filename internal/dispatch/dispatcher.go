package dispatch

import (
	"errors"
	"fmt"

	"github.com/KevinKickass/BlinkenCore/internal/interfaces"
	"github.com/KevinKickass/BlinkenCore/internal/panels"
	"go.uber.org/zap"
)

var (
	ErrValueCount   = errors.New("wrong number of control values")
	ErrInvalidState = errors.New("invalid board state")
	ErrDirection    = errors.New("wrong control direction")
	ErrNotSimulated = errors.New("server is not in simulation mode")
)

// Notifier receives the effects of successful set operations.
type Notifier interface {
	ControlsChanged(panel string, values map[string]uint64)
	StateChanged(panel string, state panels.BoardState)
}

// InputSetter is implemented by backends whose inputs can be driven by
// clients.
type InputSetter interface {
	SetInput(ph, ch int, v uint64) error
}

// Dispatcher executes protocol operations against the panel registry and
// the backend. It holds no state of its own and must only be called from
// the service loop.
type Dispatcher struct {
	reg      *panels.Registry
	backend  interfaces.PanelBackend
	info     ServerInfo
	logger   *zap.Logger
	notifier Notifier
	inputs   InputSetter
}

func New(reg *panels.Registry, backend interfaces.PanelBackend, info ServerInfo, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		reg:     reg,
		backend: backend,
		info:    info,
		logger:  logger,
	}
	if s, ok := backend.(InputSetter); ok {
		d.inputs = s
	}
	return d
}

func (d *Dispatcher) SetNotifier(n Notifier) {
	d.notifier = n
}

func (d *Dispatcher) Info() ServerInfo { return d.info }

func (d *Dispatcher) GetPanelList() []PanelInfo {
	o := make([]PanelInfo, len(d.reg.Panels))
	for i, p := range d.reg.Panels {
		o[i] = newPanelInfo(p)
	}
	return o
}

func (d *Dispatcher) GetPanel(ph int) (PanelInfo, error) {
	p, err := d.reg.Panel(ph)
	if err != nil {
		return PanelInfo{}, err
	}
	return newPanelInfo(p), nil
}

func (d *Dispatcher) PanelHandle(name string) (int, error) {
	return d.reg.PanelByName(name)
}

// ControlHandle resolves a control by name within a panel.
func (d *Dispatcher) ControlHandle(ph int, name string) (int, error) {
	p, err := d.reg.Panel(ph)
	if err != nil {
		return -1, err
	}
	for _, c := range p.Controls {
		if c.Name == name {
			return c.Index, nil
		}
	}
	return -1, fmt.Errorf("%w: panel %q has no control %q", panels.ErrInvalidHandle, p.Name, name)
}

func (d *Dispatcher) GetControl(ph, ch int) (ControlInfo, error) {
	_, c, err := d.reg.Control(ph, ch)
	if err != nil {
		return ControlInfo{}, err
	}
	return newControlInfo(c), nil
}

// GetControlValues reads the inputs of a panel and returns their values in
// control order.
func (d *Dispatcher) GetControlValues(ph int) ([]uint64, error) {
	p, err := d.reg.Panel(ph)
	if err != nil {
		return nil, err
	}
	if err := d.backend.GetInputs(p); err != nil {
		return nil, err
	}

	var o []uint64
	for _, c := range p.Controls {
		if c.IsInput() {
			o = append(o, c.Value)
		}
	}
	return o, nil
}

// SetControlValues takes one value per output control, in control order.
// Nothing is assigned unless every value fits its control.
func (d *Dispatcher) SetControlValues(ph int, values []uint64, forceAll bool) error {
	p, err := d.reg.Panel(ph)
	if err != nil {
		return err
	}

	var outputs []*panels.Control
	for _, c := range p.Controls {
		if !c.IsInput() {
			outputs = append(outputs, c)
		}
	}
	if len(values) != len(outputs) {
		return fmt.Errorf("%w: panel %q has %d outputs, got %d values", ErrValueCount, p.Name, len(outputs), len(values))
	}
	for i, c := range outputs {
		if values[i]&^c.WidthMask() != 0 {
			return fmt.Errorf("%w: control %q value 0x%x exceeds %d bits", panels.ErrValueRange, c.Name, values[i], c.Width)
		}
	}

	for i, c := range outputs {
		if err := c.Assign(values[i]); err != nil {
			return err
		}
	}
	return d.applyOutputs(p, outputs, forceAll)
}

func (d *Dispatcher) GetControlValue(ph, ch int) (uint64, error) {
	p, c, err := d.reg.Control(ph, ch)
	if err != nil {
		return 0, err
	}
	if c.IsInput() {
		if err := d.backend.GetInputs(p); err != nil {
			return 0, err
		}
	}
	return c.Value, nil
}

func (d *Dispatcher) SetControlValue(ph, ch int, v uint64) error {
	p, c, err := d.reg.Control(ph, ch)
	if err != nil {
		return err
	}
	if c.IsInput() {
		return fmt.Errorf("%w: control %q of panel %q is an input", ErrDirection, c.Name, p.Name)
	}
	if err := c.Assign(v); err != nil {
		return err
	}
	return d.applyOutputs(p, []*panels.Control{c}, false)
}

func (d *Dispatcher) applyOutputs(p *panels.Panel, changed []*panels.Control, forceAll bool) error {
	if err := d.backend.SetOutputs(p, forceAll); err != nil {
		return err
	}

	if d.notifier != nil {
		values := make(map[string]uint64, len(changed))
		for _, c := range changed {
			values[c.Name] = c.Value
		}
		d.notifier.ControlsChanged(p.Name, values)
	}
	return nil
}

func (d *Dispatcher) GetBoardsState(ph int) (panels.BoardState, error) {
	p, err := d.reg.Panel(ph)
	if err != nil {
		return 0, err
	}
	return d.backend.GetBoardsState(p), nil
}

// SetBoardsState changes the state of all boards of a panel, and with it
// the state of every other panel on these boards.
func (d *Dispatcher) SetBoardsState(ph int, s panels.BoardState) error {
	p, err := d.reg.Panel(ph)
	if err != nil {
		return err
	}
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidState, int(s))
	}
	if err := d.backend.SetBoardsState(p, s); err != nil {
		return err
	}

	d.logger.Info("Panel boards state changed",
		zap.String("panel", p.Name),
		zap.String("state", s.String()))

	if d.notifier != nil {
		for _, q := range d.reg.Sharing(p.Boards) {
			d.notifier.StateChanged(q.Name, s)
		}
		if len(p.Boards) == 0 {
			d.notifier.StateChanged(p.Name, s)
		}
	}
	return nil
}

func (d *Dispatcher) GetServerInfo() string {
	return d.info.String()
}

// SetSimulatedInput drives an input control of a simulated panel.
func (d *Dispatcher) SetSimulatedInput(ph, ch int, v uint64) error {
	if d.inputs == nil {
		return ErrNotSimulated
	}
	return d.inputs.SetInput(ph, ch, v)
}
