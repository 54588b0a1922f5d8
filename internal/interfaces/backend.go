package interfaces

import "github.com/KevinKickass/BlinkenCore/internal/panels"

// PanelBackend moves control values between the panel model and the
// panel hardware, real or simulated. One backend is chosen at startup.
//
// Implementations are not safe for concurrent use; callers serialize access
// through the service loop.
type PanelBackend interface {
	// GetInputs refreshes the values of all input controls of p.
	GetInputs(p *panels.Panel) error
	// SetOutputs sends changed output control values of p, or all of them
	// when forceAll is set.
	SetOutputs(p *panels.Panel, forceAll bool) error
	GetBoardsState(p *panels.Panel) panels.BoardState
	SetBoardsState(p *panels.Panel, s panels.BoardState) error
}

// Simulator is a backend that needs periodic CPU time.
type Simulator interface {
	PanelBackend
	Service()
}
