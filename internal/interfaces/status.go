package interfaces

// SystemStatus represents the current server state
type SystemStatus struct {
	State      string `json:"state"`
	Mode       string `json:"mode"`
	PanelCount int    `json:"panel_count"`
	BoardCount int    `json:"board_count"`
	Ticks      uint64 `json:"ticks"`
	Served     uint64 `json:"served"`
	WSClients  int    `json:"ws_clients"`
	InstanceID string `json:"instance_id"`
	StartedAt  string `json:"started_at"`
}

type StatusProvider interface {
	GetCurrentStatus() SystemStatus
}
