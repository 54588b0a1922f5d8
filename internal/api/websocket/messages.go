package websocket

import "time"

// MessageType defines the type of WebSocket message
type MessageType string

const (
	// Panel messages
	MessageTypeControls    MessageType = "panel_controls"
	MessageTypeBoardsState MessageType = "boards_state"

	// Connection messages
	MessageTypeWelcome    MessageType = "welcome"
	MessageTypeSubscribed MessageType = "subscribed"
)

// Message represents a WebSocket message
type Message struct {
	Type      MessageType `json:"type"`
	Panel     string      `json:"panel,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Data      any         `json:"data"`
}

// ControlsData carries the new values of output controls after a set.
type ControlsData struct {
	Values map[string]uint64 `json:"values"`
}

type BoardsStateData struct {
	State string `json:"state"`
}

type WelcomeData struct {
	ClientID   string `json:"client_id"`
	InstanceID string `json:"instance_id,omitempty"`
}

type SubscribedData struct {
	Panels []string `json:"panels"`
}

// NewMessage creates a new message with current timestamp
func NewMessage(msgType MessageType, panel string, data any) Message {
	return Message{
		Type:      msgType,
		Panel:     panel,
		Timestamp: time.Now(),
		Data:      data,
	}
}

func NewControlsMessage(panel string, values map[string]uint64) Message {
	return NewMessage(MessageTypeControls, panel, ControlsData{Values: values})
}

func NewBoardsStateMessage(panel, state string) Message {
	return NewMessage(MessageTypeBoardsState, panel, BoardsStateData{State: state})
}
