package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KevinKickass/BlinkenCore/internal/panels"
	"github.com/gorilla/websocket"
	"go.uber.org/zap/zaptest"
)

type received struct {
	Type  MessageType     `json:"type"`
	Panel string          `json:"panel"`
	Data  json.RawMessage `json:"data"`
}

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()
	hub := NewHub(zaptest.NewLogger(t), "instance-1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		hub.Run(ctx)
	}()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	}))
	t.Cleanup(func() {
		cancel()
		<-done
		srv.Close()
	})

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("could not dial: %+v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) received {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg received
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("could not read message: %+v", err)
	}
	return msg
}

func waitClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.GetClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("invalid client count: got=%d, want=%d", hub.GetClientCount(), n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestWelcome(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)

	msg := read(t, conn)
	if msg.Type != MessageTypeWelcome {
		t.Fatalf("invalid message type: %q", msg.Type)
	}
	var data WelcomeData
	if err := json.Unmarshal(msg.Data, &data); err != nil {
		t.Fatalf("could not decode welcome: %+v", err)
	}
	if data.InstanceID != "instance-1" || data.ClientID == "" {
		t.Fatalf("invalid welcome: %+v", data)
	}
	waitClients(t, hub, 1)
}

func TestBroadcast(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)
	read(t, conn) // welcome

	hub.StateChanged("pdp8i", panels.StateTest)
	msg := read(t, conn)
	if msg.Type != MessageTypeBoardsState || msg.Panel != "pdp8i" {
		t.Fatalf("invalid message: %+v", msg)
	}
	var state BoardsStateData
	if err := json.Unmarshal(msg.Data, &state); err != nil {
		t.Fatalf("could not decode state: %+v", err)
	}
	if state.State != "test" {
		t.Fatalf("invalid state: %q", state.State)
	}
}

func TestSubscribe(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)
	read(t, conn) // welcome

	if err := conn.WriteJSON(clientMessage{Type: "subscribe", Panels: []string{"pdp8i"}}); err != nil {
		t.Fatalf("could not subscribe: %+v", err)
	}
	if msg := read(t, conn); msg.Type != MessageTypeSubscribed {
		t.Fatalf("invalid message type: %q", msg.Type)
	}

	hub.ControlsChanged("ki10", map[string]uint64{"pc": 1})
	hub.ControlsChanged("pdp8i", map[string]uint64{"program_counter": 0o7777})

	msg := read(t, conn)
	if msg.Type != MessageTypeControls || msg.Panel != "pdp8i" {
		t.Fatalf("invalid message: %+v", msg)
	}
	var data ControlsData
	if err := json.Unmarshal(msg.Data, &data); err != nil {
		t.Fatalf("could not decode controls: %+v", err)
	}
	if data.Values["program_counter"] != 0o7777 {
		t.Fatalf("invalid values: %+v", data.Values)
	}
}

func TestUnregister(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)
	read(t, conn) // welcome

	waitClients(t, hub, 1)
	conn.Close()
	waitClients(t, hub, 0)
}
