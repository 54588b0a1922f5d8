package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KevinKickass/BlinkenCore/internal/blinkenbus"
	"github.com/KevinKickass/BlinkenCore/internal/dispatch"
	"github.com/KevinKickass/BlinkenCore/internal/hardware"
	"github.com/KevinKickass/BlinkenCore/internal/panels"
	"github.com/KevinKickass/BlinkenCore/internal/panelsim"
	"github.com/KevinKickass/BlinkenCore/internal/service"
	"github.com/KevinKickass/BlinkenCore/internal/types"
	"go.uber.org/zap/zaptest"
)

func newTestRegistry() *panels.Registry {
	return panels.NewRegistry([]*panels.Panel{
		{Name: "pdp11", DefaultRadix: 8, Controls: []*panels.Control{
			{Name: "switches", Direction: panels.Input, Width: 8, Wiring: []panels.Wiring{{Board: 5, Register: 0, Width: 8}}},
			{Name: "data", Direction: panels.Output, Width: 8, Wiring: []panels.Wiring{{Board: 5, Register: 1, Width: 8}}},
			{Name: "run", Direction: panels.Output, Width: 1, Wiring: []panels.Wiring{{Board: 5, Register: 2, RegisterBit: 3}}},
		}},
	})
}

type testServer struct {
	srv *Server
	mem *blinkenbus.Memory
}

func newTestServer(t *testing.T, simulate bool) *testServer {
	t.Helper()
	logger := zaptest.NewLogger(t)
	reg := newTestRegistry()
	mem := blinkenbus.NewMemory()

	var (
		d    *dispatch.Dispatcher
		loop *service.Loop
	)
	if simulate {
		sim := panelsim.NewSimulator(reg, logger)
		d = dispatch.New(reg, sim, dispatch.ServerInfo{Version: "test"}, logger)
		loop = service.NewLoop(time.Millisecond, sim, logger)
	} else {
		d = dispatch.New(reg, hardware.NewBackend(mem, reg, logger), dispatch.ServerInfo{Version: "test"}, logger)
		loop = service.NewLoop(time.Millisecond, nil, logger)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		loop.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return &testServer{srv: NewServer(d, loop, nil, nil, logger), mem: mem}
}

func (ts *testServer) request(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(w, r)
	return w
}

func TestPanels(t *testing.T) {
	ts := newTestServer(t, false)

	w := ts.request(t, http.MethodGet, "/api/v1/panels", "")
	if w.Code != http.StatusOK {
		t.Fatalf("invalid status: %d %s", w.Code, w.Body)
	}
	var list struct {
		Panels []dispatch.PanelInfo `json:"panels"`
		Count  int                  `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("could not decode: %+v", err)
	}
	if list.Count != 1 || list.Panels[0].Name != "pdp11" || len(list.Panels[0].Controls) != 3 {
		t.Fatalf("invalid panel list: %+v", list)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing request id")
	}

	for _, path := range []string{"/api/v1/panels/pdp11", "/api/v1/panels/0"} {
		if w := ts.request(t, http.MethodGet, path, ""); w.Code != http.StatusOK {
			t.Fatalf("invalid status for %s: %d", path, w.Code)
		}
	}
}

func TestValues(t *testing.T) {
	ts := newTestServer(t, false)

	ts.mem.Poke(blinkenbus.IOAddress(5, 0), 0x42)
	w := ts.request(t, http.MethodGet, "/api/v1/panels/pdp11/values", "")
	if w.Code != http.StatusOK {
		t.Fatalf("invalid status: %d %s", w.Code, w.Body)
	}
	var resp struct {
		Values []uint64 `json:"values"`
		Inputs []struct {
			Name  string `json:"name"`
			Value uint64 `json:"value"`
		} `json:"inputs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("could not decode: %+v", err)
	}
	if len(resp.Values) != 1 || resp.Values[0] != 0x42 || resp.Inputs[0].Name != "switches" {
		t.Fatalf("invalid values: %+v", resp)
	}

	w = ts.request(t, http.MethodPut, "/api/v1/panels/pdp11/values", `{"values":[165,1]}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("invalid status: %d %s", w.Code, w.Body)
	}
	if got := ts.mem.Peek(blinkenbus.IOAddress(5, 1)); got != 0xa5 {
		t.Fatalf("invalid data register: 0x%02x", got)
	}
	if got := ts.mem.Peek(blinkenbus.IOAddress(5, 2)); got != 0x08 {
		t.Fatalf("invalid run register: 0x%02x", got)
	}

	w = ts.request(t, http.MethodPut, "/api/v1/panels/pdp11/controls/data", `{"value":0}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("invalid status: %d %s", w.Code, w.Body)
	}
	w = ts.request(t, http.MethodGet, "/api/v1/panels/pdp11/controls/1", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"value":0`) {
		t.Fatalf("invalid control: %d %s", w.Code, w.Body)
	}
}

func TestState(t *testing.T) {
	ts := newTestServer(t, false)

	w := ts.request(t, http.MethodPut, "/api/v1/panels/pdp11/state", `{"state":"test"}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("invalid status: %d %s", w.Code, w.Body)
	}
	w = ts.request(t, http.MethodGet, "/api/v1/panels/pdp11/state", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"state":"test"`) {
		t.Fatalf("invalid state: %d %s", w.Code, w.Body)
	}
	if got := ts.mem.Peek(blinkenbus.ControlAddress(5)); got != byte(panels.StateTest) {
		t.Fatalf("invalid control register: %d", got)
	}
}

func TestErrors(t *testing.T) {
	ts := newTestServer(t, false)

	for _, tc := range []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"unknown-panel", http.MethodGet, "/api/v1/panels/vax", "", http.StatusNotFound, types.CodeNotFound},
		{"bad-handle", http.MethodGet, "/api/v1/panels/3/values", "", http.StatusNotFound, types.CodeNotFound},
		{"unknown-control", http.MethodGet, "/api/v1/panels/pdp11/controls/halt", "", http.StatusNotFound, types.CodeNotFound},
		{"value-count", http.MethodPut, "/api/v1/panels/pdp11/values", `{"values":[1]}`, http.StatusBadRequest, types.CodeBadRequest},
		{"value-range", http.MethodPut, "/api/v1/panels/pdp11/controls/run", `{"value":2}`, http.StatusBadRequest, types.CodeBadRequest},
		{"input", http.MethodPut, "/api/v1/panels/pdp11/controls/switches", `{"value":1}`, http.StatusBadRequest, types.CodeBadRequest},
		{"missing-value", http.MethodPut, "/api/v1/panels/pdp11/controls/run", `{}`, http.StatusBadRequest, types.CodeBadRequest},
		{"bad-state", http.MethodPut, "/api/v1/panels/pdp11/state", `{"state":"blink"}`, http.StatusBadRequest, types.CodeBadRequest},
		{"not-simulated", http.MethodPut, "/api/v1/sim/panels/pdp11/controls/switches", `{"value":1}`, http.StatusConflict, types.CodeNotSimulated},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := ts.request(t, tc.method, tc.path, tc.body)
			if w.Code != tc.status {
				t.Fatalf("invalid status: got=%d, want=%d (%s)", w.Code, tc.status, w.Body)
			}
			var resp types.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("could not decode error: %+v", err)
			}
			if resp.Error.Code != tc.code {
				t.Fatalf("invalid error code: got=%q, want=%q", resp.Error.Code, tc.code)
			}
		})
	}
}

func TestSimulatedInput(t *testing.T) {
	ts := newTestServer(t, true)

	w := ts.request(t, http.MethodPut, "/api/v1/sim/panels/pdp11/controls/switches", `{"value":7}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("invalid status: %d %s", w.Code, w.Body)
	}
	w = ts.request(t, http.MethodGet, "/api/v1/panels/pdp11/controls/switches", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"value":7`) {
		t.Fatalf("invalid simulated input: %d %s", w.Code, w.Body)
	}
}

func TestInfo(t *testing.T) {
	ts := newTestServer(t, false)

	w := ts.request(t, http.MethodGet, "/api/v1/info", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Server program name") {
		t.Fatalf("invalid info: %d %s", w.Code, w.Body)
	}
	if w := ts.request(t, http.MethodGet, "/api/v1/health", ""); w.Code != http.StatusOK {
		t.Fatalf("invalid health status: %d", w.Code)
	}
}
