package rpc

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	pb "github.com/KevinKickass/BlinkenCore/api/proto"
	"github.com/KevinKickass/BlinkenCore/internal/blinkenbus"
	"github.com/KevinKickass/BlinkenCore/internal/dispatch"
	"github.com/KevinKickass/BlinkenCore/internal/hardware"
	"github.com/KevinKickass/BlinkenCore/internal/panels"
	"github.com/KevinKickass/BlinkenCore/internal/service"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newTestClient(t *testing.T) (*Client, *blinkenbus.Memory) {
	t.Helper()
	logger := zaptest.NewLogger(t)

	reg := panels.NewRegistry([]*panels.Panel{
		{Name: "console", DefaultRadix: 8, Controls: []*panels.Control{
			{Name: "switches", Direction: panels.Input, Type: "switch", Radix: 8, Width: 12, Wiring: []panels.Wiring{
				{Board: 0, Register: 0, Width: 8},
				{Board: 0, Register: 1, ControlBit: 8, Width: 4},
			}},
			{Name: "lamps", Direction: panels.Output, Type: "lamp", Radix: 8, Width: 12, Wiring: []panels.Wiring{
				{Board: 0, Register: 2, Width: 8},
				{Board: 0, Register: 3, ControlBit: 8, Width: 4},
			}},
		}},
	})
	mem := blinkenbus.NewMemory()
	d := dispatch.New(reg, hardware.NewBackend(mem, reg, logger), dispatch.ServerInfo{Version: "test"}, logger)

	loop := service.NewLoop(time.Millisecond, nil, logger)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		loop.Run(ctx)
	}()

	lis := bufconn.Listen(1 << 16)
	srv := NewServer(NewService(d, loop), logger)
	go srv.Serve(lis)

	client, cc, err := Dial("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	if err != nil {
		t.Fatalf("could not dial: %+v", err)
	}

	t.Cleanup(func() {
		cc.Close()
		srv.Stop()
		cancel()
		<-done
	})
	return client, mem
}

func TestService(t *testing.T) {
	client, mem := newTestClient(t)
	ctx := context.Background()

	list, err := client.GetPanelList(ctx)
	if err != nil {
		t.Fatalf("could not get panel list: %+v", err)
	}
	if len(list) != 1 || list[0].Name != "console" || len(list[0].Controls) != 2 {
		t.Fatalf("invalid panel list: %+v", list)
	}
	if c := list[0].Controls[1]; c.Name != "lamps" || c.GetDirection() != pb.Direction_DIRECTION_OUTPUT || c.GetValueBytelen() != 2 {
		t.Fatalf("invalid control: %+v", c)
	}

	h, err := client.FindPanel(ctx, "console")
	if err != nil || h != 0 {
		t.Fatalf("could not find panel: h=%d, err=%v", h, err)
	}

	mem.Poke(blinkenbus.IOAddress(0, 0), 0x21)
	mem.Poke(blinkenbus.IOAddress(0, 1), 0xf3)
	values, err := client.GetControlValues(ctx, h)
	if err != nil {
		t.Fatalf("could not get values: %+v", err)
	}
	if len(values) != 1 || values[0] != 0x321 {
		t.Fatalf("invalid values: %x", values)
	}

	if err := client.SetControlValues(ctx, h, []uint64{0x7ff}, false); err != nil {
		t.Fatalf("could not set values: %+v", err)
	}
	if mem.Peek(blinkenbus.IOAddress(0, 2)) != 0xff || mem.Peek(blinkenbus.IOAddress(0, 3)) != 0x07 {
		t.Fatalf("outputs not written")
	}

	if err := client.SetBoardsState(ctx, h, pb.BoardState_BOARD_STATE_TEST); err != nil {
		t.Fatalf("could not set state: %+v", err)
	}
	st, err := client.GetBoardsState(ctx, h)
	if err != nil || st != pb.BoardState_BOARD_STATE_TEST {
		t.Fatalf("invalid state: state=%d, err=%v", st, err)
	}

	info, err := client.GetServerInfo(ctx)
	if err != nil {
		t.Fatalf("could not get info: %+v", err)
	}
	if !strings.HasPrefix(info, "Server info ...............: blinkenlightd") {
		t.Fatalf("invalid server info: %q", info)
	}
}

func TestServiceErrors(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	for _, tc := range []struct {
		name string
		f    func() error
		want codes.Code
	}{
		{"panel", func() error { _, err := client.GetPanel(ctx, 3); return err }, codes.NotFound},
		{"name", func() error { _, err := client.FindPanel(ctx, "nope"); return err }, codes.NotFound},
		{"count", func() error { return client.SetControlValues(ctx, 0, []uint64{1, 2}, false) }, codes.InvalidArgument},
		{"range", func() error { return client.SetControlValues(ctx, 0, []uint64{0x1000}, false) }, codes.InvalidArgument},
		{"state", func() error { return client.SetBoardsState(ctx, 0, 9) }, codes.InvalidArgument},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.f()
			if got := status.Code(err); got != tc.want {
				t.Fatalf("invalid code: got=%v, want=%v (err=%v)", got, tc.want, err)
			}
		})
	}
}
