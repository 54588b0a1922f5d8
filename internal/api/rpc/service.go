package rpc

import (
	"context"
	"errors"

	pb "github.com/KevinKickass/BlinkenCore/api/proto"
	"github.com/KevinKickass/BlinkenCore/internal/dispatch"
	"github.com/KevinKickass/BlinkenCore/internal/panels"
	"github.com/KevinKickass/BlinkenCore/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// Service implements pb.BlinkenlightServer. Every call is executed on the
// service loop.
type Service struct {
	pb.UnimplementedBlinkenlightServer

	d    *dispatch.Dispatcher
	loop *service.Loop
}

func NewService(d *dispatch.Dispatcher, loop *service.Loop) *Service {
	return &Service{d: d, loop: loop}
}

func (s *Service) GetPanelList(ctx context.Context, _ *emptypb.Empty) (*pb.PanelList, error) {
	var list []dispatch.PanelInfo
	err := s.loop.Do(ctx, func() error {
		list = s.d.GetPanelList()
		return nil
	})
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.PanelList{Panels: make([]*pb.Panel, len(list))}
	for i, pi := range list {
		resp.Panels[i] = newPanel(pi)
	}
	return resp, nil
}

func (s *Service) GetPanel(ctx context.Context, req *pb.PanelRequest) (*pb.Panel, error) {
	var pi dispatch.PanelInfo
	err := s.loop.Do(ctx, func() (err error) {
		pi, err = s.d.GetPanel(int(req.GetHandle()))
		return err
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return newPanel(pi), nil
}

func (s *Service) FindPanel(ctx context.Context, req *pb.PanelName) (*pb.PanelRequest, error) {
	var h int
	err := s.loop.Do(ctx, func() (err error) {
		h, err = s.d.PanelHandle(req.GetName())
		return err
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.PanelRequest{Handle: int32(h)}, nil
}

func (s *Service) GetControlValues(ctx context.Context, req *pb.PanelRequest) (*pb.ControlValues, error) {
	var values []uint64
	err := s.loop.Do(ctx, func() (err error) {
		values, err = s.d.GetControlValues(int(req.GetHandle()))
		return err
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ControlValues{Handle: req.GetHandle(), Values: values}, nil
}

func (s *Service) SetControlValues(ctx context.Context, req *pb.ControlValues) (*emptypb.Empty, error) {
	err := s.loop.Do(ctx, func() error {
		return s.d.SetControlValues(int(req.GetHandle()), req.GetValues(), req.GetForceAll())
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *Service) GetBoardsState(ctx context.Context, req *pb.PanelRequest) (*pb.BoardsState, error) {
	var st panels.BoardState
	err := s.loop.Do(ctx, func() (err error) {
		st, err = s.d.GetBoardsState(int(req.GetHandle()))
		return err
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.BoardsState{Handle: req.GetHandle(), State: pb.BoardState(st)}, nil
}

func (s *Service) SetBoardsState(ctx context.Context, req *pb.BoardsState) (*emptypb.Empty, error) {
	err := s.loop.Do(ctx, func() error {
		return s.d.SetBoardsState(int(req.GetHandle()), panels.BoardState(req.GetState()))
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *Service) GetServerInfo(ctx context.Context, _ *emptypb.Empty) (*pb.ServerInfo, error) {
	var info string
	err := s.loop.Do(ctx, func() error {
		info = s.d.GetServerInfo()
		return nil
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ServerInfo{Info: info}, nil
}

func newPanel(pi dispatch.PanelInfo) *pb.Panel {
	p := &pb.Panel{
		Handle:            int32(pi.Handle),
		Name:              pi.Name,
		Info:              pi.Info,
		DefaultRadix:      int32(pi.DefaultRadix),
		Controls:          make([]*pb.Control, len(pi.Controls)),
		InputsCount:       int32(pi.InputsCount),
		OutputsCount:      int32(pi.OutputsCount),
		InputsValueBytes:  int32(pi.InputsValueBytes),
		OutputsValueBytes: int32(pi.OutputsValueBytes),
	}
	for i, ci := range pi.Controls {
		c := &pb.Control{
			Handle:       int32(ci.Handle),
			Name:         ci.Name,
			Type:         ci.Type,
			Radix:        int32(ci.Radix),
			ValueBitlen:  int32(ci.ValueBitLen),
			ValueBytelen: int32(ci.ValueByteLen),
		}
		if ci.Direction == panels.Output.String() {
			c.Direction = pb.Direction_DIRECTION_OUTPUT
		}
		p.Controls[i] = c
	}
	return p
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, panels.ErrInvalidHandle):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, panels.ErrValueRange),
		errors.Is(err, dispatch.ErrValueCount),
		errors.Is(err, dispatch.ErrInvalidState),
		errors.Is(err, dispatch.ErrDirection):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	case errors.Is(err, service.ErrStopped):
		return status.Error(codes.Unavailable, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
