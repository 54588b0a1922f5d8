package rpc

import (
	"context"
	"fmt"

	pb "github.com/KevinKickass/BlinkenCore/api/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
)

// Client is a Blinkenlight API client.
type Client struct {
	c pb.BlinkenlightClient
}

// Dial connects to a server at target, e.g. "localhost:50051".
func Dial(target string, opts ...grpc.DialOption) (*Client, *grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	cc, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create client for %s: %w", target, err)
	}
	return NewClient(cc), cc, nil
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{c: pb.NewBlinkenlightClient(cc)}
}

func (c *Client) GetPanelList(ctx context.Context) ([]*pb.Panel, error) {
	out, err := c.c.GetPanelList(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, err
	}
	return out.GetPanels(), nil
}

func (c *Client) GetPanel(ctx context.Context, handle int32) (*pb.Panel, error) {
	return c.c.GetPanel(ctx, &pb.PanelRequest{Handle: handle})
}

func (c *Client) FindPanel(ctx context.Context, name string) (int32, error) {
	out, err := c.c.FindPanel(ctx, &pb.PanelName{Name: name})
	if err != nil {
		return -1, err
	}
	return out.GetHandle(), nil
}

func (c *Client) GetControlValues(ctx context.Context, handle int32) ([]uint64, error) {
	out, err := c.c.GetControlValues(ctx, &pb.PanelRequest{Handle: handle})
	if err != nil {
		return nil, err
	}
	return out.GetValues(), nil
}

func (c *Client) SetControlValues(ctx context.Context, handle int32, values []uint64, forceAll bool) error {
	_, err := c.c.SetControlValues(ctx, &pb.ControlValues{Handle: handle, Values: values, ForceAll: forceAll})
	return err
}

func (c *Client) GetBoardsState(ctx context.Context, handle int32) (pb.BoardState, error) {
	out, err := c.c.GetBoardsState(ctx, &pb.PanelRequest{Handle: handle})
	if err != nil {
		return 0, err
	}
	return out.GetState(), nil
}

func (c *Client) SetBoardsState(ctx context.Context, handle int32, state pb.BoardState) error {
	_, err := c.c.SetBoardsState(ctx, &pb.BoardsState{Handle: handle, State: state})
	return err
}

func (c *Client) GetServerInfo(ctx context.Context) (string, error) {
	out, err := c.c.GetServerInfo(ctx, &emptypb.Empty{})
	if err != nil {
		return "", err
	}
	return out.GetInfo(), nil
}
