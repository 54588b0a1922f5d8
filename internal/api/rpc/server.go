package rpc

import (
	"context"
	"time"

	pb "github.com/KevinKickass/BlinkenCore/api/proto"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// NewServer creates a gRPC server with the Blinkenlight service registered.
func NewServer(svc pb.BlinkenlightServer, logger *zap.Logger) *grpc.Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(loggingInterceptor(logger)),
	)
	pb.RegisterBlinkenlightServer(s, svc)
	return s
}

func loggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		fields := []zap.Field{
			zap.String("request_id", uuid.NewString()),
			zap.String("method", info.FullMethod),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			fields = append(fields, zap.String("code", status.Code(err).String()), zap.Error(err))
			logger.Warn("RPC failed", fields...)
		} else {
			logger.Debug("RPC", fields...)
		}
		return resp, err
	}
}
