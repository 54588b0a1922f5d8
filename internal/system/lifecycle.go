package system

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/KevinKickass/BlinkenCore/internal/api/rest"
	"github.com/KevinKickass/BlinkenCore/internal/api/rpc"
	"github.com/KevinKickass/BlinkenCore/internal/api/websocket"
	"github.com/KevinKickass/BlinkenCore/internal/blinkenbus"
	"github.com/KevinKickass/BlinkenCore/internal/config"
	"github.com/KevinKickass/BlinkenCore/internal/dispatch"
	"github.com/KevinKickass/BlinkenCore/internal/hardware"
	"github.com/KevinKickass/BlinkenCore/internal/interfaces"
	"github.com/KevinKickass/BlinkenCore/internal/panels"
	"github.com/KevinKickass/BlinkenCore/internal/panelsim"
	"github.com/KevinKickass/BlinkenCore/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

// Options are the command line choices of the server process.
type Options struct {
	Simulate bool
	Info     dispatch.ServerInfo
}

type LifecycleManager struct {
	config   *config.Config
	opts     Options
	registry *panels.Registry
	logger   *zap.Logger

	bus        blinkenbus.Bus
	backend    interfaces.PanelBackend
	dispatcher *dispatch.Dispatcher
	loop       *service.Loop
	wsHub      *websocket.Hub

	restServer *rest.Server
	grpcServer *grpc.Server
	grpcLis    net.Listener
	httpLis    net.Listener

	stateMu      sync.RWMutex
	currentState SystemState
	startedAt    time.Time

	shutdownOnce sync.Once
}

func NewLifecycleManager(reg *panels.Registry, cfg *config.Config, opts Options, logger *zap.Logger) *LifecycleManager {
	return &LifecycleManager{
		config:       cfg,
		opts:         opts,
		registry:     reg,
		logger:       logger,
		currentState: StateInitializing,
	}
}

// Start selects the backend, builds the transports and opens their
// listeners. Any failure is fatal for the server.
func (lm *LifecycleManager) Start() error {
	lm.logger.Info("Starting Blinkenlight server",
		zap.String("version", lm.opts.Info.Version),
		zap.Bool("simulate", lm.opts.Simulate),
		zap.Int("panels", len(lm.registry.Panels)))

	if err := lm.initBackend(); err != nil {
		lm.setError(err)
		return err
	}

	lm.dispatcher = dispatch.New(lm.registry, lm.backend, lm.opts.Info, lm.logger)

	var sim interfaces.Simulator
	if s, ok := lm.backend.(interfaces.Simulator); ok {
		sim = s
	}
	lm.loop = service.NewLoop(lm.config.Service.PollInterval, sim, lm.logger)

	lm.wsHub = websocket.NewHub(lm.logger, lm.opts.Info.InstanceID.String())
	lm.dispatcher.SetNotifier(lm.wsHub)

	if err := lm.startGRPCServer(); err != nil {
		lm.closeBus()
		lm.setError(fmt.Errorf("failed to start gRPC: %w", err))
		return err
	}

	if err := lm.startRESTServer(); err != nil {
		lm.closeBus()
		lm.setError(fmt.Errorf("failed to start REST API: %w", err))
		return err
	}

	lm.stateMu.Lock()
	lm.startedAt = time.Now()
	lm.stateMu.Unlock()
	lm.setState(StateRunning)

	lm.logger.Info("System started successfully",
		zap.String("grpc_address", lm.grpcLis.Addr().String()),
		zap.String("http_address", lm.httpLis.Addr().String()))

	return nil
}

// initBackend opens the bus and brings all boards to a known state, or
// creates the simulator. Simulation never opens the bus.
func (lm *LifecycleManager) initBackend() error {
	if lm.opts.Simulate {
		lm.backend = panelsim.NewSimulator(lm.registry, lm.logger)
		lm.logger.Info("Simulation mode, bus not opened")
		return nil
	}

	if lm.config.Bus.Memory() {
		lm.bus = blinkenbus.NewMemory()
		lm.logger.Warn("Using in-memory loopback bus")
	} else {
		dev, err := blinkenbus.Open(lm.config.Bus.Device)
		if err != nil {
			return fmt.Errorf("failed to open bus device: %w", err)
		}
		lm.bus = dev
	}

	hw := hardware.NewBackend(lm.bus, lm.registry, lm.logger)
	if err := hw.Init(); err != nil {
		lm.bus.Close()
		return fmt.Errorf("failed to initialize boards: %w", err)
	}
	lm.backend = hw
	return nil
}

func (lm *LifecycleManager) startGRPCServer() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", lm.config.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	lm.grpcLis = lis
	lm.grpcServer = rpc.NewServer(rpc.NewService(lm.dispatcher, lm.loop), lm.logger)
	return nil
}

func (lm *LifecycleManager) startRESTServer() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", lm.config.Server.HTTPPort))
	if err != nil {
		lm.grpcLis.Close()
		return fmt.Errorf("failed to listen: %w", err)
	}
	lm.httpLis = lis
	lm.restServer = rest.NewServer(lm.dispatcher, lm.loop, lm, lm.wsHub, lm.logger)
	return nil
}

// Run serves until ctx is done or a component fails. A bus failure stops
// the service loop and is returned.
func (lm *LifecycleManager) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return lm.loop.Run(gctx)
	})
	g.Go(func() error {
		return lm.wsHub.Run(gctx)
	})
	g.Go(func() error {
		lm.logger.Info("gRPC server listening", zap.String("address", lm.grpcLis.Addr().String()))
		if err := lm.grpcServer.Serve(lm.grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return lm.restServer.Serve(lm.httpLis)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), lm.config.Server.ShutdownTimeout)
		defer cancel()
		return lm.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	lm.closeBus()

	if err != nil {
		lm.setError(err)
		return err
	}
	lm.setState(StateStopped)
	lm.logger.Info("System stopped")
	return nil
}

func (lm *LifecycleManager) closeBus() {
	if lm.bus == nil {
		return
	}
	if err := lm.bus.Close(); err != nil {
		lm.logger.Warn("Failed to close bus", zap.Error(err))
	}
}

// Shutdown stops the transports. The service loop ends with the context
// passed to Run.
func (lm *LifecycleManager) Shutdown(ctx context.Context) error {
	var shutdownErr error

	lm.shutdownOnce.Do(func() {
		lm.logger.Info("Shutting down system")
		lm.setState(StateStopping)
		shutdownErr = lm.gracefulShutdown(ctx)
	})

	return shutdownErr
}

func (lm *LifecycleManager) gracefulShutdown(ctx context.Context) error {
	var (
		wg   sync.WaitGroup
		errs = make(chan error, 1)
	)

	if lm.restServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := lm.restServer.Shutdown(ctx); err != nil {
				errs <- fmt.Errorf("rest api shutdown failed: %w", err)
			}
		}()
	}

	if lm.grpcServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lm.logger.Info("Stopping gRPC server")
			lm.grpcServer.GracefulStop()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		lm.logger.Warn("Shutdown timeout, forcing stop")
		if lm.grpcServer != nil {
			lm.grpcServer.Stop()
		}
		return errors.New("shutdown timeout exceeded")
	}

	select {
	case err := <-errs:
		return err
	default:
		lm.logger.Info("Graceful shutdown completed")
		return nil
	}
}

func (lm *LifecycleManager) setState(state SystemState) {
	lm.stateMu.Lock()
	defer lm.stateMu.Unlock()
	if lm.currentState == state {
		return
	}
	if err := ValidateTransition(lm.currentState, state); err != nil {
		lm.logger.Warn("Unexpected state change", zap.Error(err))
	}
	lm.currentState = state
}

func (lm *LifecycleManager) setError(err error) {
	lm.logger.Error("System failure", zap.Error(err))
	lm.setState(StateError)
}

// State returns the current lifecycle state.
func (lm *LifecycleManager) State() SystemState {
	lm.stateMu.RLock()
	defer lm.stateMu.RUnlock()
	return lm.currentState
}

// GRPCAddr returns the bound gRPC address once started.
func (lm *LifecycleManager) GRPCAddr() net.Addr { return lm.grpcLis.Addr() }

// HTTPAddr returns the bound HTTP address once started.
func (lm *LifecycleManager) HTTPAddr() net.Addr { return lm.httpLis.Addr() }

// GetCurrentStatus implements interfaces.StatusProvider. It reads only
// counters and the immutable registry layout, never panel values.
func (lm *LifecycleManager) GetCurrentStatus() interfaces.SystemStatus {
	lm.stateMu.RLock()
	defer lm.stateMu.RUnlock()

	mode := "hardware"
	if lm.opts.Simulate {
		mode = "simulation"
	}

	st := interfaces.SystemStatus{
		State:      lm.currentState.String(),
		Mode:       mode,
		PanelCount: len(lm.registry.Panels),
		BoardCount: len(lm.registry.BoardList()),
		InstanceID: lm.opts.Info.InstanceID.String(),
	}
	if !lm.startedAt.IsZero() {
		st.StartedAt = lm.startedAt.Format(time.RFC3339)
	}
	if lm.loop != nil {
		st.Ticks = lm.loop.Ticks()
		st.Served = lm.loop.Served()
	}
	if lm.wsHub != nil {
		st.WSClients = lm.wsHub.GetClientCount()
	}
	return st
}

var _ interfaces.StatusProvider = (*LifecycleManager)(nil)
