package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/KevinKickass/BlinkenCore/internal/api/websocket"
	"github.com/KevinKickass/BlinkenCore/internal/dispatch"
	"github.com/KevinKickass/BlinkenCore/internal/interfaces"
	"github.com/KevinKickass/BlinkenCore/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	d      *dispatch.Dispatcher
	loop   *service.Loop
	status interfaces.StatusProvider
	wsHub  *websocket.Hub
	logger *zap.Logger
	server *http.Server
}

// NewServer creates the REST API. status and wsHub may be nil.
func NewServer(d *dispatch.Dispatcher, loop *service.Loop, status interfaces.StatusProvider, wsHub *websocket.Hub, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		router: gin.New(),
		d:      d,
		loop:   loop,
		status: status,
		wsHub:  wsHub,
		logger: logger,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve accepts connections on lis until Shutdown is called.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("Starting REST API server", zap.String("address", lis.Addr().String()))
	if err := s.server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down REST API server")
	return s.server.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Middleware
	s.router.Use(gin.Recovery())
	s.router.Use(LoggerMiddleware(s.logger))
	s.router.Use(CORSMiddleware())

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/health", s.healthCheck)
		v1.GET("/info", s.getServerInfo)

		// ==================== PANELS ====================
		panels := v1.Group("/panels")
		{
			panels.GET("", s.listPanels)
			panels.GET("/:panel", s.getPanel)
			panels.GET("/:panel/values", s.getControlValues)
			panels.PUT("/:panel/values", s.setControlValues)
			panels.GET("/:panel/controls/:control", s.getControlValue)
			panels.PUT("/:panel/controls/:control", s.setControlValue)
			panels.GET("/:panel/state", s.getBoardsState)
			panels.PUT("/:panel/state", s.setBoardsState)
		}

		// ==================== SIMULATION ====================
		sim := v1.Group("/sim")
		{
			sim.PUT("/panels/:panel/controls/:control", s.setSimulatedInput)
		}

		// ==================== WEBSOCKET ====================
		if s.wsHub != nil {
			ws := v1.Group("/ws")
			{
				ws.GET("", s.wsLiveConnection)
				ws.GET("/status", s.wsStatus)
			}
		}
	}
}

// WebSocket handlers
func (s *Server) wsLiveConnection(c *gin.Context) {
	websocket.ServeWs(s.wsHub, c.Writer, c.Request)
}

func (s *Server) wsStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"connected_clients": s.wsHub.GetClientCount(),
	})
}
