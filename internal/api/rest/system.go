package rest

import (
	"net/http"
	"time"

	"github.com/KevinKickass/BlinkenCore/internal/dispatch"
	"github.com/gin-gonic/gin"
)

// GET /api/v1/health
func (s *Server) healthCheck(c *gin.Context) {
	if s.status == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Unix(),
		})
		return
	}
	c.JSON(http.StatusOK, s.status.GetCurrentStatus())
}

// GET /api/v1/info
func (s *Server) getServerInfo(c *gin.Context) {
	var (
		text string
		info dispatch.ServerInfo
	)
	ok := s.do(c, func() error {
		text = s.d.GetServerInfo()
		info = s.d.Info()
		return nil
	})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"info":        text,
		"version":     info.Version,
		"instance_id": info.InstanceID.String(),
	})
}
