package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/KevinKickass/BlinkenCore/internal/dispatch"
	"github.com/KevinKickass/BlinkenCore/internal/panels"
	"github.com/KevinKickass/BlinkenCore/internal/service"
	"github.com/KevinKickass/BlinkenCore/internal/types"
	"github.com/gin-gonic/gin"
)

type controlValue struct {
	Handle int    `json:"handle"`
	Name   string `json:"name"`
	Value  uint64 `json:"value"`
}

// do runs fn on the service loop and writes the error response on failure.
func (s *Server) do(c *gin.Context, fn func() error) bool {
	err := s.loop.Do(c.Request.Context(), fn)
	if err != nil {
		s.fail(c, err)
		return false
	}
	return true
}

func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, panels.ErrInvalidHandle):
		c.JSON(http.StatusNotFound, types.NewErrorResponse(types.CodeNotFound, "Unknown panel or control", err.Error()))
	case errors.Is(err, panels.ErrValueRange),
		errors.Is(err, dispatch.ErrValueCount),
		errors.Is(err, dispatch.ErrInvalidState),
		errors.Is(err, dispatch.ErrDirection):
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.CodeBadRequest, "Invalid request", err.Error()))
	case errors.Is(err, dispatch.ErrNotSimulated):
		c.JSON(http.StatusConflict, types.NewErrorResponse(types.CodeNotSimulated, "Not in simulation mode", err.Error()))
	case errors.Is(err, service.ErrStopped),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, types.NewErrorResponse(types.CodeUnavailable, "Service unavailable", err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.CodeInternal, "Request failed", err.Error()))
	}
}

// panelHandle accepts a panel name or a numeric handle.
// Must run on the service loop.
func (s *Server) panelHandle(c *gin.Context) (int, error) {
	ref := c.Param("panel")
	if h, err := strconv.Atoi(ref); err == nil {
		_, err := s.d.GetPanel(h)
		return h, err
	}
	return s.d.PanelHandle(ref)
}

func (s *Server) controlHandle(c *gin.Context) (int, int, error) {
	ph, err := s.panelHandle(c)
	if err != nil {
		return -1, -1, err
	}
	ref := c.Param("control")
	if ch, err := strconv.Atoi(ref); err == nil {
		_, err := s.d.GetControl(ph, ch)
		return ph, ch, err
	}
	ch, err := s.d.ControlHandle(ph, ref)
	return ph, ch, err
}

// GET /api/v1/panels
func (s *Server) listPanels(c *gin.Context) {
	var list []dispatch.PanelInfo
	ok := s.do(c, func() error {
		list = s.d.GetPanelList()
		return nil
	})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"panels": list,
		"count":  len(list),
	})
}

// GET /api/v1/panels/:panel
func (s *Server) getPanel(c *gin.Context) {
	var pi dispatch.PanelInfo
	ok := s.do(c, func() error {
		ph, err := s.panelHandle(c)
		if err != nil {
			return err
		}
		pi, err = s.d.GetPanel(ph)
		return err
	})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, pi)
}

// GET /api/v1/panels/:panel/values
func (s *Server) getControlValues(c *gin.Context) {
	var (
		pi     dispatch.PanelInfo
		values []uint64
	)
	ok := s.do(c, func() error {
		ph, err := s.panelHandle(c)
		if err != nil {
			return err
		}
		if pi, err = s.d.GetPanel(ph); err != nil {
			return err
		}
		values, err = s.d.GetControlValues(ph)
		return err
	})
	if !ok {
		return
	}

	inputs := make([]controlValue, 0, len(values))
	for _, ci := range pi.Controls {
		if ci.Direction != panels.Input.String() {
			continue
		}
		inputs = append(inputs, controlValue{Handle: ci.Handle, Name: ci.Name, Value: values[len(inputs)]})
	}

	c.JSON(http.StatusOK, gin.H{
		"panel":  pi.Name,
		"values": values,
		"inputs": inputs,
	})
}

// PUT /api/v1/panels/:panel/values
func (s *Server) setControlValues(c *gin.Context) {
	var req struct {
		Values   []uint64 `json:"values" binding:"required"`
		ForceAll bool     `json:"force_all"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.CodeBadRequest, "Invalid request body", err.Error()))
		return
	}

	ok := s.do(c, func() error {
		ph, err := s.panelHandle(c)
		if err != nil {
			return err
		}
		return s.d.SetControlValues(ph, req.Values, req.ForceAll)
	})
	if !ok {
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/v1/panels/:panel/controls/:control
func (s *Server) getControlValue(c *gin.Context) {
	var (
		ci dispatch.ControlInfo
		v  uint64
	)
	ok := s.do(c, func() error {
		ph, ch, err := s.controlHandle(c)
		if err != nil {
			return err
		}
		if ci, err = s.d.GetControl(ph, ch); err != nil {
			return err
		}
		v, err = s.d.GetControlValue(ph, ch)
		return err
	})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"control": ci,
		"value":   v,
	})
}

type valueRequest struct {
	Value *uint64 `json:"value" binding:"required"`
}

// PUT /api/v1/panels/:panel/controls/:control
func (s *Server) setControlValue(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.CodeBadRequest, "Invalid request body", err.Error()))
		return
	}

	ok := s.do(c, func() error {
		ph, ch, err := s.controlHandle(c)
		if err != nil {
			return err
		}
		return s.d.SetControlValue(ph, ch, *req.Value)
	})
	if !ok {
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/v1/panels/:panel/state
func (s *Server) getBoardsState(c *gin.Context) {
	var st panels.BoardState
	ok := s.do(c, func() error {
		ph, err := s.panelHandle(c)
		if err != nil {
			return err
		}
		st, err = s.d.GetBoardsState(ph)
		return err
	})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": st.String()})
}

// PUT /api/v1/panels/:panel/state
func (s *Server) setBoardsState(c *gin.Context) {
	var req struct {
		State string `json:"state" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.CodeBadRequest, "Invalid request body", err.Error()))
		return
	}
	st, err := panels.ParseBoardState(req.State)
	if err != nil {
		s.fail(c, errors.Join(dispatch.ErrInvalidState, err))
		return
	}

	ok := s.do(c, func() error {
		ph, err := s.panelHandle(c)
		if err != nil {
			return err
		}
		return s.d.SetBoardsState(ph, st)
	})
	if !ok {
		return
	}
	c.Status(http.StatusNoContent)
}

// PUT /api/v1/sim/panels/:panel/controls/:control
func (s *Server) setSimulatedInput(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.CodeBadRequest, "Invalid request body", err.Error()))
		return
	}

	ok := s.do(c, func() error {
		ph, ch, err := s.controlHandle(c)
		if err != nil {
			return err
		}
		return s.d.SetSimulatedInput(ph, ch, *req.Value)
	})
	if !ok {
		return
	}
	c.Status(http.StatusNoContent)
}
