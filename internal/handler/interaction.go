package handler

import (
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/handler/dto"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/interaction"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/middleware"
)

const clientHeader = "X-Client-ID"

func (h *Handler) client(c *ginext.Context) (string, bool) {
	id := c.GetHeader(clientHeader)
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing " + clientHeader + " header"})
		return "", false
	}
	return id, true
}

func (h *Handler) dispatch(c *ginext.Context, client string, in interaction.Input) {
	snap, err := h.sessions.Dispatch(c.Request.Context(), client, in)
	if err != nil {
		c.Set(middleware.ErrorKey, err.Error())
		c.JSON(errorStatus(err), dto.SessionErrorResponse{Error: errorMessage(err), Session: snap})
		return
	}

	c.JSON(http.StatusOK, snap)
}

func (h *Handler) GetSession(c *ginext.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.sessions.Snapshot(client))
}

func (h *Handler) DragStart(c *ginext.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	var req dto.SessionEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), req.EventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.dispatch(c, client, interaction.DragStart{Event: *event})
}

func (h *Handler) DragOver(c *ginext.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	target, ok := h.bindTarget(c)
	if !ok {
		return
	}

	h.dispatch(c, client, interaction.DragOver{Target: target})
}

func (h *Handler) Drop(c *ginext.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	target, ok := h.bindTarget(c)
	if !ok {
		return
	}

	h.dispatch(c, client, interaction.Drop{Target: target})
}

func (h *Handler) bindTarget(c *ginext.Context) (interaction.Target, bool) {
	var req dto.DropTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return interaction.Target{}, false
	}

	s := h.calendarService.Settings()
	day, err := time.ParseInLocation(dateLayout, req.Date, s.Location)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return interaction.Target{}, false
	}

	target := interaction.Target{Day: day}
	switch {
	case req.OffsetPx != nil:
		at := s.Mapper.TimeAt(day, *req.OffsetPx, s.Location)
		target.HasTime = true
		target.Hour, target.Minute = at.Hour(), at.Minute()
	case req.Hour != nil:
		target.HasTime = true
		target.Hour = *req.Hour
		if req.Minute != nil {
			target.Minute = *req.Minute
		}
	}
	return target, true
}

func (h *Handler) Confirm(c *ginext.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	h.dispatch(c, client, interaction.Confirm{})
}

func (h *Handler) Cancel(c *ginext.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	var req dto.CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}
	if req.Reason == "" {
		req.Reason = "cancel"
	}

	h.dispatch(c, client, interaction.Cancel{Reason: req.Reason})
}

func (h *Handler) ResizeStart(c *ginext.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	var req dto.ResizeStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var day time.Time
	if req.Date != "" {
		var err error
		day, err = time.ParseInLocation(dateLayout, req.Date, h.calendarService.Settings().Location)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
			return
		}
	}

	event, err := h.eventService.GetByID(c.Request.Context(), req.EventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.dispatch(c, client, interaction.ResizeStart{
		Event: *event,
		Edge:  interaction.Edge(req.Edge),
		Day:   day,
	})
}

func (h *Handler) ResizeMove(c *ginext.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	var req dto.ResizeMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.dispatch(c, client, interaction.ResizeMove{HeightPx: *req.HeightPx})
}

func (h *Handler) ResizeStop(c *ginext.Context) {
	client, ok := h.client(c)
	if !ok {
		return
	}

	h.dispatch(c, client, interaction.ResizeStop{})
}
