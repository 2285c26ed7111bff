package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/calendar"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/domain"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/handler/dto"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/ics"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/interaction"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/middleware"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) ([]*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	Import(ctx context.Context, ownerID string, inputs []domain.CreateEventInput) ([]*domain.Event, int, error)
}

type CalendarSvc interface {
	Settings() calendar.Settings
	Day(ctx context.Context, day time.Time) (calendar.DayLayout, error)
	Week(ctx context.Context, day time.Time) (calendar.WeekLayout, error)
	Month(ctx context.Context, year int, month time.Month) (calendar.MonthLayout, error)
	Year(ctx context.Context, year int) (calendar.YearLayout, error)
	Export(ctx context.Context, w io.Writer, from time.Time, to time.Time) error
}

type SessionSvc interface {
	Dispatch(ctx context.Context, client string, in interaction.Input) (interaction.Snapshot, error)
	Snapshot(client string) interaction.Snapshot
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	eventService    EventSvc
	calendarService CalendarSvc
	sessions        SessionSvc
	userService     UserSvc
}

func NewHandler(eventService EventSvc, calendarService CalendarSvc, sessions SessionSvc, userService UserSvc) *Handler {
	return &Handler{
		eventService:    eventService,
		calendarService: calendarService,
		sessions:        sessions,
		userService:     userService,
	}
}

// Events
func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start format, expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end format, expected RFC3339"})
		return
	}

	input := domain.CreateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		Start:        start,
		End:          end,
		OwnerID:      req.OwnerID,
		LocationID:   req.LocationID,
		LocationName: req.LocationName,
		Recurrence:   req.Recurrence,
	}

	events, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponses(events))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventInput{Title: req.Title, Description: req.Description}
	for _, f := range []struct {
		raw  *string
		dst  **time.Time
		name string
	}{
		{req.Start, &input.Start, "start"},
		{req.End, &input.End, "end"},
	} {
		if f.raw == nil {
			continue
		}
		t, err := time.Parse(time.RFC3339, *f.raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + f.name + " format, expected RFC3339"})
			return
		}
		*f.dst = &t
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		DisplayName:    req.DisplayName,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// ImportCalendar creates bookings for the user from an iCalendar body.
func (h *Handler) ImportCalendar(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	inputs, err := ics.Parse(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	created, skipped, err := h.eventService.Import(c.Request.Context(), userID, inputs)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ImportResponse{
		Created: dto.ToEventResponses(created),
		Skipped: skipped,
	})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set(middleware.ErrorKey, err.Error())
	c.JSON(errorStatus(err), dto.ErrorResponse{Error: errorMessage(err)})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, interaction.ErrSessionActive),
		errors.Is(err, interaction.ErrNoSession),
		errors.Is(err, interaction.ErrEventBusy),
		errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, domain.ErrTooShort),
		errors.Is(err, interaction.ErrInvalidTarget),
		errors.Is(err, interaction.ErrInvalidEdge),
		errors.Is(err, interaction.ErrInvalidEvent),
		errors.Is(err, interaction.ErrUnknownInput):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

func errorMessage(err error) string {
	if errorStatus(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
