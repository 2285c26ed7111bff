package handler

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/handler/dto"
)

const dateLayout = "2006-01-02"

// queryDate reads a YYYY-MM-DD query parameter in the calendar location,
// falling back to today.
func (h *Handler) queryDate(c *ginext.Context, key string) (time.Time, bool) {
	loc := h.calendarService.Settings().Location
	raw := c.Query(key)
	if raw == "" {
		return time.Now().In(loc), true
	}

	t, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + key + ", expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return t, true
}

func queryInt(c *ginext.Context, key string, def, lo, hi int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < lo || n > hi {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + key})
		return 0, false
	}
	return n, true
}

func (h *Handler) DayView(c *ginext.Context) {
	day, ok := h.queryDate(c, "date")
	if !ok {
		return
	}

	layout, err := h.calendarService.Day(c.Request.Context(), day)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDayResponse(layout))
}

func (h *Handler) WeekView(c *ginext.Context) {
	day, ok := h.queryDate(c, "date")
	if !ok {
		return
	}

	layout, err := h.calendarService.Week(c.Request.Context(), day)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWeekResponse(layout))
}

func (h *Handler) MonthView(c *ginext.Context) {
	now := time.Now().In(h.calendarService.Settings().Location)
	year, ok := queryInt(c, "year", now.Year(), 1, 9999)
	if !ok {
		return
	}
	month, ok := queryInt(c, "month", int(now.Month()), 1, 12)
	if !ok {
		return
	}

	layout, err := h.calendarService.Month(c.Request.Context(), year, time.Month(month))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthResponse(layout))
}

func (h *Handler) YearView(c *ginext.Context) {
	now := time.Now().In(h.calendarService.Settings().Location)
	year, ok := queryInt(c, "year", now.Year(), 1, 9999)
	if !ok {
		return
	}

	layout, err := h.calendarService.Year(c.Request.Context(), year)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToYearResponse(layout))
}

// ExportCalendar serves the bookings touching [from, to] as text/calendar.
// Without parameters the feed covers the current month and the next year.
func (h *Handler) ExportCalendar(c *ginext.Context) {
	from, ok := h.queryDate(c, "from")
	if !ok {
		return
	}
	if c.Query("from") == "" {
		from = time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, from.Location())
	}
	to, ok := h.queryDate(c, "to")
	if !ok {
		return
	}
	if c.Query("to") == "" {
		to = from.AddDate(1, 0, 0)
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "to must not be before from"})
		return
	}

	var buf bytes.Buffer
	if err := h.calendarService.Export(c.Request.Context(), &buf, from, to); err != nil {
		h.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}
