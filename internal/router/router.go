package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)

	DayView(c *ginext.Context)
	WeekView(c *ginext.Context)
	MonthView(c *ginext.Context)
	YearView(c *ginext.Context)
	ExportCalendar(c *ginext.Context)

	GetSession(c *ginext.Context)
	DragStart(c *ginext.Context)
	DragOver(c *ginext.Context)
	Drop(c *ginext.Context)
	Confirm(c *ginext.Context)
	Cancel(c *ginext.Context)
	ResizeStart(c *ginext.Context)
	ResizeMove(c *ginext.Context)
	ResizeStop(c *ginext.Context)

	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	ImportCalendar(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PATCH("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)

		// Calendar views
		api.GET("/calendar/day", h.DayView)
		api.GET("/calendar/week", h.WeekView)
		api.GET("/calendar/month", h.MonthView)
		api.GET("/calendar/year", h.YearView)
		api.GET("/calendar.ics", h.ExportCalendar)

		// Drag and resize sessions, keyed by X-Client-ID
		session := api.Group("/session")
		session.GET("", h.GetSession)
		session.POST("/drag/start", h.DragStart)
		session.POST("/drag/over", h.DragOver)
		session.POST("/drop", h.Drop)
		session.POST("/confirm", h.Confirm)
		session.POST("/cancel", h.Cancel)
		session.POST("/resize/start", h.ResizeStart)
		session.POST("/resize/move", h.ResizeMove)
		session.POST("/resize/stop", h.ResizeStop)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.POST("/users/:id/import", h.ImportCalendar)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
