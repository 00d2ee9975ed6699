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
	UpdateSchema(c *ginext.Context)
	SubmitRSVP(c *ginext.Context)
	ConfirmPayment(c *ginext.Context)
	GetUserRSVPs(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	CreateCheckInEvent(c *ginext.Context)
	GetCheckInEvent(c *ginext.Context)
	ListCheckInEvents(c *ginext.Context)
	DeleteCheckInEvent(c *ginext.Context)
	AddAttendee(c *ginext.Context)
	SendRoster(c *ginext.Context)
	ListRoster(c *ginext.Context)
	ResendCredential(c *ginext.Context)
	ScanCredential(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Calendar events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id/schema", h.UpdateSchema)

		// RSVPs
		api.POST("/events/:id/rsvp", h.SubmitRSVP)
		api.POST("/rsvps/:id/payment", h.ConfirmPayment)
		api.GET("/users/:id/rsvps", h.GetUserRSVPs)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)

		// Standalone check-in events
		api.POST("/checkin-events", h.CreateCheckInEvent)
		api.GET("/checkin-events", h.ListCheckInEvents)
		api.GET("/checkin-events/:id", h.GetCheckInEvent)
		api.DELETE("/checkin-events/:id", h.DeleteCheckInEvent)
		api.POST("/checkin-events/:id/attendees", h.AddAttendee)
		api.POST("/checkin-events/:id/send", h.SendRoster)

		// Rosters and credentials, both flows
		api.GET("/rosters/:id/attendees", h.ListRoster)
		api.POST("/attendees/:id/resend", h.ResendCredential)
		api.POST("/checkin/scan", h.ScanCredential)
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
