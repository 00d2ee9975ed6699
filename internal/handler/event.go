package handler

import (
	"net/http"
	"time"

	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/stpnv0/EventCheckIn/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	var deadline *time.Time
	if req.RSVPDeadline != nil {
		d, err := time.Parse(time.RFC3339, *req.RSVPDeadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid rsvp_deadline format, expected RFC3339",
			})
			return
		}
		d = d.UTC()
		deadline = &d
	}

	input := domain.CreateEventInput{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		EventDate:       eventDate,
		RSVPRequired:    req.RSVPRequired,
		RSVPDeadline:    deadline,
		MaxParticipants: req.MaxParticipants,
		RequiresPayment: req.RequiresPayment,
		Fields:          dto.ToFields(req.Fields),
	}

	details, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventDetailsResponse(details))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := pathID(c, "event")
	if !ok {
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateSchema(c *ginext.Context) {
	id, ok := pathID(c, "event")
	if !ok {
		return
	}

	var req dto.UpdateSchemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	schema, err := h.eventService.UpdateSchema(c.Request.Context(), id, dto.ToFields(req.Fields))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSchemaResponse(schema))
}
