package handler

import (
	"net/http"

	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/stpnv0/EventCheckIn/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateCheckInEvent(c *ginext.Context) {
	var req dto.CreateCheckInEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateCheckInEventInput{
		Title:        req.Title,
		Date:         req.Date,
		Time:         req.Time,
		Location:     req.Location,
		MaxAttendees: req.MaxAttendees,
		CreatedBy:    req.CreatedBy,
	}

	event, err := h.registryService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCheckInEventResponse(event))
}

func (h *Handler) GetCheckInEvent(c *ginext.Context) {
	id, ok := pathID(c, "check-in event")
	if !ok {
		return
	}

	event, err := h.registryService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckInEventResponse(event))
}

func (h *Handler) ListCheckInEvents(c *ginext.Context) {
	events, err := h.registryService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CheckInEventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToCheckInEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteCheckInEvent(c *ginext.Context) {
	id, ok := pathID(c, "check-in event")
	if !ok {
		return
	}

	counts, err := h.registryService.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteCheckInEventResponse{DeletedCounts: counts})
}

func (h *Handler) AddAttendee(c *ginext.Context) {
	id, ok := pathID(c, "check-in event")
	if !ok {
		return
	}

	var req dto.AddAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.AddAttendeeInput{
		EventID:    id,
		Name:       req.Name,
		Email:      req.Email,
		Adults:     req.Adults,
		Kids:       req.Kids,
		FoodCounts: req.FoodCounts,
	}

	attendee, err := h.registryService.AddAttendee(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAttendeeResponse(attendee))
}

func (h *Handler) SendRoster(c *ginext.Context) {
	id, ok := pathID(c, "check-in event")
	if !ok {
		return
	}

	n, err := h.deliveryService.SendRoster(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.SendRosterResponse{Dispatched: n})
}

// ListRoster serves either flow: the id may name a check-in event or a
// calendar event.
func (h *Handler) ListRoster(c *ginext.Context) {
	id, ok := pathID(c, "roster")
	if !ok {
		return
	}

	attendees, err := h.registryService.ListAttendees(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RosterEntryResponse, 0, len(attendees))
	for _, a := range attendees {
		resp = append(resp, dto.ToRosterEntryResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ResendCredential(c *ginext.Context) {
	id, ok := pathID(c, "attendee")
	if !ok {
		return
	}

	ref, delivery, err := h.deliveryService.Resend(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ResendResponse{
		AttendeeID:       ref.ID,
		Flow:             string(ref.Flow),
		DeliveryResponse: dto.ToDeliveryResponse(delivery),
	})
}
