package handler

import (
	"net/http"

	"github.com/stpnv0/EventCheckIn/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) SubmitRSVP(c *ginext.Context) {
	eventID, ok := pathID(c, "event")
	if !ok {
		return
	}

	var req dto.SubmitRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rsvp, err := h.rsvpService.SubmitRSVP(c.Request.Context(), eventID, req.UserID, req.Responses)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRSVPResponse(rsvp))
}

func (h *Handler) ConfirmPayment(c *ginext.Context) {
	rsvpID, ok := pathID(c, "rsvp")
	if !ok {
		return
	}

	var req dto.ConfirmPaymentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	rsvp, err := h.rsvpService.ConfirmPayment(c.Request.Context(), rsvpID, req.Reference)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRSVPResponse(rsvp))
}

func (h *Handler) GetUserRSVPs(c *ginext.Context) {
	userID, ok := pathID(c, "user")
	if !ok {
		return
	}

	rsvps, err := h.rsvpService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RSVPResponse, 0, len(rsvps))
	for _, r := range rsvps {
		resp = append(resp, dto.ToRSVPResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}
