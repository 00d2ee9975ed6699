package handler

import (
	"net/http"

	"github.com/stpnv0/EventCheckIn/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// ScanCredential answers 200 for both a fresh and a repeated check-in; the
// status field tells them apart.
func (h *Handler) ScanCredential(c *ginext.Context) {
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.checkInService.Scan(c.Request.Context(), req.Code, req.ScannedBy)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToScanResponse(result))
}
