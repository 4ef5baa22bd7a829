package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mmark3273/sibur/internal/dto"
	"github.com/mmark3273/sibur/internal/service"
	"github.com/mmark3273/sibur/pkg/response"
)

// MarkHandler writes single schedule/fact cells.
type MarkHandler struct {
	markSvc service.MarkService
}

// NewMarkHandler builds a MarkHandler.
func NewMarkHandler(markSvc service.MarkService) *MarkHandler {
	return &MarkHandler{markSvc: markSvc}
}

// WriteMark upserts one mark.
// POST /api/v1/marks
func (h *MarkHandler) WriteMark(c *gin.Context) {
	var req dto.MarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request body validation failed")
		return
	}

	if err := h.markSvc.Write(c.Request.Context(), &req); err != nil {
		h.handleMarkError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *MarkHandler) handleMarkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidKind):
		response.BadRequest(c, 13001, "kind must be 'schedule' or 'fact'")
	case errors.Is(err, service.ErrInvalidSlot):
		response.BadRequest(c, 13002, "slot is not a canonical slot label")
	case errors.Is(err, service.ErrMissingDayPlate):
		response.BadRequest(c, 13003, "day and plate must not be empty")
	default:
		response.InternalError(c)
	}
}
