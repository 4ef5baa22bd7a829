package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mmark3273/sibur/internal/dto"
	"github.com/mmark3273/sibur/internal/service"
	"github.com/mmark3273/sibur/pkg/response"
)

// GridHandler serves the assembled day grid.
type GridHandler struct {
	gridSvc service.GridService
}

// NewGridHandler builds a GridHandler.
func NewGridHandler(gridSvc service.GridService) *GridHandler {
	return &GridHandler{gridSvc: gridSvc}
}

// GetGrid returns the grid for one day.
// GET /api/v1/grid?day=...&filters=...&upload_id=...
func (h *GridHandler) GetGrid(c *gin.Context) {
	var req dto.GridRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "query parameter validation failed")
		return
	}

	grid, err := h.gridSvc.GetGrid(c.Request.Context(), &req)
	if err != nil {
		h.handleGridError(c, err)
		return
	}

	response.OK(c, grid)
}

func (h *GridHandler) handleGridError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBadDay):
		response.BadRequest(c, 12001, "day must be a valid date")
	case errors.Is(err, service.ErrBadFilters):
		response.BadRequest(c, 12002, "filters must be a JSON object mapping column to value list")
	case errors.Is(err, service.ErrNoData):
		response.NotFound(c, 12003, "no data uploaded yet")
	case errors.Is(err, service.ErrUploadNotFound):
		response.NotFound(c, 12004, "upload not found")
	default:
		response.InternalError(c)
	}
}
