package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mmark3273/sibur/internal/dto"
	"github.com/mmark3273/sibur/internal/service"
	"github.com/mmark3273/sibur/pkg/response"
)

// DirectoryHandler manages the vehicle directory.
type DirectoryHandler struct {
	directorySvc service.DirectoryService
}

// NewDirectoryHandler builds a DirectoryHandler.
func NewDirectoryHandler(directorySvc service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directorySvc: directorySvc}
}

// ListDirectory returns all directory entries.
// GET /api/v1/directory
func (h *DirectoryHandler) ListDirectory(c *gin.Context) {
	resp, err := h.directorySvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, resp)
}

// UpsertDirectory creates or replaces one entry.
// POST /api/v1/directory
func (h *DirectoryHandler) UpsertDirectory(c *gin.Context) {
	var req dto.DirectoryUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request body validation failed")
		return
	}

	if err := h.directorySvc.Upsert(c.Request.Context(), &req); err != nil {
		h.handleDirectoryError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeleteDirectory removes one entry by plate.
// DELETE /api/v1/directory/:plate
func (h *DirectoryHandler) DeleteDirectory(c *gin.Context) {
	plate := c.Param("plate")
	if err := h.directorySvc.Delete(c.Request.Context(), plate); err != nil {
		h.handleDirectoryError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *DirectoryHandler) handleDirectoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingPlate):
		response.BadRequest(c, 14001, "vehicle_plate must not be empty")
	default:
		response.InternalError(c)
	}
}
