package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mmark3273/sibur/internal/dto"
	"github.com/mmark3273/sibur/internal/service"
	"github.com/mmark3273/sibur/pkg/response"
)

// PaletteHandler manages the color palette.
type PaletteHandler struct {
	paletteSvc service.PaletteService
}

// NewPaletteHandler builds a PaletteHandler.
func NewPaletteHandler(paletteSvc service.PaletteService) *PaletteHandler {
	return &PaletteHandler{paletteSvc: paletteSvc}
}

// GetPalette returns the stored palette.
// GET /api/v1/palette
func (h *PaletteHandler) GetPalette(c *gin.Context) {
	resp, err := h.paletteSvc.Get(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, resp)
}

// SavePalette replaces the palette; invalid colors fall back to defaults.
// PUT /api/v1/palette
func (h *PaletteHandler) SavePalette(c *gin.Context) {
	var req dto.PaletteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request body validation failed")
		return
	}

	resp, err := h.paletteSvc.Save(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, resp)
}

// ResetPalette restores the default palette.
// POST /api/v1/palette/reset
func (h *PaletteHandler) ResetPalette(c *gin.Context) {
	resp, err := h.paletteSvc.Reset(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, resp)
}
