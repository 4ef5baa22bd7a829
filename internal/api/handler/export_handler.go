package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/mmark3273/sibur/internal/dto"
	"github.com/mmark3273/sibur/internal/service"
	"github.com/mmark3273/sibur/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams the day grid as an xlsx download.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler builds an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Export renders the grid workbook for one day.
// GET /api/v1/export?day=...&filters=...&upload_id=...
func (h *ExportHandler) Export(c *gin.Context) {
	var req dto.GridRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "query parameter validation failed")
		return
	}

	buf, filename, err := h.exportSvc.Export(c.Request.Context(), &req)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBadDay):
		response.BadRequest(c, 12001, "day must be a valid date")
	case errors.Is(err, service.ErrBadFilters):
		response.BadRequest(c, 12002, "filters must be a JSON object mapping column to value list")
	case errors.Is(err, service.ErrNoData):
		response.NotFound(c, 12003, "no data uploaded yet")
	case errors.Is(err, service.ErrUploadNotFound):
		response.NotFound(c, 12004, "upload not found")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
