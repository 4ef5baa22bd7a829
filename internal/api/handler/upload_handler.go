package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mmark3273/sibur/internal/service"
	"github.com/mmark3273/sibur/pkg/response"
)

// UploadHandler handles workbook ingestion and dataset metadata.
type UploadHandler struct {
	uploadSvc service.UploadService
}

// NewUploadHandler builds an UploadHandler.
func NewUploadHandler(uploadSvc service.UploadService) *UploadHandler {
	return &UploadHandler{uploadSvc: uploadSvc}
}

// Upload ingests an xlsx workbook.
// POST /api/v1/uploads  (multipart field "file")
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 11001, "multipart field 'file' is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, 11001, "uploaded file could not be opened")
		return
	}
	defer file.Close()

	resp, err := h.uploadSvc.Ingest(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		h.handleUploadError(c, err)
		return
	}

	response.Created(c, resp)
}

// Meta describes the most recent upload.
// GET /api/v1/meta
func (h *UploadHandler) Meta(c *gin.Context) {
	resp, err := h.uploadSvc.Meta(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, resp)
}

func (h *UploadHandler) handleUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUploadParse):
		response.BadRequest(c, 11002, "workbook could not be parsed as xlsx")
	case errors.Is(err, service.ErrUploadNoRows):
		response.BadRequest(c, 11003, "workbook has no data rows below the header")
	default:
		response.InternalError(c)
	}
}
