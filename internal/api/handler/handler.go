package handler

import "github.com/mmark3273/sibur/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Upload    *UploadHandler
	Grid      *GridHandler
	Mark      *MarkHandler
	Directory *DirectoryHandler
	Palette   *PaletteHandler
	Export    *ExportHandler
}

// NewHandler builds the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Upload:    NewUploadHandler(svc.Upload),
		Grid:      NewGridHandler(svc.Grid),
		Mark:      NewMarkHandler(svc.Mark),
		Directory: NewDirectoryHandler(svc.Directory),
		Palette:   NewPaletteHandler(svc.Palette),
		Export:    NewExportHandler(svc.Export),
	}
}
