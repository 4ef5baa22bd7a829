package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mmark3273/sibur/config"
	"github.com/mmark3273/sibur/internal/api/handler"
	"github.com/mmark3273/sibur/internal/api/middleware"
)

// Setup builds the gin engine with middleware and all routes.
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.MaxUploadBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		v1.POST("/uploads", h.Upload.Upload)
		v1.GET("/meta", h.Upload.Meta)

		v1.GET("/grid", h.Grid.GetGrid)
		v1.POST("/marks", h.Mark.WriteMark)

		directory := v1.Group("/directory")
		{
			directory.GET("", h.Directory.ListDirectory)
			directory.POST("", h.Directory.UpsertDirectory)
			directory.DELETE("/:plate", h.Directory.DeleteDirectory)
		}

		palette := v1.Group("/palette")
		{
			palette.GET("", h.Palette.GetPalette)
			palette.PUT("", h.Palette.SavePalette)
			palette.POST("/reset", h.Palette.ResetPalette)
		}

		v1.GET("/export", h.Export.Export)
	}

	return r
}
