package http

import (
	"spyglass-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/media")
	api.Use(mw.Auth())
	{
		api.POST("/images/edit", h.EditImage)
		api.POST("/transcriptions", h.Transcribe)
		api.POST("/speech", h.GenerateSpeech)
		api.POST("/summaries", h.Summarize)
		api.POST("/videos", h.CreateVideoJob)
		api.GET("/videos/:job_id", h.GetVideoJob)
	}
}
