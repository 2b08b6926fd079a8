package http

import (
	"spyglass-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/sessions")
	api.POST("", h.Create)
	api.GET("/me", mw.Auth(), h.Me)
	api.DELETE("", h.Delete)
}
