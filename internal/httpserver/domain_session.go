package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"spyglass-srv/internal/middleware"
	sessionHTTP "spyglass-srv/internal/session/delivery/http"
	sessionUsecase "spyglass-srv/internal/session/usecase"
)

func (srv *HTTPServer) setupSessionDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := sessionUsecase.New(srv.l, srv.jwtManager)

	handler := sessionHTTP.New(srv.l, uc, srv.cookieConfig, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Session domain registered")
	return nil
}
