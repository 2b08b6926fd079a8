package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"spyglass-srv/config"
	"spyglass-srv/internal/history"
	historyHTTP "spyglass-srv/internal/history/delivery/http"
	historyRepo "spyglass-srv/internal/history/repository"
	historyPostgre "spyglass-srv/internal/history/repository/postgre"
	historyRedis "spyglass-srv/internal/history/repository/redis"
	historyUsecase "spyglass-srv/internal/history/usecase"
	"spyglass-srv/internal/middleware"
)

// setupHistoryDomain picks the configured backend (repo -> usecase -> delivery).
func (srv *HTTPServer) setupHistoryDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) (history.UseCase, error) {
	var repo historyRepo.Repository
	switch srv.config.History.Backend {
	case config.HistoryBackendPostgres:
		repo = historyPostgre.New(srv.postgresDB, srv.l)
	case config.HistoryBackendRedis:
		repo = historyRedis.New(srv.redisClient, srv.l, srv.config.History.KeyPrefix)
	default:
		return nil, fmt.Errorf("unknown history backend %q", srv.config.History.Backend)
	}

	uc := historyUsecase.New(repo, srv.l)

	handler := historyHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "History domain registered (backend: %s)", srv.config.History.Backend)
	return uc, nil
}
