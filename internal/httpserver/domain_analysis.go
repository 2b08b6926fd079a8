package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"spyglass-srv/internal/analysis"
	analysisHTTP "spyglass-srv/internal/analysis/delivery/http"
	analysisProducer "spyglass-srv/internal/analysis/delivery/kafka/producer"
	analysisUsecase "spyglass-srv/internal/analysis/usecase"
	"spyglass-srv/internal/history"
	"spyglass-srv/internal/middleware"
	"spyglass-srv/internal/narration"
	narrationUsecase "spyglass-srv/internal/narration/usecase"
	"spyglass-srv/internal/presentation"
	presentationUsecase "spyglass-srv/internal/presentation/usecase"
)

func (srv *HTTPServer) setupAnalysisDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware, historyUC history.UseCase) error {
	if srv.config.Presentation.ArchiveNarration {
		srv.archiver = narrationUsecase.NewArchiver(srv.l, srv.minioClient, srv.config.MinIO.NarrationBucket)
	}

	var producer analysis.Producer
	if srv.kafkaProducer != nil {
		producer = analysisProducer.New(srv.l, srv.kafkaProducer)
	}

	uc := analysisUsecase.New(srv.l, historyUC, srv.geminiClient, producer, srv.newScheduler)
	srv.analysisUC = uc

	handler := analysisHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Analysis domain registered")
	return nil
}

// newScheduler builds the presentation pipeline of one workspace. Narration
// clips reach clients through the workspace event stream.
func (srv *HTTPServer) newScheduler(owner string) presentation.Scheduler {
	cfg := srv.config.Presentation
	hub := presentationUsecase.NewHub()

	var player narration.Player
	if cfg.NarrationEnabled {
		player = narrationUsecase.New(
			srv.l,
			srv.geminiClient,
			presentationUsecase.NewEventOutput(hub),
			srv.archiver,
			narrationUsecase.Config{
				Owner: owner,
				Voice: srv.config.Gemini.Voice,
			},
		)
	}

	return presentationUsecase.New(srv.l, hub, player, srv.renderer, presentation.Config{
		RevealInterval:   cfg.RevealInterval,
		NarrationLimit:   cfg.NarrationMaxChars,
		NarrationEnabled: cfg.NarrationEnabled,
	})
}
