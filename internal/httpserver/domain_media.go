package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"spyglass-srv/internal/media"
	mediaHTTP "spyglass-srv/internal/media/delivery/http"
	mediaProducer "spyglass-srv/internal/media/delivery/rabbitmq/producer"
	mediaRedis "spyglass-srv/internal/media/repository/redis"
	mediaUsecase "spyglass-srv/internal/media/usecase"
	"spyglass-srv/internal/middleware"
)

func (srv *HTTPServer) setupMediaDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	producer := mediaProducer.New(srv.l, srv.rabbitChannel, srv.config.RabbitMQ.VideoExchange)
	if err := producer.Setup(); err != nil {
		return err
	}

	repo := mediaRedis.New(srv.redisClient, srv.l)

	uc := mediaUsecase.New(srv.l, srv.geminiClient, srv.minioClient, repo, producer, media.Config{
		SpeechBucket:  srv.config.MinIO.SpeechBucket,
		VideoBucket:   srv.config.MinIO.VideoBucket,
		PresignExpiry: srv.config.MinIO.PresignExpiry,
	})

	handler := mediaHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Media domain registered")
	return nil
}
