package consumer

import (
	"context"
	"fmt"

	"spyglass-srv/internal/media"
	mediaConsumer "spyglass-srv/internal/media/delivery/rabbitmq/consumer"
	mediaRedis "spyglass-srv/internal/media/repository/redis"
	mediaUsecase "spyglass-srv/internal/media/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	videoConsumer *mediaConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	repo := mediaRedis.New(srv.redisClient, srv.l)

	// The worker never queues jobs, so it runs without a producer.
	mediaUC := mediaUsecase.New(srv.l, srv.geminiClient, srv.minioClient, repo, nil, media.Config{
		SpeechBucket:  srv.minioConfig.SpeechBucket,
		VideoBucket:   srv.minioConfig.VideoBucket,
		PresignExpiry: srv.minioConfig.PresignExpiry,
	})

	videoCons, err := mediaConsumer.New(mediaConsumer.Config{
		Logger:         srv.l,
		RabbitMQConfig: srv.rabbitConfig,
		Channel:        srv.rabbitChannel,
		UseCase:        mediaUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create video consumer: %w", err)
	}

	srv.l.Infof(ctx, "Media domain initialized")

	return &domainConsumers{
		videoConsumer: videoCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.videoConsumer.ConsumeVideoJobs(ctx); err != nil {
		return fmt.Errorf("failed to start video consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers waits for in-flight jobs. A job cut short by shutdown is
// nacked and picked up again by the next worker.
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.videoConsumer != nil {
		consumers.videoConsumer.Wait()
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
