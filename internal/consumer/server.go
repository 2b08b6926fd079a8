package consumer

import (
	"context"

	"spyglass-srv/config"
	"spyglass-srv/pkg/discord"
	"spyglass-srv/pkg/gemini"
	"spyglass-srv/pkg/log"
	"spyglass-srv/pkg/minio"
	pkgRabbit "spyglass-srv/pkg/rabbitmq"
	"spyglass-srv/pkg/redis"
)

// ConsumerServer runs the queued media workers.
type ConsumerServer struct {
	// Core Configuration
	l             log.Logger
	rabbitConfig  config.RabbitMQConfig
	minioConfig   config.MinIOConfig
	rabbitChannel pkgRabbit.IChannel

	// Infrastructure clients
	redisClient redis.IRedis
	minioClient minio.MinIO

	// Generative AI
	geminiClient gemini.IGemini

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger         log.Logger
	RabbitMQConfig config.RabbitMQConfig
	MinIOConfig    config.MinIOConfig
	RabbitChannel  pkgRabbit.IChannel

	// Infrastructure clients
	RedisClient redis.IRedis
	MinIOClient minio.MinIO

	// Generative AI
	GeminiClient gemini.IGemini

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		if srv.discord != nil {
			_ = srv.discord.SendError(ctx, "Media worker", "video consumer failed to start", err)
		}
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")
	if srv.discord != nil {
		_ = srv.discord.SendInfo(ctx, "Media worker", "consuming "+srv.rabbitConfig.VideoQueue)
	}

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, waiting for in-flight jobs...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
