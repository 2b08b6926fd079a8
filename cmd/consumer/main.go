package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"spyglass-srv/config"
	configDiscord "spyglass-srv/config/discord"
	configGemini "spyglass-srv/config/gemini"
	configMinIO "spyglass-srv/config/minio"
	configRabbit "spyglass-srv/config/rabbitmq"
	configRedis "spyglass-srv/config/redis"
	"spyglass-srv/internal/consumer"
	"spyglass-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Spyglass media worker...")

	// Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// MinIO
	minioClient, err := configMinIO.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer configMinIO.Disconnect()
	logger.Info(ctx, "MinIO client initialized")

	// Gemini
	geminiClient, err := configGemini.Connect(cfg.Gemini)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Gemini client: %v", err)
		return
	}
	logger.Info(ctx, "Gemini client initialized")

	// RabbitMQ, reconnecting forever
	rabbitConn, err := configRabbit.Connect(logger, cfg.RabbitMQ, true)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to RabbitMQ: %v", err)
		return
	}
	defer configRabbit.Disconnect()
	rabbitChannel, err := rabbitConn.Channel()
	if err != nil {
		logger.Errorf(ctx, "Failed to open RabbitMQ channel: %v", err)
		return
	}
	defer rabbitChannel.Close()
	logger.Info(ctx, "RabbitMQ channel initialized")

	// Discord (optional)
	discordClient, err := configDiscord.Connect(logger, cfg.Discord)
	if err != nil {
		logger.Warnf(ctx, "Discord webhook misconfigured, alerts disabled: %v", err)
		discordClient = nil
	} else if discordClient != nil {
		logger.Info(ctx, "Discord client initialized")
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:         logger,
		RabbitMQConfig: cfg.RabbitMQ,
		MinIOConfig:    cfg.MinIO,
		RabbitChannel:  rabbitChannel,
		RedisClient:    redisClient,
		MinIOClient:    minioClient,
		GeminiClient:   geminiClient,
		Discord:        discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
