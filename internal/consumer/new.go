package consumer

import (
	"fmt"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:             cfg.Logger,
		rabbitConfig:  cfg.RabbitMQConfig,
		minioConfig:   cfg.MinIOConfig,
		rabbitChannel: cfg.RabbitChannel,
		redisClient:   cfg.RedisClient,
		minioClient:   cfg.MinIOClient,
		geminiClient:  cfg.GeminiClient,
		discord:       cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *ConsumerServer) validate() error {
	// Core Configuration
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if srv.rabbitConfig.VideoQueue == "" {
		return fmt.Errorf("rabbitmq video queue is required")
	}
	if srv.rabbitChannel == nil {
		return fmt.Errorf("rabbitmq channel is required")
	}

	// Infrastructure clients
	if srv.redisClient == nil {
		return fmt.Errorf("redis client is required")
	}
	if srv.minioClient == nil {
		return fmt.Errorf("minio client is required")
	}
	if srv.minioConfig.VideoBucket == "" {
		return fmt.Errorf("minio video bucket is required")
	}

	// Generative AI
	if srv.geminiClient == nil {
		return fmt.Errorf("gemini client is required")
	}

	return nil
}
