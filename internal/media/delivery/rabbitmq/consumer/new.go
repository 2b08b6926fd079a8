package consumer

import (
	"fmt"
	"sync"

	"spyglass-srv/config"
	"spyglass-srv/internal/media"
	"spyglass-srv/pkg/log"
	pkgRabbit "spyglass-srv/pkg/rabbitmq"
)

// Config holds the configuration for the video job consumer
type Config struct {
	Logger         log.Logger
	RabbitMQConfig config.RabbitMQConfig
	Channel        pkgRabbit.IChannel
	UseCase        media.UseCase
}

// Consumer runs queued video jobs.
type Consumer struct {
	l   log.Logger
	cfg config.RabbitMQConfig
	ch  pkgRabbit.IChannel
	uc  media.UseCase

	wg sync.WaitGroup
}

func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if cfg.Channel == nil {
		return nil, fmt.Errorf("rabbitmq channel is required")
	}
	if cfg.RabbitMQConfig.VideoExchange == "" || cfg.RabbitMQConfig.VideoQueue == "" {
		return nil, fmt.Errorf("video exchange and queue are required")
	}

	return &Consumer{
		l:   cfg.Logger,
		cfg: cfg.RabbitMQConfig,
		ch:  cfg.Channel,
		uc:  cfg.UseCase,
	}, nil
}

// Wait blocks until in-flight jobs return.
func (c *Consumer) Wait() {
	c.wg.Wait()
}
