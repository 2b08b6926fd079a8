package kafka

import "context"

// IProducer publishes messages to one topic. Safe for concurrent use.
type IProducer interface {
	Publish(ctx context.Context, msg Message) error
	Topic() string
	Close() error
	// HealthCheck fails once the producer is closed.
	HealthCheck() error
}

// NewProducer creates a synchronous producer for cfg.Topic.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}
