package kafka

import (
	"fmt"
	"sync"

	"spyglass-srv/config"
	"spyglass-srv/pkg/kafka"
)

var (
	producer kafka.IProducer
	mu       sync.RWMutex
)

// ConnectProducer creates the shared analysis events producer. It is only
// called when brokers are configured; events are optional.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	mu.Lock()
	defer mu.Unlock()

	if producer != nil {
		return producer, nil
	}

	p, err := kafka.NewProducer(kafka.Config{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		ClientID: cfg.ClientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer for %s: %w", cfg.Topic, err)
	}
	producer = p
	return producer, nil
}

// HealthCheck reports nil when no producer was connected: events are off.
func HealthCheck() error {
	mu.RLock()
	defer mu.RUnlock()

	if producer == nil {
		return nil
	}
	return producer.HealthCheck()
}

// DisconnectProducer closes the shared producer.
func DisconnectProducer() error {
	mu.Lock()
	defer mu.Unlock()

	if producer == nil {
		return nil
	}
	err := producer.Close()
	producer = nil
	return err
}
