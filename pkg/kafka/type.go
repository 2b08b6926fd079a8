package kafka

import (
	"sync"

	"github.com/IBM/sarama"
)

// Config holds configuration for Kafka producer.
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// Message is one record for the configured topic. Key decides the partition.
type Message struct {
	Key     string
	Value   []byte
	Headers map[string]string
}

type producerImpl struct {
	producer sarama.SyncProducer
	topic    string

	mu     sync.RWMutex
	closed bool
}
