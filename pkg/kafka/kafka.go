package kafka

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/IBM/sarama"
)

var ErrProducerClosed = errors.New("kafka: producer is closed")

func validateProducerConfig(cfg Config) error {
	if len(cfg.Brokers) == 0 {
		return fmt.Errorf("kafka: at least one broker is required")
	}
	if cfg.Topic == "" {
		return fmt.Errorf("kafka: topic is required")
	}
	return nil
}

func newProducerImpl(cfg Config) (*producerImpl, error) {
	config := sarama.NewConfig()
	config.ClientID = cfg.ClientID
	if config.ClientID == "" {
		config.ClientID = DefaultClientID
	}
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Partitioner = sarama.NewHashPartitioner
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = ProducerRetryMax
	config.Producer.Timeout = ProducerTimeout
	config.Version = KafkaVersion

	producer, err := sarama.NewSyncProducer(cfg.Brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return &producerImpl{producer: producer, topic: cfg.Topic}, nil
}

// Publish sends msg and waits for the leader's ack. A cancelled ctx stops
// the send before it starts.
func (p *producerImpl) Publish(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrProducerClosed
	}

	record := &sarama.ProducerMessage{
		Topic:   p.topic,
		Value:   sarama.ByteEncoder(msg.Value),
		Headers: recordHeaders(msg.Headers),
	}
	if msg.Key != "" {
		record.Key = sarama.StringEncoder(msg.Key)
	}
	if _, _, err := p.producer.SendMessage(record); err != nil {
		return fmt.Errorf("failed to publish message to Kafka: %w", err)
	}
	return nil
}

func (p *producerImpl) Topic() string {
	return p.topic
}

func (p *producerImpl) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.producer.Close()
}

func (p *producerImpl) HealthCheck() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrProducerClosed
	}
	return nil
}

// recordHeaders sorts by key so records are byte-stable.
func recordHeaders(h map[string]string) []sarama.RecordHeader {
	if len(h) == 0 {
		return nil
	}
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]sarama.RecordHeader, 0, len(keys))
	for _, k := range keys {
		out = append(out, sarama.RecordHeader{Key: []byte(k), Value: []byte(h[k])})
	}
	return out
}
