package producer

import (
	"context"
	"encoding/json"
	"fmt"

	kafkaDelivery "spyglass-srv/internal/analysis/delivery/kafka"
	"spyglass-srv/internal/model"
	pkgKafka "spyglass-srv/pkg/kafka"
)

// PublishAnalysisCompleted publishes evt keyed by owner so one owner's
// events stay ordered.
func (p *implProducer) PublishAnalysisCompleted(ctx context.Context, evt model.AnalysisCompleted) error {
	msg := kafkaDelivery.AnalysisCompletedMessage{
		EventType:   kafkaDelivery.EventTypeAnalysisCompleted,
		ID:          evt.ID,
		Owner:       evt.Owner,
		Competitors: evt.Competitors,
		Mode:        evt.Mode,
		Sections:    evt.Sections,
		CompletedAt: evt.Date,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis completed: %w", err)
	}

	if err := p.producer.Publish(ctx, pkgKafka.Message{
		Key:     evt.Owner,
		Value:   body,
		Headers: map[string]string{pkgKafka.HeaderEventType: kafkaDelivery.EventTypeAnalysisCompleted},
	}); err != nil {
		return fmt.Errorf("failed to publish analysis completed: %w", err)
	}

	p.l.Infof(ctx, "analysis.delivery.kafka.producer.PublishAnalysisCompleted: published %s for %s to %s", evt.ID, evt.Owner, p.producer.Topic())
	return nil
}
