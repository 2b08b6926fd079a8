package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"spyglass-srv/internal/media"
	rabbitDelivery "spyglass-srv/internal/media/delivery/rabbitmq"
	pkgRabbit "spyglass-srv/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (p *implProducer) Setup() error {
	if err := p.ch.ExchangeDeclare(pkgRabbit.ExchangeArgs{
		Name:    p.exchange,
		Type:    pkgRabbit.ExchangeTypeDirect,
		Durable: true,
	}); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", p.exchange, err)
	}
	return nil
}

// PublishVideoJob publishes a persistent message for the worker.
func (p *implProducer) PublishVideoJob(ctx context.Context, task media.VideoJobTask) error {
	body, err := json.Marshal(rabbitDelivery.VideoJobMessage{
		JobID:       task.JobID,
		Owner:       task.Owner,
		Prompt:      task.Prompt,
		ImageObject: task.ImageObject,
		MimeType:    task.MimeType,
		AspectRatio: task.AspectRatio,
		QueuedAt:    p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal video job: %w", err)
	}

	if err := p.ch.Publish(ctx, pkgRabbit.PublishArgs{
		Exchange:   p.exchange,
		RoutingKey: rabbitDelivery.RoutingKeyVideoJob,
		Msg: pkgRabbit.Publishing{
			ContentType:  pkgRabbit.ContentTypeJSON,
			DeliveryMode: amqp.Persistent,
			MessageId:    task.JobID,
			Body:         body,
		},
	}); err != nil {
		return fmt.Errorf("failed to publish video job: %w", err)
	}

	p.l.Infof(ctx, "media.delivery.rabbitmq.producer.PublishVideoJob: queued job %s for %s", task.JobID, task.Owner)
	return nil
}
