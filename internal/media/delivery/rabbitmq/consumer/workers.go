package consumer

import (
	"context"
	"encoding/json"

	rabbitDelivery "spyglass-srv/internal/media/delivery/rabbitmq"
	"spyglass-srv/internal/model"
	"spyglass-srv/pkg/scope"

	amqp "github.com/rabbitmq/amqp091-go"
)

// handleVideoJob acks once the usecase has recorded an outcome. A job
// interrupted by shutdown is requeued so the next worker resumes polling.
func (c *Consumer) handleVideoJob(ctx context.Context, d amqp.Delivery) {
	var message rabbitDelivery.VideoJobMessage
	if err := json.Unmarshal(d.Body, &message); err != nil {
		c.l.Warnf(ctx, "media.delivery.rabbitmq.consumer.handleVideoJob: invalid message format (dropping): %v", err)
		c.reject(ctx, d)
		return
	}
	if message.JobID == "" || message.Owner == "" {
		c.l.Warnf(ctx, "media.delivery.rabbitmq.consumer.handleVideoJob: missing job id or owner (dropping)")
		c.reject(ctx, d)
		return
	}

	ctx = scope.SetScopeToContext(ctx, model.Scope{UserID: message.Owner, Role: model.RoleSystem})

	if err := c.uc.ProcessVideoJob(ctx, toVideoJobTask(message)); err != nil {
		c.l.Warnf(ctx, "media.delivery.rabbitmq.consumer.handleVideoJob: job %s interrupted, requeueing: %v", message.JobID, err)
		if err := d.Nack(false, true); err != nil {
			c.l.Errorf(ctx, "media.delivery.rabbitmq.consumer.handleVideoJob: Nack failed: %v", err)
		}
		return
	}

	if err := d.Ack(false); err != nil {
		c.l.Errorf(ctx, "media.delivery.rabbitmq.consumer.handleVideoJob: Ack failed: %v", err)
	}
}

func (c *Consumer) reject(ctx context.Context, d amqp.Delivery) {
	if err := d.Reject(false); err != nil {
		c.l.Errorf(ctx, "media.delivery.rabbitmq.consumer.reject: Reject failed: %v", err)
	}
}
