package consumer

import (
	"context"
	"fmt"

	rabbitDelivery "spyglass-srv/internal/media/delivery/rabbitmq"
	pkgRabbit "spyglass-srv/pkg/rabbitmq"
)

// ConsumeVideoJobs declares the topology and starts handling deliveries
// until ctx is cancelled. Prefetch bounds the number of jobs in flight.
func (c *Consumer) ConsumeVideoJobs(ctx context.Context) error {
	if err := c.ch.ExchangeDeclare(pkgRabbit.ExchangeArgs{
		Name:    c.cfg.VideoExchange,
		Type:    pkgRabbit.ExchangeTypeDirect,
		Durable: true,
	}); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	dlx, err := c.declareDeadLetter()
	if err != nil {
		return err
	}

	if _, err := c.ch.QueueDeclare(pkgRabbit.QueueArgs{
		Name:               c.cfg.VideoQueue,
		Durable:            true,
		DeadLetterExchange: dlx,
	}); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := c.ch.QueueBind(pkgRabbit.QueueBindArgs{
		Queue:      c.cfg.VideoQueue,
		Exchange:   c.cfg.VideoExchange,
		RoutingKey: rabbitDelivery.RoutingKeyVideoJob,
	}); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	prefetch := c.cfg.PrefetchCount
	if prefetch <= 0 {
		prefetch = rabbitDelivery.DefaultPrefetchCount
	}
	if err := c.ch.Qos(prefetch); err != nil {
		return fmt.Errorf("failed to set qos: %w", err)
	}

	deliveries, err := c.ch.Consume(pkgRabbit.ConsumeArgs{
		Queue:    c.cfg.VideoQueue,
		Consumer: rabbitDelivery.ConsumerTagVideo,
	})
	if err != nil {
		return fmt.Errorf("failed to consume: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					c.l.Warnf(ctx, "media.delivery.rabbitmq.consumer.ConsumeVideoJobs: delivery channel closed")
					return
				}
				c.wg.Add(1)
				go func() {
					defer c.wg.Done()
					c.handleVideoJob(ctx, d)
				}()
			}
		}
	}()

	c.l.Infof(ctx, "Consuming %s", c.cfg.VideoQueue)
	return nil
}

// declareDeadLetter sets up the fanout exchange and parking queue for
// rejected video jobs and returns the exchange name.
func (c *Consumer) declareDeadLetter() (string, error) {
	exchange := c.cfg.VideoExchange + rabbitDelivery.DeadLetterExchangeSuffix
	queue := c.cfg.VideoQueue + rabbitDelivery.DeadLetterQueueSuffix

	if err := c.ch.ExchangeDeclare(pkgRabbit.ExchangeArgs{
		Name:    exchange,
		Type:    pkgRabbit.ExchangeTypeFanout,
		Durable: true,
	}); err != nil {
		return "", fmt.Errorf("failed to declare dead-letter exchange: %w", err)
	}
	if _, err := c.ch.QueueDeclare(pkgRabbit.QueueArgs{
		Name:    queue,
		Durable: true,
	}); err != nil {
		return "", fmt.Errorf("failed to declare dead-letter queue: %w", err)
	}
	if err := c.ch.QueueBind(pkgRabbit.QueueBindArgs{
		Queue:    queue,
		Exchange: exchange,
	}); err != nil {
		return "", fmt.Errorf("failed to bind dead-letter queue: %w", err)
	}
	return exchange, nil
}
