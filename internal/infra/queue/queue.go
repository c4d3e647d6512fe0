package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher writes JSON messages to one durable queue.
type Publisher struct {
	ch    *amqp.Channel
	queue string
	log   *zap.Logger
}

func NewPublisher(conn *amqp.Connection, queue string, log *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return &Publisher{ch: ch, queue: queue, log: log}, nil
}

func (p *Publisher) PublishJSON(ctx context.Context, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	return p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

func (p *Publisher) Close() error { return p.ch.Close() }

// Consumer reads messages from one durable queue and hands them to a handler.
// A handler error nacks the message without requeue.
type Consumer struct {
	ch    *amqp.Channel
	queue string
	log   *zap.Logger
}

func NewConsumer(conn *amqp.Connection, queue string, prefetch int, log *zap.Logger) (*Consumer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	if prefetch > 0 {
		if err := ch.Qos(prefetch, 0, false); err != nil {
			_ = ch.Close()
			return nil, fmt.Errorf("set qos: %w", err)
		}
	}
	return &Consumer{ch: ch, queue: queue, log: log}, nil
}

// Consume blocks until ctx is done or the delivery channel closes.
func (c *Consumer) Consume(ctx context.Context, handle func(ctx context.Context, body []byte) error) error {
	deliveries, err := c.ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.queue, err)
	}

	for {
		select {
		case <-ctx.Done():
			return c.ch.Close()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			if err := handle(ctx, d.Body); err != nil {
				c.log.Sugar().Warnw("message handler failed", "queue", c.queue, "err", err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}
