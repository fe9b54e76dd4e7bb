package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/pkg/metrics"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/pkg/util"
)

type MessageHandler func(ctx context.Context, data json.RawMessage) error

// Consumer binds one durable queue to one routing key on the events
// exchange and dispatches deliveries to its handler. Failed deliveries are
// requeued only when the error classifies as retryable; everything else is
// nacked without requeue so a poison message cannot loop forever.
type Consumer struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	queue      amqp091.Queue
	routingKey string
	handler    MessageHandler
	logger     *zap.Logger
}

// NewConsumer creates a consumer for a queue bound to routingKey,
// e.g. ("email.received.analyze.q", "email.received").
func NewConsumer(url, queueName, routingKey string, logger *zap.Logger) (*Consumer, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		ExchangeName,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		routingKey,
		ExchangeName,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	return &Consumer{
		conn:       conn,
		channel:    ch,
		queue:      q,
		routingKey: routingKey,
		logger:     logger,
	}, nil
}

func (c *Consumer) SetHandler(h MessageHandler) {
	c.handler = h
}

func (c *Consumer) Close() {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// StartConsuming blocks and should be called in a goroutine.
func (c *Consumer) StartConsuming() error {
	if c.handler == nil {
		return fmt.Errorf("consumer handler not set")
	}

	msgs, err := c.channel.Consume(
		c.queue.Name,
		"worker",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("Consumer started",
		zap.String("routing_key", c.routingKey),
		zap.String("queue", c.queue.Name),
	)

	for msg := range msgs {
		ctx := context.Background()
		start := time.Now()

		if err := c.handler(ctx, msg.Body); err != nil {
			retryable, kind := util.IsRetryableError(err)
			c.logger.Error("Handler failed",
				zap.String("routing_key", c.routingKey),
				zap.String("error_type", kind),
				zap.Bool("retryable", retryable),
				zap.Error(err),
			)
			if retryable && !msg.Redelivered {
				_ = msg.Nack(false, true)
				continue
			}
			// Non-retryable or already redelivered once: drop it.
			_ = msg.Nack(false, false)
			continue
		}

		metrics.RecordMQConsumeLatency(c.routingKey, c.queue.Name, time.Since(start))
		if err := msg.Ack(false); err != nil {
			c.logger.Error("Failed to ack message",
				zap.String("routing_key", c.routingKey),
				zap.Error(err),
			)
		}
	}

	return nil
}
