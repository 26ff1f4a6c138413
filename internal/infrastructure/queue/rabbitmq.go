package queue

import (
	"context"
	"fmt"
	"log/slog"

	"work-wizard/internal/config"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Client wraps a single RabbitMQ connection/channel pair bound to the
// application-events exchange. Publishing is attempted exactly once; a lost
// event only costs a notification email, never application state.
type Client struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	queue    string
	logger   *slog.Logger
}

func NewClient(cfg config.RabbitMQConfig, logger *slog.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("empty rabbitmq url")
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(cfg.Queue, "application.*", cfg.Exchange, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	return &Client{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
		queue:    cfg.Queue,
		logger:   logger,
	}, nil
}

func (c *Client) Publish(ctx context.Context, routingKey string, body []byte) error {
	if c == nil || c.channel == nil {
		return fmt.Errorf("rabbitmq client not connected")
	}

	return c.channel.PublishWithContext(ctx, c.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

func (c *Client) Consume(consumerTag string) (<-chan amqp.Delivery, error) {
	if c == nil || c.channel == nil {
		return nil, fmt.Errorf("rabbitmq client not connected")
	}
	return c.channel.Consume(c.queue, consumerTag, false, false, false, false, nil)
}

func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
