// Package amqpbus publishes lifecycle events to a RabbitMQ topic exchange so
// out-of-process consumers (kitchen displays, BI, printers) can subscribe.
// Publishing is best effort: failures are logged and never surfaced to the
// command that triggered the event.
package amqpbus

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"comanda/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchange = "pedidos_topic"

// Publisher implements ports.EventPublisher over an AMQP connection. Events
// are routed by channel name, with the event name carried in a header, so a
// consumer can bind a queue to "cozinha" or to "#".
type Publisher struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	logger *slog.Logger
}

// Dial connects to the broker and declares the topic exchange.
func Dial(url string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &Publisher{
		conn:   conn,
		ch:     ch,
		logger: logger.With("component", "amqpbus"),
	}, nil
}

// Publish sends the event once per channel with the channel name as routing
// key. Marshalling or broker errors are logged, not returned.
func (p *Publisher) Publish(ctx context.Context, event order.Event) {
	body, err := json.Marshal(event.Payload)
	if err != nil {
		p.logger.Error("failed to marshal event payload",
			"event", event.Name,
			"error", err,
		)
		return
	}

	for _, channel := range event.Channels {
		err = p.ch.PublishWithContext(ctx, exchange, string(channel), false, false, amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			ContentType:  "application/json",
			Headers:      amqp.Table{"event": event.Name},
			Body:         body,
		})
		if err != nil {
			p.logger.Error("failed to publish event",
				"event", event.Name,
				"channel", string(channel),
				"error", err,
			)
		}
	}
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
