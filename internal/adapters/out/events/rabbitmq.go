// Package events publishes locker integration events to a message broker.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"lockers/internal/core/ports"
	"lockers/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the part of an AMQP channel the publisher uses.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Rabbit publishes every event to a durable topic exchange, routed by event type.
type Rabbit struct {
	conn     *amqp.Connection
	ch       Channel
	exchange string
}

// DialRabbit connects to url and declares exchange.
func DialRabbit(url, exchange string) (*Rabbit, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	r, err := NewRabbit(ch, exchange)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	r.conn = conn
	return r, nil
}

func NewRabbit(ch Channel, exchange string) (*Rabbit, error) {
	if ch == nil {
		return nil, errs.NewValueIsRequiredError("amqp channel")
	}
	if exchange == "" {
		return nil, errs.NewValueIsRequiredError("exchange")
	}
	return &Rabbit{ch: ch, exchange: exchange}, nil
}

func (r *Rabbit) Publish(ctx context.Context, event ports.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return r.ch.PublishWithContext(ctx, r.exchange, event.Type, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Timestamp:    event.OccurredAt,
		Type:         event.Type,
		Body:         body,
	})
}

func (r *Rabbit) Close() error {
	if r.ch != nil {
		_ = r.ch.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
