// Package queue publishes domain events to RabbitMQ for downstream
// consumers such as the notification service. Publishing is
// best-effort: a broker failure must never fail the request that
// triggered the event.
package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	QueueLayoutRebuilt     = "auditorium.layout.rebuilt"
	QueueSeatsMaterialized = "showtime.seats.materialized"
)

// LayoutRebuiltEvent is published after a layout rebuild commits, so
// consumers can notify affected bookings without querying the database.
type LayoutRebuiltEvent struct {
	AuditoriumID     int      `json:"auditorium_id"`
	Pattern          string   `json:"pattern"`
	SeatCount        int      `json:"seat_count"`
	RebuiltShowtimes []string `json:"rebuilt_showtimes"`
	RebuiltAt        string   `json:"rebuilt_at"`
}

// SeatsMaterializedEvent is published when a scheduled showtime gets its
// seat state.
type SeatsMaterializedEvent struct {
	ShowtimeID     string `json:"showtime_id"`
	AuditoriumID   int    `json:"auditorium_id"`
	MaterializedAt string `json:"materialized_at"`
}

type Publisher struct {
	conn   *amqp.Connection
	logger *slog.Logger
}

// NewPublisher connects to the broker. A nil *Publisher is a valid
// no-op publisher, which is what the app uses when no AMQP URL is
// configured.
func NewPublisher(url string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	return &Publisher{
		conn:   conn,
		logger: logger,
	}, nil
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}

	return p.conn.Close()
}

// Publish marshals the event and sends it to a durable queue named by
// the routing key. Errors are logged and returned; callers ignore them.
func (p *Publisher) Publish(ctx context.Context, queueName string, event any) error {
	if p == nil {
		return nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		p.logger.Error("rabbitmq: channel open failed", "error", err)
		return err
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		p.logger.Error("rabbitmq: queue declare failed", "queue", queueName, "error", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, "", queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.logger.Error("rabbitmq: publish failed", "queue", queueName, "error", err)
		return err
	}

	return nil
}
