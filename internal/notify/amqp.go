package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Leganyst/seminar-hall-booking/internal/model"
)

const RoutingKeyBookingNotification = "booking.notification"

type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewPublisher(url, exchange string) (*Publisher, error) {
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
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         b,
	})
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// JSONPublisher: то, что нужно AMQPSink от брокера. В тестах подменяется.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Payload уходит в брокер как есть.
type Payload struct {
	NotificationID string    `json:"notification_id,omitempty"`
	RecipientID    string    `json:"recipient_id"`
	BookingID      string    `json:"booking_id"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

// AMQPSink публикует уведомление в topic exchange.
type AMQPSink struct {
	pub JSONPublisher
	key string
}

func NewAMQPSink(pub JSONPublisher) *AMQPSink {
	return &AMQPSink{pub: pub, key: RoutingKeyBookingNotification}
}

func (s *AMQPSink) Send(ctx context.Context, n *model.Notification) error {
	p := Payload{
		RecipientID: n.RecipientID.String(),
		BookingID:   n.BookingID.String(),
		Message:     n.Message,
		CreatedAt:   n.CreatedAt,
	}
	// ID появляется, только если уведомление уже сохранено
	if n.ID != uuid.Nil {
		p.NotificationID = n.ID.String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	if err := s.pub.PublishJSON(ctx, s.key, p); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}
