package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"career-match/internal/config"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

const (
	RoutingJobPosted            = "job.posted"
	RoutingApplicationSubmitted = "application.submitted"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close() error
}

// Event is the envelope of every message published on the exchange.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

func NewEvent(routingKey string, payload any, at time.Time) Event {
	return Event{ID: uuid.NewString(), Type: routingKey, OccurredAt: at.UTC(), Data: payload}
}

// AMQP publishes JSON events to a durable topic exchange over one channel.
type AMQP struct {
	conn     *amqp.Connection
	exchange string
	logger   *log.Logger

	mu sync.Mutex
	ch *amqp.Channel
}

func DialAMQP(cfg config.BrokerConfig, logger *log.Logger) (*AMQP, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}
	return &AMQP{conn: conn, ch: ch, exchange: cfg.Exchange, logger: logger}, nil
}

func (p *AMQP) Publish(ctx context.Context, routingKey string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ev := NewEvent(routingKey, payload, time.Now())
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.Publish(p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.ID,
		Timestamp:    ev.OccurredAt,
		Type:         routingKey,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	if p.logger != nil {
		p.logger.Printf("[Broker] published %s id=%s", routingKey, ev.ID)
	}
	return nil
}

func (p *AMQP) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		_ = p.ch.Close()
	}
	return p.conn.Close()
}

// Noop drops events. It is used when no broker URL is configured.
type Noop struct {
	Logger *log.Logger
}

func (n Noop) Publish(_ context.Context, routingKey string, _ any) error {
	if n.Logger != nil {
		n.Logger.Printf("[Broker] disabled, dropping %s", routingKey)
	}
	return nil
}

func (Noop) Close() error { return nil }
