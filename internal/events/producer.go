// Package events publishes post lifecycle events for downstream consumers
// (feeds, notifications). Publishing is best effort: a broker outage must
// never fail a user-facing call.
package events

import (
	"context"
	"encoding/json"
	"time"

	kgo "github.com/segmentio/kafka-go"
)

const (
	PostCreated = "post.created"
	PostUpdated = "post.updated"
)

type Event struct {
	Kind   string    `json:"kind"`
	PostID string    `json:"post_id"`
	UserID string    `json:"user_id"`
	At     time.Time `json:"at"`
}

type Producer interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

type kafkaProducer struct{ w *kgo.Writer }

func NewKafkaProducer(broker, topic string) Producer {
	w := &kgo.Writer{
		Addr:         kgo.TCP(broker),
		Topic:        topic,
		Balancer:     &kgo.LeastBytes{},
		RequiredAcks: kgo.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &kafkaProducer{w: w}
}

func (p *kafkaProducer) Publish(ctx context.Context, e Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	msg := kgo.Message{Key: []byte(e.PostID), Value: b, Time: time.Now()}
	return p.w.WriteMessages(ctx, msg)
}

func (p *kafkaProducer) Close() error { return p.w.Close() }

// Nop is used when no broker is configured and in tests.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }
