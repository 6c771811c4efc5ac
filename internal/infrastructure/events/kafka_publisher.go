package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"insurance_xpto/internal/usecase/interfaces"
)

// Envelope is the value written to Kafka for every domain event.
type Envelope struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
	topic  string
	now    func() time.Time
}

var _ interfaces.IEventPublisher = (*KafkaPublisher)(nil)

// NewKafkaPublisher writes every event to topic, keyed so events of one
// aggregate stay ordered within a partition.
func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	if topic == "" {
		topic = "insurance.events"
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
		topic: topic,
		now:   func() time.Time { return time.Now().UTC() },
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, eventType string, key string, payload any) error {
	now := p.now()
	value, err := json.Marshal(Envelope{Type: eventType, OccurredAt: now, Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", eventType, err)
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(key),
		Value: value,
		Time:  now,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher is used when no broker is configured.
type LogPublisher struct{}

var _ interfaces.IEventPublisher = LogPublisher{}

func (LogPublisher) Publish(_ context.Context, eventType string, key string, _ any) error {
	log.Printf("[events] %s key=%s (no broker configured)", eventType, key)
	return nil
}
