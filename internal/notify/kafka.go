package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/roguepikachu/smileline/internal/domain"
	"github.com/segmentio/kafka-go"
)

// contactEvent is the message published for each submission.
type contactEvent struct {
	Entity     string                   `json:"entity"`
	Action     string                   `json:"action"`
	ResourceID string                   `json:"resourceId"`
	Data       domain.ContactSubmission `json:"data"`
}

// MessageWriter is the subset of *kafka.Writer the notifier needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka publishes submissions to a topic keyed by submission ID.
type Kafka struct {
	writer MessageWriter
}

// NewKafka creates a notifier writing to topic on brokers.
func NewKafka(brokers []string, topic string) *Kafka {
	return NewKafkaWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 5 * time.Second,
	})
}

// NewKafkaWithWriter wraps an existing writer.
func NewKafkaWithWriter(w MessageWriter) *Kafka {
	return &Kafka{writer: w}
}

// NotifyContact publishes one contact.created event for s.
func (k *Kafka) NotifyContact(ctx context.Context, s domain.ContactSubmission) error {
	msg, err := encodeContact(s)
	if err != nil {
		return err
	}
	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (k *Kafka) Close() error {
	return k.writer.Close()
}

func encodeContact(s domain.ContactSubmission) (kafka.Message, error) {
	body, err := json.Marshal(contactEvent{
		Entity:     "contact",
		Action:     "created",
		ResourceID: s.ID,
		Data:       s,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode contact event: %w", err)
	}
	return kafka.Message{Key: []byte(s.ID), Value: body, Time: s.ReceivedAt}, nil
}
