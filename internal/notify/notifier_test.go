package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/roguepikachu/smileline/internal/domain"
	"github.com/segmentio/kafka-go"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafka_PublishesKeyedEvent(t *testing.T) {
	w := &recordingWriter{}
	n := NewKafkaWithWriter(w)
	received := time.Date(2025, 9, 2, 10, 0, 0, 0, time.UTC)
	s := domain.ContactSubmission{ID: "sub-1", Name: "Ana", Email: "ana@example.com", Message: "hello", ReceivedAt: received}

	if err := n.NotifyContact(context.Background(), s); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("want 1 message, got %d", len(w.msgs))
	}
	m := w.msgs[0]
	if string(m.Key) != "sub-1" || !m.Time.Equal(received) {
		t.Fatalf("unexpected message meta: key=%s time=%s", m.Key, m.Time)
	}
	var ev contactEvent
	if err := json.Unmarshal(m.Value, &ev); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ev.Entity != "contact" || ev.Action != "created" || ev.ResourceID != "sub-1" || ev.Data.Email != "ana@example.com" {
		t.Fatalf("unexpected event: %+v", ev)
	}

	if err := n.Close(); err != nil || !w.closed {
		t.Fatalf("close: %v closed=%v", err, w.closed)
	}
}

func TestKafka_WriteError(t *testing.T) {
	boom := errors.New("broker down")
	n := NewKafkaWithWriter(&recordingWriter{err: boom})
	err := n.NotifyContact(context.Background(), domain.ContactSubmission{ID: "x"})
	if !errors.Is(err, boom) {
		t.Fatalf("want wrapped broker error, got %v", err)
	}
}

func TestLog_NeverFails(t *testing.T) {
	if err := (Log{}).NotifyContact(context.Background(), domain.ContactSubmission{ID: "x"}); err != nil {
		t.Fatalf("log notifier: %v", err)
	}
}
