package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"hospital-bed-booking/internal/config"

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

func TestNew_NoBrokersIsNop(t *testing.T) {
	if _, ok := New(config.KafkaConfig{Topic: "bed_bookings"}).(NopPublisher); !ok {
		t.Fatal("expected NopPublisher without brokers")
	}
	if _, ok := New(config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "bed_bookings"}).(*KafkaPublisher); !ok {
		t.Fatal("expected KafkaPublisher with brokers")
	}
}

func TestKafkaPublisher_PublishBooking(t *testing.T) {
	w := &recordingWriter{}
	p := &KafkaPublisher{writer: w}

	event := BookingEvent{Type: TypeBookingConfirmed, BookingID: 7, HospitalID: 3, PatientID: 9, BedType: "icu"}
	if err := p.PublishBooking(context.Background(), event); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(w.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.msgs))
	}
	if string(w.msgs[0].Key) != "3" {
		t.Errorf("expected key 3, got %q", w.msgs[0].Key)
	}
	var got BookingEvent
	if err := json.Unmarshal(w.msgs[0].Value, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.BookingID != 7 || got.BedType != "icu" {
		t.Errorf("unexpected payload %+v", got)
	}

	_ = p.Close()
	if !w.closed {
		t.Error("expected writer to be closed")
	}
}

func TestKafkaPublisher_WrapsWriteError(t *testing.T) {
	boom := errors.New("broker down")
	p := &KafkaPublisher{writer: &recordingWriter{err: boom}}

	if err := p.PublishBooking(context.Background(), BookingEvent{}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped broker error, got %v", err)
	}
}
