// Package events publishes booking notifications to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"hospital-bed-booking/internal/config"

	"github.com/segmentio/kafka-go"
)

// TypeBookingConfirmed is emitted after a booking commits
const TypeBookingConfirmed = "booking.confirmed"

// BookingEvent is the message body written for each confirmed booking
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  uint      `json:"booking_id"`
	HospitalID uint      `json:"hospital_id"`
	PatientID  uint      `json:"patient_id"`
	DoctorID   *uint     `json:"doctor_id,omitempty"`
	BedType    string    `json:"bed_type"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers booking events
type Publisher interface {
	PublishBooking(ctx context.Context, event BookingEvent) error
	Close() error
}

// messageWriter is the part of *kafka.Writer the publisher uses
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher creates a publisher writing to topic on the given brokers
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 5 * time.Second,
	}
	return &KafkaPublisher{writer: writer}
}

// New returns a Kafka publisher, or a no-op one when no brokers are configured
func New(cfg config.KafkaConfig) Publisher {
	if len(cfg.Brokers) == 0 {
		return NopPublisher{}
	}
	return NewKafkaPublisher(cfg.Brokers, cfg.Topic)
}

// PublishBooking writes the event keyed by hospital so a hospital's events stay ordered
func (p *KafkaPublisher) PublishBooking(ctx context.Context, event BookingEvent) error {
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.HospitalID), 10)),
		Value: message,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to produce message: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher discards every event
type NopPublisher struct{}

func (NopPublisher) PublishBooking(context.Context, BookingEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
