package events

import (
	"context"
	"strconv"

	"fitbook/pkg/config"
	"fitbook/pkg/kafka"
	kafka_config "fitbook/pkg/kafka/config"
	"fitbook/pkg/logger"
	"fitbook/pkg/model"
)

const eventTypeBookingCreated = "booking.created"

// Publisher emits booking lifecycle events. Failures are the publisher's
// problem; callers never roll back a confirmed booking over a lost event.
type Publisher interface {
	BookingCreated(ctx context.Context, booking *model.Booking) error
	Close() error
}

type kafkaPublisher struct {
	producer *kafka.Producer
	logger   *logger.Logger
}

// NewPublisher wires a Kafka-backed publisher, or a no-op one when
// booking events are disabled in the configuration.
func NewPublisher(cfg *config.Config) (Publisher, error) {
	if !cfg.BookingEventsEnabled {
		cfg.Log.Info("Booking events disabled, using noop publisher")
		return noopPublisher{}, nil
	}

	kcfg, err := kafka_config.Load()
	if err != nil {
		return nil, err
	}

	producer, err := kafka.NewProducer(kcfg, cfg.BookingEventsTopic, cfg.BookingEventsDLQ)
	if err != nil {
		return nil, err
	}

	cfg.Log.Info("Booking event publisher initialized",
		"topic", cfg.BookingEventsTopic,
		"dlq", cfg.BookingEventsDLQ,
	)

	return &kafkaPublisher{
		producer: producer,
		logger:   cfg.Log,
	}, nil
}

func (p *kafkaPublisher) BookingCreated(ctx context.Context, booking *model.Booking) error {
	msg := kafka.NewMessage().
		WithKey(strconv.FormatInt(booking.ClassID, 10)).
		WithValue(booking).
		WithEventType(eventTypeBookingCreated).
		WithSource("fitbook-api").
		Build()

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.logger.Error("Failed to publish booking event",
			"booking_id", booking.ID,
			"class_id", booking.ClassID,
			"error", err,
		)
		return err
	}

	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

type noopPublisher struct{}

func (noopPublisher) BookingCreated(ctx context.Context, booking *model.Booking) error {
	return nil
}

func (noopPublisher) Close() error { return nil }
