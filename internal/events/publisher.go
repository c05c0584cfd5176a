package events

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"ehotel/config"
	"ehotel/infras/kafka"
	"ehotel/shared/constant"
	"ehotel/shared/timezone"
)

const (
	TypeBookingCreated    = "booking.created"
	TypeBookingCheckedIn  = "booking.checked_in"
	TypeRentingCreated    = "renting.created"
	TypeRentingCheckedOut = "renting.checked_out"
	TypePaymentRecorded   = "payment.recorded"
)

// Envelope wraps every event on the stream.
type Envelope struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	OccurredAt string `json:"occurred_at"`
	Payload    any    `json:"payload"`
}

// Publisher emits reservation lifecycle events. Publishing is best effort:
// the triggering operation has already committed, so failures are logged
// and never surfaced to the caller.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
}

func New(client kafka.Client, cfg *config.Config) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, eventType string, payload any) {
	envelope := Envelope{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
		Payload:    payload,
	}

	message := kafka.Message{
		Key:   envelope.ID,
		Value: envelope,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := p.client.SendMessages(c, p.cfg.Kafka.EventTopic, message); err != nil {
			log.Error().Err(err).Str("type", eventType).Msg("failed to publish event")
		}
	}()
}
