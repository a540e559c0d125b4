package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"time"

	"tavolo/config"
	"tavolo/infras/kafka"
	"tavolo/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	TypeCreated   = "reservation.created"
	TypeModified  = "reservation.modified"
	TypeCancelled = "reservation.cancelled"
)

// ReservationEvent is the payload written to the reservation events topic
// after a booking group changes.
type ReservationEvent struct {
	Type           string    `json:"type"`
	BookingGroupID string    `json:"bookingGroupId"`
	Phone          string    `json:"phone"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	NumPeople      int       `json:"numPeople"`
	TableNumbers   []int     `json:"tableNumbers"`
	OccurredAt     time.Time `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, event ReservationEvent)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
}

func NewPublisher(client kafka.Client, cfg *config.Config) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
	}
}

// Publish writes the event keyed by booking group so that consumers see the
// lifecycle of one group in order. Delivery failures are logged and dropped;
// bookings never fail because the broker is down.
func (p *publisherImpl) Publish(ctx context.Context, event ReservationEvent) {
	event.OccurredAt = timezone.Now()

	go func() {
		c := context.WithoutCancel(ctx)

		err := p.client.SendMessages(c, p.cfg.Kafka.Topics.ReservationEvents, kafka.Message{
			Key:   event.BookingGroupID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("type", event.Type).Msg("failed to publish reservation event")
		}
	}()
}
