package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// DefaultChannel канал событий жизненного цикла бронирований
const DefaultChannel = "reservations.events"

// Publisher публикует события жизненного цикла в Redis Pub/Sub
type Publisher struct {
	client  RedisPublisher
	channel string
	logger  Logger
}

// NewPublisher создает publisher
func NewPublisher(client RedisPublisher, channel string, logger Logger) *Publisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Publisher{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

// Publish сериализует событие и публикует его в канал
func (p *Publisher) Publish(ctx context.Context, event domain.ReservationEvent) error {
	data, err := json.Marshal(toPayload(event))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	receivers, err := p.client.Publish(ctx, p.channel, data).Result()
	if err != nil {
		return fmt.Errorf("%w: channel=%s: %v", ErrPublish, p.channel, err)
	}

	p.logger.Info("Publish: %s for reservation id=%d delivered to %d subscriber(s)",
		event.Type, event.Reservation.ID, receivers)
	return nil
}

func toPayload(event domain.ReservationEvent) payload {
	r := event.Reservation
	return payload{
		Event:      string(event.Type),
		OccurredAt: event.OccurredAt,
		Reservation: reservationPayload{
			ID:                   r.ID,
			Status:               string(r.Status),
			ArrivalDate:          r.ArrivalDate.String(),
			DepartureDate:        r.DepartureDate.String(),
			Nights:               r.Nights,
			Guests:               r.Guests,
			FirstName:            r.FirstName,
			LastName:             r.LastName,
			Email:                r.Email,
			Phone:                r.Phone,
			Total:                r.Total,
			PromoCode:            r.PromoCode,
			PromoDiscount:        r.PromoDiscount,
			DepositAmount:        r.DepositAmount,
			RejectionReason:      r.RejectionReason,
			StripePaymentLinkURL: r.StripePaymentLinkURL,
			SmoobuReservationID:  r.SmoobuReservationID,
			Locale:               r.Locale,
		},
	}
}
