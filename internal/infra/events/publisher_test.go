package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

type fakePublisher struct {
	channel string
	message []byte
	err     error
}

func (f *fakePublisher) Publish(_ context.Context, channel string, message interface{}) *redis.IntCmd {
	f.channel = channel
	f.message, _ = message.([]byte)
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	return redis.NewIntResult(1, nil)
}

func TestPublish(t *testing.T) {
	client := &fakePublisher{}
	publisher := NewPublisher(client, "", logger.NewWithWriter(io.Discard, "debug"))

	r := &domain.Reservation{
		ID:            5,
		Token:         "secret-token",
		ArrivalDate:   types.MustParseDate("2026-08-01"),
		DepartureDate: types.MustParseDate("2026-08-08"),
		Status:        domain.StatusApproved,
		Email:         "ada@example.com",
	}
	at := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, publisher.Publish(context.Background(), domain.NewReservationEvent(domain.EventApproved, r, at)))
	assert.Equal(t, DefaultChannel, client.channel)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(client.message, &got))
	assert.Equal(t, "approved", got["event"])

	snapshot := got["reservation"].(map[string]interface{})
	assert.Equal(t, float64(5), snapshot["id"])
	assert.Equal(t, "2026-08-01", snapshot["arrivalDate"])
	assert.NotContains(t, string(client.message), "secret-token")
}

func TestPublish_RedisDown(t *testing.T) {
	client := &fakePublisher{err: errors.New("connection refused")}
	publisher := NewPublisher(client, "custom", logger.NewWithWriter(io.Discard, "debug"))

	err := publisher.Publish(context.Background(), domain.NewReservationEvent(domain.EventPaid, &domain.Reservation{ID: 1}, time.Now()))
	assert.ErrorIs(t, err, ErrPublish)
	assert.Equal(t, "custom", client.channel)
}
