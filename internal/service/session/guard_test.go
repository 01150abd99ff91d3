package session

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type failingStore struct {
	*MemoryStore
}

func (s *failingStore) Save(context.Context, string, time.Time, time.Duration) error {
	return errors.New("redis down")
}

func newTestGuard() (*Guard, *fakeClock, *MemoryStore) {
	clock := &fakeClock{now: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)}
	store := NewMemoryStore()
	guard := NewGuard(store, clock, 10*time.Minute, time.Minute, logger.NewWithWriter(io.Discard, "debug"))
	return guard, clock, store
}

func TestGuard_IdleWarningThenKeydownClearsIt(t *testing.T) {
	ctx := context.Background()
	guard, clock, _ := newTestGuard()
	require.NoError(t, guard.Init(ctx, "sess-1"))

	clock.Advance(9 * time.Minute)
	status, err := guard.Status(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, StateWarning, status.State)
	assert.Equal(t, time.Minute, status.Remaining)

	status, err = guard.Touch(ctx, "sess-1", EventKeyDown)
	require.NoError(t, err)
	assert.Equal(t, StateActive, status.State)
	assert.Equal(t, 10*time.Minute, status.Remaining)
}

func TestGuard_ExpiredOnReload(t *testing.T) {
	ctx := context.Background()
	guard, clock, store := newTestGuard()
	require.NoError(t, guard.Init(ctx, "sess-1"))

	clock.Advance(11 * time.Minute)

	status, err := guard.Status(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, StateExpired, status.State)
	assert.Zero(t, status.Remaining)

	_, ok, _ := store.Load(ctx, "sess-1")
	assert.False(t, ok, "expired session must be torn down")

	_, err = guard.Status(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.False(t, guard.IsLive(ctx, "sess-1"))
}

func TestGuard_StateBoundaries(t *testing.T) {
	tests := []struct {
		idle time.Duration
		want State
	}{
		{idle: 0, want: StateActive},
		{idle: 8*time.Minute + 59*time.Second, want: StateActive},
		{idle: 9 * time.Minute, want: StateWarning},
		{idle: 9*time.Minute + 59*time.Second, want: StateWarning},
		{idle: 10 * time.Minute, want: StateExpired},
	}

	for _, tt := range tests {
		t.Run(tt.idle.String(), func(t *testing.T) {
			ctx := context.Background()
			guard, clock, _ := newTestGuard()
			require.NoError(t, guard.Init(ctx, "s"))

			clock.Advance(tt.idle)
			status, err := guard.Status(ctx, "s")
			require.NoError(t, err)
			assert.Equal(t, tt.want, status.State)
		})
	}
}

func TestGuard_OnlyUserEventsCount(t *testing.T) {
	ctx := context.Background()
	guard, clock, _ := newTestGuard()
	require.NoError(t, guard.Init(ctx, "s"))

	clock.Advance(5 * time.Minute)
	for _, event := range []ActivityEvent{"mousemove", "focus", ""} {
		_, err := guard.Touch(ctx, "s", event)
		assert.ErrorIs(t, err, ErrIgnoredEvent)
	}

	status, err := guard.Status(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, status.Remaining)

	for _, event := range []ActivityEvent{EventPointerDown, EventKeyDown, EventScroll, EventTouchStart} {
		_, err := guard.Touch(ctx, "s", event)
		assert.NoError(t, err)
	}
}

func TestGuard_ExtendAndTouchAfterExpiry(t *testing.T) {
	ctx := context.Background()
	guard, clock, _ := newTestGuard()
	require.NoError(t, guard.Init(ctx, "s"))

	clock.Advance(9*time.Minute + 30*time.Second)
	status, err := guard.Extend(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, StateActive, status.State)

	clock.Advance(10 * time.Minute)
	_, err = guard.Extend(ctx, "s")
	assert.ErrorIs(t, err, ErrSessionExpired)

	_, err = guard.Touch(ctx, "s", EventScroll)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGuard_Teardown(t *testing.T) {
	ctx := context.Background()
	guard, _, _ := newTestGuard()
	require.NoError(t, guard.Init(ctx, "s"))
	assert.True(t, guard.IsLive(ctx, "s"))

	require.NoError(t, guard.Teardown(ctx, "s"))
	assert.False(t, guard.IsLive(ctx, "s"))
}

func TestGuard_StoreFailure(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	guard := NewGuard(&failingStore{MemoryStore: NewMemoryStore()}, clock, 10*time.Minute, time.Minute, logger.NewWithWriter(io.Discard, "debug"))

	err := guard.Init(context.Background(), "s")
	assert.ErrorIs(t, err, ErrStore)
}
