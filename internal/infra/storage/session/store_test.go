package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	data map[string]string
	ttl  map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = value.(string)
	f.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	value, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	for _, k := range keys {
		delete(f.data, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	store := NewStore(client)

	last := time.Date(2026, 6, 1, 10, 0, 0, 123, time.UTC)
	require.NoError(t, store.Save(ctx, "abc", last, 20*time.Minute))
	assert.Equal(t, 20*time.Minute, client.ttl["admin_session:abc"])

	got, ok, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, last.Equal(got))

	require.NoError(t, store.Delete(ctx, "abc"))
	_, ok, err = store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Errors(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	store := NewStore(client)

	client.data["admin_session:bad"] = "yesterday"
	_, _, err := store.Load(ctx, "bad")
	assert.ErrorIs(t, err, ErrCorruptedValue)

	client.err = errors.New("connection refused")
	assert.ErrorIs(t, store.Save(ctx, "x", time.Now(), time.Minute), ErrRedis)
	_, _, err = store.Load(ctx, "x")
	assert.ErrorIs(t, err, ErrRedis)
	assert.ErrorIs(t, store.Delete(ctx, "x"), ErrRedis)
}
