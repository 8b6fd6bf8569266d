package realtime

import (
	"context"
	"testing"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements the subset of redis.UniversalClient used by
// RedisLastSeen.
type fakeRedis struct {
	redis.UniversalClient
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
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func TestMemoryLastSeen(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryLastSeen()

	_, ok, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	at := time.Now()
	require.NoError(t, s.Record(ctx, 1, at))

	got, ok, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, at, got)
}

func TestRedisLastSeen(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	s := NewRedisLastSeen(client, time.Hour)

	_, ok, err := s.Get(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	at := time.Date(2025, 1, 2, 3, 4, 5, 6, time.UTC)
	require.NoError(t, s.Record(ctx, 42, at))
	assert.Equal(t, time.Hour, client.ttl["umc:lastseen:42"])

	got, ok, err := s.Get(ctx, 42)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, at.Equal(got))
}

func TestRedisLastSeen_Errors(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	s := NewRedisLastSeen(client, 0)

	client.data["umc:lastseen:1"] = "not-a-time"
	_, _, err := s.Get(ctx, 1)
	assert.Error(t, err)

	client.err = assert.AnError
	assert.ErrorIs(t, s.Record(ctx, 1, time.Now()), assert.AnError)
	_, _, err = s.Get(ctx, 1)
	assert.ErrorIs(t, err, assert.AnError)
}
