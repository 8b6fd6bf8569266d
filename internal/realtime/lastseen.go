package realtime

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/Jack-Berry/UMC-Back/internal/model"
)

var (
	_ model.LastSeenStore = (*MemoryLastSeen)(nil)
	_ model.LastSeenStore = (*RedisLastSeen)(nil)
)

// MemoryLastSeen keeps last-seen timestamps in process memory.
type MemoryLastSeen struct {
	mu   sync.RWMutex
	seen map[int64]time.Time
}

func NewMemoryLastSeen() *MemoryLastSeen {
	return &MemoryLastSeen{seen: make(map[int64]time.Time)}
}

func (m *MemoryLastSeen) Record(_ context.Context, userID int64, at time.Time) error {
	m.mu.Lock()
	m.seen[userID] = at
	m.mu.Unlock()
	return nil
}

func (m *MemoryLastSeen) Get(_ context.Context, userID int64) (time.Time, bool, error) {
	m.mu.RLock()
	at, ok := m.seen[userID]
	m.mu.RUnlock()
	return at, ok, nil
}

const lastSeenKeyPrefix = "umc:lastseen:"

// RedisLastSeen mirrors last-seen timestamps into Redis so that they survive
// restarts and can be read by other services.
type RedisLastSeen struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisLastSeen wraps an existing client. A zero ttl keeps keys forever.
func NewRedisLastSeen(client redis.UniversalClient, ttl time.Duration) *RedisLastSeen {
	return &RedisLastSeen{client: client, ttl: ttl}
}

// DialRedis parses a redis:// URL and verifies the server is reachable.
func DialRedis(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}
	c := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return c, nil
}

func (r *RedisLastSeen) Record(ctx context.Context, userID int64, at time.Time) error {
	return r.client.Set(ctx, lastSeenKey(userID), at.UTC().Format(time.RFC3339Nano), r.ttl).Err()
}

func (r *RedisLastSeen) Get(ctx context.Context, userID int64) (time.Time, bool, error) {
	res, err := r.client.Get(ctx, lastSeenKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	at, err := time.Parse(time.RFC3339Nano, res)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("redis: malformed last seen for user %d: %w", userID, err)
	}
	return at, true, nil
}

func lastSeenKey(userID int64) string {
	return lastSeenKeyPrefix + strconv.FormatInt(userID, 10)
}
