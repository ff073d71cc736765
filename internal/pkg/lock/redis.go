// Package lock serializes batch runs that must not interleave, backed by
// redis SET NX keys with a TTL safety net.
package lock

import (
	"context"
	"fmt"
	"time"

	xerrors "fleetmaint-service/internal/pkg/errors"

	"github.com/redis/go-redis/v9"
)

type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisLocker{client: client, ttl: ttl}
}

// Acquire takes the named lock or returns xerrors.ErrLocked when another run
// holds it. The returned release func is safe to call once.
func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	ok, err := l.client.SetNX(ctx, key, "1", l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", xerrors.ErrLocked, key)
	}
	return func() {
		// Best-effort; TTL reclaims the key if the release is lost.
		_ = l.client.Del(context.Background(), key).Err()
	}, nil
}
