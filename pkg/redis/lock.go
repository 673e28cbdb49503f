package redis

import (
	"context"
	"errors"
	"fmt"
	"leaguecatalog/pkg/messages"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockHeld is returned when another request owns the lock.
var ErrLockHeld = errors.New(messages.OperationInProgress)

// Only delete the key if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker hands out short lived SET NX locks.
type Locker struct {
	client *RedisClient
	prefix string
	ttl    time.Duration
}

// NewLocker creates a locker namespacing every key with prefix.
func NewLocker(client *RedisClient, prefix string, ttl time.Duration) *Locker {
	return &Locker{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Acquire takes the lock for key or fails with ErrLockHeld.
// The returned function releases it and is safe to call once the ttl expired.
func (l *Locker) Acquire(ctx context.Context, key string) (func(), error) {
	lockKey := fmt.Sprintf("%s:%s", l.prefix, key)
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("couldn't acquire the lock on redis: %w", err)
	}

	if !acquired {
		return nil, ErrLockHeld
	}

	release := func() {
		// The request context may already be cancelled at this point.
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		releaseScript.Run(ctx, l.client.Client, []string{lockKey}, token)
	}

	return release, nil
}
