package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultKeyPrefix = "pulse:lock:"
	releaseTimeout   = 5 * time.Second
)

// releaseScript deletes the key only while it still carries the caller's token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a Locker shared by every process talking to the same Redis.
type RedisLocker struct {
	client *goredis.Client
	prefix string
	logger *zap.SugaredLogger
}

// NewRedisLocker parses a redis:// URL and returns a locker using it.
func NewRedisLocker(url string, logger *zap.SugaredLogger) (*RedisLocker, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewRedisLockerFromClient(goredis.NewClient(opts), "", logger), nil
}

// NewRedisLockerFromClient wraps an existing client. An empty prefix selects the default one.
func NewRedisLockerFromClient(client *goredis.Client, prefix string, logger *zap.SugaredLogger) *RedisLocker {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RedisLocker{client: client, prefix: prefix, logger: logger}
}

// Ping checks connectivity to the Redis server.
func (l *RedisLocker) Ping(ctx context.Context) error {
	if err := l.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (l *RedisLocker) Close() error {
	return l.client.Close()
}

// Acquire takes the lock with SET NX PX and a random token.
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.prefix+key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, ErrLocked
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
			defer cancel()
			if err := releaseScript.Run(ctx, l.client, []string{l.prefix + key}, token).Err(); err != nil {
				l.logger.Warnw("failed to release lock", "key", key, "error", err)
			}
		})
	}, nil
}

// New returns a Redis locker when redisURL is set and an in-process locker otherwise.
// The returned close function releases the Redis connection.
func New(redisURL string, logger *zap.SugaredLogger) (Locker, func() error, error) {
	if redisURL == "" {
		return NewMemoryLocker(), func() error { return nil }, nil
	}

	locker, err := NewRedisLocker(redisURL, logger)
	if err != nil {
		return nil, nil, err
	}
	return locker, locker.Close, nil
}
