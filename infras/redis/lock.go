package redis

//go:generate go run go.uber.org/mock/mockgen -source=./lock.go -destination=./mocks/lock_mock.go -package=mocks

import (
	"context"
	"dentsched/config"
	"dentsched/infras/otel"
	"dentsched/shared/constant"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	lockKeyPrefix = "lock"
)

var (
	ErrLockNotAcquired = errors.New("lock not acquired")
)

// Locker serialises a critical section across instances.
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type redisLocker struct {
	client     *goRedis.Client
	otel       otel.Otel
	ttl        time.Duration
	maxRetry   int
	retryDelay time.Duration
}

func NewLocker(client *goRedis.Client, cfg *config.Config, otel otel.Otel) Locker {
	return &redisLocker{
		client:     client,
		otel:       otel,
		ttl:        time.Duration(cfg.Lock.TTLSeconds) * time.Second,
		maxRetry:   cfg.Lock.MaxRetry,
		retryDelay: time.Duration(cfg.Lock.RetryDelayMs) * time.Millisecond,
	}
}

// WithLock runs fn while holding key. fn's context expires with the lock TTL.
func (l *redisLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) (err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelLockScopeName, constant.OtelLockScopeName+".WithLock")
	defer scope.End()
	defer scope.TraceIfError(&err)

	lockKey := fmt.Sprintf("%s:%s", lockKeyPrefix, key)
	token := uuid.NewString()

	scope.SetAttribute("lock.key", lockKey)

	if err = l.acquire(ctx, lockKey, token); err != nil {
		return err
	}

	defer func() {
		if releaseErr := l.release(context.WithoutCancel(ctx), lockKey, token); releaseErr != nil {
			log.Error().Err(releaseErr).Str("key", lockKey).Msg("failed to release lock")
		}
	}()

	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(ctxWithTimeout)
}

func (l *redisLocker) acquire(ctx context.Context, key, token string) error {
	for attempt := range l.maxRetry + 1 {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return fmt.Errorf("failed to acquire lock: %w", err)
		}

		if ok {
			return nil
		}

		log.Debug().Str("key", key).Int("attempt", attempt+1).Msg("lock busy, retrying")

		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to acquire lock: %w", ctx.Err())
		case <-time.After(l.retryDelay):
		}
	}

	return ErrLockNotAcquired
}

var unlockScript = goRedis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *redisLocker) release(ctx context.Context, key, token string) error {
	_, err := unlockScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, goRedis.Nil) {
		return fmt.Errorf("failed to release lock: %w", err)
	}

	return nil
}
