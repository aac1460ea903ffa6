package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/ilhamhanifan/maze-solver/service/i"
	"github.com/redis/go-redis/v9"
)

const lockExpiry = 10 * time.Second

// RedisMazeCache keeps encoded mazes in Redis with a TTL.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
	logger i.Logger
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int, logger i.Logger) (*RedisMazeCache, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	cache := &RedisMazeCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
		logger: logger,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// GetOrCreate returns the value stored under key. On a miss it takes a
// distributed lock so that only one caller runs create for the key.
func (c *RedisMazeCache) GetOrCreate(ctx context.Context, key string, create func(context.Context) ([]byte, error)) ([]byte, error) {
	val, hit, err := c.get(ctx, key)
	if err != nil || hit {
		return val, err
	}

	mutex := c.locker.NewMutex(key+":gen_lock", redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("locking %s: %w", key, err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	// Another holder of the lock may have filled the key meanwhile.
	val, hit, err = c.get(ctx, key)
	if err != nil || hit {
		return val, err
	}

	val, err = create(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		c.logger.Warn(fmt.Sprintf("caching %s: %v", key, err))
	}
	return val, nil
}

func (c *RedisMazeCache) get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		return val, true, nil
	case errors.Is(err, redis.Nil):
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
}
