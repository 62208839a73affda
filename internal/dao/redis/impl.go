package redis

import (
	"context"
	"errors"
	"time"

	"crusade_campaign_server/pkg/errorx"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisCache implements AsyncCacheService over a go-redis client plus a
// worker pool of goroutines draining a buffered task channel.
type RedisCache struct {
	client *redis.Client
	tasks  chan func()
}

// NewRedisCache builds the cache service and starts workerNum workers.
func NewRedisCache(client *redis.Client, workerNum, bufferSize int) *RedisCache {
	c := &RedisCache{
		client: client,
		tasks:  make(chan func(), bufferSize),
	}
	for i := 0; i < workerNum; i++ {
		go c.startWorker()
	}
	return c
}

// startWorker drains the task channel. A panicking task restarts the
// worker so the pool never shrinks.
func (c *RedisCache) startWorker() {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("cache worker panic", zap.Any("recover", r))
			go c.startWorker()
		}
	}()

	for task := range c.tasks {
		if task != nil {
			task()
		}
	}
}

// SubmitTask queues action; on a full buffer it degrades to running the
// action synchronously rather than dropping it.
func (c *RedisCache) SubmitTask(action func()) {
	select {
	case c.tasks <- action:
	default:
		zap.L().Warn("cache task channel full, executing synchronously")
		action()
	}
}

// Set stores a value with a ttl.
func (c *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis set key %s", key)
	}
	return nil
}

// Get returns the value for key. A missing key is not an error.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "redis get key %s", key)
	}
	return value, nil
}

// Delete removes a key if present.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis del key %s", key)
	}
	return nil
}
