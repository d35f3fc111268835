package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisQueueKey = "cartinhas:queue:jobs"

// RedisDriver is a Redis-backed driver using LPUSH/BRPOP on a list.
type RedisDriver struct {
	rdb *redis.Client
}

// NewRedisDriver wraps the shared Redis client in a queue driver.
func NewRedisDriver(rdb *redis.Client) *RedisDriver {
	return &RedisDriver{rdb: rdb}
}

func (d *RedisDriver) Push(payload []byte) error {
	if err := d.rdb.LPush(context.Background(), redisQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("queue/redis: push: %w", err)
	}
	return nil
}

// Pop blocks until a job arrives or the 5s poll times out.
func (d *RedisDriver) Pop(ctx context.Context) ([]byte, error) {
	result, err := d.rdb.BRPop(ctx, 5*time.Second, redisQueueKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("queue/redis: pop: %w", err)
	}
	if len(result) < 2 {
		return nil, nil
	}
	return []byte(result[1]), nil
}
