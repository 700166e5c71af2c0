package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisDriver struct {
	rdb *redis.Client
}

func newRedisDriver(addr, password string) (*redisDriver, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache/redis: ping: %w", err)
	}

	return &redisDriver{rdb: rdb}, nil
}

func (d *redisDriver) Get(key string) ([]byte, bool) {
	val, err := d.rdb.Get(context.Background(), key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (d *redisDriver) Set(key string, value []byte, ttl time.Duration) error {
	return d.rdb.Set(context.Background(), key, value, ttl).Err()
}

func (d *redisDriver) Delete(key string) error {
	return d.rdb.Del(context.Background(), key).Err()
}
