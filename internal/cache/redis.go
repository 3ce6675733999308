package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Redis is the shared-cache backend used when more than one instance serves
// the wizard. Misses and transport errors both read as a miss; the catalogs
// always have the database behind them.
type Redis struct {
	redisdb *redis.Client
	ttl     time.Duration
}

func NewRedis(cfg RedisConfig) *Redis {
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}

	redisdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	return &Redis{redisdb: redisdb, ttl: cfg.TTL}
}

// Ping checks redis connectivity for the readiness probe.

func (c *Redis) Ping(ctx context.Context) error {
	return c.redisdb.Ping(ctx).Err()
}

func (c *Redis) Close() error {
	return c.redisdb.Close()
}

func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.redisdb.Get(ctx, key).Bytes()

	if err != nil {
		return nil, false
	}

	return val, true
}

func (c *Redis) Set(ctx context.Context, key string, val []byte) {
	_ = c.redisdb.Set(ctx, key, val, c.ttl).Err()
}

func (c *Redis) Delete(ctx context.Context, key string) {
	_ = c.redisdb.Del(ctx, key).Err()
}
