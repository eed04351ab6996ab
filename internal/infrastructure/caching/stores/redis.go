package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisPrefix = "landstack:"

// RedisStore shares cache entries across instances through redis. Errors are
// treated as misses so a redis outage degrades to uncached reads.
type RedisStore struct {
	rdb     *redis.Client
	onError func(op string, err error)
}

// NewRedisStore parses url, connects, and verifies connectivity.
func NewRedisStore(ctx context.Context, url string, onError func(op string, err error)) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	if onError == nil {
		onError = func(string, error) {}
	}
	return &RedisStore{rdb: rdb, onError: onError}, nil
}

func (s *RedisStore) Name() string { return "redis" }

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := s.rdb.Get(ctx, redisPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		s.onError("get", err)
		return nil, false
	}
	return b, true
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := s.rdb.Set(ctx, redisPrefix+key, value, ttl).Err(); err != nil {
		s.onError("set", err)
	}
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = redisPrefix + k
	}
	if err := s.rdb.Del(ctx, prefixed...).Err(); err != nil {
		s.onError("del", err)
	}
}

// Flush removes every key under the service prefix.
func (s *RedisStore) Flush(ctx context.Context) {
	iter := s.rdb.Scan(ctx, 0, redisPrefix+"*", 200).Iterator()
	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == 200 {
			s.rdb.Del(ctx, batch...)
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		s.rdb.Del(ctx, batch...)
	}
	if err := iter.Err(); err != nil {
		s.onError("scan", err)
	}
}

// Close releases the connection pool.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
