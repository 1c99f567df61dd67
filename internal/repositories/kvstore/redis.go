package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pocketmoney/pocket_money_app/internal/apperrors"
	portsrepo "github.com/pocketmoney/pocket_money_app/internal/core/ports/repositories"
)

// RedisStore is a Redis-backed KVStore. Redis persistence (RDB/AOF) is assumed
// to be configured server-side when durability matters.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis at the given address or URL and verifies the
// connection with a ping.
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		// Tolerate a bare host:port address
		opt, err = redis.ParseURL(fmt.Sprintf("redis://%s", redisURL))
		if err != nil {
			opt = &redis.Options{Addr: redisURL}
		}
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

var _ portsrepo.KVStore = (*RedisStore)(nil)

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: key %q", apperrors.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
