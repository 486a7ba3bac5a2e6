package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/marquito38/meow-macros/internal/ports"
)

const DefaultKeyPrefix = "meow:"

type Store struct {
	rdb    redis.Cmdable
	prefix string
}

var _ ports.KVStore = (*Store)(nil)

func NewStore(rdb redis.Cmdable, prefix string) *Store {
	return &Store{rdb: rdb, prefix: prefix}
}

// Dial connects to addr and pings it once. A failed ping is returned together
// with the usable client so the caller can decide to fall back.
func Dial(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return rdb, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	return rdb, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.rdb.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("redis key %q: %w", key, ports.ErrKeyNotFound)
		}
		return "", fmt.Errorf("redis get %q: %w", key, err)
	}

	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value string) error {
	if err := s.rdb.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis delete %q: %w", key, err)
	}

	return nil
}
