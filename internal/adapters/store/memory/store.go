package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/coocood/freecache"

	"github.com/marquito38/meow-macros/internal/ports"
)

const DefaultSizeMegabytes = 128

// Store is a process-local store. A single value may use at most 1/1024 of the
// configured size.
type Store struct {
	cache *freecache.Cache
}

var _ ports.KVStore = (*Store)(nil)

func NewStore(sizeMegabytes int) *Store {
	if sizeMegabytes <= 0 {
		sizeMegabytes = DefaultSizeMegabytes
	}
	megabyte := 1024 * 1024

	return &Store{cache: freecache.NewCache(sizeMegabytes * megabyte)}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	value, err := s.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return "", fmt.Errorf("memory key %q: %w", key, ports.ErrKeyNotFound)
		}
		return "", fmt.Errorf("memory get %q: %w", key, err)
	}

	return string(value), nil
}

func (s *Store) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.cache.Set([]byte(key), []byte(value), 0); err != nil {
		return fmt.Errorf("memory set %q: %w", key, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cache.Del([]byte(key))
	return nil
}
