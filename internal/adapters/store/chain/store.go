package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/marquito38/meow-macros/internal/ports"
)

// Store writes through to both backends and reads from the primary first,
// falling back to the mirror when the primary is unavailable or misses.
// A write counts only once the primary holds it, so the mirror never carries
// a value the primary lacks.
type Store struct {
	primary  ports.KVStore
	fallback ports.KVStore
}

var _ ports.KVStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary store is nil")
	errNilFallbackStore = errors.New("fallback store is nil")
)

func NewStore(primary ports.KVStore, fallback ports.KVStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.KVStore, fallback ports.KVStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func (s *Store) Set(ctx context.Context, key string, value string) error {
	if err := s.primary.Set(ctx, key, value); err != nil {
		return fmt.Errorf("primary backend set failed: %w", err)
	}

	if err := s.fallback.Set(ctx, key, value); err != nil {
		logrus.WithField("key", key).Warnf("mirror store set failed: %s", err)
		if shouldSkipFallback(err) {
			return nil
		}
		// A stale mirror copy must not be read back while the primary is down.
		if delErr := s.fallback.Delete(ctx, key); delErr != nil {
			logrus.WithField("key", key).Warnf("mirror store drop stale value failed: %s", delErr)
		}
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			logrus.WithField("key", key).Warnf("primary store get failed, read mirror: %s", err)
		}
		return fallbackValue, nil
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.primary.Delete(ctx, key); err != nil {
		return fmt.Errorf("primary backend delete failed: %w", err)
	}

	if err := s.fallback.Delete(ctx, key); err != nil {
		logrus.WithField("key", key).Warnf("mirror store delete failed: %s", err)
	}

	return nil
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
