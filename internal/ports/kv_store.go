package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by a KVStore when nothing is stored under a key.
var ErrKeyNotFound = errors.New("key not found")

type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
