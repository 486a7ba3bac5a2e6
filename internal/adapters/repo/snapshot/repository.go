package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/marquito38/meow-macros/internal/domain"
	"github.com/marquito38/meow-macros/internal/ports"
)

const (
	DefaultKey       = "meow_data_v10"
	DefaultLegacyKey = "meow_data_v9"
	draftKeySuffix   = "_draft"
)

// Repository persists the whole state as one value under a single store key.
// The in-progress workout lives under a sibling key.
type Repository struct {
	store      ports.KVStore
	key        string
	legacyKeys []string
	seed       domain.Catalog
}

var (
	_ ports.StateRepository = (*Repository)(nil)
	_ ports.DraftRepository = (*Repository)(nil)
)

func NewRepository(store ports.KVStore, key string, seed domain.Catalog, legacyKeys ...string) (*Repository, error) {
	if store == nil {
		return nil, errors.New("snapshot store is nil")
	}
	if key == "" {
		return nil, errors.New("snapshot key is empty")
	}

	return &Repository{store: store, key: key, legacyKeys: legacyKeys, seed: seed}, nil
}

func (r *Repository) Key() string {
	return r.key
}

// Load returns the stored state, or a fresh state seeded with the starter catalog
// when nothing was stored yet. When the current key is missing the legacy keys
// are tried in order.
func (r *Repository) Load(ctx context.Context) (domain.State, error) {
	keys := append([]string{r.key}, r.legacyKeys...)
	for i, key := range keys {
		payload, err := r.store.Get(ctx, key)
		if errors.Is(err, ports.ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return domain.State{}, fmt.Errorf("read snapshot %q: %w", key, err)
		}

		state, err := Decode([]byte(payload), r.seed)
		if err != nil {
			return domain.State{}, fmt.Errorf("decode snapshot %q: %w", key, err)
		}
		if i > 0 {
			logrus.WithField("key", key).Info("loaded state from legacy key; next save migrates it")
		}

		return state, nil
	}

	return domain.NewState(r.seed), nil
}

func (r *Repository) Save(ctx context.Context, state domain.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(state)
	if err != nil {
		return err
	}

	if err := r.store.Set(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	return nil
}

func (r *Repository) LoadDraft(ctx context.Context) (domain.Draft, error) {
	payload, err := r.store.Get(ctx, r.key+draftKeySuffix)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return domain.Draft{Exercises: map[string][]domain.Set{}}, nil
	}
	if err != nil {
		return domain.Draft{}, fmt.Errorf("read draft: %w", err)
	}

	return DecodeDraft([]byte(payload))
}

func (r *Repository) SaveDraft(ctx context.Context, draft domain.Draft) error {
	data, err := EncodeDraft(draft)
	if err != nil {
		return err
	}

	if err := r.store.Set(ctx, r.key+draftKeySuffix, string(data)); err != nil {
		return fmt.Errorf("write draft: %w", err)
	}

	return nil
}

func (r *Repository) DeleteDraft(ctx context.Context) error {
	if err := r.store.Delete(ctx, r.key+draftKeySuffix); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}

	return nil
}
