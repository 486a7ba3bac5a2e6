package memory

import (
	"context"
	"strings"
	"testing"

	"github.com/coocood/freecache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquito38/meow-macros/internal/ports"
)

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore(1)
	ctx := context.Background()

	_, err := store.Get(ctx, "meow_data_v10")
	require.ErrorIs(t, err, ports.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "meow_data_v10", "version = 1"))
	value, err := store.Get(ctx, "meow_data_v10")
	require.NoError(t, err)
	assert.Equal(t, "version = 1", value)

	require.NoError(t, store.Delete(ctx, "meow_data_v10"))
	require.NoError(t, store.Delete(ctx, "meow_data_v10"))
	_, err = store.Get(ctx, "meow_data_v10")
	require.ErrorIs(t, err, ports.ErrKeyNotFound)
}

func TestStoreRejectsOversizedValue(t *testing.T) {
	t.Parallel()

	store := NewStore(1)

	err := store.Set(context.Background(), "big", strings.Repeat("x", 2048))
	require.ErrorIs(t, err, freecache.ErrLargeEntry)
}
