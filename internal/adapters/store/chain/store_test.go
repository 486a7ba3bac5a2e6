package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/marquito38/meow-macros/internal/adapters/store/memory"
	"github.com/marquito38/meow-macros/internal/ports"
	portmocks "github.com/marquito38/meow-macros/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const key = "meow_data_v10"

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKVStore(t)
	fallback := portmocks.NewMockKVStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, key).Return("from-redis", nil).Once()

	value, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "from-redis", value)
}

func TestStoreGetFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKVStore(t)
	fallback := portmocks.NewMockKVStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, key).Return("", errors.New("redis unavailable")).Once()
	fallback.EXPECT().Get(mock.Anything, key).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetFallsBackWhenPrimaryMisses(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKVStore(t)
	fallback := portmocks.NewMockKVStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, key).Return("", ports.ErrKeyNotFound).Once()
	fallback.EXPECT().Get(mock.Anything, key).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetReportsMissWhenBothBackendsMiss(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKVStore(t)
	fallback := portmocks.NewMockKVStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, key).Return("", ports.ErrKeyNotFound).Once()
	fallback.EXPECT().Get(mock.Anything, key).Return("", ports.ErrKeyNotFound).Once()

	_, err := store.Get(context.Background(), key)
	require.ErrorIs(t, err, ports.ErrKeyNotFound)
}

func TestStoreGetReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKVStore(t)
	fallback := portmocks.NewMockKVStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, key).Return("", errors.New("redis failed")).Once()
	fallback.EXPECT().Get(mock.Anything, key).Return("", errors.New("file failed")).Once()

	_, err := store.Get(context.Background(), key)
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "fallback backend")
	assert.ErrorContains(t, err, "redis failed")
	assert.ErrorContains(t, err, "file failed")
}

func TestStoreSetWritesThroughToBothBackends(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKVStore(t)
	fallback := portmocks.NewMockKVStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Set(mock.Anything, key, "payload").Return(nil).Once()
	fallback.EXPECT().Set(mock.Anything, key, "payload").Return(nil).Once()

	require.NoError(t, store.Set(context.Background(), key, "payload"))
}

func TestStoreSetToleratesFailingMirror(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKVStore(t)
	fallback := portmocks.NewMockKVStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Set(mock.Anything, key, "payload").Return(nil).Once()
	fallback.EXPECT().Set(mock.Anything, key, "payload").Return(errors.New("disk full")).Once()
	fallback.EXPECT().Delete(mock.Anything, key).Return(nil).Once()

	require.NoError(t, store.Set(context.Background(), key, "payload"))
}

func TestStoreSetFailsWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKVStore(t)
	fallback := portmocks.NewMockKVStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Set(mock.Anything, key, "payload").Return(errors.New("redis failed")).Once()

	err := store.Set(context.Background(), key, "payload")
	require.Error(t, err)
	assert.ErrorContains(t, err, "redis failed")
	fallback.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestStoreNeverServesOlderValueAfterPrimaryOutage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	primary := &flakyStore{KVStore: memory.NewStore(16)}
	store := NewStore(primary, memory.NewStore(16))

	require.NoError(t, store.Set(ctx, key, "v1"))

	primary.down = true
	require.Error(t, store.Set(ctx, key, "v2"))
	primary.down = false

	value, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "v1", value)

	require.NoError(t, store.Set(ctx, key, "v2"))
	value, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "v2", value)
}

func TestStoreDeleteClearsBothBackends(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKVStore(t)
	fallback := portmocks.NewMockKVStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Delete(mock.Anything, key).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, key).Return(errors.New("disk full")).Once()

	require.NoError(t, store.Delete(context.Background(), key))
}

func TestStoreDeleteFailsWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKVStore(t)
	fallback := portmocks.NewMockKVStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Delete(mock.Anything, key).Return(errors.New("redis failed")).Once()

	require.Error(t, store.Delete(context.Background(), key))
}

func TestStoreDoesNotFallbackOnCanceledContextError(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockKVStore(t)
	fallback := portmocks.NewMockKVStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, key).Return("", context.Canceled).Once()
	primary.EXPECT().Set(mock.Anything, key, "v").Return(context.DeadlineExceeded).Once()

	_, err := store.Get(context.Background(), key)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, store.Set(context.Background(), key, "v"), context.DeadlineExceeded)
}

func TestNewStoreCheckedRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStoreChecked(nil, portmocks.NewMockKVStore(t))
	require.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStoreChecked(portmocks.NewMockKVStore(t), nil)
	require.ErrorIs(t, err, errNilFallbackStore)
}

type flakyStore struct {
	ports.KVStore
	down bool
}

func (s *flakyStore) Get(ctx context.Context, key string) (string, error) {
	if s.down {
		return "", errors.New("connection refused")
	}
	return s.KVStore.Get(ctx, key)
}

func (s *flakyStore) Set(ctx context.Context, key string, value string) error {
	if s.down {
		return errors.New("connection refused")
	}
	return s.KVStore.Set(ctx, key, value)
}
