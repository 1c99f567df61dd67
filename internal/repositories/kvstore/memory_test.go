package kvstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketmoney/pocket_money_app/internal/apperrors"
	"github.com/pocketmoney/pocket_money_app/internal/repositories/kvstore"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, store.Set(ctx, "k", []byte(`{"v":1}`)))
	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":1}`), value)

	require.NoError(t, store.Set(ctx, "k", []byte(`{"v":2}`)))
	value, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":2}`), value)

	require.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Deleting an absent key is not an error
	assert.NoError(t, store.Delete(ctx, "k"))
	assert.NoError(t, store.Close())
}

func TestMemoryStore_CopiesOnReadAndWrite(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	original := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", original))

	// Mutating the caller's slice after Set must not change stored data
	original[0] = 'x'
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	// Mutating the returned slice must not change stored data either
	got[1] = 'y'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestBackend_IsValid(t *testing.T) {
	assert.True(t, kvstore.BackendMemory.IsValid())
	assert.True(t, kvstore.BackendSQLite.IsValid())
	assert.True(t, kvstore.BackendRedis.IsValid())
	assert.True(t, kvstore.BackendPostgres.IsValid())
	assert.False(t, kvstore.Backend("dynamo").IsValid())
}

func TestNew_UnknownBackendFailsStartup(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := kvstore.New(context.Background(), kvstore.Backend("dynamo"), kvstore.Options{}, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store backend")
}

func TestNew_MemoryBackend(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := kvstore.New(context.Background(), kvstore.BackendMemory, kvstore.Options{}, logger)
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.NoError(t, store.Close())
}
