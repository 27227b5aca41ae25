package credentials

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStore_AbsentIsNotAnError(t *testing.T) {
	store := NewFileStoreAt(filepath.Join(t.TempDir(), "token"))

	token, err := store.Get(context.Background())
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestFileStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token")
	store := NewFileStoreAt(path)

	require.NoError(t, store.Set(ctx, "T1"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "T1", token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	require.NoError(t, store.Delete(ctx))

	token, err = store.Get(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestFileStore_OverwritesExistingToken(t *testing.T) {
	ctx := context.Background()
	store := NewFileStoreAt(filepath.Join(t.TempDir(), "token"))

	require.NoError(t, store.Set(ctx, "first"))
	require.NoError(t, store.Set(ctx, "second"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "second", token)
}

func TestFileStore_DeleteMissingToken(t *testing.T) {
	store := NewFileStoreAt(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, store.Delete(context.Background()))
}

func TestMemoryStore_ErrorInjection(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	boom := errors.New("boom")
	store.SetErr = boom
	require.ErrorIs(t, store.Set(ctx, "T1"), boom)

	store.SetErr = nil
	require.NoError(t, store.Set(ctx, "T1"))

	store.GetErr = boom
	_, err := store.Get(ctx)
	require.ErrorIs(t, err, boom)

	store.GetErr = nil
	token, err := store.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "T1", token)
}
