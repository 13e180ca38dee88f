package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "fastcode.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestGetMissingKey(t *testing.T) {
	st := openTestStore(t)
	value, ok, err := st.Get(context.Background(), "fastcode-language")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSetOverwritesAndDelete(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, "fastcode-language", "ru"))
	require.NoError(t, st.Set(ctx, "fastcode-language", "uz"))
	value, ok, err := st.Get(ctx, "fastcode-language")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "uz", value)

	require.NoError(t, st.Delete(ctx, "fastcode-language"))
	_, ok, err = st.Get(ctx, "fastcode-language")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReopenKeepsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fastcode.db")
	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Set(context.Background(), "fastcode-beta-dismissed", "true"))
	require.NoError(t, st.Close())

	st, err = Open(path)
	require.NoError(t, err)
	defer func() {
		_ = st.Close()
	}()
	value, ok, err := st.Get(context.Background(), "fastcode-beta-dismissed")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", value)
}
