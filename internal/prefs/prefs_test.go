package prefs

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/fastcode/internal/i18n"
	"github.com/verte-zerg/fastcode/internal/store"
)

type mapBackend struct {
	values  map[string]string
	failGet bool
	failSet bool
}

func (b *mapBackend) Get(_ context.Context, key string) (string, bool, error) {
	if b.failGet {
		return "", false, errors.New("storage unavailable")
	}
	v, ok := b.values[key]
	return v, ok, nil
}

func (b *mapBackend) Set(_ context.Context, key, value string) error {
	if b.failSet {
		return errors.New("quota exceeded")
	}
	b.values[key] = value
	return nil
}

func (b *mapBackend) Delete(_ context.Context, key string) error {
	if b.failSet {
		return errors.New("quota exceeded")
	}
	delete(b.values, key)
	return nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestDefaultsWhenEmpty(t *testing.T) {
	p := Load(context.Background(), &mapBackend{values: map[string]string{}}, quietLogger())
	assert.Equal(t, i18n.EN, p.Locale())
	assert.False(t, p.BannerDismissed())
}

func TestLoadStoredValues(t *testing.T) {
	b := &mapBackend{values: map[string]string{
		LocaleKey:          "kz",
		BannerDismissedKey: "true",
	}}
	p := Load(context.Background(), b, quietLogger())
	assert.Equal(t, i18n.KZ, p.Locale())
	assert.True(t, p.BannerDismissed())
}

func TestUnparsableValuesFallBack(t *testing.T) {
	b := &mapBackend{values: map[string]string{
		LocaleKey:          "klingon",
		BannerDismissedKey: "maybe",
	}}
	p := Load(context.Background(), b, quietLogger())
	assert.Equal(t, i18n.EN, p.Locale())
	assert.False(t, p.BannerDismissed())
	assert.Empty(t, b.values)
}

func TestNilLoggerWithBadValues(t *testing.T) {
	b := &mapBackend{values: map[string]string{LocaleKey: "xx"}, failSet: true}
	p := Load(context.Background(), b, nil)
	assert.Equal(t, i18n.EN, p.Locale())

	b.failGet = true
	p = Load(context.Background(), b, nil)
	p.SetLocale(context.Background(), i18n.KZ)
	assert.Equal(t, i18n.KZ, p.Locale())
}

func TestSQLiteStoreClearsUnsupportedLocale(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(filepath.Join(t.TempDir(), "fastcode.db"))
	require.NoError(t, err)
	defer func() {
		_ = st.Close()
	}()
	require.NoError(t, st.Set(ctx, LocaleKey, "fr"))

	p := Load(ctx, st, nil)
	assert.Equal(t, i18n.EN, p.Locale())
	_, ok, err := st.Get(ctx, LocaleKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFailingBackendNeverSurfaces(t *testing.T) {
	b := &mapBackend{values: map[string]string{}, failGet: true, failSet: true}
	p := Load(context.Background(), b, quietLogger())
	assert.Equal(t, i18n.EN, p.Locale())

	p.SetLocale(context.Background(), i18n.RU)
	p.DismissBanner(context.Background())
	assert.Equal(t, i18n.RU, p.Locale())
	assert.True(t, p.BannerDismissed())
}

func TestNilBackendIsInMemory(t *testing.T) {
	p := Load(context.Background(), nil, quietLogger())
	p.SetLocale(context.Background(), i18n.UZ)
	assert.Equal(t, i18n.UZ, p.Locale())
}

func TestPersistsThroughSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fastcode.db")
	st, err := store.Open(path)
	require.NoError(t, err)

	p := Load(ctx, st, quietLogger())
	p.SetLocale(ctx, i18n.RU)
	p.DismissBanner(ctx)
	require.NoError(t, st.Close())

	st, err = store.Open(path)
	require.NoError(t, err)
	defer func() {
		_ = st.Close()
	}()
	p = Load(ctx, st, quietLogger())
	assert.Equal(t, i18n.RU, p.Locale())
	assert.True(t, p.BannerDismissed())
}
