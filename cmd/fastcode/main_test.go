package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/fastcode/internal/catalog"
	"github.com/verte-zerg/fastcode/internal/config"
	"github.com/verte-zerg/fastcode/internal/model"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateConfig(t *testing.T) {
	ok := model.Config{Duration: 60, SnippetsDir: "/tmp/snippets"}
	assert.NoError(t, validateConfig(ok))

	bad := ok
	bad.Duration = 0
	assert.Error(t, validateConfig(bad))
	bad.Duration = maxDuration + 1
	assert.Error(t, validateConfig(bad))

	bad = ok
	bad.SnippetsDir = " "
	assert.Error(t, validateConfig(bad))
}

func TestResolveSnippetIndex(t *testing.T) {
	snippets := catalog.Builtin()
	idx, err := resolveSnippetIndex(snippets, "")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = resolveSnippetIndex(snippets, "py-context")
	require.NoError(t, err)
	assert.Equal(t, snippets[idx].ID, "py-context")

	_, err = resolveSnippetIndex(snippets, "missing")
	assert.ErrorContains(t, err, "unknown snippet")
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644))
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Game.Duration)
	assert.Nil(t, cfg.Log.Level)
}

func TestSnippetsCommandListsBuiltins(t *testing.T) {
	isolate(t)
	out, err := execute(t, "snippets")
	require.NoError(t, err)
	for _, s := range catalog.Builtin() {
		assert.Contains(t, out, s.ID)
	}
}

func TestSnippetsCommandIncludesUserFiles(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	content := "language: Go\ntitle: Hello\ncode: |\n  fmt.Println(1)\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go-hello.yaml"), []byte(content), 0o644))

	out, err := execute(t, "snippets", "--snippets-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "go-hello")
	assert.Contains(t, out, "Hello")
}

func TestLocaleCommandPersists(t *testing.T) {
	isolate(t)
	out, err := execute(t, "locale")
	require.NoError(t, err)
	assert.Equal(t, "en", strings.TrimSpace(out))

	_, err = execute(t, "locale", "KZ")
	require.NoError(t, err)

	out, err = execute(t, "locale")
	require.NoError(t, err)
	assert.Equal(t, "kz", strings.TrimSpace(out))

	_, err = execute(t, "locale", "fr")
	assert.ErrorContains(t, err, "unknown locale")
}

func TestTopCommandRendersTable(t *testing.T) {
	isolate(t)
	out, err := execute(t, "top")
	require.NoError(t, err)
	assert.Contains(t, out, "Top players")
	assert.Contains(t, out, "Moorfo")
	assert.Contains(t, out, "Elite")
}

func TestLoginTelegramPrintsWidget(t *testing.T) {
	isolate(t)
	out, err := execute(t, "login", "--telegram")
	require.NoError(t, err)
	assert.Contains(t, out, "Log in with Telegram")
	assert.Contains(t, out, "Continue with Telegram: https://fastcoding.moorfo.uz/login")
	assert.Contains(t, out, `data-telegram-login="fastcodingidbot"`)

	_, err = execute(t, "locale", "ru")
	require.NoError(t, err)
	out, err = execute(t, "login", "--telegram")
	require.NoError(t, err)
	assert.Contains(t, out, "Вход через Telegram")
}

func TestConfigFileRejectsUnknownKeys(t *testing.T) {
	isolate(t)
	path := config.DefaultConfigPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[game]\nspeed = 3\n"), 0o644))
	_, err := execute(t, "snippets")
	assert.ErrorContains(t, err, "unknown config key")
}
