package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".paymig.yml", `
mode: structural
languages: javascript,python
max_bytes: 1048576
min_confidence: 0.7
no_color: true
`)
	cfg, err := LoadFile(filepath.Join(dir, ".paymig.yml"))
	require.NoError(t, err)

	require.NotNil(t, cfg.Mode)
	assert.Equal(t, "structural", *cfg.Mode)
	require.NotNil(t, cfg.Languages)
	assert.Equal(t, "javascript,python", *cfg.Languages)
	require.NotNil(t, cfg.MaxBytes)
	assert.Equal(t, int64(1048576), *cfg.MaxBytes)
	require.NotNil(t, cfg.MinConfidence)
	assert.Equal(t, 0.7, *cfg.MinConfidence)
	require.NotNil(t, cfg.NoColor)
	assert.True(t, *cfg.NoColor)

	// unset fields stay nil so precedence resolution can tell them apart
	assert.Nil(t, cfg.Exclude)
	assert.Nil(t, cfg.NoCache)
	assert.Nil(t, cfg.ChangedOnly)
}

func TestLoadFileMalformed(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "bad.yml", "mode: [unclosed")
	_, err := LoadFile(filepath.Join(dir, "bad.yml"))
	assert.Error(t, err)
}

func TestLoadLocalSearchOrder(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "paymig.yml", "mode: schema\n")
	writeConfig(t, dir, ".paymig.yml", "mode: pattern\n")

	cfg, err := LoadLocal(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.Mode)
	assert.Equal(t, "pattern", *cfg.Mode, "dotfile takes precedence")
}

func TestLoadLocalMissing(t *testing.T) {
	_, err := LoadLocal(t.TempDir())
	assert.Error(t, err)
}

func TestLoadGlobal(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	require.NoError(t, os.MkdirAll(filepath.Join(base, "paymig"), 0755))
	writeConfig(t, filepath.Join(base, "paymig"), "config.yml", "default_excludes: false\n")

	cfg, err := LoadGlobal()
	require.NoError(t, err)
	require.NotNil(t, cfg.DefaultExcludes)
	assert.False(t, *cfg.DefaultExcludes)
}
