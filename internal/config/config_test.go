package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	raw := `
[practice]
length = 15
direction = "target_to_primary"
tier = "basic"
favor-weak = true
favor-frequent = false
min-distance = 4

[catalog]
path = "/data/words.json"
frequency = "/data/freq.json"
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Practice.Length)
	assert.Equal(t, 15, *cfg.Practice.Length)
	require.NotNil(t, cfg.Practice.Direction)
	assert.Equal(t, "target_to_primary", *cfg.Practice.Direction)
	require.NotNil(t, cfg.Practice.FavorWeak)
	assert.True(t, *cfg.Practice.FavorWeak)
	require.NotNil(t, cfg.Practice.FavorFrequent)
	assert.False(t, *cfg.Practice.FavorFrequent)
	require.NotNil(t, cfg.Practice.MinDistance)
	assert.Equal(t, 4, *cfg.Practice.MinDistance)
	require.NotNil(t, cfg.Catalog.Path)
	assert.Equal(t, "/data/words.json", *cfg.Catalog.Path)
}

func TestLoad_PartialFileLeavesRestNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	raw := `
[practice]
length = 20
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Practice.Length)
	assert.Equal(t, 20, *cfg.Practice.Length)
	assert.Nil(t, cfg.Practice.Direction)
	assert.Nil(t, cfg.Practice.FavorWeak)
	assert.Nil(t, cfg.Catalog.Path)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Practice.Length)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[practice\nbroken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestDefaultPath_RespectsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := filepath.Join(dir, "vocablo", "config.toml")
	assert.Equal(t, want, DefaultPath())
}
