package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.Workspace.DataDir)
	assert.Equal(t, "workdir", cfg.Workspace.WorkDir)
	assert.Equal(t, "reference.tsv", cfg.Reference.Path)
	assert.Equal(t, "mtime", cfg.Reference.Staleness)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("REFERENCE_STALENESS", "hash")
	t.Setenv("WORKSPACE_WORKDIR", "/srv/work")
	t.Setenv("DATABASE_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "hash", cfg.Reference.Staleness)
	assert.Equal(t, "/srv/work", cfg.Workspace.WorkDir)
	assert.True(t, cfg.Database.Enabled)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("REFERENCE_PATH=/srv/ref.tsv\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("REFERENCE_PATH") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/ref.tsv", cfg.Reference.Path)
}
