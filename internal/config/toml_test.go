package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[analysis]
lower = true
stop = true
stop-file = "extra.txt"

[output]
format = "sqlite"
top = 20

[log]
level = "debug"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Analysis.Lower)
	assert.True(t, *cfg.Analysis.Lower)
	require.NotNil(t, cfg.Analysis.Stop)
	assert.True(t, *cfg.Analysis.Stop)
	assert.Nil(t, cfg.Analysis.Stem, "unset keys stay nil")
	require.NotNil(t, cfg.Analysis.StopFile)
	assert.Equal(t, "extra.txt", *cfg.Analysis.StopFile)
	require.NotNil(t, cfg.Output.Format)
	assert.Equal(t, "sqlite", *cfg.Output.Format)
	require.NotNil(t, cfg.Output.Top)
	assert.Equal(t, 20, *cfg.Output.Top)
	require.NotNil(t, cfg.Log.Level)
	assert.Equal(t, "debug", *cfg.Log.Level)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, cfg)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorContains(t, err, "failed to stat config")
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[analysis]\nlowercase = true\n")
	_, err := LoadConfig(path)
	require.ErrorContains(t, err, "analysis.lowercase")
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := writeConfig(t, "[analysis\n")
	_, err := LoadConfig(path)
	require.ErrorContains(t, err, "failed to decode config")
}
