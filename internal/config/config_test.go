package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	assert.Equal(t, config.Default(), config.Embedded())
	require.NoError(t, config.Default().Validate())
}

func TestLoadCustomPath(t *testing.T) {
	cfg, err := config.Load("testdata/small.yaml")
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Field.Width)
	assert.Equal(t, 8, cfg.Field.Height)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.True(t, cfg.Simulation.MaskedPlacement)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())

	// keys absent from the file keep their defaults
	assert.Equal(t, 500, cfg.Simulation.MaxTicks)
	assert.Equal(t, "██", cfg.Render.Filled)
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field: [1, 2"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Embedded(), cfg)
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "blockfall.yaml"), []byte("simulation:\n  panels: 3\n"), 0o644))
	t.Chdir(dir)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Simulation.Panels)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *config.Config)
		ok     bool
	}{
		{"defaults", func(c *config.Config) {}, true},
		{"zero width", func(c *config.Config) { c.Field.Width = 0 }, false},
		{"negative spawn", func(c *config.Config) { c.Spawn.X = -1 }, false},
		{"zero max ticks", func(c *config.Config) { c.Simulation.MaxTicks = 0 }, false},
		{"zero panels", func(c *config.Config) { c.Simulation.Panels = 0 }, false},
		{"bad level", func(c *config.Config) { c.Log.Level = "loud" }, false},
		{"unlimited pieces", func(c *config.Config) { c.Simulation.Pieces = 0 }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
