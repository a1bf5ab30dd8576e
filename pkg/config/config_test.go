package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("NoFileReturnsDefaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("FileOverridesDefaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "numWorkers: 8\nnumTrials: 500\nlogLevel: debug\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.NumWorkers)
		assert.Equal(t, 500, cfg.NumTrials)
		assert.Equal(t, "debug", cfg.LogLevel)
		// Untouched fields keep their defaults.
		assert.Equal(t, 0.5, cfg.SimilarityThreshold)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load("does/not/exist.yaml")
		assert.Error(t, err)
	})

	t.Run("InvalidValuesRejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("numWorkers: 0\n"), 0o600))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"BadThreshold", func(c *Config) { c.SimilarityThreshold = 1.5 }},
		{"BadTrials", func(c *Config) { c.NumTrials = -1 }},
		{"BadLogLevel", func(c *Config) { c.LogLevel = "verbose" }},
		{"MissingStorePath", func(c *Config) { c.StorePath = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
