package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/tspbrute/graphio"
	"github.com/katalvlaran/tspbrute/internal/config"
	"github.com/katalvlaran/tspbrute/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tspbrute.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "chain", cfg.Solve.Strategy)
	assert.Equal(t, 1, cfg.Solve.Top)

	lvl, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Setenv("TSPBRUTE_TEST_SEED", "77")
	path := writeFile(t, `
generate:
  size: 8
  upper: 50
  seed: ${TSPBRUTE_TEST_SEED}
  symmetric: true
solve:
  strategy: exhaustive
log:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 8, cfg.Generate.Size)
	assert.Equal(t, 1, cfg.Generate.Lower, "unset keys keep their default")
	assert.Equal(t, 50, cfg.Generate.Upper)
	assert.Equal(t, int64(77), cfg.Generate.Seed)
	assert.True(t, cfg.Generate.Symmetric)
	assert.Equal(t, "exhaustive", cfg.Solve.Strategy)
	assert.Equal(t, "text", cfg.Log.Format)

	s, err := tsp.ParseStrategy(cfg.Solve.Strategy)
	require.NoError(t, err)
	assert.Equal(t, tsp.StrategyExhaustive, s)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "solve:\n  stratgy: chain\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = config.Load(writeFile(t, "solve: [1, 2\n"))
	require.Error(t, err)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"generate format", func(c *config.Config) { c.Generate.Format = "csv" }},
		{"solve format", func(c *config.Config) { c.Solve.Format = "" }},
		{"strategy", func(c *config.Config) { c.Solve.Strategy = "genetic" }},
		{"top", func(c *config.Config) { c.Solve.Top = 0 }},
		{"level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"log format", func(c *config.Config) { c.Log.Format = "xml" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestValidate_FormatNames(t *testing.T) {
	cfg := config.Default()
	cfg.Generate.Format = "tsp"
	cfg.Solve.Format = "YAML"
	require.NoError(t, cfg.Validate())

	f, err := graphio.ParseFormat(cfg.Solve.Format)
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatYAML, f)
}
