package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Setenv("REDIS_URL", "")
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Executor.MaxParallel)
		assert.Equal(t, 3, cfg.Runner.MaxRetries)
		assert.Equal(t, "standard", cfg.Runner.GateMode)
		assert.Equal(t, int64(100_000), cfg.Budget.TokenLimit)
		assert.True(t, cfg.Budget.HardLimit)
		assert.Equal(t, 300*time.Second, cfg.Queue.PMTimeout)
	})

	t.Run("yaml overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "wave.yaml"), []byte(`
executor:
  max_parallel: 8
runner:
  gate_mode: tdd
  simulate_llm: true
budget:
  cost_limit_usd: 25
`), 0o644))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Executor.MaxParallel)
		assert.Equal(t, "tdd", cfg.Runner.GateMode)
		assert.True(t, cfg.Runner.SimulateLLM)
		assert.Equal(t, 25.0, cfg.Budget.CostLimitUSD)
		// untouched sections keep their defaults
		assert.Equal(t, "redis://localhost:6379", cfg.Redis.URL)
	})

	t.Run("malformed yaml errors", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "wave.yaml"), []byte("executor: ["), 0o644))
		_, err := Load(dir)
		assert.Error(t, err)
	})

	t.Run("env overrides file and defaults", func(t *testing.T) {
		t.Setenv("REDIS_URL", "redis://cache:6380/1")
		t.Setenv("WAVE_PM_TIMEOUT", "10") // below minimum, clamps to 30s

		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "redis://cache:6380/1", cfg.Redis.URL)
		assert.Equal(t, 30*time.Second, cfg.Queue.PMTimeout)
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero max parallel", func(c *Config) { c.Executor.MaxParallel = 0 }, "max_parallel"},
		{"negative retries", func(c *Config) { c.Runner.MaxRetries = -1 }, "max_retries"},
		{"bad gate mode", func(c *Config) { c.Runner.GateMode = "agile" }, "gate_mode"},
		{"zero token limit", func(c *Config) { c.Budget.TokenLimit = 0 }, "token_limit"},
		{"multiplier below one", func(c *Config) { c.Retry.Multiplier = 0.5 }, "multiplier"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestClampPMTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, ClampPMTimeout(5*time.Second))
	assert.Equal(t, 120*time.Second, ClampPMTimeout(120*time.Second))
	assert.Equal(t, 600*time.Second, ClampPMTimeout(time.Hour))
}
