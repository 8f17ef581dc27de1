package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDomainConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wave-config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDomains(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeDomainConfig(t, `{
			"domains": [
				{"id": "shared", "name": "Shared", "file_patterns": ["lib/**"]},
				{"id": "auth", "name": "Auth", "file_patterns": ["src/auth/**"]}
			]
		}`)

		cfg, err := LoadDomains(path)
		require.NoError(t, err)
		require.Len(t, cfg.Domains, 2)

		rule, ok := cfg.Rule("auth")
		require.True(t, ok)
		assert.Equal(t, []string{"src/auth/**"}, rule.FilePatterns)

		_, ok = cfg.Rule("nope")
		assert.False(t, ok)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := LoadDomains(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("duplicate domain ids rejected", func(t *testing.T) {
		path := writeDomainConfig(t, `{"domains": [
			{"id": "auth", "file_patterns": ["a/**"]},
			{"id": "auth", "file_patterns": ["b/**"]}
		]}`)
		_, err := LoadDomains(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate domain")
	})

	t.Run("empty id rejected", func(t *testing.T) {
		path := writeDomainConfig(t, `{"domains": [{"id": "", "file_patterns": ["a/**"]}]}`)
		_, err := LoadDomains(path)
		assert.Error(t, err)
	})

	t.Run("domain without patterns rejected", func(t *testing.T) {
		path := writeDomainConfig(t, `{"domains": [{"id": "auth", "file_patterns": []}]}`)
		_, err := LoadDomains(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no file patterns")
	})
}

func TestLoadRLM(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := LoadRLM(filepath.Join(t.TempDir(), "rlm.json"))
		require.NoError(t, err)
		assert.Equal(t, 60, cfg.RequestsPerMinute)
		assert.Equal(t, int64(100_000), cfg.MaxContextTokens)
		assert.Equal(t, 3, cfg.MaxSubagentDepth)
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rlm.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"max_context_tokens": 50000}`), 0o644))

		cfg, err := LoadRLM(path)
		require.NoError(t, err)
		assert.Equal(t, int64(50_000), cfg.MaxContextTokens)
		assert.Equal(t, 60, cfg.RequestsPerMinute)
	})

	t.Run("non-positive rate limits rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rlm.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"requests_per_minute": 0}`), 0o644))

		_, err := LoadRLM(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limits")
	})

	t.Run("malformed file errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rlm.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
		_, err := LoadRLM(path)
		assert.Error(t, err)
	})
}
