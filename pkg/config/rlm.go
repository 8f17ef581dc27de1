package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// RLMConfig is the parsed config/rlm.json: rate limits, daily budget, and
// moderation settings for per-agent context management.
type RLMConfig struct {
	RequestsPerMinute int     `json:"requests_per_minute"`
	TokensPerMinute   int64   `json:"tokens_per_minute"`
	DailyBudgetUSD    float64 `json:"daily_budget_usd"`
	AlertThreshold    float64 `json:"alert_threshold"`

	// MaxContextTokens bounds each agent's LRU context cache.
	MaxContextTokens int64 `json:"max_context_tokens"`

	// MaxSubagentDepth bounds parent→child delegation chains.
	MaxSubagentDepth int `json:"max_subagent_depth"`
}

// DefaultRLMConfig returns the built-in RLM defaults, used when the config
// file is absent.
func DefaultRLMConfig() *RLMConfig {
	return &RLMConfig{
		RequestsPerMinute: 60,
		TokensPerMinute:   100_000,
		DailyBudgetUSD:    50,
		AlertThreshold:    0.8,
		MaxContextTokens:  100_000,
		MaxSubagentDepth:  3,
	}
}

// LoadRLM reads config/rlm.json, falling back to defaults when the file does
// not exist. A present but malformed file is an error.
func LoadRLM(path string) (*RLMConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultRLMConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read rlm config %s: %w", path, err)
	}

	cfg := DefaultRLMConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse rlm config %s: %w", path, err)
	}
	if cfg.RequestsPerMinute <= 0 || cfg.TokensPerMinute <= 0 {
		return nil, fmt.Errorf("rlm config %s: rate limits must be positive", path)
	}
	return cfg, nil
}
