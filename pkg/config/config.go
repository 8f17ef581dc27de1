// Package config loads and validates wave orchestrator configuration.
//
// Configuration comes from three places, merged in order: built-in defaults,
// the optional wave.yaml server config, and environment variables. The two
// product-mandated JSON files (wave-config.json for domain boundaries,
// config/rlm.json for RLM limits) are loaded separately by LoadDomains and
// LoadRLM.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root orchestrator configuration.
type Config struct {
	Queue    *QueueConfig    `yaml:"queue"`
	Executor *ExecutorConfig `yaml:"executor"`
	Runner   *RunnerConfig   `yaml:"runner"`
	Budget   *BudgetConfig   `yaml:"budget"`
	Retry    *RetryConfig    `yaml:"retry"`
	Redis    *RedisConfig    `yaml:"redis"`
	Slack    *SlackConfig    `yaml:"slack"`
}

// QueueConfig controls the Redis task queue and the domain supervisor.
type QueueConfig struct {
	// ResultTTL is how long task and result hashes are retained.
	ResultTTL time.Duration `yaml:"result_ttl"`

	// DequeueTimeout bounds a single BRPOP call so worker loops can
	// observe shutdown.
	DequeueTimeout time.Duration `yaml:"dequeue_timeout"`

	// PollInterval is the fallback result-poll interval used when the
	// completion channel is unavailable.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PMTimeout bounds supervisor waits on PM tasks. Overridable via
	// WAVE_PM_TIMEOUT (seconds), clamped to [30s, 600s].
	PMTimeout time.Duration `yaml:"pm_timeout"`
}

// ExecutorConfig controls the parallel story executor.
type ExecutorConfig struct {
	// MaxParallel is the worker pool size: at most this many stories run
	// simultaneously, each in its own worktree.
	MaxParallel int `yaml:"max_parallel"`
}

// RunnerConfig holds the recognized workflow-runner options. This is a
// closed set: unrecognized options are a load error, not a silent no-op.
type RunnerConfig struct {
	UseMemoryCheckpointer bool   `yaml:"use_memory_checkpointer"`
	PostgresURL           string `yaml:"postgres_url"`
	EnableConstitutional  bool   `yaml:"enable_constitutional"`
	EnableBudgetTracking  bool   `yaml:"enable_budget_tracking"`
	EnableEStop           bool   `yaml:"enable_estop"`
	EnableSlack           bool   `yaml:"enable_slack"`
	EnablePubSub          bool   `yaml:"enable_pubsub"`
	MaxRetries            int    `yaml:"max_retries"`
	SimulateLLM           bool   `yaml:"simulate_llm"`
	GateMode              string `yaml:"gate_mode"`
}

// BudgetConfig holds per-story budget limits.
type BudgetConfig struct {
	TokenLimit   int64   `yaml:"token_limit"`
	CostLimitUSD float64 `yaml:"cost_limit_usd"`
	HardLimit    bool    `yaml:"hard_limit"`
}

// RetryConfig holds the exponential backoff parameters for the dev-fix loop
// and transient infrastructure retries.
type RetryConfig struct {
	MaxRetries int           `yaml:"max_retries"`
	Base       time.Duration `yaml:"base"`
	Multiplier float64       `yaml:"multiplier"`
	MaxBackoff time.Duration `yaml:"max_backoff"`
	Jitter     bool          `yaml:"jitter"`
}

// RedisConfig holds Redis connectivity settings.
type RedisConfig struct {
	URL string `yaml:"url"`
}

// SlackConfig holds notification settings.
type SlackConfig struct {
	Enabled       bool   `yaml:"enabled"`
	WebhookURL    string `yaml:"webhook_url"`
	Channel       string `yaml:"channel"`
	BudgetChannel string `yaml:"budget_channel"`
	AlertsChannel string `yaml:"alerts_channel"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Queue: &QueueConfig{
			ResultTTL:      24 * time.Hour,
			DequeueTimeout: 5 * time.Second,
			PollInterval:   500 * time.Millisecond,
			PMTimeout:      300 * time.Second,
		},
		Executor: &ExecutorConfig{
			MaxParallel: 4,
		},
		Runner: &RunnerConfig{
			EnableConstitutional: true,
			EnableBudgetTracking: true,
			EnableEStop:          true,
			EnablePubSub:         true,
			MaxRetries:           3,
			GateMode:             "standard",
		},
		Budget: &BudgetConfig{
			TokenLimit:   100_000,
			CostLimitUSD: 50,
			HardLimit:    true,
		},
		Retry: &RetryConfig{
			MaxRetries: 3,
			Base:       1 * time.Second,
			Multiplier: 2,
			MaxBackoff: 300 * time.Second,
		},
		Redis: &RedisConfig{
			URL: "redis://localhost:6379",
		},
		Slack: &SlackConfig{
			Channel:       "#wave",
			BudgetChannel: "#wave-budget",
			AlertsChannel: "#wave-alerts",
		},
	}
}

// Load reads the optional wave.yaml from configDir, applies it over the
// defaults, then applies environment overrides. A missing file is not an
// error; a malformed one is.
func Load(configDir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(configDir, "wave.yaml")
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv folds recognized environment variables into the config.
func (c *Config) applyEnv() {
	if url := os.Getenv("REDIS_URL"); url != "" {
		c.Redis.URL = url
	}
	if v := os.Getenv("SLACK_WEBHOOK_URL"); v != "" {
		c.Slack.WebhookURL = v
	}
	if v := os.Getenv("SLACK_ENABLED"); v != "" {
		c.Slack.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("WAVE_PM_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.Queue.PMTimeout = ClampPMTimeout(time.Duration(secs) * time.Second)
		}
	}
}

// ClampPMTimeout bounds the supervisor PM timeout to [30s, 600s].
func ClampPMTimeout(d time.Duration) time.Duration {
	const (
		min = 30 * time.Second
		max = 600 * time.Second
	)
	if d < min {
		return min
	}
	if d > max {
		return max
	}
	return d
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Executor.MaxParallel < 1 {
		return fmt.Errorf("executor.max_parallel must be >= 1, got %d", c.Executor.MaxParallel)
	}
	if c.Runner.MaxRetries < 0 {
		return fmt.Errorf("runner.max_retries must be >= 0, got %d", c.Runner.MaxRetries)
	}
	if c.Runner.GateMode != "standard" && c.Runner.GateMode != "tdd" {
		return fmt.Errorf("runner.gate_mode must be standard or tdd, got %q", c.Runner.GateMode)
	}
	if c.Budget.TokenLimit <= 0 {
		return fmt.Errorf("budget.token_limit must be > 0, got %d", c.Budget.TokenLimit)
	}
	if c.Retry.Multiplier < 1 {
		return fmt.Errorf("retry.multiplier must be >= 1, got %v", c.Retry.Multiplier)
	}
	return nil
}
