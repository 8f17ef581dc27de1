package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrUnknownDomain is returned when a domain id is not in the config.
var ErrUnknownDomain = errors.New("unknown domain")

// SharedDomain is accessible to every agent. Its patterns are matched
// before any other domain's when computing file ownership.
const SharedDomain = "shared"

// DomainRule maps a domain to the glob patterns it owns. Patterns support
// `**` multi-level matching.
type DomainRule struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	FilePatterns []string `json:"file_patterns"`
}

// DomainsConfig is the parsed wave-config.json.
type DomainsConfig struct {
	Domains []DomainRule `json:"domains"`
}

// Rule returns the rule for a domain id, if configured.
func (c *DomainsConfig) Rule(id string) (*DomainRule, bool) {
	for i := range c.Domains {
		if c.Domains[i].ID == id {
			return &c.Domains[i], true
		}
	}
	return nil, false
}

// LoadDomains reads and validates wave-config.json.
func LoadDomains(path string) (*DomainsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read domain config %s: %w", path, err)
	}

	var cfg DomainsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse domain config %s: %w", path, err)
	}

	seen := make(map[string]bool, len(cfg.Domains))
	for _, d := range cfg.Domains {
		if d.ID == "" {
			return nil, fmt.Errorf("domain config %s: domain with empty id", path)
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("domain config %s: duplicate domain %q", path, d.ID)
		}
		seen[d.ID] = true
		if len(d.FilePatterns) == 0 {
			return nil, fmt.Errorf("domain config %s: domain %q has no file patterns", path, d.ID)
		}
	}
	return &cfg, nil
}
