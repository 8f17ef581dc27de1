// Package boundary enforces domain file ownership: an agent may only touch
// files its domain owns, shared files, or files covered by a time-bounded
// override. Every denial and every override use is kept for audit.
package boundary

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Boomerang-Apps/wave/pkg/config"
)

// AccessResult is the outcome of one access check.
type AccessResult struct {
	Allowed     bool   `json:"allowed"`
	Domain      string `json:"domain"`
	FilePath    string `json:"file_path"`
	OwnerDomain string `json:"owner_domain,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Override    bool   `json:"override"`
}

// Violation records a denied cross-domain access.
type Violation struct {
	AgentDomain string    `json:"agent_domain"`
	FilePath    string    `json:"file_path"`
	OwnerDomain string    `json:"owner_domain"`
	Timestamp   time.Time `json:"timestamp"`
}

// OverrideUse records one access granted through an override.
type OverrideUse struct {
	AgentDomain string    `json:"agent_domain"`
	OwnerDomain string    `json:"owner_domain"`
	FilePath    string    `json:"file_path"`
	Timestamp   time.Time `json:"timestamp"`
}

type override struct {
	expiresAt time.Time
}

// Enforcer evaluates file access against the domain config. Safe for
// concurrent use.
type Enforcer struct {
	cfg *config.DomainsConfig

	mu          sync.Mutex
	overrides   map[string]override
	violations  []Violation
	overrideLog []OverrideUse
}

// NewEnforcer creates an enforcer over a loaded domain config.
func NewEnforcer(cfg *config.DomainsConfig) *Enforcer {
	return &Enforcer{
		cfg:       cfg,
		overrides: map[string]override{},
	}
}

func overrideKey(agent, target string) string {
	return agent + "→" + target
}

// CheckAccess decides whether an agent may touch a file.
//
// Evaluation order: unknown agent domains are denied; ownership is resolved
// shared-first, then first matching non-shared domain; unowned files are
// denied; shared files and own-domain files are allowed; an unexpired
// override allows with audit; everything else is denied and recorded as a
// violation.
func (e *Enforcer) CheckAccess(agentDomain, filePath string) AccessResult {
	result := AccessResult{Domain: agentDomain, FilePath: filePath}

	if _, ok := e.cfg.Rule(agentDomain); !ok {
		result.Reason = "Unknown agent domain"
		return result
	}

	owner := e.ownerDomain(filePath)
	if owner == "" {
		result.Reason = "File is not in any defined domain"
		return result
	}
	result.OwnerDomain = owner

	if owner == config.SharedDomain {
		result.Allowed = true
		result.Reason = "shared domain"
		return result
	}
	if owner == agentDomain {
		result.Allowed = true
		result.Reason = "own domain"
		return result
	}

	now := time.Now()
	e.mu.Lock()
	defer e.mu.Unlock()

	if ov, ok := e.overrides[overrideKey(agentDomain, owner)]; ok && now.Before(ov.expiresAt) {
		e.overrideLog = append(e.overrideLog, OverrideUse{
			AgentDomain: agentDomain,
			OwnerDomain: owner,
			FilePath:    filePath,
			Timestamp:   now,
		})
		result.Allowed = true
		result.Override = true
		result.Reason = fmt.Sprintf("override %s → %s", agentDomain, owner)
		return result
	}

	e.violations = append(e.violations, Violation{
		AgentDomain: agentDomain,
		FilePath:    filePath,
		OwnerDomain: owner,
		Timestamp:   now,
	})
	result.Reason = fmt.Sprintf("Agent '%s' cannot modify '%s' - owned by domain '%s'", agentDomain, filePath, owner)
	return result
}

// ownerDomain resolves a file's owning domain: shared patterns win, then
// the first matching non-shared domain in config order.
func (e *Enforcer) ownerDomain(filePath string) string {
	normalized := filepath.ToSlash(strings.TrimPrefix(filePath, "./"))

	if shared, ok := e.cfg.Rule(config.SharedDomain); ok && matchesAny(shared.FilePatterns, normalized) {
		return config.SharedDomain
	}
	for _, rule := range e.cfg.Domains {
		if rule.ID == config.SharedDomain {
			continue
		}
		if matchesAny(rule.FilePatterns, normalized) {
			return rule.ID
		}
	}
	return ""
}

func matchesAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

// GrantOverride allows agent to touch target's files for the given
// duration.
func (e *Enforcer) GrantOverride(agent, target string, duration time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.overrides[overrideKey(agent, target)] = override{expiresAt: time.Now().Add(duration)}
}

// RevokeOverride removes an override immediately.
func (e *Enforcer) RevokeOverride(agent, target string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.overrides, overrideKey(agent, target))
}

// Violations returns a copy of the denial audit log.
func (e *Enforcer) Violations() []Violation {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Violation(nil), e.violations...)
}

// OverrideLog returns a copy of the override-use audit log.
func (e *Enforcer) OverrideLog() []OverrideUse {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]OverrideUse(nil), e.overrideLog...)
}
