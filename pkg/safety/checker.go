// Package safety scores generated code and shell commands against a
// constitutional rule set, and tracks token/cost budgets.
package safety

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Recommendation is the checker's verdict for a piece of content.
type Recommendation string

const (
	RecommendAllow Recommendation = "ALLOW"
	RecommendWarn  Recommendation = "WARN"
	RecommendBlock Recommendation = "BLOCK"
)

// Severity classifies an individual rule hit.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

// Violation is one rule match inside checked content.
type Violation struct {
	Rule      string   `json:"rule"`
	Category  string   `json:"category"`
	Principle string   `json:"principle,omitempty"`
	Severity  Severity `json:"severity"`
	Match     string   `json:"match"`
	Message   string   `json:"message"`
}

// CheckResult is the outcome of a safety check.
type CheckResult struct {
	Safe           bool           `json:"safe"`
	Score          float64        `json:"score"`
	Recommendation Recommendation `json:"recommendation"`
	Violations     []Violation    `json:"violations"`
	Critical       int            `json:"critical"`
	Warnings       int            `json:"warnings"`
}

type rule struct {
	name     string
	category string
	severity Severity
	pattern  *regexp.Regexp
	message  string
}

// alwaysDangerous patterns block regardless of context.
var alwaysDangerous = []rule{
	{"rm-root", "ALWAYS_DANGEROUS", SeverityCritical,
		regexp.MustCompile(`rm\s+-[a-zA-Z]*r[a-zA-Z]*f[a-zA-Z]*\s+/(\s|$|['"])`),
		"destructive recursive delete of filesystem root"},
	{"drop-table", "ALWAYS_DANGEROUS", SeverityCritical,
		regexp.MustCompile(`(?i)\bDROP\s+TABLE\b`),
		"SQL DROP TABLE"},
	{"drop-database", "ALWAYS_DANGEROUS", SeverityCritical,
		regexp.MustCompile(`(?i)\bDROP\s+DATABASE\b`),
		"SQL DROP DATABASE"},
	{"force-push-main", "ALWAYS_DANGEROUS", SeverityCritical,
		regexp.MustCompile(`git\s+push\s+(--force|-f)\s+\S+\s+(main|master)\b`),
		"force push to protected branch"},
	{"path-traversal", "ALWAYS_DANGEROUS", SeverityCritical,
		regexp.MustCompile(`\.\./\.\./(etc|root|var)\b`),
		"path traversal toward system files"},
	{"eval-interpolation", "ALWAYS_DANGEROUS", SeverityCritical,
		regexp.MustCompile(`\beval\s*\([^)]*\$`),
		"eval of interpolated input"},
}

// destructive patterns cover system-path destruction; sudo variants score lower.
var destructive = []rule{
	{"rm-system-path", "DESTRUCTIVE", SeverityCritical,
		regexp.MustCompile(`rm\s+-[a-zA-Z]*r[a-zA-Z]*f[a-zA-Z]*\s+/(var|usr|etc|boot|bin|lib|home)\b`),
		"recursive delete of system path"},
	{"dd-device", "DESTRUCTIVE", SeverityCritical,
		regexp.MustCompile(`dd\s+if=\S+\s+of=/dev/(sd|nvme|hd)\w*`),
		"raw write to block device"},
	{"mkfs", "DESTRUCTIVE", SeverityCritical,
		regexp.MustCompile(`\bmkfs(\.\w+)?\s`),
		"filesystem format"},
	{"chmod-root", "DESTRUCTIVE", SeverityCritical,
		regexp.MustCompile(`chmod\s+-R\s+777\s+/(\s|$|['"])`),
		"world-writable filesystem root"},
	{"fork-bomb", "DESTRUCTIVE", SeverityCritical,
		regexp.MustCompile(`:\(\)\s*\{\s*:\|:&\s*\}\s*;?\s*:`),
		"fork bomb"},
}

// feDangerous only applies to client-side files.
var feDangerous = []rule{
	{"hardcoded-private-key", "FE_DANGEROUS", SeverityCritical,
		regexp.MustCompile(`(?i)private_?key\s*[:=]\s*["'][^"']+["']`),
		"hardcoded private key in client code"},
	{"service-role-client", "FE_DANGEROUS", SeverityCritical,
		regexp.MustCompile(`service_role`),
		"service-role credential in client code"},
}

var warnRules = []rule{
	{"console-log", "WARN", SeverityWarning,
		regexp.MustCompile(`\bconsole\.log\s*\(`),
		"console.log left in code"},
	{"debugger", "WARN", SeverityWarning,
		regexp.MustCompile(`(?m)^\s*debugger\s*;?\s*$`),
		"debugger statement"},
	{"todo-marker", "WARN", SeverityWarning,
		regexp.MustCompile(`\b(TODO|FIXME)\b`),
		"unresolved TODO/FIXME marker"},
}

var sudoPattern = regexp.MustCompile(`\bsudo\s`)

// principleFor maps rule categories to constitutional principle ids.
func principleFor(category string) string {
	switch category {
	case "ALWAYS_DANGEROUS", "DESTRUCTIVE":
		return "P001"
	case "FE_DANGEROUS":
		return "P003"
	default:
		return ""
	}
}

// serverPathPatterns mark a file as server-side by location.
var serverPathPatterns = []string{
	"app/api/**/*.ts",
	"app/api/**/*.tsx",
	"pages/api/**/*",
	"server/**/*",
	"lib/server/**/*",
	"scripts/**/*",
	"**/*.server.ts",
	"**/route.ts",
}

// serverContentMarkers mark a file as server-side by content.
var serverContentMarkers = []string{
	"NextResponse",
	"NextRequest",
	"@aws-sdk",
	"service_role",
}

var clientEnvAllowed = regexp.MustCompile(`\b(process\.env\.NEXT_PUBLIC_\w+|import\.meta\.env\.VITE_\w+)`)
var clientEnvAny = regexp.MustCompile(`\bprocess\.env\.(\w+)`)

// ambiguousKeywords trigger the escalate-uncertainty principle.
var ambiguousKeywords = []string{"maybe", "perhaps", "tbd", "not sure", "unclear", "might be"}

// Checker scores content against the constitutional rule set.
type Checker struct {
	blockThreshold float64
}

// NewChecker creates a checker with the given block threshold; 0.85 is the
// conventional value.
func NewChecker(blockThreshold float64) *Checker {
	if blockThreshold <= 0 {
		blockThreshold = 0.85
	}
	return &Checker{blockThreshold: blockThreshold}
}

// IsServerSide reports whether a file is server-side code, by path or by
// content markers.
func IsServerSide(path, content string) bool {
	for _, pattern := range serverPathPatterns {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	for _, marker := range serverContentMarkers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}

// Check scores free-form content (shell commands, diffs) with no file
// context. FE rules are skipped.
func (c *Checker) Check(content string) CheckResult {
	return c.check(content, "", false)
}

// CheckFile scores file content with client/server awareness.
func (c *Checker) CheckFile(path, content string) CheckResult {
	clientSide := !IsServerSide(path, content)
	return c.check(content, path, clientSide)
}

func (c *Checker) check(content, path string, clientSide bool) CheckResult {
	result := CheckResult{Violations: []Violation{}}

	blocked := false
	apply := func(rules []rule) {
		for _, r := range rules {
			if m := r.pattern.FindString(content); m != "" {
				v := Violation{
					Rule:      r.name,
					Category:  r.category,
					Principle: principleFor(r.category),
					Severity:  r.severity,
					Match:     strings.TrimSpace(m),
					Message:   r.message,
				}
				result.Violations = append(result.Violations, v)
				switch r.severity {
				case SeverityCritical:
					result.Critical++
					// ALWAYS_DANGEROUS zeroes the score outright
					if r.category == "ALWAYS_DANGEROUS" {
						blocked = true
					}
					// sudo escalates destructive hits
					if r.category == "DESTRUCTIVE" && sudoPattern.MatchString(content) {
						result.Critical++
					}
				case SeverityWarning:
					result.Warnings++
				}
			}
		}
	}

	apply(alwaysDangerous)
	apply(destructive)
	if clientSide {
		apply(feDangerous)
		c.checkClientEnv(content, &result)
	}
	apply(warnRules)

	result.Score = clampScore(1 - 0.3*float64(result.Critical) - 0.05*float64(result.Warnings))
	if blocked {
		result.Score = 0
	}
	result.Safe = result.Score >= c.blockThreshold
	switch {
	case !result.Safe:
		result.Recommendation = RecommendBlock
	case result.Warnings > 0:
		result.Recommendation = RecommendWarn
	default:
		result.Recommendation = RecommendAllow
	}
	return result
}

// checkClientEnv flags non-public env var reads in client code.
func (c *Checker) checkClientEnv(content string, result *CheckResult) {
	for _, match := range clientEnvAny.FindAllString(content, -1) {
		if clientEnvAllowed.MatchString(match) {
			continue
		}
		result.Violations = append(result.Violations, Violation{
			Rule:     "private-env-client",
			Category: "FE_DANGEROUS",
			Severity: SeverityCritical,
			Match:    match,
			Message:  fmt.Sprintf("private environment variable %s read in client code", match),
		})
		result.Critical++
	}
}

// ShouldEscalate implements the escalate-uncertainty principle: low
// confidence, ambiguous wording, or open option lists all require a human.
func ShouldEscalate(content string, confidence float64) bool {
	if confidence < 0.6 {
		return true
	}
	lower := strings.ToLower(content)
	for _, kw := range ambiguousKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return hasUnselectedOptions(lower)
}

// hasUnselectedOptions detects "option 1 ... option 2" style lists without a
// choice marker.
func hasUnselectedOptions(lower string) bool {
	if strings.Count(lower, "option ") < 2 {
		return false
	}
	for _, marker := range []string{"selected", "chosen", "we will use", "going with", "decided"} {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
