package safety

import (
	"fmt"
	"sync"
)

// AlertLevel grades budget consumption.
type AlertLevel string

const (
	AlertNormal   AlertLevel = "NORMAL"
	AlertWarning  AlertLevel = "WARNING"
	AlertCritical AlertLevel = "CRITICAL"
	AlertExceeded AlertLevel = "EXCEEDED"
)

// BudgetCheck reports whether further spending is allowed and at what alert
// level.
type BudgetCheck struct {
	Allowed    bool       `json:"allowed"`
	Level      AlertLevel `json:"level"`
	TokensUsed int64      `json:"tokens_used"`
	TokenLimit int64      `json:"token_limit"`
	PercentUse float64    `json:"percent_used"`
	Message    string     `json:"message,omitempty"`
}

// modelRate is USD per million tokens.
type modelRate struct {
	inputPerM  float64
	outputPerM float64
}

var modelRates = map[string]modelRate{
	"haiku":  {0.8, 4},
	"sonnet": {3, 15},
	"opus":   {15, 75},
}

// BudgetTracker accumulates token and cost usage against configured limits.
// Safe for concurrent use.
type BudgetTracker struct {
	mu           sync.Mutex
	tokenLimit   int64
	costLimitUSD float64
	hardLimit    bool

	tokensUsed int64
	costUSD    float64
}

// NewBudgetTracker creates a tracker. With hardLimit set, exceeding 100% of
// either limit denies further spending (emergency stop).
func NewBudgetTracker(tokenLimit int64, costLimitUSD float64, hardLimit bool) *BudgetTracker {
	return &BudgetTracker{
		tokenLimit:   tokenLimit,
		costLimitUSD: costLimitUSD,
		hardLimit:    hardLimit,
	}
}

// EstimateTokens approximates the token count of text as chars/4.
func EstimateTokens(text string) int64 {
	return int64(len(text) / 4)
}

// EstimateCost computes USD cost for a model's input/output token counts.
// Unknown models price at the sonnet rate.
func EstimateCost(model string, inputTokens, outputTokens int64) float64 {
	rate, ok := modelRates[model]
	if !ok {
		rate = modelRates["sonnet"]
	}
	return float64(inputTokens)/1e6*rate.inputPerM + float64(outputTokens)/1e6*rate.outputPerM
}

// Record adds usage to the running totals.
func (b *BudgetTracker) Record(tokens int64, costUSD float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokensUsed += tokens
	b.costUSD += costUSD
}

// Usage returns the accumulated token and cost totals.
func (b *BudgetTracker) Usage() (tokens int64, costUSD float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tokensUsed, b.costUSD
}

// Check grades current consumption. Thresholds: 75% warning, 90% critical,
// 100% exceeded; with a hard limit, exceeded also denies.
func (b *BudgetTracker) Check() BudgetCheck {
	b.mu.Lock()
	defer b.mu.Unlock()
	return CheckBudget(b.tokensUsed, b.tokenLimit, b.hardLimit)
}

// CheckBudget is the stateless form of Check.
func CheckBudget(tokensUsed, tokenLimit int64, hardLimit bool) BudgetCheck {
	check := BudgetCheck{
		Allowed:    true,
		Level:      AlertNormal,
		TokensUsed: tokensUsed,
		TokenLimit: tokenLimit,
	}
	if tokenLimit <= 0 {
		return check
	}
	check.PercentUse = float64(tokensUsed) / float64(tokenLimit) * 100

	switch {
	case check.PercentUse >= 100:
		check.Level = AlertExceeded
		check.Message = fmt.Sprintf("token budget exceeded: %d of %d used", tokensUsed, tokenLimit)
		if hardLimit {
			check.Allowed = false
		}
	case check.PercentUse >= 90:
		check.Level = AlertCritical
		check.Message = fmt.Sprintf("token budget critical: %.1f%% used", check.PercentUse)
	case check.PercentUse >= 75:
		check.Level = AlertWarning
		check.Message = fmt.Sprintf("token budget warning: %.1f%% used", check.PercentUse)
	}
	return check
}
