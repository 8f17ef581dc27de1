package safety

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckBudget(t *testing.T) {
	t.Run("below 75 percent is normal", func(t *testing.T) {
		check := CheckBudget(74_999, 100_000, true)
		assert.Equal(t, AlertNormal, check.Level)
		assert.True(t, check.Allowed)
	})

	t.Run("75 percent warns", func(t *testing.T) {
		check := CheckBudget(75_000, 100_000, true)
		assert.Equal(t, AlertWarning, check.Level)
		assert.True(t, check.Allowed)
	})

	t.Run("90 percent is critical", func(t *testing.T) {
		check := CheckBudget(90_000, 100_000, true)
		assert.Equal(t, AlertCritical, check.Level)
		assert.True(t, check.Allowed)
	})

	t.Run("exactly 100 percent is exceeded", func(t *testing.T) {
		check := CheckBudget(100_000, 100_000, true)
		assert.Equal(t, AlertExceeded, check.Level)
		assert.False(t, check.Allowed)
	})

	t.Run("exactly 100 percent without hard limit allows", func(t *testing.T) {
		check := CheckBudget(100_000, 100_000, false)
		assert.Equal(t, AlertExceeded, check.Level)
		assert.True(t, check.Allowed)
	})

	t.Run("over 100 percent with hard limit denies", func(t *testing.T) {
		check := CheckBudget(100_001, 100_000, true)
		assert.Equal(t, AlertExceeded, check.Level)
		assert.False(t, check.Allowed)
	})

	t.Run("over 100 percent without hard limit allows", func(t *testing.T) {
		check := CheckBudget(100_001, 100_000, false)
		assert.Equal(t, AlertExceeded, check.Level)
		assert.True(t, check.Allowed)
	})

	t.Run("zero limit disables budget checks", func(t *testing.T) {
		check := CheckBudget(1_000_000, 0, true)
		assert.Equal(t, AlertNormal, check.Level)
		assert.True(t, check.Allowed)
	})
}

func TestBudgetTracker(t *testing.T) {
	tracker := NewBudgetTracker(1000, 10, true)

	tracker.Record(400, 1.5)
	tracker.Record(400, 1.5)
	tokens, cost := tracker.Usage()
	assert.Equal(t, int64(800), tokens)
	assert.InDelta(t, 3.0, cost, 1e-9)

	check := tracker.Check()
	assert.Equal(t, AlertWarning, check.Level)

	tracker.Record(300, 1)
	check = tracker.Check()
	assert.Equal(t, AlertExceeded, check.Level)
	assert.False(t, check.Allowed)
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, int64(0), EstimateTokens(""))
	assert.Equal(t, int64(3), EstimateTokens("hello, world"))
}

func TestEstimateCost(t *testing.T) {
	t.Run("haiku", func(t *testing.T) {
		cost := EstimateCost("haiku", 1_000_000, 1_000_000)
		assert.InDelta(t, 4.8, cost, 1e-9)
	})
	t.Run("opus", func(t *testing.T) {
		cost := EstimateCost("opus", 1_000_000, 0)
		assert.InDelta(t, 15, cost, 1e-9)
	})
	t.Run("unknown model prices at sonnet", func(t *testing.T) {
		assert.Equal(t, EstimateCost("sonnet", 500_000, 500_000), EstimateCost("mystery", 500_000, 500_000))
	})
}
