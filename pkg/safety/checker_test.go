package safety

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_Check(t *testing.T) {
	checker := NewChecker(0.85)

	t.Run("sudo rm -rf / blocks with principle P001", func(t *testing.T) {
		result := checker.Check("sudo rm -rf /")
		assert.Less(t, result.Score, 0.3)
		assert.False(t, result.Safe)
		assert.Equal(t, RecommendBlock, result.Recommendation)

		found := false
		for _, v := range result.Violations {
			if v.Principle == "P001" {
				found = true
				assert.Contains(t, v.Message, "destructive")
			}
		}
		assert.True(t, found, "expected a P001 violation")
	})

	t.Run("rm -rf node_modules is safe", func(t *testing.T) {
		result := checker.Check("rm -rf node_modules")
		assert.GreaterOrEqual(t, result.Score, 0.5)
		assert.True(t, result.Safe)
	})

	t.Run("drop table blocks outright", func(t *testing.T) {
		result := checker.Check("DROP TABLE sessions;")
		assert.Equal(t, 0.0, result.Score)
		assert.Equal(t, RecommendBlock, result.Recommendation)
	})

	t.Run("force push to main blocks", func(t *testing.T) {
		result := checker.Check("git push --force origin main")
		assert.False(t, result.Safe)
	})

	t.Run("sudo doubles destructive weight", func(t *testing.T) {
		plain := checker.Check("rm -rf /var/lib/data")
		sudoed := checker.Check("sudo rm -rf /var/lib/data")
		assert.Greater(t, sudoed.Critical, plain.Critical)
		assert.Less(t, sudoed.Score, plain.Score)
	})

	t.Run("warnings dock 0.05 each", func(t *testing.T) {
		result := checker.Check("console.log('debug')")
		assert.InDelta(t, 0.95, result.Score, 1e-9)
		assert.True(t, result.Safe)
		assert.Equal(t, RecommendWarn, result.Recommendation)
	})

	t.Run("clean content allows", func(t *testing.T) {
		result := checker.Check("func add(a, b int) int { return a + b }")
		assert.Equal(t, 1.0, result.Score)
		assert.Equal(t, RecommendAllow, result.Recommendation)
	})
}

func TestChecker_CheckFile(t *testing.T) {
	checker := NewChecker(0.85)

	t.Run("private env read in client code blocks", func(t *testing.T) {
		result := checker.CheckFile("components/Login.tsx", `const key = process.env.STRIPE_SECRET;`)
		assert.False(t, result.Safe)

		found := false
		for _, v := range result.Violations {
			if v.Rule == "private-env-client" {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("public env read in client code allows", func(t *testing.T) {
		result := checker.CheckFile("components/Login.tsx", `const url = process.env.NEXT_PUBLIC_API_URL;`)
		assert.True(t, result.Safe)
	})

	t.Run("server-side code skips FE rules", func(t *testing.T) {
		result := checker.CheckFile("app/api/charge/route.ts", `const key = process.env.STRIPE_SECRET;`)
		assert.True(t, result.Safe)
	})

	t.Run("hardcoded private key in client blocks", func(t *testing.T) {
		result := checker.CheckFile("components/Pay.tsx", `const private_key = "sk_live_abc";`)
		assert.False(t, result.Safe)
	})
}

func TestIsServerSide(t *testing.T) {
	assert.True(t, IsServerSide("app/api/users/route.ts", ""))
	assert.True(t, IsServerSide("scripts/migrate.ts", ""))
	assert.True(t, IsServerSide("lib/client.ts", "import { NextResponse } from 'next/server'"))
	assert.False(t, IsServerSide("components/Button.tsx", "export const Button = () => null"))
}

func TestShouldEscalate(t *testing.T) {
	t.Run("low confidence escalates", func(t *testing.T) {
		assert.True(t, ShouldEscalate("all good", 0.5))
	})

	t.Run("ambiguous wording escalates", func(t *testing.T) {
		assert.True(t, ShouldEscalate("Maybe we should use Redis here", 0.9))
		assert.True(t, ShouldEscalate("The schema is TBD", 0.9))
	})

	t.Run("unselected options escalate", func(t *testing.T) {
		assert.True(t, ShouldEscalate("Option 1: REST. Option 2: gRPC.", 0.9))
	})

	t.Run("selected option does not escalate", func(t *testing.T) {
		assert.False(t, ShouldEscalate("Option 1: REST. Option 2: gRPC. We decided on REST.", 0.9))
	})

	t.Run("confident unambiguous content passes", func(t *testing.T) {
		require.False(t, ShouldEscalate("Implement the login endpoint with JWT.", 0.95))
	})
}
