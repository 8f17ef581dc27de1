package boundary

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Boomerang-Apps/wave/pkg/config"
)

func testDomains() *config.DomainsConfig {
	return &config.DomainsConfig{
		Domains: []config.DomainRule{
			{ID: "shared", Name: "Shared", FilePatterns: []string{"lib/types/**", "package.json"}},
			{ID: "auth", Name: "Authentication", FilePatterns: []string{"src/auth/**"}},
			{ID: "payments", Name: "Payments", FilePatterns: []string{"src/payments/**"}},
		},
	}
}

func TestEnforcer_CheckAccess(t *testing.T) {
	enforcer := NewEnforcer(testDomains())

	t.Run("own domain allows", func(t *testing.T) {
		result := enforcer.CheckAccess("auth", "src/auth/login.ts")
		assert.True(t, result.Allowed)
		assert.Equal(t, "auth", result.OwnerDomain)
	})

	t.Run("shared files allow any agent", func(t *testing.T) {
		result := enforcer.CheckAccess("payments", "lib/types/user.ts")
		assert.True(t, result.Allowed)
		assert.Equal(t, "shared", result.OwnerDomain)
	})

	t.Run("cross-domain denies with owner in the reason", func(t *testing.T) {
		result := enforcer.CheckAccess("auth", "src/payments/charge.ts")
		assert.False(t, result.Allowed)
		assert.Equal(t,
			fmt.Sprintf("Agent '%s' cannot modify '%s' - owned by domain '%s'", "auth", "src/payments/charge.ts", "payments"),
			result.Reason)
	})

	t.Run("unknown agent domain denies", func(t *testing.T) {
		result := enforcer.CheckAccess("marketing", "src/auth/login.ts")
		assert.False(t, result.Allowed)
		assert.Equal(t, "Unknown agent domain", result.Reason)
	})

	t.Run("unowned file denies by default", func(t *testing.T) {
		result := enforcer.CheckAccess("auth", "docs/readme.md")
		assert.False(t, result.Allowed)
		assert.Equal(t, "File is not in any defined domain", result.Reason)
	})

	t.Run("denials are recorded as violations", func(t *testing.T) {
		fresh := NewEnforcer(testDomains())
		fresh.CheckAccess("auth", "src/payments/charge.ts")
		fresh.CheckAccess("payments", "src/auth/login.ts")

		violations := fresh.Violations()
		assert.Len(t, violations, 2)
		assert.Equal(t, "auth", violations[0].AgentDomain)
		assert.Equal(t, "payments", violations[0].OwnerDomain)
	})
}

func TestEnforcer_Overrides(t *testing.T) {
	t.Run("active override allows and is audited", func(t *testing.T) {
		enforcer := NewEnforcer(testDomains())
		enforcer.GrantOverride("auth", "payments", time.Minute)

		result := enforcer.CheckAccess("auth", "src/payments/charge.ts")
		assert.True(t, result.Allowed)
		assert.True(t, result.Override)

		log := enforcer.OverrideLog()
		assert.Len(t, log, 1)
		assert.Equal(t, "auth", log[0].AgentDomain)
		assert.Equal(t, "payments", log[0].OwnerDomain)
		assert.Empty(t, enforcer.Violations())
	})

	t.Run("expired override denies", func(t *testing.T) {
		enforcer := NewEnforcer(testDomains())
		enforcer.GrantOverride("auth", "payments", -time.Second)

		result := enforcer.CheckAccess("auth", "src/payments/charge.ts")
		assert.False(t, result.Allowed)
		assert.Len(t, enforcer.Violations(), 1)
	})

	t.Run("revoked override denies", func(t *testing.T) {
		enforcer := NewEnforcer(testDomains())
		enforcer.GrantOverride("auth", "payments", time.Minute)
		enforcer.RevokeOverride("auth", "payments")

		result := enforcer.CheckAccess("auth", "src/payments/charge.ts")
		assert.False(t, result.Allowed)
	})

	t.Run("override is directional", func(t *testing.T) {
		enforcer := NewEnforcer(testDomains())
		enforcer.GrantOverride("auth", "payments", time.Minute)

		result := enforcer.CheckAccess("payments", "src/auth/login.ts")
		assert.False(t, result.Allowed)
	})
}
