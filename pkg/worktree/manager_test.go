package worktree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBranchNaming(t *testing.T) {
	assert.Equal(t, "run-abc123/auth", DomainBranch("abc123", "auth"))
	assert.Equal(t, "run-abc123/integration", IntegrationBranch("abc123"))
}

func TestSafePathName(t *testing.T) {
	assert.Equal(t, "auth", safePathName("auth"))
	assert.Equal(t, "fe_agent", safePathName("fe/agent"))
	assert.Equal(t, "a_b_c", safePathName("a b:c"))
}

func TestNewManager_Defaults(t *testing.T) {
	m := NewManager("/repo", "", "")
	assert.Equal(t, ".worktrees", m.worktreeDir)
	assert.Equal(t, "main", m.baseBranch)
}
