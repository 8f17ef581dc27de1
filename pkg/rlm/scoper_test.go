package rlm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boomerang-Apps/wave/pkg/config"
)

func scoperFixture(t *testing.T) *Scoper {
	t.Helper()
	root := t.TempDir()
	writeRepoFile(t, root, "src/auth/login.ts", `import { shared } from '../lib/util';`)
	writeRepoFile(t, root, "src/payments/charge.ts", `import { shared } from '../lib/util';`)
	writeRepoFile(t, root, "src/lib/util.ts", `import { fmt } from './format';`)
	writeRepoFile(t, root, "src/lib/format.ts", `export const fmt = (s: string) => s;`)

	return NewScoper(root, &config.DomainsConfig{
		Domains: []config.DomainRule{
			{ID: "auth", FilePatterns: []string{"src/auth/**"}},
			{ID: "payments", FilePatterns: []string{"src/payments/**"}},
		},
	})
}

func TestScoper_ScopeDomain(t *testing.T) {
	scoper := scoperFixture(t)

	scoped, err := scoper.ScopeDomain("auth")
	require.NoError(t, err)
	require.Len(t, scoped, 3) // payments files are unreachable from auth

	byPath := map[string]ScopedFile{}
	for _, f := range scoped {
		byPath[f.Path] = f
	}

	login := byPath["src/auth/login.ts"]
	assert.True(t, login.IsDomainNative)
	assert.Equal(t, 1.0, login.Relevance)
	assert.Equal(t, 0, login.ImportDepth)

	util := byPath["src/lib/util.ts"]
	assert.False(t, util.IsDomainNative)
	assert.Equal(t, 0.6, util.Relevance)
	assert.Equal(t, 1, util.ImportDepth)
	assert.True(t, util.IsShared, "imported from two domains")

	format := byPath["src/lib/format.ts"]
	assert.InDelta(t, 0.5, format.Relevance, 1e-9)
	assert.Equal(t, 2, format.ImportDepth)
	assert.False(t, format.IsShared)

	// Most relevant first.
	assert.Equal(t, "src/auth/login.ts", scoped[0].Path)
}

func TestScoper_UnknownDomain(t *testing.T) {
	scoper := scoperFixture(t)
	_, err := scoper.ScopeDomain("marketing")
	assert.ErrorIs(t, err, config.ErrUnknownDomain)
}

func TestScoper_CacheAndInvalidate(t *testing.T) {
	scoper := scoperFixture(t)

	first, err := scoper.ScopeDomain("auth")
	require.NoError(t, err)
	second, err := scoper.ScopeDomain("auth")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	scoper.Invalidate("auth")
	third, err := scoper.ScopeDomain("auth")
	require.NoError(t, err)
	assert.Equal(t, first, third)
}
