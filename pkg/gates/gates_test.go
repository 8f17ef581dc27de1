package gates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSystem(t *testing.T) {
	t.Run("standard has ten gates", func(t *testing.T) {
		system, err := NewSystem(ModeStandard)
		require.NoError(t, err)
		assert.Equal(t, 10, system.Count())
		assert.Equal(t, Gate(9), system.Terminal())
	})

	t.Run("tdd inserts TESTS_RED and REFACTOR", func(t *testing.T) {
		system, err := NewSystem(ModeTDD)
		require.NoError(t, err)
		assert.Equal(t, 12, system.Count())

		name, err := system.Name(3)
		require.NoError(t, err)
		assert.Equal(t, "TESTS_RED", name)

		name, err = system.Name(6)
		require.NoError(t, err)
		assert.Equal(t, "REFACTOR", name)
	})

	t.Run("unknown mode fails", func(t *testing.T) {
		_, err := NewSystem("waterfall")
		assert.Error(t, err)
	})
}

func TestSystem_Name(t *testing.T) {
	system, err := NewSystem(ModeStandard)
	require.NoError(t, err)

	name, err := system.Name(0)
	require.NoError(t, err)
	assert.Equal(t, "DESIGN_VALIDATED", name)

	name, err = system.Name(9)
	require.NoError(t, err)
	assert.Equal(t, "DEPLOYED", name)

	_, err = system.Name(10)
	assert.Error(t, err)
	_, err = system.Name(-1)
	assert.Error(t, err)
}

func TestSystem_CanPass(t *testing.T) {
	system, err := NewSystem(ModeStandard)
	require.NoError(t, err)

	t.Run("gate 0 needs nothing", func(t *testing.T) {
		assert.True(t, system.CanPass(0, map[Gate]bool{}))
	})

	t.Run("gate n needs all below it", func(t *testing.T) {
		passed := PassedSet([]Gate{0, 1, 2})
		assert.True(t, system.CanPass(3, passed))
		assert.False(t, system.CanPass(5, passed))
	})

	t.Run("a hole blocks every later gate", func(t *testing.T) {
		passed := PassedSet([]Gate{0, 2, 3})
		assert.False(t, system.CanPass(4, passed))
		missing := system.MissingPrerequisites(4, passed)
		assert.Equal(t, []Gate{1}, missing)
	})

	t.Run("out of range gates never pass", func(t *testing.T) {
		assert.False(t, system.CanPass(10, map[Gate]bool{}))
		assert.False(t, system.CanPass(-1, map[Gate]bool{}))
	})
}

func TestSystem_ValidateTransition(t *testing.T) {
	system, err := NewSystem(ModeStandard)
	require.NoError(t, err)

	assert.NoError(t, system.ValidateTransition(0, 1))
	assert.NoError(t, system.ValidateTransition(8, 9))

	t.Run("no skipping", func(t *testing.T) {
		assert.Error(t, system.ValidateTransition(0, 2))
	})
	t.Run("no backward moves", func(t *testing.T) {
		assert.Error(t, system.ValidateTransition(5, 4))
	})
	t.Run("no self transitions", func(t *testing.T) {
		assert.Error(t, system.ValidateTransition(3, 3))
	})
}

func TestSystem_NextGate(t *testing.T) {
	system, err := NewSystem(ModeStandard)
	require.NoError(t, err)

	next, ok := system.NextGate(PassedSet([]Gate{0, 1}))
	assert.True(t, ok)
	assert.Equal(t, Gate(2), next)

	all := PassedSet([]Gate{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	next, ok = system.NextGate(all)
	assert.False(t, ok)
	assert.Equal(t, Gate(10), next)
}

func TestGate_Tag(t *testing.T) {
	assert.Equal(t, "gate-0", Gate(0).Tag())
	assert.Equal(t, "gate-9", Gate(9).Tag())
}
