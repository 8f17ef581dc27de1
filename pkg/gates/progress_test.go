package gates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress_MarkGatePassed(t *testing.T) {
	system, err := NewSystem(ModeStandard)
	require.NoError(t, err)

	t.Run("gates pass in order", func(t *testing.T) {
		p := NewProgress(system)
		require.NoError(t, p.MarkGatePassed(0, "cto"))
		require.NoError(t, p.MarkGatePassed(1, "pm"))

		passed := p.Passed()
		assert.True(t, passed[0])
		assert.True(t, passed[1])

		history := p.History()
		require.Len(t, history, 2)
		assert.Equal(t, "DESIGN_VALIDATED", history[0].Name)
		assert.Equal(t, "cto", history[0].PassedBy)
	})

	t.Run("skipping prerequisites rejected", func(t *testing.T) {
		p := NewProgress(system)
		err := p.MarkGatePassed(3, "dev")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing prerequisites")
	})

	t.Run("re-passing rejected", func(t *testing.T) {
		p := NewProgress(system)
		require.NoError(t, p.MarkGatePassed(0, "cto"))
		err := p.MarkGatePassed(0, "cto")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already passed")
	})
}

func TestReplay(t *testing.T) {
	system, err := NewSystem(ModeStandard)
	require.NoError(t, err)

	t.Run("rebuilds the passed set from history", func(t *testing.T) {
		original := NewProgress(system)
		require.NoError(t, original.MarkGatePassed(0, "cto"))
		require.NoError(t, original.MarkGatePassed(1, "pm"))
		require.NoError(t, original.MarkGatePassed(2, "cto"))

		replayed, err := Replay(system, original.History())
		require.NoError(t, err)
		assert.Equal(t, original.Passed(), replayed.Passed())
	})

	t.Run("corrupted history rejected", func(t *testing.T) {
		_, err := Replay(system, []Transition{{Gate: 5, PassedBy: "qa"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "replaying gate 5")
	})
}
