package fsm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

func TestNewDefinitionValidation(t *testing.T) {
	t.Parallel()

	states := []fsm.State{stateOpen, stateInProgress}

	t.Run("Valid", func(t *testing.T) {
		t.Parallel()
		def, err := fsm.NewDefinition("ticket", states,
			[]fsm.Transition{{From: stateOpen, To: stateInProgress}}, stateOpen)
		require.NoError(t, err)
		assert.Equal(t, "ticket", def.EntityLabel())
		assert.Equal(t, stateOpen, def.InitialState())
		assert.Len(t, def.States(), 2)
		assert.Len(t, def.Transitions(), 1)
	})

	t.Run("NilInitialState", func(t *testing.T) {
		t.Parallel()
		_, err := fsm.NewDefinition("ticket", states, nil, nil)
		assert.ErrorIs(t, err, fsm.ErrMissingInitialState)
	})

	t.Run("InitialStateOutsideStateList", func(t *testing.T) {
		t.Parallel()
		_, err := fsm.NewDefinition("ticket", states, nil, stateResolved)
		require.Error(t, err)
		var notIn *fsm.StateNotInDefinitionError
		require.ErrorAs(t, err, &notIn)
		assert.Equal(t, "resolved", notIn.StateName)
		assert.Equal(t, "ticket", notIn.EntityLabel)
	})

	t.Run("TransitionEndpointOutsideStateList", func(t *testing.T) {
		t.Parallel()
		_, err := fsm.NewDefinition("ticket", states,
			[]fsm.Transition{{From: stateOpen, To: stateResolved}}, stateOpen)
		require.Error(t, err)
		var notIn *fsm.StateNotInDefinitionError
		require.ErrorAs(t, err, &notIn)
		assert.Equal(t, "resolved", notIn.StateName)
	})

	t.Run("DuplicateStatesCollapse", func(t *testing.T) {
		t.Parallel()
		def, err := fsm.NewDefinition("ticket",
			[]fsm.State{stateOpen, stateOpen, stateInProgress}, nil, stateOpen)
		require.NoError(t, err)
		assert.Len(t, def.States(), 2)
	})
}

func TestDefinitionAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	def, err := fsm.NewDefinition("ticket",
		[]fsm.State{stateOpen, stateInProgress},
		[]fsm.Transition{{From: stateOpen, To: stateInProgress}}, stateOpen)
	require.NoError(t, err)

	def.States()[0] = stateResolved
	def.Transitions()[0] = fsm.Transition{From: stateInProgress, To: stateOpen}

	assert.Equal(t, stateOpen, def.States()[0])
	assert.Equal(t, stateOpen, def.Transitions()[0].From)
}
