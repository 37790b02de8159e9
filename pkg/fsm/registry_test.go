package fsm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

func TestRegistryLookups(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	registry := fsm.NewRegistry()

	_, ok := registry.Condition("missing")
	assert.False(t, ok)
	_, ok = registry.SideEffect("missing")
	assert.False(t, ok)

	registry.RegisterCondition("always", alwaysTrue)
	registry.RegisterSideEffect("noop", noopEffect)

	guard, ok := registry.Condition("always")
	require.True(t, ok)
	assert.True(t, guard(ctx, nil))

	effect, ok := registry.SideEffect("noop")
	require.True(t, ok)
	assert.NoError(t, effect(ctx, stateOpen, stateInProgress, nil))
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	registry := fsm.NewRegistry()
	registry.RegisterCondition("check", func(ctx context.Context, data any) bool { return false })
	registry.RegisterCondition("check", alwaysTrue)

	guard, ok := registry.Condition("check")
	require.True(t, ok)
	assert.True(t, guard(ctx, nil))
}

func TestRegistryIgnoresNilRegistrations(t *testing.T) {
	t.Parallel()

	registry := fsm.NewRegistry()
	registry.RegisterCondition("nil", nil)
	registry.RegisterSideEffect("nil", nil)

	_, ok := registry.Condition("nil")
	assert.False(t, ok)
	_, ok = registry.SideEffect("nil")
	assert.False(t, ok)
}
