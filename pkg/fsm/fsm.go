package fsm

import (
	"context"
)

// State represents a named point in the machine's enumerated state space.
// Two states are equal iff their names are equal.
type State interface {
	Name() string
}

// Guard evaluates whether a transition is eligible based on the caller's
// mutable context object. Guards must be cheap and side-effect free; they may
// be evaluated more than once per attempted transition.
type Guard func(ctx context.Context, data any) bool

// Effect executes a side effect during a successful transition. The cursor
// advances only after the effect returns nil; a failing effect leaves the
// machine in its pre-transition state.
type Effect func(ctx context.Context, from, to State, data any) error

// Transition is a directed edge between two states with an optional guard and
// an optional side effect. A nil Guard means the transition is always
// eligible; a nil Effect is a no-op. GuardName/EffectName carry the registry
// names used by the serializable form; they may be set without the function
// when loading against a partially populated registry.
type Transition struct {
	From       State
	To         State
	Guard      Guard
	Effect     Effect
	GuardName  string
	EffectName string
}

// StringState provides a simple string-based state implementation for basic
// use cases. Applications with enumerated state types typically declare their
// own constants of this type.
type StringState string

func (s StringState) Name() string {
	return string(s)
}
