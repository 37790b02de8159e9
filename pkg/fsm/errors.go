package fsm

import (
	"errors"
	"fmt"
)

// Configuration errors surfaced by the builder and constructors.
var (
	// ErrMissingInitialState is returned by Build and ToSerializable when no
	// initial state was ever set.
	ErrMissingInitialState = errors.New("fsm.missing_initial_state")

	// ErrNilState is returned when a nil state is passed where one is required.
	ErrNilState = errors.New("fsm.nil_state")

	// ErrNilRegistry is returned when WithRegistry is called with nil.
	ErrNilRegistry = errors.New("fsm.nil_registry")

	// ErrRegistryNotConfigured is returned when a name-only builder method is
	// used without a registry having been set.
	ErrRegistryNotConfigured = errors.New("fsm.registry_not_configured")

	// ErrNilDefinition is returned by NewMachine when the definition is nil.
	ErrNilDefinition = errors.New("fsm.nil_definition")

	// ErrNilContext is returned by TryTransitionTo when the machine was
	// created with WithContextRequired and the context object is nil.
	ErrNilContext = errors.New("fsm.nil_context")
)

// UnknownConditionError indicates a condition name that is not present in the
// registry where resolution was required.
type UnknownConditionError struct {
	Name string
}

func (e *UnknownConditionError) Error() string {
	return fmt.Sprintf("unknown condition %q", e.Name)
}

// UnknownSideEffectError indicates a side-effect name that is not present in
// the registry where resolution was required.
type UnknownSideEffectError struct {
	Name string
}

func (e *UnknownSideEffectError) Error() string {
	return fmt.Sprintf("unknown side effect %q", e.Name)
}

// UnknownStateNameError indicates a serialized state name that does not map to
// any value of the target state type. Always fatal at load time.
type UnknownStateNameError struct {
	Name string
}

func (e *UnknownStateNameError) Error() string {
	return fmt.Sprintf("unknown state name %q", e.Name)
}

// StateNotInDefinitionError indicates a definition whose initial state or
// transition endpoint is missing from its state list.
type StateNotInDefinitionError struct {
	EntityLabel string
	StateName   string
}

func (e *StateNotInDefinitionError) Error() string {
	return fmt.Sprintf("state '%s' referenced by definition '%s' is not in its state list", e.StateName, e.EntityLabel)
}

// NoTransitionError indicates no transition is declared from the current
// state to the requested target.
type NoTransitionError struct {
	From string
	To   string
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("no transition from state '%s' to state '%s'", e.From, e.To)
}

// TransitionRejectedError indicates transitions to the target exist but every
// candidate's guard evaluated false.
type TransitionRejectedError struct {
	From string
	To   string
}

func (e *TransitionRejectedError) Error() string {
	return fmt.Sprintf("transition from state '%s' to state '%s' was rejected by guards", e.From, e.To)
}

func IsNoTransitionError(err error) bool {
	var e *NoTransitionError
	return errors.As(err, &e)
}

func IsTransitionRejectedError(err error) bool {
	var e *TransitionRejectedError
	return errors.As(err, &e)
}

func IsUnknownStateNameError(err error) bool {
	var e *UnknownStateNameError
	return errors.As(err, &e)
}
