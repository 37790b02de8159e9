package fsm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TransitionRecord is one entry in a machine's audit history.
type TransitionRecord struct {
	ID          uuid.UUID
	EntityLabel string
	From        string
	To          string
	GuardName   string
	EffectName  string
	At          time.Time
}

// MachineOption configures a Machine at construction time.
type MachineOption func(*Machine)

// WithContextRequired makes TryTransitionTo fail fast with ErrNilContext when
// the context object is nil, instead of letting guards silently evaluate
// against a nil value.
func WithContextRequired() MachineOption {
	return func(m *Machine) {
		m.requireData = true
	}
}

// WithHistory enables an in-memory audit trail of the machine's last n
// successful transitions. n <= 0 disables history.
func WithHistory(n int) MachineOption {
	return func(m *Machine) {
		m.historyCap = n
	}
}

// Machine is a running cursor over an immutable Definition. It holds exactly
// one current state, mutated only by successful TryTransitionTo calls.
//
// A Machine guards its cursor with an RWMutex, so concurrent use is safe, but
// note that guards and side effects run while the lock is held: they must not
// call back into the same machine.
type Machine struct {
	def         *Definition
	mu          sync.RWMutex
	current     State
	requireData bool
	historyCap  int
	history     []TransitionRecord
}

// NewMachine creates a machine positioned at the definition's initial state.
func NewMachine(def *Definition, opts ...MachineOption) (*Machine, error) {
	if def == nil {
		return nil, ErrNilDefinition
	}
	m := &Machine{
		def:     def,
		current: def.InitialState(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Definition returns the immutable definition this machine runs over.
func (m *Machine) Definition() *Definition {
	return m.def
}

// Current returns the machine's current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// CanTransitionTo reports whether some transition from the current state to
// target has a guard that evaluates true against data. Evaluation order is
// the definition's declaration order.
func (m *Machine) CanTransitionTo(ctx context.Context, target State, data any) bool {
	if target == nil {
		return false
	}
	if m.requireData && data == nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	_, _, err := m.match(ctx, target, data)
	return err == nil
}

// TryTransitionTo attempts to move the cursor to target: it scans the
// definition's transitions in declaration order for the first one whose from
// matches the current state, whose to matches target, and whose guard
// evaluates true; runs that transition's side effect; and only then advances
// the cursor. On failure the cursor is unchanged and the error reports
// whether no edge exists (NoTransitionError) or guards rejected every
// candidate (TransitionRejectedError). A side effect error aborts the
// transition, leaving the machine in its pre-transition state.
//
// There is no implicit short-circuit for the current state: without an
// explicit self-transition, targeting the current state fails like any other
// missing edge.
func (m *Machine) TryTransitionTo(ctx context.Context, target State, data any) error {
	if target == nil {
		return ErrNilState
	}
	if m.requireData && data == nil {
		return ErrNilContext
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	matched, from, err := m.match(ctx, target, data)
	if err != nil {
		return err
	}

	if matched.Effect != nil {
		if err := matched.Effect(ctx, from, matched.To, data); err != nil {
			return fmt.Errorf("side effect failed: %w", err)
		}
	}

	m.current = matched.To
	m.record(matched)
	return nil
}

// History returns a copy of the machine's recorded transitions, oldest first.
// Empty unless the machine was created with WithHistory.
func (m *Machine) History() []TransitionRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]TransitionRecord, len(m.history))
	copy(out, m.history)
	return out
}

// Reset moves the cursor back to the definition's initial state without
// evaluating guards or running effects.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.def.InitialState()
}

// match performs the first-match scan. Callers must hold at least the read
// lock.
func (m *Machine) match(ctx context.Context, target State, data any) (Transition, State, error) {
	from := m.current
	edgeExists := false
	for _, t := range m.def.transitionsFrom(from.Name()) {
		if t.To.Name() != target.Name() {
			continue
		}
		edgeExists = true
		if t.Guard == nil || t.Guard(ctx, data) {
			return t, from, nil
		}
	}
	if edgeExists {
		return Transition{}, from, &TransitionRejectedError{From: from.Name(), To: target.Name()}
	}
	return Transition{}, from, &NoTransitionError{From: from.Name(), To: target.Name()}
}

func (m *Machine) record(t Transition) {
	if m.historyCap <= 0 {
		return
	}
	m.history = append(m.history, TransitionRecord{
		ID:          uuid.New(),
		EntityLabel: m.def.EntityLabel(),
		From:        t.From.Name(),
		To:          t.To.Name(),
		GuardName:   t.GuardName,
		EffectName:  t.EffectName,
		At:          time.Now().UTC(),
	})
	if len(m.history) > m.historyCap {
		m.history = m.history[len(m.history)-m.historyCap:]
	}
}
