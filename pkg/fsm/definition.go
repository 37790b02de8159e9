package fsm

// Definition is the immutable, complete description of a machine: its entity
// label, state set, ordered transition list, and initial state. A Definition
// is never mutated after construction and is safe to share read-only across
// any number of concurrent Machine instances.
type Definition struct {
	entityLabel string
	states      []State
	transitions []Transition
	initial     State

	// byFrom indexes transitions by from-state name, preserving declaration
	// order within each bucket. Declaration order is the tie-break rule when
	// several transitions share the same (from, to) pair.
	byFrom map[string][]Transition
}

// NewDefinition constructs a Definition from an externally supplied state
// list and transition list. The initial state and every transition endpoint
// must be present in states; violations fail with StateNotInDefinitionError.
// Builder-constructed definitions cannot trip this because the builder
// auto-adds referenced states.
func NewDefinition(entityLabel string, states []State, transitions []Transition, initial State) (*Definition, error) {
	if initial == nil {
		return nil, ErrMissingInitialState
	}

	members := make(map[string]struct{}, len(states))
	ordered := make([]State, 0, len(states))
	for _, s := range states {
		if s == nil {
			return nil, ErrNilState
		}
		if _, ok := members[s.Name()]; ok {
			continue
		}
		members[s.Name()] = struct{}{}
		ordered = append(ordered, s)
	}

	if _, ok := members[initial.Name()]; !ok {
		return nil, &StateNotInDefinitionError{EntityLabel: entityLabel, StateName: initial.Name()}
	}

	byFrom := make(map[string][]Transition)
	copied := make([]Transition, len(transitions))
	copy(copied, transitions)
	for _, t := range copied {
		if t.From == nil || t.To == nil {
			return nil, ErrNilState
		}
		if _, ok := members[t.From.Name()]; !ok {
			return nil, &StateNotInDefinitionError{EntityLabel: entityLabel, StateName: t.From.Name()}
		}
		if _, ok := members[t.To.Name()]; !ok {
			return nil, &StateNotInDefinitionError{EntityLabel: entityLabel, StateName: t.To.Name()}
		}
		byFrom[t.From.Name()] = append(byFrom[t.From.Name()], t)
	}

	return &Definition{
		entityLabel: entityLabel,
		states:      ordered,
		transitions: copied,
		initial:     initial,
		byFrom:      byFrom,
	}, nil
}

// EntityLabel returns the label of the entity this definition describes.
func (d *Definition) EntityLabel() string {
	return d.entityLabel
}

// States returns the state set in insertion order.
func (d *Definition) States() []State {
	out := make([]State, len(d.states))
	copy(out, d.states)
	return out
}

// Transitions returns the transition list in declaration order.
func (d *Definition) Transitions() []Transition {
	out := make([]Transition, len(d.transitions))
	copy(out, d.transitions)
	return out
}

// InitialState returns the state a fresh machine starts in.
func (d *Definition) InitialState() State {
	return d.initial
}

func (d *Definition) transitionsFrom(name string) []Transition {
	return d.byFrom[name]
}
