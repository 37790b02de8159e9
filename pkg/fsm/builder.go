package fsm

import (
	"log/slog"
)

// StateParser maps a serialized state name back to a State value. It is the
// load-time bridge between the name-only DTO form and the application's
// enumerated state type; names that do not map fail with
// UnknownStateNameError.
type StateParser func(name string) (State, error)

// ParserOf returns a StateParser over a closed set of states. Names outside
// the set fail with UnknownStateNameError, giving DTO loading the same
// strictness as parsing into an enumerated type.
func ParserOf(states ...State) StateParser {
	byName := make(map[string]State, len(states))
	for _, s := range states {
		if s != nil {
			byName[s.Name()] = s
		}
	}
	return func(name string) (State, error) {
		s, ok := byName[name]
		if !ok {
			return nil, &UnknownStateNameError{Name: name}
		}
		return s, nil
	}
}

// BuilderOption configures a Builder at construction time.
type BuilderOption func(*Builder)

// WithLogger sets the logger used to flag graceful-degradation substitutions
// during LoadFrom. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithStateParser sets the parser used by LoadFrom to turn serialized state
// names into State values. The default parser accepts any name as a
// StringState; use ParserOf to restrict loading to an enumerated set.
func WithStateParser(parse StateParser) BuilderOption {
	return func(b *Builder) {
		if parse != nil {
			b.parse = parse
		}
	}
}

// WithStrictNames makes LoadFrom fail on condition/side-effect names that are
// absent from the supplied registry, instead of silently substituting the
// always-eligible guard and no-op effect.
func WithStrictNames() BuilderOption {
	return func(b *Builder) {
		b.strict = true
	}
}

// Builder accumulates states and transitions and freezes them into immutable
// Definitions. It is a plain mutable value intended for single-goroutine use
// during machine composition.
//
// Builder methods chain fluently and never return errors mid-chain; the first
// configuration error is recorded and surfaced by Build, ToSerializable, or
// Err. Once an error is recorded all further mutation is ignored.
type Builder struct {
	entityLabel string
	states      []State
	stateSet    map[string]struct{}
	transitions []Transition
	initial     State
	registry    *Registry
	parse       StateParser
	strict      bool
	logger      *slog.Logger
	err         error
}

// NewBuilder creates a builder for the named entity.
func NewBuilder(entityLabel string, opts ...BuilderOption) *Builder {
	b := &Builder{
		entityLabel: entityLabel,
		stateSet:    make(map[string]struct{}),
		parse: func(name string) (State, error) {
			return StringState(name), nil
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WithInitialState sets the machine's initial state and inserts it into the
// state set. Inserting an already-present state is a no-op.
func (b *Builder) WithInitialState(s State) *Builder {
	if b.err != nil {
		return b
	}
	if s == nil {
		b.err = ErrNilState
		return b
	}
	b.addState(s)
	b.initial = s
	return b
}

// WithRegistry attaches the registry used by the name-only transition-builder
// methods and by LoadFrom.
func (b *Builder) WithRegistry(r *Registry) *Builder {
	if b.err != nil {
		return b
	}
	if r == nil {
		b.err = ErrNilRegistry
		return b
	}
	b.registry = r
	return b
}

// AddTransition starts a transition from one state to another, inserting both
// endpoints into the state set, and returns a scoped builder for the
// transition's guard and side effect. Call Done on the returned builder to
// append the transition and resume configuring the parent.
func (b *Builder) AddTransition(from, to State) *TransitionBuilder {
	tb := &TransitionBuilder{parent: b}
	if b.err != nil {
		return tb
	}
	if from == nil || to == nil {
		b.err = ErrNilState
		return tb
	}
	b.addState(from)
	b.addState(to)
	tb.transition = Transition{From: from, To: to}
	return tb
}

// Err reports the first configuration error recorded by the fluent chain, if
// any.
func (b *Builder) Err() error {
	return b.err
}

// Build freezes the builder's current states, transitions, and initial state
// into an immutable Definition. Build may be called repeatedly; each call
// yields an independent snapshot of the builder's state at that moment.
func (b *Builder) Build() (*Definition, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.initial == nil {
		return nil, ErrMissingInitialState
	}
	return NewDefinition(b.entityLabel, b.states, b.transitions, b.initial)
}

// ToSerializable projects the builder's current configuration into the
// name-only DTO form. Guard and effect bodies are never serialized, only the
// names assigned to them; anonymous guards/effects serialize without a name
// and load back as the always-eligible/no-op defaults.
func (b *Builder) ToSerializable() (DefinitionDTO, error) {
	if b.err != nil {
		return DefinitionDTO{}, b.err
	}
	if b.initial == nil {
		return DefinitionDTO{}, ErrMissingInitialState
	}

	dto := DefinitionDTO{
		EntityLabel:  b.entityLabel,
		InitialState: b.initial.Name(),
		States:       make([]string, 0, len(b.states)),
		Transitions:  make([]TransitionDTO, 0, len(b.transitions)),
	}
	for _, s := range b.states {
		dto.States = append(dto.States, s.Name())
	}
	for _, t := range b.transitions {
		dto.Transitions = append(dto.Transitions, TransitionDTO{
			From:           t.From.Name(),
			To:             t.To.Name(),
			ConditionName:  t.GuardName,
			SideEffectName: t.EffectName,
		})
	}
	return dto, nil
}

// LoadFrom replaces the builder's configuration with the contents of a DTO,
// parsing state names through the builder's StateParser and resolving
// condition/side-effect names against the registry. Names absent from the
// registry degrade gracefully to the always-eligible guard and no-op effect
// (logged at Warn, since this can silently widen a guarded transition) unless
// the builder was created with WithStrictNames. LoadFrom returns the builder
// for continued fluent configuration or an immediate Build.
func (b *Builder) LoadFrom(dto DefinitionDTO, registry *Registry) *Builder {
	if b.err != nil {
		return b
	}

	b.entityLabel = dto.EntityLabel
	b.states = nil
	b.stateSet = make(map[string]struct{})
	b.transitions = nil
	b.initial = nil
	if registry != nil {
		b.registry = registry
	}

	for _, name := range dto.States {
		s, err := b.parse(name)
		if err != nil {
			b.err = err
			return b
		}
		b.addState(s)
	}

	initial, err := b.parse(dto.InitialState)
	if err != nil {
		b.err = err
		return b
	}
	b.addState(initial)
	b.initial = initial

	for _, td := range dto.Transitions {
		from, err := b.parse(td.From)
		if err != nil {
			b.err = err
			return b
		}
		to, err := b.parse(td.To)
		if err != nil {
			b.err = err
			return b
		}
		b.addState(from)
		b.addState(to)

		t := Transition{From: from, To: to}
		if td.ConditionName != "" {
			t.GuardName = td.ConditionName
			guard, ok := b.lookupCondition(td.ConditionName)
			if ok {
				t.Guard = guard
			} else {
				if b.strict {
					b.err = &UnknownConditionError{Name: td.ConditionName}
					return b
				}
				b.logger.Warn("condition not found in registry, transition is now always eligible",
					slog.String("entity", b.entityLabel),
					slog.String("condition", td.ConditionName),
					slog.String("from", td.From),
					slog.String("to", td.To),
				)
			}
		}
		if td.SideEffectName != "" {
			t.EffectName = td.SideEffectName
			effect, ok := b.lookupSideEffect(td.SideEffectName)
			if ok {
				t.Effect = effect
			} else {
				if b.strict {
					b.err = &UnknownSideEffectError{Name: td.SideEffectName}
					return b
				}
				b.logger.Warn("side effect not found in registry, substituting no-op",
					slog.String("entity", b.entityLabel),
					slog.String("side_effect", td.SideEffectName),
					slog.String("from", td.From),
					slog.String("to", td.To),
				)
			}
		}
		b.transitions = append(b.transitions, t)
	}
	return b
}

func (b *Builder) addState(s State) {
	if _, ok := b.stateSet[s.Name()]; ok {
		return
	}
	b.stateSet[s.Name()] = struct{}{}
	b.states = append(b.states, s)
}

func (b *Builder) lookupCondition(name string) (Guard, bool) {
	if b.registry == nil {
		return nil, false
	}
	return b.registry.Condition(name)
}

func (b *Builder) lookupSideEffect(name string) (Effect, bool) {
	if b.registry == nil {
		return nil, false
	}
	return b.registry.SideEffect(name)
}

// TransitionBuilder configures the guard and side effect of a single
// transition scoped to one (from, to) pair. It is short-lived: Done appends
// the completed transition to the parent builder and returns control to it.
type TransitionBuilder struct {
	parent     *Builder
	transition Transition
}

// When sets the transition's guard without a serializable name.
func (tb *TransitionBuilder) When(guard Guard) *TransitionBuilder {
	if tb.parent.err != nil {
		return tb
	}
	tb.transition.Guard = guard
	return tb
}

// WhenNamed sets the transition's guard together with the name it serializes
// under.
func (tb *TransitionBuilder) WhenNamed(name string, guard Guard) *TransitionBuilder {
	if tb.parent.err != nil {
		return tb
	}
	tb.transition.Guard = guard
	tb.transition.GuardName = name
	return tb
}

// WhenRegistered resolves the guard by name from the parent's registry.
// Requires a registry to have been set; an unregistered name is a
// configuration error surfaced at Build time.
func (tb *TransitionBuilder) WhenRegistered(name string) *TransitionBuilder {
	if tb.parent.err != nil {
		return tb
	}
	if tb.parent.registry == nil {
		tb.parent.err = ErrRegistryNotConfigured
		return tb
	}
	guard, ok := tb.parent.registry.Condition(name)
	if !ok {
		tb.parent.err = &UnknownConditionError{Name: name}
		return tb
	}
	tb.transition.Guard = guard
	tb.transition.GuardName = name
	return tb
}

// WithEffect sets the transition's side effect without a serializable name.
func (tb *TransitionBuilder) WithEffect(effect Effect) *TransitionBuilder {
	if tb.parent.err != nil {
		return tb
	}
	tb.transition.Effect = effect
	return tb
}

// WithNamedEffect sets the transition's side effect together with the name it
// serializes under.
func (tb *TransitionBuilder) WithNamedEffect(name string, effect Effect) *TransitionBuilder {
	if tb.parent.err != nil {
		return tb
	}
	tb.transition.Effect = effect
	tb.transition.EffectName = name
	return tb
}

// WithRegisteredEffect resolves the side effect by name from the parent's
// registry. Requires a registry to have been set; an unregistered name is a
// configuration error surfaced at Build time.
func (tb *TransitionBuilder) WithRegisteredEffect(name string) *TransitionBuilder {
	if tb.parent.err != nil {
		return tb
	}
	if tb.parent.registry == nil {
		tb.parent.err = ErrRegistryNotConfigured
		return tb
	}
	effect, ok := tb.parent.registry.SideEffect(name)
	if !ok {
		tb.parent.err = &UnknownSideEffectError{Name: name}
		return tb
	}
	tb.transition.Effect = effect
	tb.transition.EffectName = name
	return tb
}

// Done appends the configured transition to the parent builder and returns
// it. An unset guard leaves the transition always eligible; an unset side
// effect is a no-op.
func (tb *TransitionBuilder) Done() *Builder {
	if tb.parent.err != nil {
		return tb.parent
	}
	tb.parent.transitions = append(tb.parent.transitions, tb.transition)
	return tb.parent
}
