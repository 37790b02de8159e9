// Package fsm provides a declarative finite-state-machine engine built around
// an immutable Definition, a fluent Builder, and a name-indexed Registry that
// makes transition logic persistable by reference.
//
// The package splits the FSM pattern into three roles:
//  1. Builder — accumulates states and guarded, side-effecting transitions
//     and freezes them into a Definition
//  2. Definition — the immutable description of the machine, safe to share
//     read-only across any number of running instances
//  3. Machine — a lightweight cursor over a Definition that evaluates and
//     applies transitions against the caller's mutable context object
//
// # Usage
//
// States are anything implementing the State interface; the ready-made
// StringState covers enumerated string constants:
//
//	const (
//	    Open       = fsm.StringState("open")
//	    InProgress = fsm.StringState("in_progress")
//	    Resolved   = fsm.StringState("resolved")
//	)
//
//	agentAssigned := func(ctx context.Context, data any) bool {
//	    t, ok := data.(*Ticket)
//	    return ok && t.AgentID != ""
//	}
//
//	def, err := fsm.NewBuilder("ticket").
//	    WithInitialState(Open).
//	    AddTransition(Open, InProgress).When(agentAssigned).Done().
//	    AddTransition(InProgress, Resolved).Done().
//	    Build()
//
//	machine, _ := fsm.NewMachine(def)
//	err = machine.TryTransitionTo(ctx, InProgress, ticket)
//
// TryTransitionTo scans the definition's transitions in declaration order for
// the first edge from the current state to the target whose guard passes,
// runs its side effect, and only then advances the cursor. Declaration order
// is the tie-break rule when several transitions share the same endpoints.
//
// # Persistence by reference
//
// A Registry maps names to guards and side effects so a machine definition
// can be serialized without its function bodies and reconstructed later:
//
//	registry := fsm.NewRegistry()
//	registry.RegisterCondition("agent_assigned", agentAssigned)
//
//	b := fsm.NewBuilder("ticket").
//	    WithRegistry(registry).
//	    WithInitialState(Open)
//	b.AddTransition(Open, InProgress).WhenRegistered("agent_assigned").Done()
//
//	dto, err := b.ToSerializable()
//	// ... encode dto, persist, decode elsewhere ...
//	def, err := fsm.NewBuilder("").LoadFrom(dto, registry).Build()
//
// Names absent from the registry at load time degrade gracefully: a missing
// condition becomes always eligible and a missing side effect becomes a
// no-op. The substitution is logged because it can silently widen a guarded
// transition; pass WithStrictNames to fail loudly instead. Serialized state
// names are validated through the builder's StateParser — ParserOf restricts
// loading to a closed state set, rejecting unknown names.
//
// # Error Handling
//
// Builder methods chain fluently; the first configuration error is recorded
// and returned by Build, ToSerializable, or Err. Runtime failures carry the
// state names involved and are distinguishable with errors.As or the helper
// predicates:
//
//	if fsm.IsNoTransitionError(err)      { /* edge not declared */ }
//	if fsm.IsTransitionRejectedError(err) { /* guards said no */ }
//
// # Concurrency
//
// A Definition is immutable after Build and freely shareable. Each Machine
// guards its cursor with an RWMutex, making Current and CanTransitionTo cheap
// while serializing TryTransitionTo; guards and side effects run while the
// lock is held and must not call back into the same machine instance. The
// engine itself never blocks: a side effect that blocks, blocks its caller.
package fsm
