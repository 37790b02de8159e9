package fsm

import "sync"

// Registry maps string names to guards and side effects so that transition
// logic can be persisted by reference and re-resolved at load time. A single
// Registry is typically longer-lived than any one Definition and may be
// shared by several builders.
//
// Registration uses insert-or-overwrite semantics: the last registration
// under a given name wins and duplicates are not an error.
type Registry struct {
	mu          sync.RWMutex
	conditions  map[string]Guard
	sideEffects map[string]Effect
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		conditions:  make(map[string]Guard),
		sideEffects: make(map[string]Effect),
	}
}

// RegisterCondition stores a guard under the given name, replacing any
// previous registration. Nil guards are ignored.
func (r *Registry) RegisterCondition(name string, guard Guard) {
	if guard == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conditions[name] = guard
}

// RegisterSideEffect stores an effect under the given name, replacing any
// previous registration. Nil effects are ignored.
func (r *Registry) RegisterSideEffect(name string, effect Effect) {
	if effect == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sideEffects[name] = effect
}

// Condition looks up a guard by name.
func (r *Registry) Condition(name string) (Guard, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.conditions[name]
	return g, ok
}

// SideEffect looks up an effect by name.
func (r *Registry) SideEffect(name string) (Effect, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sideEffects[name]
	return e, ok
}
