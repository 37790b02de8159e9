package fsm

// DefinitionDTO is the registry-independent, name-only mirror of a Definition.
// It is the persistence boundary: pure data, no functions, carried by any
// structured encoding with string scalars, ordered lists, and optional fields.
type DefinitionDTO struct {
	EntityLabel  string          `json:"entity_label" yaml:"entity_label"`
	InitialState string          `json:"initial_state" yaml:"initial_state"`
	States       []string        `json:"states" yaml:"states"`
	Transitions  []TransitionDTO `json:"transitions" yaml:"transitions"`
}

// TransitionDTO mirrors one Transition by name only. ConditionName and
// SideEffectName are empty when the transition's guard/effect was anonymous
// or unset; they resolve against a Registry at load time.
type TransitionDTO struct {
	From           string `json:"from" yaml:"from"`
	To             string `json:"to" yaml:"to"`
	ConditionName  string `json:"condition_name,omitempty" yaml:"condition_name,omitempty"`
	SideEffectName string `json:"side_effect_name,omitempty" yaml:"side_effect_name,omitempty"`
}
