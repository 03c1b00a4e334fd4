package techniques

import "github.com/teilomillet/promptgen/utils"

// Built-in technique IDs.
const (
	ChainOfThought   = "chain_of_thought"
	TreeOfThoughts   = "tree_of_thoughts"
	FewShot          = "few_shot"
	ZeroShot         = "zero_shot"
	RolePlay         = "role_play"
	StepByStep       = "step_by_step"
	StructuredOutput = "structured_output"
	EmotionalAppeal  = "emotional_appeal"
	Constraints      = "constraints"
	Analogical       = "analogical"
	SelfConsistency  = "self_consistency"
	ReAct            = "react"
)

// BuiltinIDs returns the built-in technique IDs in registration order.
func BuiltinIDs() []string {
	return []string{
		ChainOfThought,
		TreeOfThoughts,
		FewShot,
		ZeroShot,
		RolePlay,
		StepByStep,
		StructuredOutput,
		EmotionalAppeal,
		Constraints,
		Analogical,
		SelfConsistency,
		ReAct,
	}
}

// BuiltinFactories maps every built-in ID to its factory.
func BuiltinFactories() map[string]Factory {
	return map[string]Factory{
		ChainOfThought:   factory(NewChainOfThoughtTechnique),
		TreeOfThoughts:   factory(NewTreeOfThoughtsTechnique),
		FewShot:          factory(NewFewShotTechnique),
		ZeroShot:         factory(NewZeroShotTechnique),
		RolePlay:         factory(NewRolePlayTechnique),
		StepByStep:       factory(NewStepByStepTechnique),
		StructuredOutput: factory(NewStructuredOutputTechnique),
		EmotionalAppeal:  factory(NewEmotionalAppealTechnique),
		Constraints:      factory(NewConstraintsTechnique),
		Analogical:       factory(NewAnalogicalTechnique),
		SelfConsistency:  factory(NewSelfConsistencyTechnique),
		ReAct:            factory(NewReActTechnique),
	}
}

// RegisterBuiltins registers every built-in factory in r.
func RegisterBuiltins(r *Registry) {
	factories := BuiltinFactories()
	for _, id := range BuiltinIDs() {
		r.Register(id, factories[id])
	}
}

func factory[T Technique](newFn func(Config, utils.Logger) (T, error)) Factory {
	return func(cfg Config, logger utils.Logger) (Technique, error) {
		t, err := newFn(cfg, logger)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}

func init() {
	RegisterBuiltins(defaultRegistry)
}
