// Package promptgen is the single import surface for the prompt engineering
// techniques and the engine that applies them.
//
// Every built-in technique is registered in the shared registry when the
// package loads:
//
//	eng, err := promptgen.New(nil)
//	if err != nil {
//		return err
//	}
//	resp, err := eng.Generate(ctx, promptgen.Request{
//		Text:       "Explain how DNS resolution works",
//		Techniques: []string{promptgen.ChainOfThought, promptgen.RolePlay},
//	})
package promptgen

import (
	"slices"

	"github.com/teilomillet/promptgen/config"
	"github.com/teilomillet/promptgen/engine"
	"github.com/teilomillet/promptgen/techniques"
	"github.com/teilomillet/promptgen/utils"
)

type (
	BaseTechnique     = techniques.Base
	TechniqueRegistry = techniques.Registry
	Technique         = techniques.Technique
	TechniqueConfig   = techniques.Config
	TechniqueContext  = techniques.Context
	TechniqueFactory  = techniques.Factory
	TechniqueError    = techniques.Error

	ChainOfThoughtTechnique   = techniques.ChainOfThoughtTechnique
	TreeOfThoughtsTechnique   = techniques.TreeOfThoughtsTechnique
	FewShotTechnique          = techniques.FewShotTechnique
	ZeroShotTechnique         = techniques.ZeroShotTechnique
	RolePlayTechnique         = techniques.RolePlayTechnique
	StepByStepTechnique       = techniques.StepByStepTechnique
	StructuredOutputTechnique = techniques.StructuredOutputTechnique
	EmotionalAppealTechnique  = techniques.EmotionalAppealTechnique
	ConstraintsTechnique      = techniques.ConstraintsTechnique
	AnalogicalTechnique       = techniques.AnalogicalTechnique
	SelfConsistencyTechnique  = techniques.SelfConsistencyTechnique
	ReActTechnique            = techniques.ReActTechnique

	Engine             = engine.Engine
	Request            = engine.Request
	Response           = engine.Response
	EnhancementMetrics = engine.EnhancementMetrics
	BatchResult        = engine.BatchResult
)

// Built-in technique IDs.
const (
	ChainOfThought   = techniques.ChainOfThought
	TreeOfThoughts   = techniques.TreeOfThoughts
	FewShot          = techniques.FewShot
	ZeroShot         = techniques.ZeroShot
	RolePlay         = techniques.RolePlay
	StepByStep       = techniques.StepByStep
	StructuredOutput = techniques.StructuredOutput
	EmotionalAppeal  = techniques.EmotionalAppeal
	Constraints      = techniques.Constraints
	Analogical       = techniques.Analogical
	SelfConsistency  = techniques.SelfConsistency
	ReAct            = techniques.ReAct
)

var (
	ErrUnknownTechnique        = techniques.ErrUnknownTechnique
	ErrTechniqueNotInitialized = techniques.ErrTechniqueNotInitialized
	ErrInvalidRequest          = engine.ErrInvalidRequest
)

var exports = []string{
	"BaseTechnique",
	"TechniqueRegistry",
	"DefaultRegistry",
	"ChainOfThoughtTechnique",
	"TreeOfThoughtsTechnique",
	"FewShotTechnique",
	"ZeroShotTechnique",
	"RolePlayTechnique",
	"StepByStepTechnique",
	"StructuredOutputTechnique",
	"EmotionalAppealTechnique",
	"ConstraintsTechnique",
	"AnalogicalTechnique",
	"SelfConsistencyTechnique",
	"ReActTechnique",
}

// Exports lists the names that make up the package's technique surface.
func Exports() []string {
	return slices.Clone(exports)
}

// DefaultRegistry returns the shared technique registry.
func DefaultRegistry() *TechniqueRegistry {
	return techniques.DefaultRegistry()
}

// NewRegistry returns an empty registry. Use RegisterBuiltins to populate it.
func NewRegistry(logger utils.Logger) *TechniqueRegistry {
	return techniques.NewRegistry(logger)
}

// RegisterBuiltins registers every built-in technique in r.
func RegisterBuiltins(r *TechniqueRegistry) {
	techniques.RegisterBuiltins(r)
}

// BuiltinTechniques returns the built-in technique IDs in registration order.
func BuiltinTechniques() []string {
	return techniques.BuiltinIDs()
}

// New builds an engine over a private copy of the shared registry unless a
// registry option says otherwise. A nil cfg uses config.NewConfig.
func New(cfg *config.Config, opts ...engine.Option) (*Engine, error) {
	return engine.New(cfg, opts...)
}

// WithRegistry makes an engine use r instead of a copy of the shared
// registry. Engines given the same registry share its instances.
func WithRegistry(r *TechniqueRegistry) engine.Option {
	return engine.WithRegistry(r)
}
