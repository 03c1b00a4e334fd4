package engine

import "time"

// Request asks the engine to enhance Text with the listed techniques.
type Request struct {
	Text        string         `json:"text" validate:"required" jsonschema:"description=Raw prompt text to enhance"`
	Techniques  []string       `json:"techniques,omitempty" validate:"dive,technique" jsonschema:"description=Technique IDs to apply; applied in priority order"`
	Intent      string         `json:"intent,omitempty" jsonschema:"description=Classified intent such as explanation or code_generation"`
	Complexity  string         `json:"complexity,omitempty" validate:"omitempty,oneof=simple moderate complex" jsonschema:"enum=simple,enum=moderate,enum=complex"`
	TargetModel string         `json:"target_model,omitempty"`
	Temperature *float64       `json:"temperature,omitempty" validate:"omitempty,min=0,max=2" jsonschema:"minimum=0,maximum=2"`
	MaxTokens   int            `json:"max_tokens,omitempty" validate:"min=0" jsonschema:"minimum=0,description=Truncate the enhanced prompt to roughly this many tokens"`
	Context     map[string]any `json:"context,omitempty" jsonschema:"description=Technique hints merged into the technique context"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

// Response is the result of one generation.
type Response struct {
	ID                string              `json:"id"`
	Text              string              `json:"text"`
	OriginalText      string              `json:"original_text"`
	TechniquesApplied []string            `json:"techniques_applied"`
	TokenCount        int                 `json:"token_count"`
	ModelVersion      string              `json:"model_version"`
	Metrics           *EnhancementMetrics `json:"metrics,omitempty"`
	Metadata          map[string]any      `json:"metadata"`
	GenerationTime    time.Duration       `json:"generation_time_ns"`
	Confidence        float64             `json:"confidence"`
	Warnings          []string            `json:"warnings,omitempty"`
}

// EnhancementMetrics scores an enhanced prompt against its original.
// Scores are in [0, 1]; ImprovementPercentage is in [-50, 200].
type EnhancementMetrics struct {
	Clarity                float64            `json:"clarity_score"`
	Specificity            float64            `json:"specificity_score"`
	Coherence              float64            `json:"coherence_score"`
	TechniqueEffectiveness map[string]float64 `json:"technique_effectiveness"`
	OverallQuality         float64            `json:"overall_quality"`
	ImprovementPercentage  float64            `json:"improvement_percentage"`
}

// BatchResult pairs one batch request with its outcome. Index is the
// request's position in the batch.
type BatchResult struct {
	Index    int
	Response *Response
	Err      error
}
