package techniques

import (
	"strings"

	"github.com/teilomillet/promptgen/utils"
)

const selfConsistencyTemplate = `{{.Text}}

To ensure accuracy and reliability, I'll approach this problem from {{.NumPaths}} different perspectives:
{{range $i, $v := .Variations}}
**Approach {{inc $i}}{{index $.Descriptions $i}}:**
Let me {{$v}} to solve this problem.
[Provide detailed reasoning and arrive at an answer]
{{end}}
**Consistency Analysis:**
Now I'll analyze all {{.NumPaths}} approaches to identify the most consistent and reliable answer:
- Compare the conclusions from each approach
- Identify common patterns and agreements
- Note any discrepancies and evaluate their significance
- Select the answer that appears most frequently or has the strongest support

**Final Answer:**
Based on the consistency analysis across all approaches, the most reliable answer is:
[Provide the final answer with confidence level]
{{- if .ShowConfidence}}

**Confidence Level:** [High/Medium/Low] based on the agreement between approaches
{{- end}}`

const maxConsistencyPaths = 5

var defaultReasoningVariations = []string{
	"think step-by-step",
	"work backwards from the goal",
	"use analogical reasoning",
	"apply first principles",
	"consider edge cases first",
}

var reasoningVariationsByTask = map[string][]string{
	"math": {
		"solve algebraically",
		"use geometric interpretation",
		"apply numerical methods",
		"work with specific examples",
		"use mathematical induction",
	},
	"logic": {
		"use formal logic",
		"apply truth tables",
		"work through contradictions",
		"use Venn diagrams",
		"apply syllogistic reasoning",
	},
	"coding": {
		"trace through the algorithm",
		"analyze time complexity",
		"consider edge cases",
		"use debugging techniques",
		"apply design patterns",
	},
	"analysis": {
		"examine from multiple stakeholder perspectives",
		"use SWOT analysis",
		"apply root cause analysis",
		"consider historical precedents",
		"use systems thinking",
	},
	"general": defaultReasoningVariations,
}

var variationDescriptions = map[string]string{
	"think step-by-step":                             " (Systematic Analysis)",
	"work backwards from the goal":                   " (Reverse Engineering)",
	"use analogical reasoning":                       " (Pattern Matching)",
	"apply first principles":                         " (Fundamental Principles)",
	"consider edge cases first":                      " (Boundary Testing)",
	"solve algebraically":                            " (Algebraic Method)",
	"use geometric interpretation":                   " (Geometric Approach)",
	"apply numerical methods":                        " (Numerical Analysis)",
	"use formal logic":                               " (Formal Logic)",
	"apply truth tables":                             " (Truth Table Method)",
	"trace through the algorithm":                    " (Algorithm Tracing)",
	"analyze time complexity":                        " (Complexity Analysis)",
	"examine from multiple stakeholder perspectives": " (Stakeholder Analysis)",
	"use SWOT analysis":                              " (SWOT Framework)",
	"apply root cause analysis":                      " (Root Cause Analysis)",
}

// SelfConsistencyTechnique asks the model to solve the problem along
// several independent reasoning paths and keep the answer they agree on.
type SelfConsistencyTechnique struct {
	Base
}

func NewSelfConsistencyTechnique(cfg Config, logger utils.Logger) (*SelfConsistencyTechnique, error) {
	base, err := NewBase(SelfConsistency, cfg, selfConsistencyTemplate, logger)
	if err != nil {
		return nil, err
	}
	return &SelfConsistencyTechnique{Base: base}, nil
}

func (t *SelfConsistencyTechnique) Apply(text string, ctx Context) (string, error) {
	text = t.CleanText(text)

	numPaths := min(max(ctx.Int("num_paths", 3), 1), maxConsistencyPaths)
	taskType := ctx.StringOr("task_type", "general")

	variations := ctx.Strings("reasoning_variations")
	if len(variations) == 0 {
		var ok bool
		if variations, ok = reasoningVariationsByTask[taskType]; !ok {
			variations = defaultReasoningVariations
		}
	}
	if len(variations) > numPaths {
		variations = variations[:numPaths]
	}

	descriptions := make([]string, len(variations))
	for i, v := range variations {
		d, ok := variationDescriptions[v]
		if !ok {
			d = " (Alternative Method)"
		}
		descriptions[i] = d
	}

	t.logger.Debug("Applying self-consistency", "paths", len(variations), "task_type", taskType)

	return t.RenderTemplate(t.template, map[string]any{
		"Text":           text,
		"NumPaths":       len(variations),
		"Variations":     variations,
		"Descriptions":   descriptions,
		"ShowConfidence": ctx.BoolOr("show_confidence", true),
	})
}

func (t *SelfConsistencyTechnique) ValidateInput(text string, ctx Context) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 20 {
		t.logger.Debug("Text too short for self-consistency")
		return false
	}
	lower := strings.ToLower(text)

	hasReasoning := containsAny(lower,
		"solve", "calculate", "determine", "analyze", "evaluate",
		"decide", "figure out", "work out", "find", "prove",
		"deduce", "infer", "conclude", "reason", "think")
	hasUncertainty := containsAny(lower,
		"best", "optimal", "correct", "right", "accurate",
		"reliable", "certain", "sure", "confident")
	hasComplexity := containsAny(lower,
		"complex", "difficult", "challenging", "tricky",
		"multiple", "various", "different ways")

	if hasReasoning && (hasUncertainty || hasComplexity) {
		return true
	}
	if containsAny(strings.ToLower(ctx.String("task_type")),
		"math", "logic", "reasoning", "analysis", "problem-solving") {
		return true
	}
	if strings.HasSuffix(trimmed, "?") && len(strings.Fields(text)) > 10 {
		return true
	}
	t.logger.Debug("Input not ideal for self-consistency")
	return false
}
