package techniques

import (
	"strings"

	"github.com/teilomillet/promptgen/utils"
)

const treeOfThoughtsTemplate = `{{.Text}}

Let's explore multiple approaches to this problem:

Approach 1: {{.Approach1}}
- Pros: [List advantages]
- Cons: [List disadvantages]
- Viability: [Rate 1-10]

Approach 2: {{.Approach2}}
- Pros: [List advantages]
- Cons: [List disadvantages]
- Viability: [Rate 1-10]

Approach 3: {{.Approach3}}
- Pros: [List advantages]
- Cons: [List disadvantages]
- Viability: [Rate 1-10]

After evaluating all approaches, select the most promising one and develop it fully:

Selected Approach: [Choose best approach]
Detailed Solution:`

const treeOfThoughtsEvaluationTemplate = `{{.Text}}

Let's systematically explore {{len .Approaches}} different approaches:
{{range $i, $approach := .Approaches}}
### Approach {{inc $i}}: {{$approach}}

Analysis:
{{- range $.Criteria}}
- {{.}}: [Evaluate on scale 1-10 with justification]
{{- end}}

Implementation sketch:
[Outline how this approach would work]
{{end}}
### Comparative Analysis:
Compare all approaches across key dimensions:
{{join .Criteria ", "}}

### Recommendation:
Based on the analysis, the optimal approach is: [Select and justify]

### Detailed Implementation:
[Provide complete solution using the selected approach]`

var defaultApproaches = []string{
	"Direct approach - tackle the problem head-on",
	"Analytical approach - break down into components",
	"Creative approach - think outside conventional methods",
}

var approachesByProblemType = map[string][]string{
	"optimization": {
		"Greedy approach - make locally optimal choices",
		"Dynamic programming - solve overlapping subproblems",
		"Heuristic approach - use practical shortcuts",
	},
	"design": {
		"Top-down design - start with high-level structure",
		"Bottom-up design - build from components",
		"Iterative design - refine through cycles",
	},
	"analysis": {
		"Quantitative analysis - focus on metrics and data",
		"Qualitative analysis - examine patterns and themes",
		"Comparative analysis - contrast different elements",
	},
	"debugging": {
		"Systematic elimination - rule out possibilities",
		"Root cause analysis - trace to origin",
		"Divide and conquer - isolate problem areas",
	},
}

var fallbackApproaches = []string{"Systematic approach", "Innovative approach", "Hybrid approach"}

var defaultEvaluationCriteria = []string{"feasibility", "efficiency", "completeness", "clarity"}

// TreeOfThoughtsTechnique asks the model to explore and compare several
// approaches before committing to one.
type TreeOfThoughtsTechnique struct {
	Base
	numBranches int
	criteria    []string
}

func NewTreeOfThoughtsTechnique(cfg Config, logger utils.Logger) (*TreeOfThoughtsTechnique, error) {
	base, err := NewBase(TreeOfThoughts, cfg, treeOfThoughtsTemplate, logger)
	if err != nil {
		return nil, err
	}
	criteria := defaultEvaluationCriteria
	if base.parameters.Has("evaluation_criteria") {
		criteria = base.parameters.Strings("evaluation_criteria")
	}
	return &TreeOfThoughtsTechnique{
		Base:        base,
		numBranches: max(base.parameters.Int("num_branches", 3), 1),
		criteria:    criteria,
	}, nil
}

// EvaluationCriteria returns the configured criteria. Per-call overrides
// from the context do not change it.
func (t *TreeOfThoughtsTechnique) EvaluationCriteria() []string {
	return append([]string(nil), t.criteria...)
}

func (t *TreeOfThoughtsTechnique) Apply(text string, ctx Context) (string, error) {
	text = t.CleanText(text)
	approaches := t.approaches(ctx)

	criteria := t.criteria
	if ctx.Has("evaluation_criteria") {
		criteria = ctx.Strings("evaluation_criteria")
	}

	if len(criteria) > 0 {
		return t.RenderTemplate(treeOfThoughtsEvaluationTemplate, map[string]any{
			"Text":       text,
			"Approaches": approaches,
			"Criteria":   criteria,
		})
	}

	pick := func(i int, def string) string {
		if i < len(approaches) {
			return approaches[i]
		}
		return def
	}
	return t.RenderTemplate(t.template, map[string]any{
		"Text":      text,
		"Approach1": pick(0, "Traditional method"),
		"Approach2": pick(1, "Alternative method"),
		"Approach3": pick(2, "Creative method"),
	})
}

func (t *TreeOfThoughtsTechnique) approaches(ctx Context) []string {
	var approaches []string
	if ctx.Has("problem_type") {
		byType, ok := approachesByProblemType[ctx.String("problem_type")]
		if !ok {
			byType = fallbackApproaches
		}
		approaches = append(approaches, byType...)
	} else {
		approaches = append(approaches, defaultApproaches...)
	}
	approaches = append(approaches, ctx.Strings("suggested_approaches")...)
	if len(approaches) > t.numBranches {
		approaches = approaches[:t.numBranches]
	}
	return approaches
}

func (t *TreeOfThoughtsTechnique) ValidateInput(text string, ctx Context) bool {
	if len(strings.Fields(text)) < 15 {
		t.logger.Warn("Input too short for tree of thoughts")
		return false
	}
	if !containsAny(strings.ToLower(text),
		"solve", "solution", "approach", "method", "strategy",
		"plan", "design", "implement", "create", "develop",
		"optimize", "improve", "fix", "resolve", "determine") {
		t.logger.Debug("No clear problem-solving task detected")
	}
	return true
}
