package techniques

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/teilomillet/promptgen/utils"
)

const chainOfThoughtTemplate = `{{.Text}}

Let's approach this step-by-step:

1. First, let me understand what is being asked...
2. Next, I'll identify the key components...
3. Then, I'll analyze each part...
4. Finally, I'll synthesize the solution...

Please show your reasoning at each step.`

const chainOfThoughtStepsTemplate = `{{.Text}}

Let's think through this systematically:

{{.Steps}}

Please provide detailed reasoning for each step before reaching your conclusion.`

// Domain labels detected by chain-of-thought.
const (
	DomainMathematical = "mathematical"
	DomainAlgorithmic  = "algorithmic"
	DomainDebugging    = "debugging"
	DomainAnalytical   = "analytical"
	DomainLogical      = "logical"
	DomainGeneral      = "general"
)

var reasoningPatterns = map[string][]string{
	DomainMathematical: {
		"Identify given information and unknowns",
		"Determine applicable formulas or theorems",
		"Set up the problem structure",
		"Perform calculations step by step",
		"Verify the solution",
	},
	DomainAlgorithmic: {
		"Understand the problem requirements",
		"Identify input/output specifications",
		"Consider edge cases and constraints",
		"Design the algorithm approach",
		"Analyze time and space complexity",
	},
	DomainAnalytical: {
		"Define the scope and objectives",
		"Gather relevant information",
		"Identify patterns and relationships",
		"Evaluate different perspectives",
		"Draw conclusions based on evidence",
	},
	DomainDebugging: {
		"Reproduce and understand the issue",
		"Identify potential causes",
		"Isolate the problematic component",
		"Test hypotheses systematically",
		"Implement and verify the fix",
	},
	DomainLogical: {
		"Identify premises and assumptions",
		"Examine logical relationships",
		"Check for contradictions",
		"Apply deductive reasoning",
		"Validate conclusions",
	},
}

var generalReasoningSteps = []string{
	"Understand the problem and identify key information",
	"Break down the problem into components",
	"Analyze each component systematically",
	"Consider relationships and dependencies",
	"Synthesize findings into a solution",
}

var domainGuidance = map[string]string{
	DomainMathematical: "Please show all mathematical work and justify each step.",
	DomainAlgorithmic:  "Please explain the algorithm design choices and complexity analysis.",
	DomainDebugging:    "Please document your debugging process and reasoning.",
	DomainAnalytical:   "Please provide evidence and support for your analysis.",
	DomainLogical:      "Please make your logical reasoning explicit at each step.",
}

// domain keyword families, checked in order
var domainKeywords = []struct {
	domain   string
	keywords []string
}{
	{DomainMathematical, []string{"equation", "calculate", "solve for", "formula"}},
	{DomainAlgorithmic, []string{"algorithm", "implement", "code", "function"}},
	{DomainDebugging, []string{"bug", "error", "fix", "debug", "issue"}},
	{DomainAnalytical, []string{"analyze", "examine", "investigate", "data"}},
	{DomainLogical, []string{"if", "then", "implies", "therefore"}},
}

var cotValidationPatterns = []struct {
	re     *regexp.Regexp
	weight float64
}{
	{regexp.MustCompile(`\b(how|why|what if|explain|analyze)\b`), 0.3},
	{regexp.MustCompile(`\b(solve|calculate|determine|derive|prove)\b`), 0.3},
	{regexp.MustCompile(`\b(compare|evaluate|assess|consider)\b`), 0.2},
	{regexp.MustCompile(`\?`), 0.1},
	{regexp.MustCompile(`\b(step|process|method|approach)\b`), 0.1},
}

var (
	acronymPattern  = regexp.MustCompile(`\b[A-Z]{2,}\b`)
	stepNumberRegex = regexp.MustCompile(`\d+\.`)
)

const (
	cotSimpleThreshold   = 0.3
	cotModerateThreshold = 0.6
	cotComplexThreshold  = 0.8
)

// ChainOfThoughtTechnique asks the model to reason step by step. In
// enhanced mode the steps adapt to the detected problem domain and the
// requested complexity.
type ChainOfThoughtTechnique struct {
	Base
	enhancedMode bool
}

func NewChainOfThoughtTechnique(cfg Config, logger utils.Logger) (*ChainOfThoughtTechnique, error) {
	base, err := NewBase(ChainOfThought, cfg, chainOfThoughtTemplate, logger)
	if err != nil {
		return nil, err
	}
	return &ChainOfThoughtTechnique{
		Base:         base,
		enhancedMode: base.parameters.BoolOr("enhanced_mode", true),
	}, nil
}

// EnhancedMode reports whether the instance allows enhanced reasoning.
func (t *ChainOfThoughtTechnique) EnhancedMode() bool { return t.enhancedMode }

func (t *ChainOfThoughtTechnique) Apply(text string, ctx Context) (string, error) {
	text = t.CleanText(text)

	useEnhanced := t.enhancedMode && ctx.Bool("enhanced") && len(ctx.Strings("reasoning_steps")) == 0
	t.logger.Debug("Chain of thought apply",
		"enhanced_mode", t.enhancedMode,
		"context_enhanced", ctx.Bool("enhanced"),
		"use_enhanced", useEnhanced)

	if useEnhanced {
		return t.applyEnhanced(text, ctx), nil
	}
	return t.applyBasic(text, ctx)
}

func (t *ChainOfThoughtTechnique) applyBasic(text string, ctx Context) (string, error) {
	if ctx.Has("reasoning_steps") {
		return t.RenderTemplate(chainOfThoughtStepsTemplate, map[string]any{
			"Text":  text,
			"Steps": numbered(ctx.Strings("reasoning_steps")),
		})
	}
	return t.RenderTemplate(t.template, map[string]any{"Text": text})
}

func (t *ChainOfThoughtTechnique) applyEnhanced(text string, ctx Context) string {
	domain := ctx.StringOr("domain", DetectDomain(text))
	label, score := complexityOf(ctx, ComplexityModerate)

	steps := reasoningSteps(domain, score)

	var intro string
	switch {
	case score > cotComplexThreshold:
		intro = "This is a complex problem that requires careful analysis. Let's think through it systematically:"
	case score > cotModerateThreshold:
		intro = "Let's approach this methodically:"
	default:
		intro = "Let's think through this step by step:"
	}

	guidance, ok := domainGuidance[domain]
	if !ok {
		guidance = "Please provide detailed reasoning at each step."
	}

	t.logger.Info("Applied enhanced chain of thought",
		"domain", domain, "complexity", label, "steps", len(steps))

	return fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s", text, intro, numbered(steps), guidance)
}

func reasoningSteps(domain string, complexity float64) []string {
	base, ok := reasoningPatterns[domain]
	if !ok {
		base = generalReasoningSteps
	}
	switch {
	case complexity < cotSimpleThreshold:
		return append([]string(nil), base[:3]...)
	case complexity < cotModerateThreshold:
		return append([]string(nil), base...)
	}
	steps := append([]string(nil), base...)
	if !strings.Contains(strings.ToLower(steps[len(steps)-1]), "verify") {
		steps = append(steps, "Verify the solution and check edge cases")
	}
	return steps
}

func (t *ChainOfThoughtTechnique) ValidateInput(text string, ctx Context) bool {
	if len(strings.TrimSpace(text)) < 10 {
		t.logger.Debug("Input too short for chain of thought")
		return false
	}
	if t.enhancedMode && ctx.Bool("enhanced") {
		return t.validateEnhanced(text)
	}
	return true
}

func (t *ChainOfThoughtTechnique) validateEnhanced(text string) bool {
	lower := strings.ToLower(text)
	score := 0.0
	for _, p := range cotValidationPatterns {
		if p.re.MatchString(lower) {
			score += p.weight
		}
	}
	if EstimateComplexity(text) > 0.3 {
		score += 0.3
	}
	domain := DetectDomain(text)
	if domain != DomainGeneral {
		score += 0.3
	}
	if len(text) > 50 {
		score += 0.1
	}
	valid := score >= 0.4
	t.logger.Debug("Enhanced validation", "score", score, "domain", domain, "valid", valid)
	return valid
}

// DetectDomain classifies a problem statement by keyword. The first
// matching family wins.
func DetectDomain(text string) string {
	lower := strings.ToLower(text)
	for _, d := range domainKeywords {
		if containsAny(lower, d.keywords...) {
			return d.domain
		}
	}
	return DomainGeneral
}

// EstimateComplexity scores text in [0,1] from its length, list density,
// acronyms, conditionals and sequencing words.
func EstimateComplexity(text string) float64 {
	lower := strings.ToLower(text)
	score := min(float64(len(strings.Fields(text)))/100, 1.0) * 0.3

	if strings.Count(text, ",") > 3 || strings.Count(text, "and") > 2 {
		score += 0.2
	}
	score += min(float64(len(acronymPattern.FindAllString(text, -1)))*0.1, 0.2)
	if strings.Contains(lower, "if") && strings.Contains(lower, "then") {
		score += 0.15
	}
	steps := 0
	for _, w := range []string{"first", "second", "then", "next", "finally"} {
		if strings.Contains(lower, w) {
			steps++
		}
	}
	score += min(float64(steps)*0.1, 0.2)
	return min(score, 1.0)
}

// Metrics scores a model's chain-of-thought answer. All values are in [0,1].
func (t *ChainOfThoughtTechnique) Metrics(generated string) map[string]float64 {
	m := map[string]float64{
		"step_coverage":   0,
		"reasoning_depth": 0,
		"coherence":       0,
		"completeness":    0,
	}
	if generated == "" {
		return m
	}
	lower := strings.ToLower(generated)
	countWords := func(words ...string) int {
		n := 0
		for _, w := range words {
			if strings.Contains(lower, w) {
				n++
			}
		}
		return n
	}

	m["step_coverage"] = min(float64(len(stepNumberRegex.FindAllString(generated, -1)))/5, 1.0)
	m["reasoning_depth"] = min(float64(countWords("because", "therefore", "thus", "since", "as a result"))/5, 1.0)
	m["coherence"] = min(float64(countWords("first", "next", "then", "finally", "moreover"))/4, 1.0)
	if containsAny(lower, "therefore", "conclusion", "answer", "solution") {
		m["completeness"] = 1.0
	} else {
		m["completeness"] = 0.5
	}
	return m
}
