package techniques

import (
	"fmt"
	"strings"

	"github.com/teilomillet/promptgen/utils"
)

const reactTemplate = `{{.Text}}

I'll solve this using the ReAct (Reasoning + Acting) approach, which combines thinking with action:
{{- if .InitialAnalysis}}

**Initial Analysis:**
{{.InitialAnalysis}}
{{- end}}

**ReAct Process:**
{{range $i, $thought := .Thoughts}}
Step {{inc $i}}:
Thought {{inc $i}}: {{$thought}}
[Reasoning about the current situation, what we know, and what we need to do next]

Action {{inc $i}}: {{index $.Actions $i}}
[Specific action to take based on the reasoning]

Observation {{inc $i}}: [Expected result or information gained from the action]
{{end}}
{{- if .AllowIterations}}
**Iteration Check:**
If the goal hasn't been achieved, continue with additional Thought-Action-Observation cycles:
- Analyze what worked and what didn't
- Adjust the approach based on observations
- Continue until the task is complete or maximum iterations reached
{{end}}
**Final Answer:**
Based on the ReAct process above, synthesize all observations and reasoning to provide the final answer:
[Complete solution incorporating all insights gained through the process]
{{- if .IncludeReflection}}

**Reflection:**
- What worked well in this approach?
- What challenges were encountered?
- How could the process be improved?
{{- end}}`

const maxReActSteps = 6

const (
	thoughtAnalysis     = "I need to analyze the current state and identify what information is missing"
	thoughtPlanning     = "I should plan the next action based on what I've learned so far"
	thoughtEvaluation   = "Let me evaluate the results and determine if I'm closer to the solution"
	thoughtSynthesis    = "I'll synthesize the information gathered to form a conclusion"
	thoughtDebugging    = "Something unexpected happened, I need to understand why and adjust"
	thoughtVerification = "I should verify that my current understanding is correct"
)

var thoughtSequences = map[string][]string{
	"implementation":  {thoughtAnalysis, thoughtPlanning, thoughtEvaluation, thoughtSynthesis, thoughtVerification, thoughtDebugging},
	"debugging":       {thoughtAnalysis, thoughtDebugging, thoughtPlanning, thoughtVerification, thoughtEvaluation, thoughtSynthesis},
	"research":        {thoughtAnalysis, thoughtPlanning, thoughtEvaluation, thoughtSynthesis, thoughtVerification, thoughtPlanning},
	"problem-solving": {thoughtAnalysis, thoughtPlanning, thoughtEvaluation, thoughtDebugging, thoughtSynthesis, thoughtVerification},
	"general":         {thoughtAnalysis, thoughtPlanning, thoughtEvaluation, thoughtSynthesis, thoughtVerification, thoughtPlanning},
}

var actionSequences = map[string][]string{
	"implementation": {
		"Analyze the requirements",
		"Implement the core functionality",
		"Test the hypothesis that the implementation works correctly",
		"Verify all requirements are met",
		"Implement error handling and edge cases",
		"Test the hypothesis that the complete solution",
	},
	"debugging": {
		"Analyze the error or issue",
		"Test the hypothesis that the issue can be reproduced",
		"Search for information about similar issues and solutions",
		"Implement a potential fix",
		"Verify the fix resolves the issue",
		"Test the hypothesis that no new issues were introduced",
	},
	"research": {
		"Search for information about relevant information",
		"Analyze the gathered data",
		"Compare different sources and perspectives",
		"Verify the accuracy of findings",
		"Query additional specific details",
		"Analyze the complete findings",
	},
	"problem-solving": {
		"Analyze the problem structure",
		"Search for information about similar problems and solutions",
		"Calculate or work through a solution",
		"Test the hypothesis that the solution is correct",
		"Verify edge cases are handled",
		"Implement the final solution",
	},
	"general": {
		"Analyze the current situation",
		"Search for information about necessary information",
		"Implement the approach",
		"Test the hypothesis that the results",
		"Verify the outcome meets requirements",
		"Analyze the final results",
	},
}

// ReActTechnique interleaves reasoning with planned actions and expected
// observations.
type ReActTechnique struct {
	Base
}

func NewReActTechnique(cfg Config, logger utils.Logger) (*ReActTechnique, error) {
	base, err := NewBase(ReAct, cfg, reactTemplate, logger)
	if err != nil {
		return nil, err
	}
	return &ReActTechnique{Base: base}, nil
}

func (t *ReActTechnique) Apply(text string, ctx Context) (string, error) {
	text = t.CleanText(text)

	numSteps := min(max(ctx.Int("num_steps", 3), 1), maxReActSteps)
	taskType := ctx.StringOr("task_type", "general")

	thoughts, ok := thoughtSequences[taskType]
	if !ok {
		thoughts = thoughtSequences["general"]
	}

	t.logger.Debug("Applying ReAct", "steps", numSteps, "task_type", taskType)

	return t.RenderTemplate(t.template, map[string]any{
		"Text":              text,
		"Thoughts":          thoughts[:numSteps],
		"Actions":           reactActions(taskType, numSteps, ctx.Strings("available_tools")),
		"AllowIterations":   ctx.BoolOr("allow_iterations", true),
		"IncludeReflection": ctx.Bool("include_reflection"),
		"InitialAnalysis":   ctx.String("initial_analysis"),
	})
}

// reactActions returns numSteps action prompts. Available tools are used
// in order and then cycled.
func reactActions(taskType string, numSteps int, tools []string) []string {
	if len(tools) > 0 {
		out := make([]string, numSteps)
		for i := range out {
			if i < len(tools) {
				out[i] = fmt.Sprintf("Use %s to", tools[i])
			} else {
				out[i] = fmt.Sprintf("Use %s again to", tools[i%len(tools)])
			}
		}
		return out
	}
	seq, ok := actionSequences[taskType]
	if !ok {
		seq = actionSequences["general"]
	}
	return append([]string(nil), seq[:numSteps]...)
}

func (t *ReActTechnique) ValidateInput(text string, ctx Context) bool {
	if len(strings.TrimSpace(text)) < 20 {
		t.logger.Debug("Text too short for ReAct")
		return false
	}
	lower := strings.ToLower(text)

	multiStep := containsAny(lower,
		"step", "process", "procedure", "implement", "build",
		"create", "develop", "design", "plan", "strategy",
		"how to", "guide", "tutorial", "workflow")
	infoNeed := containsAny(lower,
		"research", "find", "search", "gather", "collect",
		"investigate", "explore", "discover", "identify",
		"determine", "figure out", "understand")
	iterative := containsAny(lower,
		"optimize", "improve", "refine", "iterate", "enhance",
		"debug", "troubleshoot", "fix", "solve", "resolve")
	if multiStep || infoNeed || iterative {
		return true
	}

	if containsAny(strings.ToLower(ctx.String("task_type")),
		"implementation", "debugging", "research",
		"problem-solving", "planning", "analysis") {
		return true
	}
	if len(ctx.Strings("available_tools")) > 0 {
		return true
	}

	if strings.Contains(text, "?") && len(strings.Fields(text)) > 15 {
		score := 0
		for _, w := range []string{"and", "then", "after", "before", "while", "if"} {
			score += strings.Count(lower, w)
		}
		if score >= 3 {
			return true
		}
	}
	t.logger.Debug("Input not ideal for ReAct")
	return false
}
