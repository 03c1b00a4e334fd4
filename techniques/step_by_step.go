package techniques

import (
	"fmt"
	"strings"

	"github.com/teilomillet/promptgen/utils"
)

const stepByStepTemplate = `{{.Text}}

Please complete this task by following these steps:
{{range $i, $step := .Steps}}
Step {{inc $i}}: {{$step}}{{end}}
{{if .AdditionalInstructions}}
{{.AdditionalInstructions}}
{{end}}
Begin with Step 1 and work through each step sequentially.`

var stepsByTaskType = map[string][]string{
	"analysis": {
		"Identify the key components or elements to analyze",
		"Gather relevant data and context",
		"Examine relationships and patterns",
		"Evaluate findings against criteria",
		"Draw conclusions and insights",
		"Provide recommendations if applicable",
	},
	"creation": {
		"Define requirements and constraints",
		"Research and gather necessary resources",
		"Create initial design or outline",
		"Implement the core functionality",
		"Refine and optimize the solution",
		"Test and validate the result",
	},
	"problem_solving": {
		"Clearly define the problem",
		"Identify root causes or contributing factors",
		"Generate potential solutions",
		"Evaluate each solution's feasibility",
		"Implement the chosen solution",
		"Verify the problem is resolved",
	},
	"explanation": {
		"Introduce the topic with context",
		"Break down complex concepts into simple parts",
		"Provide examples or analogies",
		"Address common questions or misconceptions",
		"Summarize key points",
		"Suggest next steps or applications",
	},
	"implementation": {
		"Review requirements and specifications",
		"Plan the implementation approach",
		"Set up necessary environment or dependencies",
		"Implement core functionality",
		"Add error handling and edge cases",
		"Test and document the implementation",
	},
}

var genericSteps = []string{
	"Understand the requirements and objectives",
	"Plan your approach",
	"Execute the main task",
	"Review and refine the output",
	"Ensure all requirements are met",
}

var inferredTaskTypes = []struct {
	taskType string
	keywords []string
}{
	{"analysis", []string{"analyze", "analysis", "examine"}},
	{"creation", []string{"create", "build", "develop", "design"}},
	{"problem_solving", []string{"solve", "fix", "debug", "troubleshoot"}},
	{"explanation", []string{"explain", "describe", "teach"}},
}

// StepByStepTechnique breaks a task into explicit sequential steps.
type StepByStepTechnique struct {
	Base
}

func NewStepByStepTechnique(cfg Config, logger utils.Logger) (*StepByStepTechnique, error) {
	base, err := NewBase(StepByStep, cfg, stepByStepTemplate, logger)
	if err != nil {
		return nil, err
	}
	return &StepByStepTechnique{Base: base}, nil
}

func (t *StepByStepTechnique) Apply(text string, ctx Context) (string, error) {
	text = t.CleanText(text)

	var steps []string
	if ctx.Has("steps") {
		steps = ctx.Strings("steps")
	} else {
		steps = StepsFor(text, ctx.String("task_type"))
	}
	if len(steps) == 0 {
		return text + "\n\nPlease approach this task systematically, breaking it down into clear steps.", nil
	}

	var additional string
	if verify := ctx.Strings("verification_steps"); len(verify) > 0 {
		additional = fmt.Sprintf("After completing all steps, verify your work by:\n%s", numbered(verify))
	}

	return t.RenderTemplate(t.template, map[string]any{
		"Text":                   text,
		"Steps":                  steps,
		"AdditionalInstructions": additional,
	})
}

// StepsFor returns the steps for taskType. With an empty taskType the type
// is inferred from keywords in text.
func StepsFor(text, taskType string) []string {
	if taskType == "" {
		lower := strings.ToLower(text)
		for _, it := range inferredTaskTypes {
			if containsAny(lower, it.keywords...) {
				taskType = it.taskType
				break
			}
		}
	}
	if steps, ok := stepsByTaskType[taskType]; ok {
		return append([]string(nil), steps...)
	}
	return append([]string(nil), genericSteps...)
}

func (t *StepByStepTechnique) ValidateInput(text string, _ Context) bool {
	multiStep := containsAny(strings.ToLower(text),
		"multiple", "several", "various", "steps", "process",
		"procedure", "workflow", "sequence", "stages", "phases")
	if len(strings.Fields(text)) < 10 && !multiStep {
		t.logger.Debug("Task appears too simple for step-by-step breakdown")
	}
	return true
}
