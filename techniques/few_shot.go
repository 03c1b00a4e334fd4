package techniques

import (
	"github.com/teilomillet/promptgen/utils"
)

const fewShotTemplate = `Here are some examples of the task:
{{range $i, $e := .Examples}}
Example {{inc $i}}:
Input: {{$e.Input}}
Output: {{$e.Output}}
{{- if $e.Explanation}}
Explanation: {{$e.Explanation}}
{{- end}}
{{end}}
Now, for the following input:
Input: {{.Text}}
Output:`

var defaultExamplesByTask = map[string][]utils.Example{
	"classification": {
		{
			Input:       "The movie was absolutely fantastic! Best I've seen all year.",
			Output:      "Positive",
			Explanation: "Strong positive language indicates positive sentiment",
		},
		{
			Input:       "The service was terrible and the food was cold.",
			Output:      "Negative",
			Explanation: "Negative descriptors indicate negative sentiment",
		},
	},
	"summarization": {
		{
			Input:       "The quick brown fox jumps over the lazy dog. This pangram contains all letters of the English alphabet. It is commonly used for testing fonts and keyboards.",
			Output:      "A pangram containing all English letters, used for testing fonts and keyboards.",
			Explanation: "Captures the key information concisely",
		},
	},
	"translation": {
		{
			Input:       "Hello, how are you today?",
			Output:      "Bonjour, comment allez-vous aujourd'hui?",
			Explanation: "English to French translation",
		},
	},
	"code_generation": {
		{
			Input:       "Write a function to calculate factorial",
			Output:      "def factorial(n):\n    if n <= 1:\n        return 1\n    return n * factorial(n - 1)",
			Explanation: "Recursive implementation of factorial",
		},
	},
	"question_answering": {
		{
			Input:       "What is the capital of France?",
			Output:      "The capital of France is Paris.",
			Explanation: "Direct answer to factual question",
		},
	},
}

// FewShotTechnique prepends worked input/output examples to the prompt.
//
// Examples come from the "examples" context key, from an "examples_file"
// parameter loaded at construction, or from built-in sets keyed by
// "task_type". The "example_order" context key selects which examples
// survive the max_examples cap: "first" (default), "last" or "random".
type FewShotTechnique struct {
	Base
	minExamples  int
	maxExamples  int
	fileExamples []utils.Example
}

func NewFewShotTechnique(cfg Config, logger utils.Logger) (*FewShotTechnique, error) {
	base, err := NewBase(FewShot, cfg, fewShotTemplate, logger)
	if err != nil {
		return nil, err
	}
	t := &FewShotTechnique{
		Base:        base,
		minExamples: base.parameters.Int("min_examples", 2),
		maxExamples: base.parameters.Int("max_examples", 5),
	}
	if path := base.parameters.String("examples_file"); path != "" {
		examples, err := utils.ReadExamplesFromFile(path)
		if err != nil {
			return nil, NewError(ErrorTypeInvalidConfig, FewShot, "loading examples_file", err)
		}
		t.fileExamples = examples
		t.logger.Debug("Loaded few-shot examples", "path", path, "count", len(examples))
	}
	return t, nil
}

func (t *FewShotTechnique) examples(ctx Context) []utils.Example {
	switch {
	case ctx.Has("examples"):
		return ctx.Examples("examples")
	case len(t.fileExamples) > 0:
		return t.fileExamples
	case ctx.Has("task_type"):
		return defaultExamplesByTask[ctx.String("task_type")]
	}
	return nil
}

func (t *FewShotTechnique) Apply(text string, ctx Context) (string, error) {
	text = t.CleanText(text)

	examples := t.examples(ctx)
	if len(examples) == 0 {
		t.logger.Warn("No examples provided for few-shot learning")
		return text + "\n\nPlease provide a clear and detailed response.", nil
	}
	examples = utils.SelectExamples(examples, t.maxExamples, ctx.StringOr("example_order", "first"))

	return t.RenderTemplate(t.template, map[string]any{
		"Text":     text,
		"Examples": examples,
	})
}

func (t *FewShotTechnique) ValidateInput(text string, ctx Context) bool {
	if ctx.Has("examples") {
		n := ctx.ExampleCount("examples")
		if usable := len(ctx.Examples("examples")); usable < n {
			t.logger.Warn("Ignoring examples that are not input/output objects", "dropped", n-usable)
		}
		if n < t.minExamples {
			t.logger.Warn("Too few examples", "count", n, "min", t.minExamples)
			return false
		}
		return true
	}
	if len(t.fileExamples) > 0 || ctx.Has("task_type") {
		return true
	}
	t.logger.Warn("No examples or task type provided for few-shot learning")
	return false
}
