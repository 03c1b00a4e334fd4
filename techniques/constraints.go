package techniques

import (
	"fmt"
	"strings"

	"github.com/teilomillet/promptgen/utils"
)

const constraintsTemplate = `{{.Text}}

Please ensure your response adheres to the following constraints:
{{range $i, $c := .Constraints}}
{{inc $i}}. {{$c}}{{end}}
{{- if .AdditionalGuidance}}

{{.AdditionalGuidance}}{{end}}`

var defaultConstraints = []string{
	"Be accurate and factual",
	"Provide clear and concise explanations",
	"Use appropriate examples when helpful",
}

var technicalLevelConstraints = map[string]string{
	"beginner":     "Explain concepts simply, avoiding jargon",
	"intermediate": "Balance technical accuracy with clarity",
	"expert":       "Use precise technical terminology",
}

var styleConstraints = map[string][]string{
	"academic": {
		"Use formal academic language",
		"Include citations or references where appropriate",
		"Maintain objective tone",
	},
	"conversational": {
		"Use friendly, approachable language",
		"Include relatable examples",
		"Maintain an engaging tone",
	},
	"professional": {
		"Use clear, professional language",
		"Focus on practical applications",
		"Maintain a businesslike tone",
	},
	"creative": {
		"Use vivid, descriptive language",
		"Include creative examples or metaphors",
		"Maintain an imaginative approach",
	},
	"technical": {
		"Use precise technical terminology",
		"Include specific details and specifications",
		"Maintain accuracy over simplicity",
	},
}

// ConstraintsTechnique lists explicit requirements the answer must meet.
type ConstraintsTechnique struct {
	Base
}

func NewConstraintsTechnique(cfg Config, logger utils.Logger) (*ConstraintsTechnique, error) {
	base, err := NewBase(Constraints, cfg, constraintsTemplate, logger)
	if err != nil {
		return nil, err
	}
	return &ConstraintsTechnique{Base: base}, nil
}

func (t *ConstraintsTechnique) Apply(text string, ctx Context) (string, error) {
	text = t.CleanText(text)

	constraints := GatherConstraints(ctx)
	if len(constraints) == 0 {
		constraints = defaultConstraints
	}

	return t.RenderTemplate(t.template, map[string]any{
		"Text":               text,
		"Constraints":        constraints,
		"AdditionalGuidance": additionalGuidance(ctx),
	})
}

// GatherConstraints collects constraint sentences from the context keys
// constraints, max_length, min_length, format, tone, audience,
// technical_level, include, exclude and style. Empty entries are dropped.
func GatherConstraints(ctx Context) []string {
	var out []string
	out = append(out, ctx.Strings("constraints")...)

	if ctx.Has("max_length") {
		out = append(out, fmt.Sprintf("Keep the response under %s words", ctx.String("max_length")))
	}
	if ctx.Has("min_length") {
		out = append(out, fmt.Sprintf("Provide at least %s words", ctx.String("min_length")))
	}
	if ctx.Has("format") {
		out = append(out, fmt.Sprintf("Format the response as %s", ctx.String("format")))
	}
	if ctx.Has("tone") {
		out = append(out, fmt.Sprintf("Use a %s tone throughout", ctx.String("tone")))
	}
	if ctx.Has("audience") {
		out = append(out, fmt.Sprintf("Tailor the response for %s", ctx.String("audience")))
	}
	if ctx.Has("technical_level") {
		out = append(out, technicalLevelConstraints[ctx.String("technical_level")])
	}
	for _, item := range ctx.Strings("include") {
		out = append(out, "Include information about "+item)
	}
	for _, item := range ctx.Strings("exclude") {
		out = append(out, "Avoid discussing "+item)
	}
	if ctx.Has("style") {
		out = append(out, styleConstraints[ctx.String("style")]...)
	}

	kept := out[:0]
	for _, c := range out {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return kept
}

func additionalGuidance(ctx Context) string {
	var parts []string
	if ctx.Has("priority") {
		parts = append(parts, "Priority: "+ctx.String("priority"))
	}
	if ctx.Has("time_limit") {
		parts = append(parts, fmt.Sprintf("Time-sensitive: Provide a response that can be read in %s", ctx.String("time_limit")))
	}
	if ctx.Has("examples_required") {
		parts = append(parts, fmt.Sprintf("Include at least %d concrete examples", ctx.Int("num_examples", 2)))
	}
	if ctx.Has("avoid_assumptions") {
		parts = append(parts, "Make no assumptions beyond what is explicitly stated")
	}
	if len(parts) == 0 {
		return ""
	}
	return "Additional guidance: " + strings.Join(parts, "; ")
}

func (t *ConstraintsTechnique) ValidateInput(text string, ctx Context) bool {
	if ctx.Has("constraints") || ctx.Has("requirements") {
		return true
	}
	if containsAny(strings.ToLower(text),
		"must", "should", "ensure", "avoid", "limit",
		"within", "maximum", "minimum", "only", "never") {
		t.logger.Debug("Constraints detected in input")
	}
	return true
}
