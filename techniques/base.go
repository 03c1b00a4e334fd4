// Package techniques implements prompt engineering techniques and the
// registry that resolves them by ID.
//
// A technique rewrites a raw prompt so a downstream model answers it better:
// chain-of-thought asks for explicit reasoning, few-shot prepends worked
// examples, role-play assigns a persona, and so on. Each technique decides
// whether it suits an input (ValidateInput) and then rewrites it (Apply).
//
//	reg := techniques.DefaultRegistry()
//	if err := reg.InitializeAll(nil); err != nil {
//		return err
//	}
//	out, err := reg.ApplyTechnique(techniques.ChainOfThought, "Explain TCP slow start", nil)
package techniques

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/teilomillet/promptgen/config"
	"github.com/teilomillet/promptgen/utils"
)

// Config configures one technique instance.
type Config = config.TechniqueConfig

// Technique is the contract every prompt engineering technique satisfies.
type Technique interface {
	ID() string
	Name() string
	Priority() int
	Enabled() bool
	// Apply rewrites text using hints from ctx. ctx may be nil.
	Apply(text string, ctx Context) (string, error)
	// ValidateInput reports whether the technique should be applied to text.
	ValidateInput(text string, ctx Context) bool
	Metadata() Metadata
}

// Metadata describes a technique instance.
type Metadata struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Priority   int            `json:"priority"`
	Enabled    bool           `json:"enabled"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// Base holds the configuration shared by all techniques and the helpers
// they render with. Techniques embed it.
type Base struct {
	id         string
	name       string
	template   string
	parameters Context
	priority   int
	enabled    bool
	logger     utils.Logger
}

// NewBase validates cfg and builds a Base. An empty cfg.Template selects
// defaultTemplate.
func NewBase(id string, cfg Config, defaultTemplate string, logger utils.Logger) (Base, error) {
	if err := config.ValidateTechnique(cfg); err != nil {
		return Base{}, NewError(ErrorTypeInvalidConfig, id, "config validation failed", err)
	}
	name := cfg.Name
	if name == "" {
		name = id
	}
	tmpl := cfg.Template
	if tmpl == "" {
		tmpl = defaultTemplate
	}
	if tmpl != "" {
		if _, err := parseTemplate(tmpl); err != nil {
			return Base{}, NewError(ErrorTypeInvalidConfig, id, "template does not parse", err)
		}
	}
	params := Context(cfg.Parameters)
	if params == nil {
		params = Context{}
	}
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return Base{
		id:         id,
		name:       name,
		template:   tmpl,
		parameters: params,
		priority:   cfg.Priority,
		enabled:    cfg.IsEnabled(),
		logger:     utils.WithFields(logger, "technique", name),
	}, nil
}

func (b *Base) ID() string { return b.id }
func (b *Base) Name() string { return b.name }
func (b *Base) Priority() int { return b.priority }
func (b *Base) Enabled() bool { return b.enabled }
func (b *Base) Template() string { return b.template }
func (b *Base) Parameters() Context { return b.parameters }
func (b *Base) Logger() utils.Logger { return b.logger }

func (b *Base) Metadata() Metadata {
	return Metadata{
		ID:         b.id,
		Name:       b.name,
		Priority:   b.priority,
		Enabled:    b.enabled,
		Parameters: b.parameters.Clone(),
	}
}

// RenderTemplate executes a Go text/template with vars. Besides the
// builtins, templates may call inc, add and join.
func (b *Base) RenderTemplate(tmpl string, vars map[string]any) (string, error) {
	out, err := renderTemplate(tmpl, vars)
	if err != nil {
		b.logger.Error("Template rendering error", "error", err)
		return "", NewError(ErrorTypeTemplate, b.id, "render failed", err)
	}
	return out, nil
}

// ExtractTemplateVariables returns the sorted top-level field names a
// template reads, e.g. "Text" for {{.Text}}.
func (b *Base) ExtractTemplateVariables(tmpl string) ([]string, error) {
	vars, err := templateVariables(tmpl)
	if err != nil {
		return nil, NewError(ErrorTypeTemplate, b.id, "parse failed", err)
	}
	return vars, nil
}

// EstimateTokens approximates the token count at four characters per token.
func (b *Base) EstimateTokens(text string) int {
	return utils.EstimateTokens(text)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// CleanText collapses whitespace runs to one space and trims the ends.
func (b *Base) CleanText(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// containsAny reports whether s contains any of the substrings.
func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// numbered renders items as "1. a\n2. b".
func numbered(items []string) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(". ")
		sb.WriteString(item)
	}
	return sb.String()
}
