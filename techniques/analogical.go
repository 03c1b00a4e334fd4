package techniques

import (
	"strings"

	"github.com/teilomillet/promptgen/utils"
)

const analogicalTemplate = `{{.Text}}

To better understand this, let's use an analogy:

{{.Analogy}}

{{.Connection}}

Now, applying this analogy to our specific case:
{{.Application}}`

// Analogy relates a problem to something familiar.
type Analogy struct {
	Analogy     string `json:"analogy"`
	Connection  string `json:"connection"`
	Application string `json:"application"`
}

// concept keyword families, checked in order
var conceptTypes = []struct {
	concept  string
	keywords []string
}{
	{"system", []string{"system", "architecture", "structure", "framework"}},
	{"process", []string{"process", "flow", "sequence", "procedure", "method"}},
	{"relationship", []string{"relationship", "connection", "interaction", "communication"}},
	{"growth", []string{"growth", "development", "improvement", "evolution"}},
	{"problem", []string{"problem", "issue", "challenge", "obstacle"}},
	{"organization", []string{"organize", "arrange", "sort", "categorize"}},
	{"balance", []string{"balance", "trade-off", "equilibrium", "optimization"}},
}

var domainAnalogies = map[string]map[string]Analogy{
	"software": {
		"system": {
			Analogy:     "A software system is like a city. Just as a city has districts (modules), roads (interfaces), and utilities (services), a software system has components that must work together harmoniously.",
			Connection:  "This helps us understand how different parts interact and depend on each other.",
			Application: "We can design our system with clear 'districts' (modules) connected by well-defined 'roads' (APIs).",
		},
		"process": {
			Analogy:     "A software development process is like cooking a complex meal. You need the right ingredients (requirements), a good recipe (design), proper timing (scheduling), and quality checks (testing).",
			Connection:  "Both require careful planning and execution in the right order.",
			Application: "We should approach our development with the same care a chef uses in the kitchen.",
		},
	},
	"business": {
		"system": {
			Analogy:     "A business organization is like a sports team. Each player (employee) has a specific position (role) and must coordinate with teammates to score goals (achieve objectives).",
			Connection:  "Success requires both individual excellence and team coordination.",
			Application: "We need to ensure each team member knows their role and how it contributes to our goals.",
		},
		"growth": {
			Analogy:     "Business growth is like tending a garden. You need good soil (market), seeds (ideas), water and sunlight (resources), and patience for the plants (initiatives) to grow.",
			Connection:  "Both require consistent nurturing and the right conditions.",
			Application: "We should focus on creating the right environment for our initiatives to flourish.",
		},
	},
}

var generalAnalogies = map[string]Analogy{
	"system": {
		Analogy:     "Think of this like an orchestra. Each instrument (component) plays its part, and the conductor (controller) ensures they work in harmony to create beautiful music (desired outcome).",
		Connection:  "This shows how individual parts must coordinate to achieve something greater.",
		Application: "We need to ensure each component knows its role and timing.",
	},
	"process": {
		Analogy:     "This is like following a recipe. You need ingredients (inputs), steps to follow (process), and the right conditions (environment) to get the desired dish (output).",
		Connection:  "Both require following steps in order with the right resources.",
		Application: "Let's identify our 'ingredients' and 'recipe steps' clearly.",
	},
	"problem": {
		Analogy:     "Solving this is like untangling a knot. You need to find the right thread to pull (key issue), work patiently, and sometimes loosen other parts before you can resolve it.",
		Connection:  "Complex problems often require patience and systematic approach.",
		Application: "Let's identify which 'thread' to pull first.",
	},
	"general": {
		Analogy:     "Consider this like building with LEGO blocks. You start with basic pieces (fundamentals) and combine them in specific ways to create something complex and functional.",
		Connection:  "Complex things are built from simple, well-understood components.",
		Application: "Let's identify our basic 'blocks' and how they fit together.",
	},
}

// ConceptType classifies what kind of concept text discusses.
func ConceptType(text string) string {
	lower := strings.ToLower(text)
	for _, ct := range conceptTypes {
		if containsAny(lower, ct.keywords...) {
			return ct.concept
		}
	}
	return "general"
}

// AnalogyFor picks an analogy for text, preferring one specific to domain.
func AnalogyFor(text, domain string) Analogy {
	concept := ConceptType(text)
	if a, ok := domainAnalogies[domain][concept]; ok {
		return a
	}
	if a, ok := generalAnalogies[concept]; ok {
		return a
	}
	return generalAnalogies["general"]
}

// AnalogicalTechnique explains a problem through an analogy.
type AnalogicalTechnique struct {
	Base
}

func NewAnalogicalTechnique(cfg Config, logger utils.Logger) (*AnalogicalTechnique, error) {
	base, err := NewBase(Analogical, cfg, analogicalTemplate, logger)
	if err != nil {
		return nil, err
	}
	return &AnalogicalTechnique{Base: base}, nil
}

func (t *AnalogicalTechnique) Apply(text string, ctx Context) (string, error) {
	text = t.CleanText(text)

	var a Analogy
	if ctx.Has("analogy") {
		a = Analogy{
			Analogy:     ctx.String("analogy"),
			Connection:  ctx.StringOr("connection", "This relates to our problem because:"),
			Application: ctx.StringOr("application", "[Apply the analogy to solve the problem]"),
		}
	} else {
		a = AnalogyFor(text, ctx.StringOr("domain", "general"))
	}

	if ctx.Bool("simple") {
		return text + "\n\nThink of it like this: " + a.Analogy, nil
	}

	return t.RenderTemplate(t.template, map[string]any{
		"Text":        text,
		"Analogy":     a.Analogy,
		"Connection":  a.Connection,
		"Application": a.Application,
	})
}

func (t *AnalogicalTechnique) ValidateInput(text string, ctx Context) bool {
	if ctx.Bool("educational") {
		return true
	}
	if containsAny(strings.ToLower(text),
		"complex", "difficult", "understand", "explain",
		"how", "why", "similar", "like", "compare") {
		t.logger.Debug("Analogical reasoning would be helpful")
	}
	return true
}
