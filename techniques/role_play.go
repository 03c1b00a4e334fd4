package techniques

import (
	"fmt"
	"strings"

	"github.com/teilomillet/promptgen/utils"
)

const rolePlayTemplate = `You are {{.Role}}. {{.RoleDescription}}
{{if .AdditionalContext}}
{{.AdditionalContext}}
{{end}}
With this expertise and perspective in mind, please address the following:

{{.Text}}`

// Persona is a role the model is asked to adopt.
type Persona struct {
	Role        string
	Description string
}

// intent keywords, checked in order against the lower-cased intent
var intentPersonas = []struct {
	keyword string
	persona Persona
}{
	{"educational", Persona{"an experienced educator", "a teacher who specializes in making complex topics accessible"}},
	{"analytical", Persona{"a data analyst", "an analytical expert who excels at breaking down complex problems"}},
	{"creative", Persona{"a creative director", "a creative professional who generates innovative solutions"}},
	{"technical", Persona{"a senior engineer", "a technical expert with deep knowledge of software and systems"}},
	{"business", Persona{"a business strategist", "a business consultant with expertise in strategy and operations"}},
	{"scientific", Persona{"a research scientist", "a scientist with expertise in research methodology and analysis"}},
	{"writing", Persona{"a professional writer", "an experienced writer who crafts compelling and clear content"}},
	{"debugging", Persona{"a senior developer", "a debugging expert who quickly identifies and resolves issues"}},
	{"design", Persona{"a UX designer", "a design expert who creates intuitive and beautiful experiences"}},
}

// PersonaForIntent picks a persona whose keyword appears in intent.
func PersonaForIntent(intent string) Persona {
	lower := strings.ToLower(intent)
	for _, ip := range intentPersonas {
		if strings.Contains(lower, ip.keyword) {
			return ip.persona
		}
	}
	return Persona{"an expert", "a knowledgeable expert in the relevant field"}
}

// RolePlayTechnique assigns the model a persona suited to the request.
type RolePlayTechnique struct {
	Base
}

func NewRolePlayTechnique(cfg Config, logger utils.Logger) (*RolePlayTechnique, error) {
	base, err := NewBase(RolePlay, cfg, rolePlayTemplate, logger)
	if err != nil {
		return nil, err
	}
	return &RolePlayTechnique{Base: base}, nil
}

func (t *RolePlayTechnique) Apply(text string, ctx Context) (string, error) {
	text = t.CleanText(text)

	persona := Persona{"an expert", "an expert in the relevant field"}
	switch {
	case ctx.Has("role"):
		role := ctx.String("role")
		persona = Persona{role, ctx.StringOr("role_description", role+" with specialized knowledge")}
	case ctx.Has("intent"):
		persona = PersonaForIntent(ctx.String("intent"))
	}

	var extra []string
	if ctx.Has("domain") {
		extra = append(extra, fmt.Sprintf("Your expertise particularly covers %s.", ctx.String("domain")))
	}
	if traits := ctx.Strings("traits"); len(traits) > 0 {
		extra = append(extra, fmt.Sprintf("You are known for being %s.", strings.Join(traits, ", ")))
	}

	return t.RenderTemplate(t.template, map[string]any{
		"Text":              text,
		"Role":              persona.Role,
		"RoleDescription":   persona.Description,
		"AdditionalContext": strings.Join(extra, " "),
	})
}

func (t *RolePlayTechnique) ValidateInput(text string, _ Context) bool {
	if containsAny(strings.ToLower(text),
		"expert", "professional", "analyze", "advise", "recommend",
		"evaluate", "assess", "review", "critique", "guide") {
		t.logger.Debug("Input would benefit from role-playing")
	}
	return true
}
