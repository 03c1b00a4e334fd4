package techniques

import (
	"strings"

	"github.com/teilomillet/promptgen/utils"
)

const emotionalAppealTemplate = `{{if .EmotionalContext}}{{.EmotionalContext}}

{{end}}{{.Text}}

{{.Appeal}}`

const defaultAppealType = "importance"

var appealTexts = map[string]string{
	"importance":    "This is really important to me and I would greatly appreciate your thoughtful help.",
	"learning":      "I'm eager to learn and understand this properly. Your clear explanation would mean a lot.",
	"impact":        "Your response could make a significant positive difference in this situation.",
	"curiosity":     "I'm genuinely curious about this and excited to hear your insights.",
	"challenge":     "This is a challenging problem that I believe you can help solve brilliantly.",
	"collaboration": "Let's work together on this - I value your expertise and perspective.",
	"growth":        "This is an opportunity for growth and improvement that I don't want to miss.",
}

var appealContexts = map[string]string{
	"importance":    "I've been working on this for a while and could really use your expertise.",
	"learning":      "I'm trying to deepen my understanding of this topic.",
	"impact":        "This solution could help many people facing similar challenges.",
	"curiosity":     "I find this fascinating and would love to explore it with you.",
	"challenge":     "This is a complex problem that has me stumped.",
	"collaboration": "I believe we can find a great solution by thinking through this together.",
	"growth":        "I see this as a chance to improve and do better.",
}

var personalAppeals = map[string]string{
	"importance":    " This truly matters for my project's success.",
	"learning":      " I'm committed to understanding this thoroughly.",
	"impact":        " People are counting on getting this right.",
	"curiosity":     " I can't wait to see what insights you'll share.",
	"challenge":     " I know you enjoy tackling complex problems like this.",
	"collaboration": " Your unique perspective would be invaluable.",
	"growth":        " I'm ready to learn from your expertise.",
}

// intent keywords, checked in order
var intentAppeals = []struct{ keyword, appeal string }{
	{"learning", "learning"},
	{"problem_solving", "challenge"},
	{"creative", "curiosity"},
	{"analysis", "collaboration"},
	{"help", "importance"},
	{"improvement", "growth"},
	{"explanation", "learning"},
}

// AppealForIntent returns the appeal type matching intent.
func AppealForIntent(intent string) string {
	lower := strings.ToLower(intent)
	for _, ia := range intentAppeals {
		if strings.Contains(lower, ia.keyword) {
			return ia.appeal
		}
	}
	return defaultAppealType
}

// EmotionalAppealTechnique frames the prompt with motivation or urgency.
type EmotionalAppealTechnique struct {
	Base
}

func NewEmotionalAppealTechnique(cfg Config, logger utils.Logger) (*EmotionalAppealTechnique, error) {
	base, err := NewBase(EmotionalAppeal, cfg, emotionalAppealTemplate, logger)
	if err != nil {
		return nil, err
	}
	return &EmotionalAppealTechnique{Base: base}, nil
}

func (t *EmotionalAppealTechnique) Apply(text string, ctx Context) (string, error) {
	text = t.CleanText(text)

	appealType := defaultAppealType
	switch {
	case ctx.Has("appeal_type"):
		appealType = ctx.String("appeal_type")
	case ctx.Has("intent"):
		appealType = AppealForIntent(ctx.String("intent"))
	}

	appeal := appealTexts[defaultAppealType]
	if a, ok := appealTexts[appealType]; ok {
		appeal = a
	}
	if ctx.Bool("personal") {
		appeal += personalAppeals[appealType]
	}
	if ctx.Has("custom_appeal") {
		appeal = ctx.String("custom_appeal")
	}

	if ctx.Bool("subtle") {
		return text + "\n\n" + appeal, nil
	}

	emotional := appealContexts[appealType]
	if ctx.Has("custom_context") {
		emotional = ctx.String("custom_context")
	}

	return t.RenderTemplate(t.template, map[string]any{
		"Text":             text,
		"EmotionalContext": emotional,
		"Appeal":           appeal,
	})
}

func (t *EmotionalAppealTechnique) ValidateInput(text string, ctx Context) bool {
	if containsAny(strings.ToLower(text),
		"calculate", "compute", "formula", "equation",
		"definition", "specification", "syntax", "format") {
		t.logger.Debug("Technical query, emotional appeal may not be appropriate")
	}
	return !ctx.Bool("no_emotion")
}
