package techniques

import (
	"fmt"
	"strings"

	"github.com/teilomillet/promptgen/utils"
)

const zeroShotTemplate = `{{.Instruction}}

{{.Text}}

{{.Constraints}}

{{.FormatInstruction}}`

var zeroShotInstructions = map[string]map[string]string{
	"question_answering": {
		ComplexitySimple:   "Answer the following question clearly:",
		ComplexityModerate: "Provide a comprehensive answer to the following question, including relevant context:",
		ComplexityComplex:  "Analyze and answer the following question in depth, considering multiple perspectives and implications:",
	},
	"summarization": {
		ComplexitySimple:   "Summarize the following text briefly:",
		ComplexityModerate: "Summarize the following text, preserving key details and insights:",
		ComplexityComplex:  "Provide a comprehensive summary with analysis of the following:",
	},
	"explanation": {
		ComplexitySimple:   "Explain the following in simple terms:",
		ComplexityModerate: "Explain the following clearly, including relevant details and examples:",
		ComplexityComplex:  "Provide a thorough explanation with multiple perspectives, examples, and implications:",
	},
	"problem_solving": {
		ComplexitySimple:   "Solve the following problem:",
		ComplexityModerate: "Solve the following problem, showing your reasoning process:",
		ComplexityComplex:  "Analyze and solve the following problem systematically, considering edge cases and alternatives:",
	},
	"creative_writing": {
		ComplexitySimple:   "Create content based on:",
		ComplexityModerate: "Create engaging and well-structured content based on:",
		ComplexityComplex:  "Craft sophisticated, nuanced content with depth and originality based on:",
	},
	"code_generation": {
		ComplexitySimple:   "Generate code for:",
		ComplexityModerate: "Generate clean, documented code with error handling for:",
		ComplexityComplex:  "Design and implement a robust, scalable solution with best practices for:",
	},
	"reasoning": {
		ComplexitySimple:   "Consider the following:",
		ComplexityModerate: "Analyze and reason through the following:",
		ComplexityComplex:  "Provide deep analytical reasoning with evidence and logical progression for:",
	},
	"data_analysis": {
		ComplexitySimple:   "Analyze the following data:",
		ComplexityModerate: "Perform detailed analysis with insights on the following:",
		ComplexityComplex:  "Conduct comprehensive data analysis with patterns, correlations, and recommendations:",
	},
	"task_planning": {
		ComplexitySimple:   "Plan the following task:",
		ComplexityModerate: "Create a detailed plan with milestones for:",
		ComplexityComplex:  "Develop a comprehensive strategy with risk assessment and contingencies for:",
	},
}

var zeroShotFallbackInstructions = map[string]string{
	ComplexitySimple:   "Please provide a clear response to the following:",
	ComplexityModerate: "Please provide a detailed and well-structured response to the following:",
	ComplexityComplex:  "Please provide a comprehensive, nuanced analysis of the following:",
}

var zeroShotIntentRequirements = map[string][]string{
	"code_generation": {"Include comments explaining key logic", "Follow best practices and conventions"},
	"explanation":     {"Use clear examples", "Define technical terms"},
	"problem_solving": {"Show your work", "Verify your solution"},
	"data_analysis":   {"Present findings clearly", "Support conclusions with data"},
	"reasoning":       {"Make your logic explicit", "Address potential counterarguments"},
}

var outputFormatInstructions = map[string]string{
	"json":          "Provide your response in valid JSON format.",
	"markdown":      "Format your response using Markdown.",
	"bullet_points": "Structure your response using bullet points.",
	"numbered_list": "Present your response as a numbered list.",
	"paragraph":     "Write your response in paragraph form.",
	"table":         "Present the information in a table format.",
	"code":          "Format your response as code with appropriate syntax highlighting.",
}

const zeroShotDefaultInstruction = "Please provide a clear and helpful response to the following:"

// ZeroShotTechnique wraps the prompt in a precise instruction and
// guidelines without examples.
type ZeroShotTechnique struct {
	Base
}

func NewZeroShotTechnique(cfg Config, logger utils.Logger) (*ZeroShotTechnique, error) {
	base, err := NewBase(ZeroShot, cfg, zeroShotTemplate, logger)
	if err != nil {
		return nil, err
	}
	return &ZeroShotTechnique{Base: base}, nil
}

func (t *ZeroShotTechnique) Apply(text string, ctx Context) (string, error) {
	text = t.CleanText(text)

	instruction := zeroShotInstruction(ctx)
	if ctx.Has("task_description") {
		instruction = ctx.String("task_description")
	}

	out, err := t.RenderTemplate(t.template, map[string]any{
		"Text":              text,
		"Instruction":       instruction,
		"Constraints":       zeroShotGuidelines(ctx),
		"FormatInstruction": outputFormatInstructions[ctx.String("output_format")],
	})
	if err != nil {
		return "", err
	}

	lines := strings.Split(out, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n"), nil
}

func zeroShotInstruction(ctx Context) string {
	if len(ctx) == 0 {
		return zeroShotDefaultInstruction
	}
	intent := ctx.StringOr("intent", "general")
	complexity, _ := complexityOf(ctx, ComplexitySimple)

	if byComplexity, ok := zeroShotInstructions[intent]; ok {
		if s, ok := byComplexity[complexity]; ok {
			return s
		}
		return byComplexity[ComplexityModerate]
	}
	if s, ok := zeroShotFallbackInstructions[complexity]; ok {
		return s
	}
	return zeroShotDefaultInstruction
}

func zeroShotGuidelines(ctx Context) string {
	if len(ctx) == 0 {
		return ""
	}
	var guidelines []string
	complexity, _ := complexityOf(ctx, ComplexitySimple)

	switch complexity {
	case ComplexityModerate:
		guidelines = append(guidelines,
			"Structure your response with clear sections or paragraphs.",
			"Include relevant examples or evidence where appropriate.")
	case ComplexityComplex:
		guidelines = append(guidelines,
			"Organize your response with clear headings or numbered sections.",
			"Provide comprehensive coverage with examples and evidence.",
			"Consider multiple viewpoints or approaches.")
	}
	guidelines = append(guidelines, zeroShotIntentRequirements[ctx.String("intent")]...)

	if ctx.Has("max_length") {
		guidelines = append(guidelines, fmt.Sprintf("Keep your response under %s words.", ctx.String("max_length")))
	}
	if ctx.Has("tone") {
		guidelines = append(guidelines, fmt.Sprintf("Use a %s tone.", ctx.String("tone")))
	}
	if ctx.Has("audience") {
		guidelines = append(guidelines, fmt.Sprintf("Tailor your response for %s.", ctx.String("audience")))
	}
	for _, req := range ctx.Strings("requirements") {
		guidelines = append(guidelines, fmt.Sprintf("Ensure you %s.", req))
	}

	if len(guidelines) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Guidelines:")
	for _, g := range guidelines {
		sb.WriteString("\n• ")
		sb.WriteString(g)
	}
	return sb.String()
}

func (t *ZeroShotTechnique) ValidateInput(text string, ctx Context) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	lower := strings.ToLower(text)
	if containsAny(lower, "step by step", "detailed analysis", "comprehensive", "in-depth", "thorough examination") &&
		!ctx.Has("force_zero_shot") {
		t.logger.Debug("Task may be too complex for pure zero-shot")
	}
	return true
}
