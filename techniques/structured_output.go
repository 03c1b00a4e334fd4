package techniques

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/teilomillet/promptgen/utils"
)

const structuredOutputTemplate = `{{.Text}}

Please provide your response in the following format:

{{.FormatSpecification}}
{{if .FormatExample}}
{{.FormatExample}}
{{end}}
Ensure your response strictly follows this structure.`

var formatSpecifications = map[string]string{
	"json": "```json\n" + `{
  "summary": "Brief summary of the response",
  "main_points": [
    "Point 1",
    "Point 2"
  ],
  "details": {
    "key": "value"
  },
  "metadata": {
    "confidence": 0.95,
    "sources": []
  }
}` + "\n```",
	"markdown": `# Main Title

## Section 1
- Key point
- Supporting detail

## Section 2
1. Numbered item
2. Another item

### Subsection
Additional details here.`,
	"table": `| Column 1 | Column 2 | Column 3 |
|----------|----------|----------|
| Data 1   | Data 2   | Data 3   |
| Data 4   | Data 5   | Data 6   |`,
	"xml": "```xml\n" + `<response>
  <summary>Brief summary</summary>
  <sections>
    <section id="1">
      <title>Section Title</title>
      <content>Section content</content>
    </section>
  </sections>
</response>` + "\n```",
	"yaml": "```yaml\n" + `summary: Brief summary
main_points:
  - Point 1
  - Point 2
details:
  key1: value1
  key2: value2
metadata:
  confidence: 0.95` + "\n```",
	"csv": `Column1,Column2,Column3
Value1,Value2,Value3
Value4,Value5,Value6`,
	"bullet_points": `• Main Point 1
  ◦ Sub-point 1.1
  ◦ Sub-point 1.2
• Main Point 2
  ◦ Sub-point 2.1
• Main Point 3`,
	"numbered_list": `1. First main point
   1.1. Sub-point
   1.2. Another sub-point
2. Second main point
   2.1. Sub-point
3. Third main point`,
}

var formatExamples = map[string]string{
	"json": "Example for a question about Python features:\n```json\n" + `{
  "summary": "Python key features overview",
  "main_points": [
    "Dynamic typing",
    "Interpreted language",
    "Extensive standard library"
  ],
  "details": {
    "typing": "Python uses dynamic typing with optional type hints",
    "performance": "Generally slower than compiled languages but highly productive"
  },
  "metadata": {
    "confidence": 0.90,
    "sources": ["official documentation", "community best practices"]
  }
}` + "\n```",
	"table": `Example for comparing options:
| Option | Pros | Cons | Recommendation |
|--------|------|------|----------------|
| A      | Fast | Expensive | For high-performance needs |
| B      | Cheap | Slow | For budget constraints |`,
}

var schemaTypeExamples = map[string]any{
	"string":  "example text",
	"number":  42,
	"integer": 42,
	"boolean": true,
	"array":   []string{"item1", "item2"},
	"object":  map[string]string{"key": "value"},
}

// StructuredOutputTechnique asks for the answer in a fixed format such as
// JSON, YAML, a table or a list.
//
// Context keys: output_format (default "json"), custom_format, example,
// schema (field name to {"type": ...}) and json_schema (a JSON Schema as a
// map or *jsonschema.Schema, see SchemaFor).
type StructuredOutputTechnique struct {
	Base
}

func NewStructuredOutputTechnique(cfg Config, logger utils.Logger) (*StructuredOutputTechnique, error) {
	base, err := NewBase(StructuredOutput, cfg, structuredOutputTemplate, logger)
	if err != nil {
		return nil, err
	}
	return &StructuredOutputTechnique{Base: base}, nil
}

// SchemaFor reflects v into an inline JSON Schema suitable for the
// json_schema context key.
func SchemaFor(v any) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct:            true,
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	return r.Reflect(v)
}

func (t *StructuredOutputTechnique) Apply(text string, ctx Context) (string, error) {
	text = t.CleanText(text)
	format := ctx.StringOr("output_format", "json")

	spec, err := t.specification(format, ctx)
	if err != nil {
		return "", err
	}

	return t.RenderTemplate(t.template, map[string]any{
		"Text":                text,
		"FormatSpecification": spec,
		"FormatExample":       t.example(format, ctx),
	})
}

func (t *StructuredOutputTechnique) specification(format string, ctx Context) (string, error) {
	if ctx.Has("custom_format") {
		return ctx.String("custom_format"), nil
	}
	if schema, ok := ctx["json_schema"]; ok && schema != nil {
		raw, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return "", NewError(ErrorTypeApply, t.id, "encoding json_schema", err)
		}
		return fmt.Sprintf("JSON matching this schema:\n```json\n%s\n```", raw), nil
	}
	if spec, ok := formatSpecifications[format]; ok {
		return spec, nil
	}
	return "Structured format as appropriate", nil
}

func (t *StructuredOutputTechnique) example(format string, ctx Context) string {
	if ctx.Has("example") {
		return "Example:\n" + ctx.String("example")
	}
	if schema := ctx.Map("schema"); schema != nil && format == "json" {
		return t.exampleFromSchema(schema)
	}
	return formatExamples[format]
}

// exampleFromSchema renders a JSON example with one placeholder value per
// field. Keys come out sorted.
func (t *StructuredOutputTechnique) exampleFromSchema(schema map[string]any) string {
	example := make(map[string]any, len(schema))
	for key, value := range schema {
		example[key] = "example_value"
		field := Context(nil)
		switch v := value.(type) {
		case map[string]any:
			field = Context(v)
		case Context:
			field = v
		}
		if field.Has("type") {
			if ex, ok := schemaTypeExamples[field.String("type")]; ok {
				example[key] = ex
			} else {
				example[key] = "example"
			}
		}
	}
	raw, err := json.MarshalIndent(example, "", "  ")
	if err != nil {
		t.logger.Error("Failed to generate JSON example", "error", err)
		return ""
	}
	return fmt.Sprintf("Example based on schema:\n```json\n%s\n```", raw)
}

// SupportedFormats lists the output formats with a built-in specification.
func SupportedFormats() []string {
	out := make([]string, 0, len(formatSpecifications))
	for f := range formatSpecifications {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func (t *StructuredOutputTechnique) ValidateInput(text string, ctx Context) bool {
	if ctx.Has("output_format") {
		return true
	}
	if containsAny(strings.ToLower(text),
		"json", "table", "list", "format", "structure",
		"organize", "categorize", "xml", "csv", "markdown") {
		t.logger.Debug("Structured output would be beneficial")
	}
	return true
}
