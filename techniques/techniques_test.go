package techniques

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/teilomillet/promptgen/utils"
)

func newBuiltin(t *testing.T, id string, params map[string]any) Technique {
	t.Helper()
	cfg := DefaultConfig(id)
	if params != nil {
		cfg.Parameters = params
	}
	tech, err := BuiltinFactories()[id](cfg, nil)
	require.NoError(t, err)
	return tech
}

func apply(t *testing.T, tech Technique, text string, ctx Context) string {
	t.Helper()
	out, err := tech.Apply(text, ctx)
	require.NoError(t, err)
	return out
}

func TestBuiltinFactoriesCoverIDs(t *testing.T) {
	factories := BuiltinFactories()
	assert.Len(t, factories, len(BuiltinIDs()))
	for _, id := range BuiltinIDs() {
		tech := newBuiltin(t, id, nil)
		assert.Equal(t, id, tech.ID())
	}
}

func TestCustomTemplateOverridesDefault(t *testing.T) {
	tech, err := NewRolePlayTechnique(Config{Template: "As {{.Role}}: {{.Text}}"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "As a senior engineer: Review this", apply(t, tech, "Review this", Context{"intent": "technical"}))
}

func TestTreeOfThoughts(t *testing.T) {
	t.Run("evaluation template", func(t *testing.T) {
		tot := newBuiltin(t, TreeOfThoughts, map[string]any{"num_branches": 1})
		out := apply(t, tot, "Design a cache", Context{
			"problem_type":        "design",
			"evaluation_criteria": []string{"clarity"},
		})
		assert.Equal(t, `Design a cache

Let's systematically explore 1 different approaches:

### Approach 1: Top-down design - start with high-level structure

Analysis:
- clarity: [Evaluate on scale 1-10 with justification]

Implementation sketch:
[Outline how this approach would work]

### Comparative Analysis:
Compare all approaches across key dimensions:
clarity

### Recommendation:
Based on the analysis, the optimal approach is: [Select and justify]

### Detailed Implementation:
[Provide complete solution using the selected approach]`, out)
	})

	t.Run("defaults", func(t *testing.T) {
		tot := newBuiltin(t, TreeOfThoughts, nil)
		out := apply(t, tot, "Find a way", nil)
		assert.Contains(t, out, "Let's systematically explore 3 different approaches:")
		assert.Contains(t, out, "### Approach 1: Direct approach - tackle the problem head-on")
		assert.Contains(t, out, "### Approach 3: Creative approach - think outside conventional methods")
		assert.Contains(t, out, "- feasibility: [Evaluate on scale 1-10 with justification]")
		assert.Contains(t, out, "feasibility, efficiency, completeness, clarity")
	})

	t.Run("suggested approaches extend problem type", func(t *testing.T) {
		tot := newBuiltin(t, TreeOfThoughts, map[string]any{"num_branches": 4})
		out := apply(t, tot, "Speed up the job", Context{
			"problem_type":         "optimization",
			"suggested_approaches": []any{"Cache intermediate results", "Never shown"},
		})
		assert.Contains(t, out, "### Approach 1: Greedy approach - make locally optimal choices")
		assert.Contains(t, out, "### Approach 4: Cache intermediate results")
		assert.NotContains(t, out, "Never shown")
	})

	t.Run("unknown problem type", func(t *testing.T) {
		tot := newBuiltin(t, TreeOfThoughts, nil)
		out := apply(t, tot, "Do it", Context{"problem_type": "mystery"})
		assert.Contains(t, out, "### Approach 1: Systematic approach")
	})

	t.Run("criteria override is per call", func(t *testing.T) {
		tot := newBuiltin(t, TreeOfThoughts, nil).(*TreeOfThoughtsTechnique)
		out := apply(t, tot, "Do it", Context{"evaluation_criteria": []any{"speed"}})
		assert.Contains(t, out, "- speed:")
		assert.Equal(t, defaultEvaluationCriteria, tot.EvaluationCriteria())
	})

	t.Run("empty criteria uses the pros and cons template", func(t *testing.T) {
		tot := newBuiltin(t, TreeOfThoughts, map[string]any{"evaluation_criteria": []any{}})
		out := apply(t, tot, "Do it", nil)
		assert.Contains(t, out, "Approach 1: Direct approach - tackle the problem head-on\n- Pros: [List advantages]")
		assert.Contains(t, out, "Selected Approach: [Choose best approach]")
	})

	t.Run("validate", func(t *testing.T) {
		tot := newBuiltin(t, TreeOfThoughts, nil)
		assert.False(t, tot.ValidateInput("too short to branch", nil))
		assert.True(t, tot.ValidateInput("We need a plan to move our monolith to services without downtime while the team keeps shipping features", nil))
	})
}

func TestFewShot(t *testing.T) {
	examples := []map[string]string{
		{"input": "first in", "output": "first out"},
		{"input": "second in", "output": "second out"},
		{"input": "third in", "output": "third out"},
	}

	t.Run("default examples by task type", func(t *testing.T) {
		fs := newBuiltin(t, FewShot, nil)
		out := apply(t, fs, "Good night", Context{"task_type": "translation"})
		assert.Equal(t, `Here are some examples of the task:

Example 1:
Input: Hello, how are you today?
Output: Bonjour, comment allez-vous aujourd'hui?
Explanation: English to French translation

Now, for the following input:
Input: Good night
Output:`, out)
	})

	t.Run("no examples falls back to instruction", func(t *testing.T) {
		fs := newBuiltin(t, FewShot, nil)
		assert.Equal(t, "Hi\n\nPlease provide a clear and detailed response.", apply(t, fs, "Hi", nil))
	})

	t.Run("caps at max_examples", func(t *testing.T) {
		fs := newBuiltin(t, FewShot, map[string]any{"max_examples": 2})
		out := apply(t, fs, "x", Context{"examples": examples})
		assert.Contains(t, out, "Input: second in")
		assert.NotContains(t, out, "third in")
		assert.NotContains(t, out, "Explanation:")
	})

	t.Run("example order last", func(t *testing.T) {
		fs := newBuiltin(t, FewShot, map[string]any{"max_examples": 2})
		out := apply(t, fs, "x", Context{"examples": examples, "example_order": "last"})
		assert.NotContains(t, out, "first in")
		assert.Contains(t, out, "Input: third in")
	})

	t.Run("validate", func(t *testing.T) {
		fs := newBuiltin(t, FewShot, nil)
		assert.False(t, fs.ValidateInput("x", nil))
		assert.False(t, fs.ValidateInput("x", Context{"examples": examples[:1]}))
		assert.True(t, fs.ValidateInput("x", Context{"examples": examples}))
		assert.True(t, fs.ValidateInput("x", Context{"task_type": "classification"}))
	})

	t.Run("unreadable items still count toward the minimum", func(t *testing.T) {
		logger := new(utils.MockLogger)
		logger.On("Warn", mock.Anything, mock.Anything).Return()

		fs, err := NewFewShotTechnique(DefaultConfig(FewShot), logger)
		require.NoError(t, err)

		mixed := Context{"examples": []any{
			map[string]any{"input": "in", "output": "out"},
			"not an example",
		}}
		assert.True(t, fs.ValidateInput("x", mixed))
		logger.AssertCalled(t, "Warn", "Ignoring examples that are not input/output objects",
			[]any{"technique", FewShot, "dropped", 1})
		assert.Equal(t, 1, logger.WarnCallCount())
	})

	t.Run("examples file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "examples.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- input: ping\n  output: pong\n"), 0o600))

		fs := newBuiltin(t, FewShot, map[string]any{"examples_file": path})
		assert.True(t, fs.ValidateInput("x", nil))
		assert.Contains(t, apply(t, fs, "x", nil), "Input: ping\nOutput: pong")
	})

	t.Run("missing examples file", func(t *testing.T) {
		cfg := DefaultConfig(FewShot)
		cfg.Parameters = map[string]any{"examples_file": filepath.Join(t.TempDir(), "nope.json")}
		_, err := NewFewShotTechnique(cfg, nil)
		var terr *Error
		require.True(t, errors.As(err, &terr))
		assert.Equal(t, ErrorTypeInvalidConfig, terr.Type)
	})
}

func TestZeroShot(t *testing.T) {
	zs := newBuiltin(t, ZeroShot, nil)

	tests := []struct {
		name string
		ctx  Context
		want string
	}{
		{
			name: "no context",
			want: "Please provide a clear and helpful response to the following:\nWhat is Go?",
		},
		{
			name: "intent complexity and format",
			ctx: Context{
				"intent":        "explanation",
				"complexity":    "moderate",
				"output_format": "markdown",
				"tone":          "friendly",
			},
			want: `Explain the following clearly, including relevant details and examples:
What is Go?
Guidelines:
• Structure your response with clear sections or paragraphs.
• Include relevant examples or evidence where appropriate.
• Use clear examples
• Define technical terms
• Use a friendly tone.
Format your response using Markdown.`,
		},
		{
			name: "task description wins",
			ctx:  Context{"task_description": "Answer in one word:", "requirements": []any{"stay factual"}},
			want: "Answer in one word:\nWhat is Go?\nGuidelines:\n• Ensure you stay factual.",
		},
		{
			name: "unknown intent falls back by complexity",
			ctx:  Context{"intent": "poetry", "complexity": "complex"},
			want: `Please provide a comprehensive, nuanced analysis of the following:
What is Go?
Guidelines:
• Organize your response with clear headings or numbered sections.
• Provide comprehensive coverage with examples and evidence.
• Consider multiple viewpoints or approaches.`,
		},
		{
			name: "unknown complexity uses moderate instruction",
			ctx:  Context{"intent": "summarization", "complexity": "extreme", "max_length": 50},
			want: "Summarize the following text, preserving key details and insights:\nWhat is Go?\nGuidelines:\n• Keep your response under 50 words.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, apply(t, zs, "What is Go?", tc.ctx))
		})
	}

	assert.False(t, zs.ValidateInput("   ", nil))
	assert.True(t, zs.ValidateInput("Give a comprehensive overview", nil))
}

func TestRolePlay(t *testing.T) {
	rp := newBuiltin(t, RolePlay, nil)

	t.Run("default persona", func(t *testing.T) {
		assert.Equal(t, `You are an expert. an expert in the relevant field

With this expertise and perspective in mind, please address the following:

Review my code`, apply(t, rp, "Review my code", nil))
	})

	t.Run("intent domain and traits", func(t *testing.T) {
		out := apply(t, rp, "Review my code", Context{
			"intent": "technical",
			"domain": "distributed systems",
			"traits": []any{"precise", "calm"},
		})
		assert.Equal(t, `You are a senior engineer. a technical expert with deep knowledge of software and systems

Your expertise particularly covers distributed systems. You are known for being precise, calm.

With this expertise and perspective in mind, please address the following:

Review my code`, out)
	})

	t.Run("explicit role", func(t *testing.T) {
		out := apply(t, rp, "Tell a tale", Context{"role": "a pirate"})
		assert.Contains(t, out, "You are a pirate. a pirate with specialized knowledge")
	})

	assert.Equal(t, "a UX designer", PersonaForIntent("Product DESIGN review").Role)
	assert.Equal(t, "an expert", PersonaForIntent("chit-chat").Role)
	assert.True(t, rp.ValidateInput("anything", nil))
}

func TestStepByStep(t *testing.T) {
	sbs := newBuiltin(t, StepByStep, nil)

	t.Run("explicit steps", func(t *testing.T) {
		out := apply(t, sbs, "Do it", Context{"steps": []string{"Read", "Write"}})
		assert.Equal(t, `Do it

Please complete this task by following these steps:

Step 1: Read
Step 2: Write

Begin with Step 1 and work through each step sequentially.`, out)
	})

	t.Run("verification steps", func(t *testing.T) {
		out := apply(t, sbs, "Do it", Context{"steps": []string{"Read"}, "verification_steps": []string{"Check"}})
		assert.Equal(t, `Do it

Please complete this task by following these steps:

Step 1: Read

After completing all steps, verify your work by:
1. Check

Begin with Step 1 and work through each step sequentially.`, out)
	})

	t.Run("empty steps", func(t *testing.T) {
		out := apply(t, sbs, "Do it", Context{"steps": []string{}})
		assert.Equal(t, "Do it\n\nPlease approach this task systematically, breaking it down into clear steps.", out)
	})

	t.Run("task type", func(t *testing.T) {
		out := apply(t, sbs, "Ship the feature", Context{"task_type": "implementation"})
		assert.Contains(t, out, "Step 1: Review requirements and specifications")
		assert.Contains(t, out, "Step 6: Test and document the implementation")
	})

	assert.Equal(t, "Clearly define the problem", StepsFor("Please debug this", "")[0])
	assert.Equal(t, "Identify the key components or elements to analyze", StepsFor("Analyze then create", "")[0])
	assert.Equal(t, genericSteps, StepsFor("Hello", ""))
	assert.Equal(t, genericSteps, StepsFor("Hello", "unknown"))
}

type answerShape struct {
	Summary string   `json:"summary"`
	Points  []string `json:"points"`
}

func TestStructuredOutput(t *testing.T) {
	so := newBuiltin(t, StructuredOutput, nil)

	t.Run("default json", func(t *testing.T) {
		out := apply(t, so, "List Go features", nil)
		assert.Contains(t, out, formatSpecifications["json"])
		assert.Contains(t, out, "Example for a question about Python features:")
		assert.Contains(t, out, "Ensure your response strictly follows this structure.")
	})

	t.Run("csv without example", func(t *testing.T) {
		out := apply(t, so, "List fruits", Context{"output_format": "csv"})
		assert.Equal(t, `List fruits

Please provide your response in the following format:

Column1,Column2,Column3
Value1,Value2,Value3
Value4,Value5,Value6

Ensure your response strictly follows this structure.`, out)
	})

	t.Run("unknown format", func(t *testing.T) {
		out := apply(t, so, "x", Context{"output_format": "haiku"})
		assert.Contains(t, out, "Structured format as appropriate")
	})

	t.Run("custom format and example", func(t *testing.T) {
		out := apply(t, so, "x", Context{"custom_format": "KEY=VALUE lines", "example": "a=1"})
		assert.Contains(t, out, "KEY=VALUE lines\n\nExample:\na=1\n\nEnsure")
	})

	t.Run("schema example", func(t *testing.T) {
		out := apply(t, so, "x", Context{"schema": map[string]any{
			"name": map[string]any{"type": "string"},
			"age":  map[string]any{"type": "number"},
			"tags": "free-form",
		}})
		assert.Contains(t, out, "Example based on schema:\n```json\n{\n  \"age\": 42,\n  \"name\": \"example text\",\n  \"tags\": \"example_value\"\n}\n```")
	})

	t.Run("json schema", func(t *testing.T) {
		out := apply(t, so, "x", Context{"json_schema": SchemaFor(&answerShape{})})
		assert.Contains(t, out, "JSON matching this schema:")
		assert.Contains(t, out, `"summary"`)
		assert.Contains(t, out, `"points"`)
	})

	assert.Contains(t, SupportedFormats(), "yaml")
	assert.True(t, so.ValidateInput("anything", nil))
}

func TestEmotionalAppeal(t *testing.T) {
	ea := newBuiltin(t, EmotionalAppeal, nil)

	tests := []struct {
		name string
		ctx  Context
		want string
	}{
		{
			name: "default",
			want: "I've been working on this for a while and could really use your expertise.\n\nHelp me\n\nThis is really important to me and I would greatly appreciate your thoughtful help.",
		},
		{
			name: "subtle",
			ctx:  Context{"subtle": true, "appeal_type": "curiosity"},
			want: "Help me\n\nI'm genuinely curious about this and excited to hear your insights.",
		},
		{
			name: "intent and personal",
			ctx:  Context{"intent": "explanation", "personal": true},
			want: "I'm trying to deepen my understanding of this topic.\n\nHelp me\n\nI'm eager to learn and understand this properly. Your clear explanation would mean a lot. I'm committed to understanding this thoroughly.",
		},
		{
			name: "custom overrides",
			ctx:  Context{"custom_context": "Context here.", "custom_appeal": "Please."},
			want: "Context here.\n\nHelp me\n\nPlease.",
		},
		{
			name: "empty custom context",
			ctx:  Context{"custom_context": "", "custom_appeal": "Please."},
			want: "Help me\n\nPlease.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, apply(t, ea, "Help me", tc.ctx))
		})
	}

	assert.False(t, ea.ValidateInput("Help me", Context{"no_emotion": true}))
	assert.True(t, ea.ValidateInput("Calculate the formula", nil))
	assert.Equal(t, "challenge", AppealForIntent("problem_solving"))
	assert.Equal(t, "importance", AppealForIntent("smalltalk"))
}

func TestConstraints(t *testing.T) {
	c := newBuiltin(t, Constraints, nil)

	t.Run("defaults", func(t *testing.T) {
		assert.Equal(t, `Write a poem

Please ensure your response adheres to the following constraints:

1. Be accurate and factual
2. Provide clear and concise explanations
3. Use appropriate examples when helpful`, apply(t, c, "Write a poem", nil))
	})

	t.Run("gathered with guidance", func(t *testing.T) {
		out := apply(t, c, "Write docs", Context{
			"max_length":        100,
			"tone":              "formal",
			"technical_level":   "wizard",
			"include":           []any{"tests"},
			"style":             "academic",
			"examples_required": true,
			"num_examples":      3,
			"avoid_assumptions": true,
		})
		assert.Equal(t, `Write docs

Please ensure your response adheres to the following constraints:

1. Keep the response under 100 words
2. Use a formal tone throughout
3. Include information about tests
4. Use formal academic language
5. Include citations or references where appropriate
6. Maintain objective tone

Additional guidance: Include at least 3 concrete examples; Make no assumptions beyond what is explicitly stated`, out)
	})

	assert.Equal(t, []string{"No jargon", "Avoid discussing pricing"},
		GatherConstraints(Context{"constraints": []string{"No jargon"}, "exclude": []string{"pricing"}}))
	assert.Empty(t, GatherConstraints(nil))
	assert.True(t, c.ValidateInput("anything", nil))
}

func TestAnalogical(t *testing.T) {
	a := newBuiltin(t, Analogical, nil)

	t.Run("domain analogy", func(t *testing.T) {
		out := apply(t, a, "Explain the architecture", Context{"domain": "software"})
		assert.Equal(t, `Explain the architecture

To better understand this, let's use an analogy:

`+domainAnalogies["software"]["system"].Analogy+`

This helps us understand how different parts interact and depend on each other.

Now, applying this analogy to our specific case:
We can design our system with clear 'districts' (modules) connected by well-defined 'roads' (APIs).`, out)
	})

	t.Run("simple", func(t *testing.T) {
		out := apply(t, a, "Fix this problem", Context{"simple": true})
		assert.Equal(t, "Fix this problem\n\nThink of it like this: "+generalAnalogies["problem"].Analogy, out)
	})

	t.Run("custom analogy", func(t *testing.T) {
		out := apply(t, a, "x", Context{"analogy": "A queue is a line at a bakery."})
		assert.Contains(t, out, "A queue is a line at a bakery.\n\nThis relates to our problem because:")
		assert.Contains(t, out, "[Apply the analogy to solve the problem]")
	})

	assert.Equal(t, "process", ConceptType("the process flow"))
	assert.Equal(t, "organization", ConceptType("sort these"))
	assert.Equal(t, "balance", ConceptType("the trade-off"))
	assert.Equal(t, "general", ConceptType("hello"))
	assert.Equal(t, generalAnalogies["general"], AnalogyFor("balance the budget", "general"))
	assert.Equal(t, domainAnalogies["business"]["growth"], AnalogyFor("growth plans", "business"))
	assert.True(t, a.ValidateInput("x", Context{"educational": true}))
}

func TestSelfConsistency(t *testing.T) {
	sc := newBuiltin(t, SelfConsistency, nil)

	t.Run("defaults", func(t *testing.T) {
		out := apply(t, sc, "Which route is shortest?", nil)
		assert.Contains(t, out, "from 3 different perspectives:\n\n**Approach 1 (Systematic Analysis):**\nLet me think step-by-step to solve this problem.")
		assert.Contains(t, out, "**Approach 3 (Pattern Matching):**")
		assert.NotContains(t, out, "**Approach 4")
		assert.Contains(t, out, "Now I'll analyze all 3 approaches")
		assert.Contains(t, out, "[Provide the final answer with confidence level]\n\n**Confidence Level:**")
	})

	t.Run("capped at five paths", func(t *testing.T) {
		out := apply(t, sc, "x", Context{"num_paths": 10})
		assert.Contains(t, out, "from 5 different perspectives")
		assert.Contains(t, out, "**Approach 5 (Boundary Testing):**")
	})

	t.Run("custom variations", func(t *testing.T) {
		out := apply(t, sc, "x", Context{"reasoning_variations": []any{"guess boldly"}, "show_confidence": false})
		assert.Contains(t, out, "from 1 different perspectives")
		assert.Contains(t, out, "**Approach 1 (Alternative Method):**\nLet me guess boldly to solve this problem.")
		assert.NotContains(t, out, "Confidence Level")
		assert.True(t, len(out) > 0 && out[len(out)-1] == ']')
	})

	t.Run("task type", func(t *testing.T) {
		out := apply(t, sc, "x", Context{"task_type": "math", "num_paths": 2})
		assert.Contains(t, out, "**Approach 1 (Algebraic Method):**")
		assert.Contains(t, out, "**Approach 2 (Geometric Approach):**")
	})

	tests := []struct {
		name string
		text string
		ctx  Context
		want bool
	}{
		{name: "too short", text: "Why?", want: false},
		{name: "reasoning with uncertainty", text: "What is the best way to solve this tricky puzzle", want: true},
		{name: "plain statement", text: "Tell me a story about dragons and knights", want: false},
		{name: "suitable task type", text: "Tell me a story about dragons and knights", ctx: Context{"task_type": "Math"}, want: true},
		{name: "long question", text: "Could you tell me what the capital city of the country France is?", want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sc.ValidateInput(tc.text, tc.ctx))
		})
	}
}

func TestReAct(t *testing.T) {
	r := newBuiltin(t, ReAct, nil)

	t.Run("defaults", func(t *testing.T) {
		out := apply(t, r, "Plan the release", nil)
		assert.Contains(t, out, "**ReAct Process:**\n\nStep 1:\nThought 1: "+thoughtAnalysis)
		assert.Contains(t, out, "Action 1: Analyze the current situation")
		assert.Contains(t, out, "Observation 3:")
		assert.NotContains(t, out, "Step 4:")
		assert.Contains(t, out, "**Iteration Check:**")
		assert.NotContains(t, out, "**Reflection:**")
		assert.NotContains(t, out, "**Initial Analysis:**")
	})

	t.Run("tools cycle", func(t *testing.T) {
		out := apply(t, r, "x", Context{"available_tools": []any{"search", "calculator"}})
		assert.Contains(t, out, "Action 1: Use search to")
		assert.Contains(t, out, "Action 2: Use calculator to")
		assert.Contains(t, out, "Action 3: Use search again to")
	})

	t.Run("options", func(t *testing.T) {
		out := apply(t, r, "x", Context{
			"num_steps":          10,
			"task_type":          "debugging",
			"allow_iterations":   false,
			"include_reflection": true,
			"initial_analysis":   "We know the cache is cold.",
		})
		assert.Contains(t, out, "approach, which combines thinking with action:\n\n**Initial Analysis:**\nWe know the cache is cold.\n\n**ReAct Process:**")
		assert.Contains(t, out, "Step 6:")
		assert.NotContains(t, out, "Step 7:")
		assert.Contains(t, out, "Thought 2: "+thoughtDebugging)
		assert.NotContains(t, out, "**Iteration Check:**")
		assert.Contains(t, out, "[Expected result or information gained from the action]\n\n**Final Answer:**")
		assert.Contains(t, out, "\n\n**Reflection:**\n- What worked well in this approach?")
	})

	tests := []struct {
		name string
		text string
		ctx  Context
		want bool
	}{
		{name: "too short", text: "Research it", want: false},
		{name: "info need", text: "Please research the history of compilers", want: true},
		{name: "plain", text: "Tell me a nice story about a cat please", want: false},
		{name: "tools", text: "Tell me a nice story about a cat please", ctx: Context{"available_tools": []string{"web"}}, want: true},
		{name: "task type", text: "Tell me a nice story about a cat please", ctx: Context{"task_type": "debugging"}, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.ValidateInput(tc.text, tc.ctx))
		})
	}
}
