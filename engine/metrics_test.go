package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teilomillet/promptgen/techniques"
)

func TestClarityScore(t *testing.T) {
	tests := []struct {
		name     string
		original string
		enhanced string
		want     float64
	}{
		{name: "unchanged", original: "plain", enhanced: "plain", want: 0.7},
		{name: "line break added", original: "plain", enhanced: "plain\nmore", want: 0.8},
		{name: "step marker", original: "plain", enhanced: "Step one", want: 0.8},
		{name: "fully structured", original: "plain", enhanced: "plain\n\n1. a", want: 1.0},
		{name: "no new paragraphs", original: "a\n\nb", enhanced: "a\n\nb\nc", want: 0.7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ClarityScore(tc.original, tc.enhanced), 1e-9)
		})
	}
}

func TestSpecificityScore(t *testing.T) {
	tests := []struct {
		name     string
		original string
		enhanced string
		want     float64
	}{
		{name: "no markers", original: "a", enhanced: "b", want: 0.6},
		{name: "two new markers", original: "a", enhanced: "You must ensure it", want: 0.8},
		{name: "capped", original: "a", enhanced: "specifically exactly precisely ensure must should format", want: 1.0},
		{name: "markers already present", original: "You must", enhanced: "You MUST", want: 0.6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, SpecificityScore(tc.original, tc.enhanced), 1e-9)
		})
	}
}

func TestCoherenceScore(t *testing.T) {
	assert.InDelta(t, 0.8, CoherenceScore("nothing here"), 1e-9)
	assert.InDelta(t, 0.9, CoherenceScore("First this, then that"), 1e-9)
	assert.InDelta(t, 1.0, CoherenceScore("First, second, next and finally"), 1e-9)
}

func TestTechniqueEffectiveness(t *testing.T) {
	tests := []struct {
		id       string
		enhanced string
		want     float64
	}{
		{techniques.ChainOfThought, "Let's think step by step", 0.9},
		{techniques.ChainOfThought, "Step one", 0.6},
		{techniques.FewShot, "Here are some examples", 0.9},
		{techniques.StructuredOutput, "| a | b |", 0.9},
		{techniques.StructuredOutput, "plain", 0.6},
		{techniques.RolePlay, "You are a pirate", 0.9},
		{techniques.Constraints, "Adhere to each Constraint", 0.9},
		{techniques.Analogical, "anything", 0.75},
	}
	for _, tc := range tests {
		t.Run(tc.id+"/"+tc.enhanced, func(t *testing.T) {
			assert.InDelta(t, tc.want, TechniqueEffectiveness(tc.id, tc.enhanced), 1e-9)
		})
	}
}

func TestCalculateMetrics(t *testing.T) {
	m := CalculateMetrics("abc", strings.Repeat("x", 100), []string{techniques.Analogical})
	assert.InDelta(t, 200, m.ImprovementPercentage, 1e-9)
	assert.Equal(t, map[string]float64{techniques.Analogical: 0.75}, m.TechniqueEffectiveness)
	assert.InDelta(t, m.Clarity*0.3+m.Specificity*0.3+m.Coherence*0.4, m.OverallQuality, 1e-9)

	m = CalculateMetrics("abc", "a", nil)
	assert.InDelta(t, -50, m.ImprovementPercentage, 1e-9)
	assert.Empty(t, m.TechniqueEffectiveness)

	m = CalculateMetrics("abcd", "abcdef", nil)
	assert.InDelta(t, 50, m.ImprovementPercentage, 1e-9)

	m = CalculateMetrics("", "abc", nil)
	assert.Zero(t, m.ImprovementPercentage)
}
