package engine

import (
	"strings"

	"github.com/teilomillet/promptgen/techniques"
)

var specificityMarkers = []string{
	"specifically", "exactly", "precisely", "follow these steps",
	"ensure", "must", "should", "format", "include", "provide",
}

var coherenceTransitions = []string{
	"first", "second", "then", "next", "finally", "therefore", "however",
}

// effectivenessChecks report whether a technique left its mark on the
// enhanced prompt.
var effectivenessChecks = map[string]func(lower, enhanced string) bool{
	techniques.ChainOfThought: func(lower, _ string) bool {
		return strings.Contains(lower, "step") && strings.Contains(lower, "think")
	},
	techniques.FewShot: func(lower, enhanced string) bool {
		return strings.Contains(lower, "example") || strings.Contains(enhanced, "Example:")
	},
	techniques.StructuredOutput: func(_, enhanced string) bool {
		return containsAny(enhanced, "```", "|", "json", "format")
	},
	techniques.RolePlay: func(lower, _ string) bool {
		return containsAny(lower, "you are", "expert")
	},
	techniques.Constraints: func(lower, _ string) bool {
		return containsAny(lower, "must", "constraint")
	},
}

// CalculateMetrics scores enhanced against original for the techniques
// that were applied.
func CalculateMetrics(original, enhanced string, applied []string) *EnhancementMetrics {
	m := &EnhancementMetrics{
		Clarity:                ClarityScore(original, enhanced),
		Specificity:            SpecificityScore(original, enhanced),
		Coherence:              CoherenceScore(enhanced),
		TechniqueEffectiveness: make(map[string]float64, len(applied)),
	}
	for _, id := range applied {
		m.TechniqueEffectiveness[id] = TechniqueEffectiveness(id, enhanced)
	}
	m.OverallQuality = m.Clarity*0.3 + m.Specificity*0.3 + m.Coherence*0.4

	if len(original) > 0 {
		improvement := float64(len(enhanced)-len(original)) / float64(len(original)) * 100
		m.ImprovementPercentage = min(max(improvement, -50), 200)
	}
	return m
}

// ClarityScore rewards structure the enhancement added: line breaks, list
// or step markers and extra paragraph breaks.
func ClarityScore(original, enhanced string) float64 {
	score := 0.7
	if strings.Contains(enhanced, "\n") && !strings.Contains(original, "\n") {
		score += 0.1
	}
	if containsAny(enhanced, "1.", "•", "-", "Step") {
		score += 0.1
	}
	if strings.Count(enhanced, "\n\n") > strings.Count(original, "\n\n") {
		score += 0.1
	}
	return min(score, 1.0)
}

// SpecificityScore rewards explicit instructions the enhancement added,
// 0.1 per new marker up to 0.4.
func SpecificityScore(original, enhanced string) float64 {
	score := 0.6
	before := countMarkers(strings.ToLower(original), specificityMarkers)
	after := countMarkers(strings.ToLower(enhanced), specificityMarkers)
	if after > before {
		score += min(float64(after-before)*0.1, 0.4)
	}
	return min(score, 1.0)
}

// CoherenceScore rewards transition words in the enhanced prompt.
func CoherenceScore(enhanced string) float64 {
	score := 0.8
	n := countMarkers(strings.ToLower(enhanced), coherenceTransitions)
	if n >= 2 {
		score += 0.1
	}
	if n >= 4 {
		score += 0.1
	}
	return min(score, 1.0)
}

// TechniqueEffectiveness is 0.9 when the technique's signature shows in
// enhanced, 0.6 when it does not, and 0.75 for techniques without a check.
func TechniqueEffectiveness(id, enhanced string) float64 {
	check, ok := effectivenessChecks[id]
	if !ok {
		return 0.75
	}
	if check(strings.ToLower(enhanced), enhanced) {
		return 0.9
	}
	return 0.6
}

func countMarkers(s string, markers []string) int {
	n := 0
	for _, m := range markers {
		if strings.Contains(s, m) {
			n++
		}
	}
	return n
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
