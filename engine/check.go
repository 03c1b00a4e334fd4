package engine

import (
	"regexp"
	"slices"
	"strings"

	"github.com/teilomillet/promptgen/techniques"
)

const (
	shortPromptWords   = 5
	longSentenceWords  = 40
	ambiguousThreshold = 3
	maxTechniques      = 6
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

var ambiguousWords = map[string]bool{
	"it": true, "this": true, "that": true, "they": true,
	"them": true, "thing": true, "stuff": true, "somehow": true,
}

// conflicting instruction pairs; both halves present triggers a warning
var conflictingInstructions = [][2]string{
	{"only", "also"},
	{"brief", "detailed"},
	{"short", "comprehensive"},
	{"concise", "comprehensive"},
}

// conflicting technique pairs
var conflictingTechniques = [][2]string{
	{techniques.ZeroShot, techniques.FewShot},
}

// Check returns advisory warnings about a prompt and its technique
// selection. Warnings never make a request invalid.
func Check(text string, ids []string) []string {
	var warnings []string
	lower := strings.ToLower(text)
	words := strings.Fields(lower)

	if len(words) < shortPromptWords {
		warnings = append(warnings, "Prompt is very short; consider adding more details")
	}

	for _, sentence := range sentenceSplit.Split(text, -1) {
		if len(strings.Fields(sentence)) > longSentenceWords {
			warnings = append(warnings, "Prompt contains very long sentences; consider shorter sentences")
			break
		}
	}

	ambiguous := 0
	for _, w := range words {
		if ambiguousWords[strings.Trim(w, ".,;:!?\"'")] {
			ambiguous++
		}
	}
	if ambiguous >= ambiguousThreshold {
		warnings = append(warnings, "Prompt contains ambiguous references; consider being more specific")
	}

	for _, pair := range conflictingInstructions {
		if slices.Contains(words, pair[0]) && slices.Contains(words, pair[1]) {
			warnings = append(warnings, "Prompt may contain conflicting instructions; check for consistency")
			break
		}
	}

	for _, pair := range conflictingTechniques {
		if slices.Contains(ids, pair[0]) && slices.Contains(ids, pair[1]) {
			warnings = append(warnings, "Techniques "+pair[0]+" and "+pair[1]+" conflict")
		}
	}
	if len(ids) > maxTechniques {
		warnings = append(warnings, "Using too many techniques may reduce effectiveness")
	}
	return warnings
}
