package engine

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	trailingSpace = regexp.MustCompile(`[ \t]+\n`)
	blankRuns     = regexp.MustCompile(`\n{3,}`)
)

// PostProcess tidies an enhanced prompt: trailing spaces go, runs of blank
// lines collapse to one, and with maxTokens > 0 the text is cut at a word
// boundary near maxTokens*4 characters and marked with "...".
func PostProcess(text string, maxTokens int) string {
	text = trailingSpace.ReplaceAllString(text, "\n")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)

	if maxTokens <= 0 {
		return text
	}
	maxChars := maxTokens * 4
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	cut := string(runes[:maxChars])
	if i := strings.LastIndexFunc(cut, unicode.IsSpace); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRightFunc(cut, unicode.IsSpace) + "..."
}
