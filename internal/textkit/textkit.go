package textkit

import (
	"regexp"
	"strings"
)

var punctStripper = regexp.MustCompile("[.,/#!$%^&*;:{}=\\-_`~()\\[\\]\"'<>?@+]")
var multiSpace = regexp.MustCompile(`\s+`)
var blankLines = regexp.MustCompile(`\n[ \t]*\n`)
var digitRun = regexp.MustCompile(`\d+`)

// NormalizeWords lowercases text, strips the fixed punctuation set,
// collapses whitespace and splits into tokens. Empty input yields an
// empty slice, never nil panics.
func NormalizeWords(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	cleaned := strings.ToLower(text)
	cleaned = punctStripper.ReplaceAllString(cleaned, " ")
	cleaned = multiSpace.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return []string{}
	}
	return strings.Split(cleaned, " ")
}

// Paragraphs splits text on blank-line runs and drops empty blocks.
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	blocks := blankLines.Split(text, -1)
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if strings.TrimSpace(b) != "" {
			out = append(out, b)
		}
	}
	return out
}

// DigitRuns counts maximal runs of digits in text.
func DigitRuns(text string) int {
	return len(digitRun.FindAllString(text, -1))
}

// UniqueCount returns the number of distinct words.
func UniqueCount(words []string) int {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	return len(seen)
}

// Counts returns per-word occurrence counts.
func Counts(words []string) map[string]int {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}
	return counts
}
