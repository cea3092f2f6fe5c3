package textkit

import (
	"regexp"
	"strings"
)

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// Sentence is a span of the original text closed by a run of
// terminator punctuation, or by end-of-text for trailing content.
// Start < End always holds; spans are non-overlapping and appear in
// source order.
type Sentence struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// SplitSentences scans for runs of `.`, `!`, `?` and closes a sentence
// at the end of each run. Trailing non-whitespace text after the last
// terminator forms a final unterminated sentence. Whitespace-only
// spans are dropped.
func SplitSentences(text string) []Sentence {
	if text == "" {
		return []Sentence{}
	}
	matches := sentenceEnd.FindAllStringIndex(text, -1)
	sentences := make([]Sentence, 0, len(matches)+1)
	prev := 0
	for _, m := range matches {
		end := m[1]
		appendSpan(&sentences, text, prev, end)
		prev = end
	}
	if prev < len(text) {
		appendSpan(&sentences, text, prev, len(text))
	}
	return sentences
}

func appendSpan(sentences *[]Sentence, text string, start, end int) {
	span := text[start:end]
	if strings.TrimSpace(span) == "" {
		return
	}
	*sentences = append(*sentences, Sentence{Text: span, Start: start, End: end})
}

// WordsPerSentence maps each sentence to its normalized word count.
// Sentences with zero normalized words are reported as zero and are
// the caller's responsibility to skip.
func WordsPerSentence(sentences []Sentence) []int {
	counts := make([]int, len(sentences))
	for i, s := range sentences {
		counts[i] = len(NormalizeWords(s.Text))
	}
	return counts
}
