package feature

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"textmark/internal/textkit"
)

var irregularPunct = regexp.MustCompile(`,,|!!|\?\?| {2,}`)

// FormalPhrases is the stock phrasing list scored by the AI-likelihood
// composer. Matching is case-insensitive substring counting.
var FormalPhrases = []string{
	"in conclusion",
	"overall",
	"furthermore",
	"moreover",
	"it is important to note",
	"this highlights that",
	"on the other hand",
	"as a result",
	"in summary",
	"this demonstrates",
	"it can be observed",
	"in addition",
}

// TransitionWords is the discourse-marker list used by the quality
// composer and the highlight selector.
var TransitionWords = []string{
	"moreover", "furthermore", "therefore", "however", "hence", "thus",
	"consequently", "additionally", "nevertheless", "indeed", "meanwhile",
}

// WordCount pairs a word with its occurrence count.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// SentenceLengthStats returns the mean and population standard
// deviation of per-sentence normalized word counts. Zero-word
// sentences are excluded. Empty input returns (0, 0).
func SentenceLengthStats(lengths []int) (mean, sd float64) {
	kept := make([]float64, 0, len(lengths))
	for _, l := range lengths {
		if l > 0 {
			kept = append(kept, float64(l))
		}
	}
	if len(kept) == 0 {
		return 0, 0
	}
	for _, l := range kept {
		mean += l
	}
	mean /= float64(len(kept))
	if len(kept) == 1 {
		return mean, 0
	}
	var variance float64
	for _, l := range kept {
		d := l - mean
		variance += d * d
	}
	variance /= float64(len(kept))
	return mean, math.Sqrt(variance)
}

// LengthRange returns max minus min of the non-zero sentence lengths.
func LengthRange(lengths []int) int {
	minLen, maxLen := 0, 0
	seen := false
	for _, l := range lengths {
		if l == 0 {
			continue
		}
		if !seen {
			minLen, maxLen = l, l
			seen = true
			continue
		}
		if l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
	}
	return maxLen - minLen
}

// VocabularyRatio is unique words over total words, in [0,1].
func VocabularyRatio(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	return float64(textkit.UniqueCount(words)) / float64(len(words))
}

// StarterDiversity is unique sentence-opening words over sentence
// count. Sentences that normalize to zero words are skipped.
func StarterDiversity(sentences []textkit.Sentence) float64 {
	starters := map[string]struct{}{}
	counted := 0
	for _, s := range sentences {
		words := textkit.NormalizeWords(s.Text)
		if len(words) == 0 {
			continue
		}
		starters[words[0]] = struct{}{}
		counted++
	}
	if counted == 0 {
		return 0
	}
	return float64(len(starters)) / float64(counted)
}

// PhraseHits counts case-insensitive occurrences of each phrase in
// text, summed over the list.
func PhraseHits(text string, phrases []string) int {
	lower := strings.ToLower(text)
	hits := 0
	for _, p := range phrases {
		hits += strings.Count(lower, p)
	}
	return hits
}

// PunctuationIrregularities counts doubled commas, doubled
// exclamation or question marks, and runs of two or more spaces.
// A count of zero is itself a regularity signal for the AI score.
func PunctuationIrregularities(text string) int {
	return len(irregularPunct.FindAllString(text, -1))
}

// RepeatedWords returns words occurring more than minCount times,
// ordered by descending count then ascending word, capped at limit.
func RepeatedWords(words []string, minCount, limit int) []WordCount {
	counts := textkit.Counts(words)
	out := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		if c > minCount {
			out = append(out, WordCount{Word: w, Count: c})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RepeatedWordCount counts distinct words occurring more than
// minCount times.
func RepeatedWordCount(words []string, minCount int) int {
	n := 0
	for _, c := range textkit.Counts(words) {
		if c > minCount {
			n++
		}
	}
	return n
}

// ProperNounDensity counts capitalized tokens that do not open their
// sentence, averaged per sentence.
func ProperNounDensity(sentences []textkit.Sentence) float64 {
	if len(sentences) == 0 {
		return 0
	}
	total := 0
	for _, s := range sentences {
		fields := strings.Fields(s.Text)
		for i, f := range fields {
			if i == 0 {
				continue
			}
			r := []rune(f)
			if len(r) > 0 && unicode.IsUpper(r[0]) {
				total++
			}
		}
	}
	return float64(total) / float64(len(sentences))
}

// AverageSentencesPerParagraph reports paragraph organization: the
// mean sentence count over blank-line separated blocks.
func AverageSentencesPerParagraph(text string) float64 {
	paragraphs := textkit.Paragraphs(text)
	if len(paragraphs) == 0 {
		return 0
	}
	total := 0
	for _, p := range paragraphs {
		total += len(textkit.SplitSentences(p))
	}
	return float64(total) / float64(len(paragraphs))
}
