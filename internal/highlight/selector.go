// Package highlight selects a coverage-capped set of sentences to
// flag as AI-like. Each sentence is scored by independent boolean
// heuristics; the cap keeps any single pass from swallowing the
// document.
package highlight

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"textmark/internal/feature"
	"textmark/internal/textkit"
)

type Config struct {
	MinSignals   int     `yaml:"min_signals" json:"minSignals"`
	CoverageCap  float64 `yaml:"coverage_cap" json:"coverageCap"`
	MinWords     int     `yaml:"min_words" json:"minWords"`
	RepeatWithin int     `yaml:"repeat_within" json:"repeatWithin"`
}

func DefaultConfig() Config {
	return Config{
		MinSignals:   3,
		CoverageCap:  0.30,
		MinWords:     6,
		RepeatWithin: 3,
	}
}

// Selection is the outcome of one highlighting pass.
type Selection struct {
	Indices   []int   `json:"indices"`
	CharCount int     `json:"charCount"`
	Percent   float64 `json:"percent"`
}

var genericConclusions = []string{
	"in conclusion", "in summary", "to summarize", "overall", "ultimately",
	"all things considered",
}

var vagueQuantifiers = []string{
	"many", "various", "numerous", "several", "significant", "countless",
	"a number of", "a variety of", "a range of",
}

var personalPronouns = map[string]struct{}{
	"i": {}, "me": {}, "my": {}, "mine": {}, "myself": {},
	"we": {}, "us": {}, "our": {}, "ours": {},
	"you": {}, "your": {}, "yours": {},
	"he": {}, "him": {}, "his": {},
	"she": {}, "her": {}, "hers": {},
	"they": {}, "them": {}, "their": {},
}

var templateOpening = regexp.MustCompile(`^\s*(\d+[.)]\s|step\s+\d|firstly\b|secondly\b|thirdly\b|finally\b|first of all\b)`)
var passiveVoice = regexp.MustCompile(`\b(is|are|was|were|be|been|being)\s+[a-z]+(ed|en)\b`)
var transitionPattern = buildWordPattern(feature.TransitionWords)
var digitPattern = regexp.MustCompile(`\d`)

func buildWordPattern(words []string) *regexp.Regexp {
	return regexp.MustCompile(`\b(` + strings.Join(words, "|") + `)\b`)
}

// SignalCount counts how many heuristics fire on one sentence.
func SignalCount(s textkit.Sentence, cfg Config) int {
	lower := strings.ToLower(s.Text)
	words := textkit.NormalizeWords(s.Text)
	longEnough := len(words) > cfg.MinWords

	count := 0
	if containsAny(lower, genericConclusions) {
		count++
	}
	if templateOpening.MatchString(lower) {
		count++
	}
	if transitionPattern.MatchString(lower) {
		count++
	}
	if hasRepeatedWord(words, cfg.RepeatWithin) {
		count++
	}
	if containsAny(lower, vagueQuantifiers) {
		count++
	}
	if longEnough && !hasPersonalPronoun(words) {
		count++
	}
	if passiveVoice.MatchString(lower) {
		count++
	}
	if longEnough && !digitPattern.MatchString(s.Text) && !hasInnerCapital(s.Text) {
		count++
	}
	return count
}

// Select orders candidate sentences by descending signal count, then
// ascending length, and accepts them greedily while cumulative
// accepted length stays within the coverage cap of docLength.
func Select(sentences []textkit.Sentence, docLength int, cfg Config) Selection {
	type candidate struct {
		index   int
		signals int
		length  int
	}
	candidates := []candidate{}
	for i, s := range sentences {
		n := SignalCount(s, cfg)
		if n >= cfg.MinSignals {
			candidates = append(candidates, candidate{index: i, signals: n, length: len(s.Text)})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].signals != candidates[j].signals {
			return candidates[i].signals > candidates[j].signals
		}
		return candidates[i].length < candidates[j].length
	})

	budget := cfg.CoverageCap * float64(docLength)
	sel := Selection{Indices: []int{}}
	for _, c := range candidates {
		if float64(sel.CharCount+c.length) > budget {
			continue
		}
		sel.Indices = append(sel.Indices, c.index)
		sel.CharCount += c.length
	}
	sort.Ints(sel.Indices)
	if docLength > 0 {
		sel.Percent = float64(sel.CharCount) / float64(docLength) * 100
	}
	return sel
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func hasRepeatedWord(words []string, min int) bool {
	for _, c := range textkit.Counts(words) {
		if c >= min {
			return true
		}
	}
	return false
}

func hasPersonalPronoun(words []string) bool {
	for _, w := range words {
		if _, ok := personalPronouns[w]; ok {
			return true
		}
	}
	return false
}

func hasInnerCapital(text string) bool {
	fields := strings.Fields(text)
	for i, f := range fields {
		if i == 0 {
			continue
		}
		r := []rune(f)
		if len(r) > 0 && unicode.IsUpper(r[0]) {
			return true
		}
	}
	return false
}
