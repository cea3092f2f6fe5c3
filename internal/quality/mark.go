// Package quality composes a 0-100 content mark from seven weighted
// sub-scores. Every breakpoint is a threshold table in Config so the
// heuristics can be tuned without touching the algorithm shape.
package quality

import (
	"math"

	"textmark/internal/feature"
	"textmark/internal/textkit"
)

// Tier maps a word count ceiling to the points awarded below it.
type Tier struct {
	Below  int `yaml:"below" json:"below"`
	Points int `yaml:"points" json:"points"`
}

// Weights of the seven sub-scores. They sum to 1.
type Weights struct {
	Structure   float64 `yaml:"structure" json:"structure"`
	Clarity     float64 `yaml:"clarity" json:"clarity"`
	Language    float64 `yaml:"language" json:"language"`
	Depth       float64 `yaml:"depth" json:"depth"`
	Originality float64 `yaml:"originality" json:"originality"`
	Relevance   float64 `yaml:"relevance" json:"relevance"`
	Consistency float64 `yaml:"consistency" json:"consistency"`
}

type Config struct {
	Weights       Weights `yaml:"weights" json:"weights"`
	WordTiers     []Tier  `yaml:"word_tiers" json:"wordTiers"`
	TierCeiling   int     `yaml:"tier_ceiling" json:"tierCeiling"`
	VocabBandLow  float64 `yaml:"vocab_band_low" json:"vocabBandLow"`
	VocabBandHigh float64 `yaml:"vocab_band_high" json:"vocabBandHigh"`
	ParaBandLow   float64 `yaml:"para_band_low" json:"paraBandLow"`
	ParaBandHigh  float64 `yaml:"para_band_high" json:"paraBandHigh"`
	RepeatMin     int     `yaml:"repeat_min" json:"repeatMin"`
}

func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Structure:   0.20,
			Clarity:     0.20,
			Language:    0.15,
			Depth:       0.15,
			Originality: 0.10,
			Relevance:   0.10,
			Consistency: 0.10,
		},
		WordTiers: []Tier{
			{Below: 50, Points: 20},
			{Below: 150, Points: 40},
			{Below: 300, Points: 60},
			{Below: 1000, Points: 80},
		},
		TierCeiling:   95,
		VocabBandLow:  0.35,
		VocabBandHigh: 0.75,
		ParaBandLow:   2,
		ParaBandHigh:  6,
		RepeatMin:     4,
	}
}

// Breakdown exposes the clamped sub-scores behind a mark.
type Breakdown struct {
	Structure   int `json:"structure"`
	Clarity     int `json:"clarity"`
	Language    int `json:"language"`
	Depth       int `json:"depth"`
	Originality int `json:"originality"`
	Relevance   int `json:"relevance"`
	Consistency int `json:"consistency"`
}

// Mark scores a document. Empty input scores zero across the board.
func Mark(text string, words []string, sentences []textkit.Sentence, cfg Config) (int, Breakdown) {
	if len(words) == 0 {
		return 0, Breakdown{}
	}

	lengths := textkit.WordsPerSentence(sentences)
	mean, sd := feature.SentenceLengthStats(lengths)
	sentenceCount := countNonEmpty(lengths)

	b := Breakdown{
		Structure:   clamp100(structureScore(text, sd, cfg)),
		Clarity:     clamp100(clarityScore(text, mean, sentenceCount)),
		Language:    clamp100(languageScore(text, sentenceCount)),
		Depth:       clamp100(depthScore(text, words, sentences, cfg)),
		Originality: clamp100(originalityScore(words, cfg)),
		Relevance:   clamp100(relevanceScore(text, sentences, sentenceCount)),
		Consistency: clamp100(consistencyScore(sd, sentences, cfg)),
	}

	w := cfg.Weights
	total := float64(b.Structure)*w.Structure +
		float64(b.Clarity)*w.Clarity +
		float64(b.Language)*w.Language +
		float64(b.Depth)*w.Depth +
		float64(b.Originality)*w.Originality +
		float64(b.Relevance)*w.Relevance +
		float64(b.Consistency)*w.Consistency

	return clamp100(int(math.Round(total))), b
}

// structureScore blends paragraph organization with sentence-length
// variation. Average sentences per paragraph is best inside the
// configured band.
func structureScore(text string, sd float64, cfg Config) int {
	avg := feature.AverageSentencesPerParagraph(text)
	var para int
	switch {
	case avg == 0:
		para = 20
	case avg >= cfg.ParaBandLow && avg <= cfg.ParaBandHigh:
		para = 90
	case avg < cfg.ParaBandLow:
		para = 60
	default:
		para = 65
	}

	var variation int
	switch {
	case sd < 3:
		variation = 55
	case sd <= 9:
		variation = 85
	default:
		variation = 65
	}
	return int(math.Round(0.6*float64(para) + 0.4*float64(variation)))
}

// clarityScore blends average sentence length with transition-word
// density. Transition scaling has diminishing returns so a handful of
// markers helps but stacking them does not.
func clarityScore(text string, mean float64, sentenceCount int) int {
	var lenScore int
	switch {
	case mean == 0:
		lenScore = 20
	case mean < 8:
		lenScore = 55
	case mean < 12:
		lenScore = 70
	case mean <= 22:
		lenScore = 90
	case mean <= 28:
		lenScore = 65
	default:
		lenScore = 45
	}

	hits := feature.PhraseHits(text, feature.TransitionWords)
	transition := int(math.Round(100 * float64(hits) / (float64(hits) + 3)))
	if sentenceCount > 0 && hits > sentenceCount {
		// More markers than sentences reads as padding, not clarity.
		transition = 40
	}
	return int(math.Round(0.6*float64(lenScore) + 0.4*float64(transition)))
}

// languageScore rewards clean punctuation and moderate formal
// phrasing relative to sentence count.
func languageScore(text string, sentenceCount int) int {
	irregular := feature.PunctuationIrregularities(text)
	punct := 90 - irregular*8
	if punct < 30 {
		punct = 30
	}

	formal := feature.PhraseHits(text, feature.FormalPhrases)
	var formalScore int
	switch {
	case formal == 0:
		formalScore = 55
	case sentenceCount > 0 && float64(formal)/float64(sentenceCount) <= 0.5:
		formalScore = 85
	default:
		formalScore = 60
	}
	return int(math.Round(0.5*float64(punct) + 0.5*float64(formalScore)))
}

// depthScore blends the word-count tier with specificity markers
// (digit runs and proper nouns).
func depthScore(text string, words []string, sentences []textkit.Sentence, cfg Config) int {
	tier := cfg.TierCeiling
	for _, t := range cfg.WordTiers {
		if len(words) < t.Below {
			tier = t.Points
			break
		}
	}

	specific := float64(textkit.DigitRuns(text)) + feature.ProperNounDensity(sentences)*float64(len(sentences))
	specificity := int(math.Min(100, 40+specific*5))
	return int(math.Round(0.7*float64(tier) + 0.3*float64(specificity)))
}

// originalityScore rewards a mid-band vocabulary ratio and penalizes
// heavy word repetition.
func originalityScore(words []string, cfg Config) int {
	ratio := feature.VocabularyRatio(words)
	var band int
	switch {
	case ratio >= cfg.VocabBandLow && ratio <= cfg.VocabBandHigh:
		band = 90
	case ratio < cfg.VocabBandLow:
		band = 50
	default:
		band = 70
	}

	repeated := feature.RepeatedWordCount(words, cfg.RepeatMin)
	repRate := float64(repeated) / float64(len(words))
	penalty := int(math.Min(40, repRate*400))
	return band - penalty
}

// relevanceScore blends proper-noun, number and question density as a
// proxy for engagement with a concrete topic.
func relevanceScore(text string, sentences []textkit.Sentence, sentenceCount int) int {
	properNoun := feature.ProperNounDensity(sentences)
	nounScore := int(math.Min(100, 45+properNoun*25))

	digits := textkit.DigitRuns(text)
	numberScore := int(math.Min(100, 50+float64(digits)*8))

	questions := 0
	for _, s := range sentences {
		if len(s.Text) > 0 && s.Text[len(s.Text)-1] == '?' {
			questions++
		}
	}
	questionScore := 60
	if sentenceCount > 0 && questions > 0 {
		questionScore = 80
	}
	return int(math.Round(0.5*float64(nounScore) + 0.3*float64(numberScore) + 0.2*float64(questionScore)))
}

// consistencyScore rewards steady but not mechanical writing: bounded
// length deviation together with varied sentence openings.
func consistencyScore(sd float64, sentences []textkit.Sentence, cfg Config) int {
	var steadiness int
	switch {
	case sd < 6:
		steadiness = 85
	case sd <= 12:
		steadiness = 70
	default:
		steadiness = 50
	}

	starter := feature.StarterDiversity(sentences)
	var openings int
	switch {
	case starter >= 0.6:
		openings = 90
	case starter >= 0.4:
		openings = 70
	default:
		openings = 45
	}
	return int(math.Round(0.5*float64(steadiness) + 0.5*float64(openings)))
}

func countNonEmpty(lengths []int) int {
	n := 0
	for _, l := range lengths {
		if l > 0 {
			n++
		}
	}
	return n
}

func clamp100(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
