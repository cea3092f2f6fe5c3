// Package aiscore composes extractor signals into a 0-100 estimate
// that a span of text was machine-generated. One scorer serves both
// document-level and per-sentence callers: a sentence is scored as a
// one-sentence document, so the two levels cannot drift apart.
package aiscore

import (
	"math"

	"textmark/internal/feature"
	"textmark/internal/textkit"
)

// Labels returned by Label.
const (
	LabelHuman = "Human-written"
	LabelMixed = "Mixed (AI + Human)"
	LabelAI    = "Likely AI-generated"
)

// Config holds every threshold and point value of the composer. The
// constants are empirically chosen, so they live here as tunable data
// rather than inline literals.
type Config struct {
	MeanLenLow       float64 `yaml:"mean_len_low" json:"meanLenLow"`
	MeanLenHigh      float64 `yaml:"mean_len_high" json:"meanLenHigh"`
	StdDevMax        float64 `yaml:"std_dev_max" json:"stdDevMax"`
	ConsistencyPts   int     `yaml:"consistency_pts" json:"consistencyPts"`
	RangeMax         int     `yaml:"range_max" json:"rangeMax"`
	RangePts         int     `yaml:"range_pts" json:"rangePts"`
	VocabularyMax    float64 `yaml:"vocabulary_max" json:"vocabularyMax"`
	VocabularyPts    int     `yaml:"vocabulary_pts" json:"vocabularyPts"`
	StarterMin       float64 `yaml:"starter_min" json:"starterMin"`
	StarterPts       int     `yaml:"starter_pts" json:"starterPts"`
	PhrasePts        int     `yaml:"phrase_pts" json:"phrasePts"`
	PhraseCap        int     `yaml:"phrase_cap" json:"phraseCap"`
	CleanPunctPts    int     `yaml:"clean_punct_pts" json:"cleanPunctPts"`
	RepeatMin        int     `yaml:"repeat_min" json:"repeatMin"`
	RepeatShare      float64 `yaml:"repeat_share" json:"repeatShare"`
	RepeatPts        int     `yaml:"repeat_pts" json:"repeatPts"`
	ReferenceGate    float64 `yaml:"reference_gate" json:"referenceGate"`
	ReferenceWeight  float64 `yaml:"reference_weight" json:"referenceWeight"`
	LongDocSentences int     `yaml:"long_doc_sentences" json:"longDocSentences"`
	LongDocAvgLen    float64 `yaml:"long_doc_avg_len" json:"longDocAvgLen"`
	LongDocPts       int     `yaml:"long_doc_pts" json:"longDocPts"`
	MixedThreshold   int     `yaml:"mixed_threshold" json:"mixedThreshold"`
	AIThreshold      int     `yaml:"ai_threshold" json:"aiThreshold"`
}

func DefaultConfig() Config {
	return Config{
		MeanLenLow:       12,
		MeanLenHigh:      20,
		StdDevMax:        6,
		ConsistencyPts:   20,
		RangeMax:         8,
		RangePts:         15,
		VocabularyMax:    0.6,
		VocabularyPts:    15,
		StarterMin:       0.5,
		StarterPts:       10,
		PhrasePts:        6,
		PhraseCap:        20,
		CleanPunctPts:    10,
		RepeatMin:        4,
		RepeatShare:      0.05,
		RepeatPts:        10,
		ReferenceGate:    0.05,
		ReferenceWeight:  30,
		LongDocSentences: 8,
		LongDocAvgLen:    14,
		LongDocPts:       5,
		MixedThreshold:   35,
		AIThreshold:      70,
	}
}

// Score computes the additive AI-likelihood for a span. refWords may
// be nil when no reference corpus is configured; the overlap feature
// is then simply omitted. Empty spans score zero.
func Score(text string, words []string, sentences []textkit.Sentence, refWords map[string]struct{}, cfg Config) int {
	if len(words) == 0 {
		return 0
	}

	lengths := textkit.WordsPerSentence(sentences)
	mean, sd := feature.SentenceLengthStats(lengths)

	score := 0.0
	if mean >= cfg.MeanLenLow && mean <= cfg.MeanLenHigh && sd < cfg.StdDevMax {
		score += float64(cfg.ConsistencyPts)
	}
	if feature.LengthRange(lengths) < cfg.RangeMax {
		score += float64(cfg.RangePts)
	}
	if feature.VocabularyRatio(words) < cfg.VocabularyMax {
		score += float64(cfg.VocabularyPts)
	}
	if feature.StarterDiversity(sentences) < cfg.StarterMin {
		score += float64(cfg.StarterPts)
	}

	phraseHits := feature.PhraseHits(text, feature.FormalPhrases)
	score += math.Min(float64(phraseHits*cfg.PhrasePts), float64(cfg.PhraseCap))

	if feature.PunctuationIrregularities(text) == 0 {
		score += float64(cfg.CleanPunctPts)
	}
	if repeatedFlag(words, cfg) {
		score += float64(cfg.RepeatPts)
	}
	if refWords != nil {
		ratio := referenceOverlap(words, refWords)
		if ratio > cfg.ReferenceGate {
			score += ratio * cfg.ReferenceWeight
		}
	}
	if len(sentences) > cfg.LongDocSentences && mean > cfg.LongDocAvgLen {
		score += float64(cfg.LongDocPts)
	}

	return clampInt(int(math.Round(score)), 0, 100)
}

// ScoreSentence treats one sentence as a one-sentence document.
func ScoreSentence(s textkit.Sentence, refWords map[string]struct{}, cfg Config) int {
	words := textkit.NormalizeWords(s.Text)
	return Score(s.Text, words, []textkit.Sentence{s}, refWords, cfg)
}

// Label maps a score to its band.
func Label(score int, cfg Config) string {
	switch {
	case score >= cfg.AIThreshold:
		return LabelAI
	case score >= cfg.MixedThreshold:
		return LabelMixed
	default:
		return LabelHuman
	}
}

func repeatedFlag(words []string, cfg Config) bool {
	repeated := feature.RepeatedWordCount(words, cfg.RepeatMin)
	return repeated > 0 && float64(repeated) > float64(len(words))*cfg.RepeatShare
}

func referenceOverlap(words []string, refWords map[string]struct{}) float64 {
	if len(words) == 0 || len(refWords) == 0 {
		return 0
	}
	common := 0
	for _, w := range words {
		if _, ok := refWords[w]; ok {
			common++
		}
	}
	return float64(common) / float64(len(words))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
