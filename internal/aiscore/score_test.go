package aiscore

import (
	"strings"
	"testing"

	"textmark/internal/textkit"
)

func scoreText(t *testing.T, text string, refWords map[string]struct{}) int {
	t.Helper()
	words := textkit.NormalizeWords(text)
	sentences := textkit.SplitSentences(text)
	return Score(text, words, sentences, refWords, DefaultConfig())
}

func TestScoreRepeatedSentenceScenario(t *testing.T) {
	text := "The cat sat on the mat. The cat sat on the mat. The cat sat on the mat."
	words := textkit.NormalizeWords(text)
	if len(words) != 18 {
		t.Fatalf("expected 18 words, got %d", len(words))
	}
	sentences := textkit.SplitSentences(text)
	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d", len(sentences))
	}

	// Range 0 (+15), vocabulary 6/18 (+15), one starter (+10), clean
	// punctuation (+10), "the" repeated past the share threshold (+10).
	// Mean length 6 misses the consistency band, no formal phrases.
	score := Score(text, words, sentences, nil, DefaultConfig())
	if score != 60 {
		t.Fatalf("expected exact score 60, got %d", score)
	}
	if Label(score, DefaultConfig()) != LabelMixed {
		t.Fatalf("expected %q, got %q", LabelMixed, Label(score, DefaultConfig()))
	}
}

func TestScoreEmptyInput(t *testing.T) {
	if got := scoreText(t, "", nil); got != 0 {
		t.Fatalf("expected 0 for empty input, got %d", got)
	}
	if got := scoreText(t, "   \n\t  ", nil); got != 0 {
		t.Fatalf("expected 0 for whitespace input, got %d", got)
	}
}

func TestScoreBounds(t *testing.T) {
	inputs := []string{
		"x",
		strings.Repeat("word ", 5000),
		strings.Repeat("In conclusion, furthermore, moreover, it is important to note that this demonstrates the point. ", 40),
		"!!!??? ,,, ... ???",
	}
	for _, in := range inputs {
		score := scoreText(t, in, nil)
		if score < 0 || score > 100 {
			t.Fatalf("score out of bounds for %q: %d", in[:minInt(len(in), 30)], score)
		}
	}
}

func TestFormalPhraseCap(t *testing.T) {
	// Phrase hits alone contribute at most PhraseCap points.
	sparse := "He woke early, lit the stove, and argued with his sister about maps? It rained later!  Nothing else happened that day,, truly."
	loaded := sparse + " In conclusion, furthermore, moreover, in summary, in addition, overall, as a result, it is important to note everything."
	base := scoreText(t, sparse, nil)
	withPhrases := scoreText(t, loaded, nil)
	if withPhrases-base > 40 {
		t.Fatalf("phrase contribution looks uncapped: base=%d loaded=%d", base, withPhrases)
	}
}

func TestReferenceOverlapContribution(t *testing.T) {
	text := "The river crossing took three days. The river was swollen with meltwater? Supplies ran low near the crossing!"
	ref := map[string]struct{}{}
	for _, w := range textkit.NormalizeWords(text) {
		ref[w] = struct{}{}
	}
	without := scoreText(t, text, nil)
	with := scoreText(t, text, ref)
	if with <= without {
		t.Fatalf("full reference overlap should raise the score: %d vs %d", without, with)
	}
	if with-without > 30 {
		t.Fatalf("reference contribution exceeds its weight: %d", with-without)
	}
}

func TestReferenceOverlapBelowGateIgnored(t *testing.T) {
	text := "Completely unrelated vocabulary everywhere, nothing shared at all,, honestly!"
	ref := map[string]struct{}{"xylophone": {}, "quasar": {}}
	if got, want := scoreText(t, text, ref), scoreText(t, text, nil); got != want {
		t.Fatalf("sub-gate overlap should not change the score: %d vs %d", got, want)
	}
}

func TestScoreSentenceMatchesSingleSentenceDocument(t *testing.T) {
	text := "Furthermore, the process demonstrates a significant and notable improvement overall."
	sentences := textkit.SplitSentences(text)
	if len(sentences) != 1 {
		t.Fatalf("expected one sentence, got %d", len(sentences))
	}
	fromSentence := ScoreSentence(sentences[0], nil, DefaultConfig())
	fromDocument := Score(sentences[0].Text, textkit.NormalizeWords(sentences[0].Text), sentences, nil, DefaultConfig())
	if fromSentence != fromDocument {
		t.Fatalf("sentence scorer diverged from document scorer: %d vs %d", fromSentence, fromDocument)
	}
}

func TestLabelBands(t *testing.T) {
	cfg := DefaultConfig()
	cases := map[int]string{
		0: LabelHuman, 34: LabelHuman,
		35: LabelMixed, 69: LabelMixed,
		70: LabelAI, 100: LabelAI,
	}
	for score, want := range cases {
		if got := Label(score, cfg); got != want {
			t.Fatalf("label(%d): expected %q, got %q", score, want, got)
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
