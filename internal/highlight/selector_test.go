package highlight

import (
	"math"
	"strings"
	"testing"

	"textmark/internal/textkit"
)

// aiLike trips several heuristics at once: a template opening, a
// transition, vague quantifiers, no pronouns, passive voice, and no
// digits or proper nouns.
const aiLike = "Furthermore, numerous significant improvements were implemented across various areas overall."

func TestSignalCountOnAILikeSentence(t *testing.T) {
	sentences := textkit.SplitSentences(aiLike)
	if len(sentences) != 1 {
		t.Fatalf("expected one sentence, got %d", len(sentences))
	}
	n := SignalCount(sentences[0], DefaultConfig())
	if n < 3 {
		t.Fatalf("expected at least 3 signals, got %d", n)
	}
}

func TestSignalCountOnPersonalSentence(t *testing.T) {
	sentences := textkit.SplitSentences("I walked to the bakery on Main Street at 7 and bought my sister 2 croissants.")
	n := SignalCount(sentences[0], DefaultConfig())
	if n >= DefaultConfig().MinSignals {
		t.Fatalf("personal, concrete sentence should not be a candidate, got %d signals", n)
	}
}

func TestSelectCoverageCap(t *testing.T) {
	parts := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		parts = append(parts, aiLike)
	}
	text := strings.Join(parts, " ")
	sentences := textkit.SplitSentences(text)

	cfg := DefaultConfig()
	sel := Select(sentences, len(text), cfg)
	if len(sel.Indices) == 0 {
		t.Fatalf("expected some highlighted sentences")
	}
	cap30 := int(math.Ceil(cfg.CoverageCap * float64(len(text))))
	if sel.CharCount > cap30 {
		t.Fatalf("coverage cap violated: %d > %d", sel.CharCount, cap30)
	}
	if sel.Percent > cfg.CoverageCap*100+0.01 {
		t.Fatalf("percent exceeds cap: %.2f", sel.Percent)
	}
}

func TestSelectPrefersStrongerThenShorter(t *testing.T) {
	strong := aiLike
	weak := "He checked the 3 numbers against Marion's ledger and found nothing wrong."
	text := weak + " " + strong
	sentences := textkit.SplitSentences(text)

	sel := Select(sentences, len(text), DefaultConfig())
	for _, idx := range sel.Indices {
		if sentences[idx].Text != " "+strong && sentences[idx].Text != strong {
			t.Fatalf("only the AI-like sentence should be selected, got %q", sentences[idx].Text)
		}
	}
}

func TestSelectEmptyDocument(t *testing.T) {
	sel := Select(nil, 0, DefaultConfig())
	if len(sel.Indices) != 0 || sel.CharCount != 0 || sel.Percent != 0 {
		t.Fatalf("expected empty selection, got %+v", sel)
	}
}

func TestSelectIndicesSortedAndUnique(t *testing.T) {
	parts := []string{aiLike, "I made soup at 6.", aiLike, "We left for Dover.", aiLike}
	text := strings.Join(parts, " ")
	sentences := textkit.SplitSentences(text)
	sel := Select(sentences, len(text), DefaultConfig())
	for i := 1; i < len(sel.Indices); i++ {
		if sel.Indices[i] <= sel.Indices[i-1] {
			t.Fatalf("indices must be strictly increasing: %v", sel.Indices)
		}
	}
}
