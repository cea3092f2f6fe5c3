package similarity

import (
	"testing"

	"textmark/internal/textkit"
)

func TestOverlapIdenticalDocuments(t *testing.T) {
	words := textkit.NormalizeWords("the tide rose over the flats before dawn")
	if got := Overlap(words, WordSet(words)); got != 100 {
		t.Fatalf("identical documents must overlap 100%%, got %.1f", got)
	}
}

func TestOverlapDisjointVocabularies(t *testing.T) {
	a := textkit.NormalizeWords("alpha beta gamma")
	b := WordSet(textkit.NormalizeWords("delta epsilon zeta"))
	if got := Overlap(a, b); got != 0 {
		t.Fatalf("disjoint vocabularies must overlap 0%%, got %.1f", got)
	}
}

func TestOverlapEmptyInputs(t *testing.T) {
	if got := Overlap(nil, WordSet([]string{"a"})); got != 0 {
		t.Fatalf("empty left side should be 0, got %.1f", got)
	}
	if got := Overlap([]string{"a"}, nil); got != 0 {
		t.Fatalf("empty right side should be 0, got %.1f", got)
	}
}

func TestOverlapIsAsymmetric(t *testing.T) {
	a := textkit.NormalizeWords("one two")
	b := textkit.NormalizeWords("one two three four")
	ab := Overlap(a, WordSet(b))
	ba := Overlap(b, WordSet(a))
	if ab != 100 {
		t.Fatalf("subset should fully overlap its superset, got %.1f", ab)
	}
	if ba != 50 {
		t.Fatalf("superset against subset should be 50%%, got %.1f", ba)
	}
}

func TestBestMatchAcrossBatch(t *testing.T) {
	texts := []string{
		"the storm closed the harbor for two days",
		"the storm closed the harbor for two days",
		"quarterly figures improved across all divisions",
	}
	names := []string{"a.txt", "b.txt", "c.txt"}
	words := make([][]string, len(texts))
	sets := make([]map[string]struct{}, len(texts))
	for i, txt := range texts {
		words[i] = textkit.NormalizeWords(txt)
		sets[i] = WordSet(words[i])
	}

	best := BestMatch(0, names, words, sets)
	if best.Name != "b.txt" || best.Percent != 100 {
		t.Fatalf("expected b.txt at 100%%, got %+v", best)
	}
	best = BestMatch(1, names, words, sets)
	if best.Name != "a.txt" || best.Percent != 100 {
		t.Fatalf("expected a.txt at 100%%, got %+v", best)
	}
}

func TestBestMatchSingleDocument(t *testing.T) {
	words := [][]string{textkit.NormalizeWords("lonely document")}
	sets := []map[string]struct{}{WordSet(words[0])}
	best := BestMatch(0, []string{"only.txt"}, words, sets)
	if best.Name != "" || best.Percent != 0 {
		t.Fatalf("expected zero match for a batch of one, got %+v", best)
	}
}
