// Package corpus loads the optional reference text used as an extra
// similarity signal in single-document mode. The corpus is read once
// at startup and never mutated, so concurrent readers need no
// synchronization.
package corpus

import (
	"fmt"
	"os"

	"textmark/internal/textkit"
)

// Corpus is an immutable word set built from a reference text blob.
type Corpus struct {
	words map[string]struct{}
}

// Load reads a reference corpus file. A missing path is not an
// error to callers that treat the corpus as optional; they should
// check os.IsNotExist and carry on without one.
func Load(path string) (*Corpus, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return FromText(string(raw)), nil
}

// FromText builds a corpus from an in-memory blob.
func FromText(text string) *Corpus {
	return &Corpus{words: wordSet(textkit.NormalizeWords(text))}
}

// Words exposes the word set, nil when no corpus is configured.
func (c *Corpus) Words() map[string]struct{} {
	if c == nil {
		return nil
	}
	return c.words
}

// Size returns the number of distinct words.
func (c *Corpus) Size() int {
	if c == nil {
		return 0
	}
	return len(c.words)
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
