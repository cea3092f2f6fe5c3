package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromText(t *testing.T) {
	c := FromText("The Tide, the tide; and the MOON.")
	if c.Size() != 4 {
		t.Fatalf("expected 4 distinct words, got %d", c.Size())
	}
	if _, ok := c.Words()["tide"]; !ok {
		t.Fatalf("expected normalized word set, got %v", c.Words())
	}
}

func TestNilCorpusIsSafe(t *testing.T) {
	var c *Corpus
	if c.Words() != nil {
		t.Fatalf("nil corpus should expose a nil word set")
	}
	if c.Size() != 0 {
		t.Fatalf("nil corpus should have size 0")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	if err := os.WriteFile(path, []byte("reference words here"), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load corpus: %v", err)
	}
	if c.Size() != 3 {
		t.Fatalf("expected 3 words, got %d", c.Size())
	}

	if _, err := Load(filepath.Join(dir, "missing.txt")); err == nil {
		t.Fatalf("expected error for missing corpus file")
	}
}
