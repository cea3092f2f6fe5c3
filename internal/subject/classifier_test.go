package subject

import (
	"strings"
	"testing"
)

func TestClassifySQLText(t *testing.T) {
	subjects := Classify("SELECT * FROM users WHERE id=1")
	found := false
	for _, s := range subjects {
		if s == "Databases" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Databases in subjects, got %v", subjects)
	}
}

func TestClassifyNoMatchFallsBackToGeneral(t *testing.T) {
	subjects := Classify("zzz qqq xxx unrelated nonsense")
	if len(subjects) != 1 || subjects[0] != General {
		t.Fatalf("expected [General], got %v", subjects)
	}
	if got := Classify(""); len(got) != 1 || got[0] != General {
		t.Fatalf("expected [General] for empty text, got %v", got)
	}
}

func TestClassifyOrdersByHitCountAndCaps(t *testing.T) {
	text := strings.Join([]string{
		strings.Repeat("the equation and the theorem and the matrix ", 5),
		"a molecule reacted with an acid",
		"the empire fell in that century",
		"a cell held dna",
	}, ". ")
	subjects := Classify(text)
	if len(subjects) != MaxSubjects {
		t.Fatalf("expected %d subjects, got %d: %v", MaxSubjects, len(subjects), subjects)
	}
	if subjects[0] != "Mathematics" {
		t.Fatalf("expected Mathematics to rank first, got %v", subjects)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	a := Classify("PHOTOSYNTHESIS in every CELL")
	b := Classify("photosynthesis in every cell")
	if len(a) != len(b) || a[0] != b[0] {
		t.Fatalf("case should not matter: %v vs %v", a, b)
	}
}

func TestCompileTableSkipsMalformedPatterns(t *testing.T) {
	table := map[string][]string{
		"Broken": {`valid`, `(unclosed`},
		"Dead":   {`[bad`},
	}
	compiled := compileTable(table)
	if len(compiled) != 1 {
		t.Fatalf("expected only the subject with a valid pattern, got %d", len(compiled))
	}
	if compiled[0].label != "Broken" || len(compiled[0].patterns) != 1 {
		t.Fatalf("malformed pattern should be skipped, not abort: %+v", compiled[0])
	}
}
