package report

import (
	"strings"
	"testing"
	"time"

	"textmark/internal/analyze"
	"textmark/internal/highlight"
	"textmark/internal/quality"
	"textmark/internal/similarity"
)

func sampleResults() []analyze.Result {
	return []analyze.Result{
		{
			Name:              "essay.txt",
			WordCount:         120,
			CharCount:         700,
			SentenceCount:     8,
			AvgSentenceLength: 15.0,
			AILikelihood:      42,
			AILabel:           "Mixed (AI + Human)",
			ContentMark:       61,
			MarkBreakdown:     quality.Breakdown{Structure: 60, Clarity: 70, Language: 55, Depth: 40, Originality: 80, Relevance: 65, Consistency: 75},
			Subjects:          []string{"Literature", "History"},
			BestMatch:         similarity.Match{Name: "notes.txt", Percent: 37.5},
			Highlight:         highlight.Selection{Indices: []int{1, 4}, Percent: 21.3},
		},
		{
			Name:          "notes.txt",
			WordCount:     40,
			SentenceCount: 4,
			Subjects:      []string{"History"},
			AILabel:       "Human-written",
			CodeLineCount: 3,
			CodePercent:   12.5,
		},
	}
}

func TestRenderHeaderAndTotals(t *testing.T) {
	b := Batch{
		GeneratedAt:     time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		SelectedSubject: "History",
		ByteSizes:       map[string]int{"essay.txt": 2048},
	}
	out := Render(sampleResults(), b)

	for _, want := range []string{
		"TEXTMARK ANALYSIS REPORT",
		"Generated: Sat, 14 Mar 2026 09:30:00 UTC",
		"Selected subject: History",
		"Detected subjects: History, Literature",
		"essay.txt (2.0 kB)",
		"Words: 160",
		"Sentences: 12",
		"Average sentence length: 13.3 words",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q\n%s", want, out)
		}
	}
}

func TestRenderFileSections(t *testing.T) {
	out := Render(sampleResults(), Batch{GeneratedAt: time.Now()})

	for _, want := range []string{
		"--- essay.txt ---",
		"AI likelihood: 42/100 (Mixed (AI + Human))",
		"Content mark: 61/100",
		"structure=60 clarity=70 language=55 depth=40 originality=80 relevance=65 consistency=75",
		"Subjects: Literature, History",
		"Best match: notes.txt (37.5%)",
		"Highlighted: 2 sentence(s), 21.3% of text",
		"--- notes.txt ---",
		"Code lines: 3 (12.5%)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q\n%s", want, out)
		}
	}
}

func TestRenderEndsWithDisclaimer(t *testing.T) {
	out := Render(nil, Batch{GeneratedAt: time.Now()})
	if !strings.HasSuffix(out, disclaimer+"\n") {
		t.Fatalf("report does not end with disclaimer:\n%s", out)
	}
	if !strings.Contains(out, "Detected subjects: General") {
		t.Fatal("empty batch should fall back to General")
	}
}

func TestRenderScreenshotWarning(t *testing.T) {
	r := analyze.Result{Name: "scan.pdf", PossibleScreenshot: true}
	out := Render([]analyze.Result{r}, Batch{GeneratedAt: time.Now()})
	if !strings.Contains(out, "possibly a screenshot") {
		t.Fatal("missing screenshot warning")
	}
}
