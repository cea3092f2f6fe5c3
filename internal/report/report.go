// Package report renders a batch of results as the human-readable
// text format callers may snapshot. The layout is an output contract;
// nothing parses it back.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"textmark/internal/analyze"
)

const disclaimer = `DISCLAIMER: All scores are heuristic estimates derived from local
lexical statistics. They are self-consistent signals for review, not
ground truth about authorship or quality.`

// Batch holds everything the writer needs besides the results.
type Batch struct {
	GeneratedAt     time.Time
	SelectedSubject string
	ByteSizes       map[string]int
}

// Render produces the full textual report for a batch.
func Render(results []analyze.Result, b Batch) string {
	var sb strings.Builder

	sb.WriteString("TEXTMARK ANALYSIS REPORT\n")
	sb.WriteString("========================\n")
	fmt.Fprintf(&sb, "Generated: %s\n", b.GeneratedAt.Format(time.RFC1123))
	if b.SelectedSubject != "" {
		fmt.Fprintf(&sb, "Selected subject: %s\n", b.SelectedSubject)
	}
	fmt.Fprintf(&sb, "Detected subjects: %s\n", strings.Join(detectedSubjects(results), ", "))
	sb.WriteString("\n")

	sb.WriteString("Files:\n")
	totalWords, totalSentences := 0, 0
	for _, r := range results {
		line := fmt.Sprintf("  - %s", r.Name)
		if size, ok := b.ByteSizes[r.Name]; ok {
			line += fmt.Sprintf(" (%s)", humanize.Bytes(uint64(size)))
		}
		sb.WriteString(line + "\n")
		totalWords += r.WordCount
		totalSentences += r.SentenceCount
	}
	sb.WriteString("\n")

	avgLen := 0.0
	if totalSentences > 0 {
		avgLen = float64(totalWords) / float64(totalSentences)
	}
	sb.WriteString("Totals:\n")
	fmt.Fprintf(&sb, "  Words: %d\n", totalWords)
	fmt.Fprintf(&sb, "  Sentences: %d\n", totalSentences)
	fmt.Fprintf(&sb, "  Average sentence length: %.1f words\n", avgLen)
	sb.WriteString("\n")

	for _, r := range results {
		writeFileSection(&sb, r)
	}

	sb.WriteString(disclaimer)
	sb.WriteString("\n")
	return sb.String()
}

func writeFileSection(sb *strings.Builder, r analyze.Result) {
	fmt.Fprintf(sb, "--- %s ---\n", r.Name)
	fmt.Fprintf(sb, "Words: %d  Chars: %d  Sentences: %d  Avg length: %.1f\n",
		r.WordCount, r.CharCount, r.SentenceCount, r.AvgSentenceLength)
	fmt.Fprintf(sb, "AI likelihood: %d/100 (%s)\n", r.AILikelihood, r.AILabel)
	fmt.Fprintf(sb, "Content mark: %d/100\n", r.ContentMark)
	fmt.Fprintf(sb, "  structure=%d clarity=%d language=%d depth=%d originality=%d relevance=%d consistency=%d\n",
		r.MarkBreakdown.Structure, r.MarkBreakdown.Clarity, r.MarkBreakdown.Language,
		r.MarkBreakdown.Depth, r.MarkBreakdown.Originality, r.MarkBreakdown.Relevance,
		r.MarkBreakdown.Consistency)
	fmt.Fprintf(sb, "Subjects: %s\n", strings.Join(r.Subjects, ", "))
	if len(r.RepeatedWords) > 0 {
		pairs := make([]string, 0, len(r.RepeatedWords))
		for _, wc := range r.RepeatedWords {
			pairs = append(pairs, fmt.Sprintf("%s(%d)", wc.Word, wc.Count))
		}
		fmt.Fprintf(sb, "Repeated words: %s\n", strings.Join(pairs, " "))
	}
	if r.BestMatch.Name != "" {
		fmt.Fprintf(sb, "Best match: %s (%.1f%%)\n", r.BestMatch.Name, r.BestMatch.Percent)
	}
	fmt.Fprintf(sb, "Highlighted: %d sentence(s), %.1f%% of text\n",
		len(r.Highlight.Indices), r.Highlight.Percent)
	if r.CodeLineCount > 0 {
		fmt.Fprintf(sb, "Code lines: %d (%.1f%%)\n", r.CodeLineCount, r.CodePercent)
	}
	if r.PossibleScreenshot {
		sb.WriteString("Warning: large file with near-empty extracted text, possibly a screenshot\n")
	}
	sb.WriteString("\n")
}

func detectedSubjects(results []analyze.Result) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, r := range results {
		for _, s := range r.Subjects {
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				out = append(out, s)
			}
		}
	}
	sort.Strings(out)
	if len(out) == 0 {
		out = append(out, "General")
	}
	return out
}
