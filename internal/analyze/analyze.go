// Package analyze runs the full scoring pipeline: tokenize, fan out
// to the feature extractors, fan in through the score composers, and
// attach subjects, highlights and batch similarity to one Result per
// document.
package analyze

import (
	"crypto/sha256"
	"encoding/hex"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"textmark/internal/aiscore"
	"textmark/internal/corpus"
	"textmark/internal/feature"
	"textmark/internal/highlight"
	"textmark/internal/quality"
	"textmark/internal/similarity"
	"textmark/internal/subject"
	"textmark/internal/textkit"
)

// Document is an ingested text, immutable once created. ByteSize is
// the on-disk size of the original source, which may be far larger
// than the extracted text.
type Document struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	RawText  string `json:"-"`
	ByteSize int    `json:"byteSize"`
}

// Fingerprint is a stable content hash used as a cache key.
func (d Document) Fingerprint() string {
	sum := sha256.Sum256([]byte(d.RawText))
	return hex.EncodeToString(sum[:])
}

// Options carries the reference corpus and every tunable threshold.
type Options struct {
	Reference *corpus.Corpus
	Workers   int
	AI        aiscore.Config
	Quality   quality.Config
	Highlight highlight.Config
}

// DefaultOptions mirrors the shipped heuristic constants.
func DefaultOptions() Options {
	return Options{
		AI:        aiscore.DefaultConfig(),
		Quality:   quality.DefaultConfig(),
		Highlight: highlight.DefaultConfig(),
	}
}

// Result is the per-document outcome. It is derived entirely from the
// extracted features and never mutated after computation.
type Result struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	WordCount          int                 `json:"wordCount"`
	CharCount          int                 `json:"charCount"`
	SentenceCount      int                 `json:"sentenceCount"`
	AvgSentenceLength  float64             `json:"avgSentenceLength"`
	AILikelihood       int                 `json:"aiLikelihood"`
	AILabel            string              `json:"aiLabel"`
	ContentMark        int                 `json:"contentMark"`
	MarkBreakdown      quality.Breakdown   `json:"markBreakdown"`
	Subjects           []string            `json:"subjects"`
	RepeatedWords      []feature.WordCount `json:"repeatedWords"`
	SentenceScores     []int               `json:"sentenceScores"`
	BestMatch          similarity.Match    `json:"bestMatch"`
	Highlight          highlight.Selection `json:"highlight"`
	CodeLineCount      int                 `json:"codeLineCount"`
	CodePercent        float64             `json:"codePercentage"`
	PossibleScreenshot bool                `json:"possibleScreenshot"`
}

// topRepeatedWords limits the repeated-word list exposed to callers.
const topRepeatedWords = 8

// Analyze scores every document and then runs pairwise similarity
// across the batch. Results come back in input order. Documents are
// independent, so per-document scoring runs on a bounded worker pool;
// the all-pairs phase reads the precomputed word sets only.
func Analyze(docs []Document, opts Options) []Result {
	results := make([]Result, len(docs))
	words := make([][]string, len(docs))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(docs) {
		workers = len(docs)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				words[i] = textkit.NormalizeWords(docs[i].RawText)
				results[i] = analyzeOne(docs[i], words[i], opts)
			}
		}()
	}
	for i := range docs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if len(docs) > 1 {
		names := make([]string, len(docs))
		sets := make([]map[string]struct{}, len(docs))
		for i := range docs {
			names[i] = docs[i].Name
			sets[i] = similarity.WordSet(words[i])
		}
		for i := range results {
			results[i].BestMatch = similarity.BestMatch(i, names, words, sets)
		}
	}
	return results
}

// AnalyzeOne scores a single document with no batch similarity phase,
// the single-document server path.
func AnalyzeOne(doc Document, opts Options) Result {
	return analyzeOne(doc, textkit.NormalizeWords(doc.RawText), opts)
}

func analyzeOne(doc Document, words []string, opts Options) Result {
	id := doc.ID
	if id == "" {
		id = uuid.NewString()
	}
	byteSize := doc.ByteSize
	if byteSize == 0 {
		byteSize = len(doc.RawText)
	}

	sentences := textkit.SplitSentences(doc.RawText)
	lengths := textkit.WordsPerSentence(sentences)
	counted := 0
	totalWords := 0
	for _, l := range lengths {
		if l > 0 {
			counted++
			totalWords += l
		}
	}
	avgLen := 0.0
	if counted > 0 {
		avgLen = float64(totalWords) / float64(counted)
	}

	refWords := opts.Reference.Words()
	mark, breakdown := quality.Mark(doc.RawText, words, sentences, opts.Quality)
	score := aiscore.Score(doc.RawText, words, sentences, refWords, opts.AI)

	sentenceScores := make([]int, len(sentences))
	for i, s := range sentences {
		sentenceScores[i] = aiscore.ScoreSentence(s, refWords, opts.AI)
	}

	codeLines, codePct := feature.CodeStats(doc.RawText)

	return Result{
		ID:                 id,
		Name:               doc.Name,
		WordCount:          len(words),
		CharCount:          len(doc.RawText),
		SentenceCount:      counted,
		AvgSentenceLength:  avgLen,
		AILikelihood:       score,
		AILabel:            aiscore.Label(score, opts.AI),
		ContentMark:        mark,
		MarkBreakdown:      breakdown,
		Subjects:           subject.Classify(doc.RawText),
		RepeatedWords:      feature.RepeatedWords(words, opts.AI.RepeatMin, topRepeatedWords),
		SentenceScores:     sentenceScores,
		Highlight:          highlight.Select(sentences, len(doc.RawText), opts.Highlight),
		CodeLineCount:      codeLines,
		CodePercent:        codePct,
		PossibleScreenshot: feature.PossibleScreenshot(byteSize, doc.RawText),
	}
}
