package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"textmark/internal/analyze"
	"textmark/internal/ingest"
	"textmark/internal/report"
	"textmark/internal/store"
	"textmark/internal/workspace"
)

var (
	analyzeJSON    bool
	analyzeCache   bool
	analyzeOut     string
	analyzeSubject string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Analyze one or more document files",
	Long: `Runs the full scoring pipeline over each file and prints a textual
report (or JSON with --json). With more than one file, pairwise
similarity reports each document's best match in the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output results as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeCache, "cache", false, "memoize results in the workspace cache db")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "also write the report to a file (relative paths land in the workspace reports dir)")
	analyzeCmd.Flags().StringVar(&analyzeSubject, "subject", "", "subject hint recorded in the report header")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, opts, base, err := loadEnvironment()
	if err != nil {
		return err
	}
	docs, err := ingest.ParseFiles(args)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	var cache *store.Store
	if analyzeCache {
		dbPath := cfg.CacheDB
		if dbPath == "" {
			dbPath = workspace.CacheDBPath(base)
		}
		cache, err = store.Open(dbPath)
		if err != nil {
			return err
		}
		defer cache.Close()
	}

	started := time.Now()
	results := runBatch(docs, opts, cache)
	log.Debug().Int("documents", len(results)).Dur("elapsed", time.Since(started)).Msg("batch analyzed")

	if analyzeJSON {
		payload, marshalErr := json.MarshalIndent(results, "", "  ")
		if marshalErr != nil {
			return fmt.Errorf("marshal results: %w", marshalErr)
		}
		cmd.Println(string(payload))
		return writeReportFile(results, docs, base)
	}

	text := renderReport(results, docs)
	cmd.Print(text)
	return writeReportFile(results, docs, base)
}

// runBatch analyzes the batch, serving single documents from the
// cache when possible. Batches with more than one document always
// recompute, because best-match depends on the whole batch.
func runBatch(docs []analyze.Document, opts analyze.Options, cache *store.Store) []analyze.Result {
	if cache != nil && len(docs) == 1 {
		fingerprint := docs[0].Fingerprint()
		if cached, ok, err := cache.Get(fingerprint); err == nil && ok {
			log.Debug().Str("name", docs[0].Name).Msg("cache hit")
			return []analyze.Result{cached}
		}
		result := analyze.AnalyzeOne(docs[0], opts)
		if err := cache.Put(fingerprint, result); err != nil {
			log.Warn().Err(err).Msg("cache write failed")
		}
		return []analyze.Result{result}
	}
	return analyze.Analyze(docs, opts)
}

func renderReport(results []analyze.Result, docs []analyze.Document) string {
	sizes := make(map[string]int, len(docs))
	for _, d := range docs {
		sizes[d.Name] = d.ByteSize
	}
	return report.Render(results, report.Batch{
		GeneratedAt:     time.Now(),
		SelectedSubject: analyzeSubject,
		ByteSizes:       sizes,
	})
}

func writeReportFile(results []analyze.Result, docs []analyze.Document, base string) error {
	if analyzeOut == "" {
		return nil
	}
	path := analyzeOut
	if !filepath.IsAbs(path) {
		path = filepath.Join(workspace.ReportsDir(base), path)
	}
	if err := os.WriteFile(path, []byte(renderReport(results, docs)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Info().Str("path", path).Msg("report written")
	return nil
}
