// Package cli wires the textmark commands. All scoring logic lives in
// the internal analysis packages; commands only handle intake, output
// and process lifecycle.
package cli

import (
	"fmt"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"textmark/internal/analyze"
	"textmark/internal/config"
	"textmark/internal/corpus"
	"textmark/internal/workspace"
)

var (
	flagConfig  string
	flagCorpus  string
	flagWorkers int
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "textmark",
	Short: "Heuristic AI-likelihood and quality scoring for documents",
	Long: `textmark scores plain-text documents with local lexical heuristics:
an AI-likelihood estimate, a content-quality mark, subject labels,
pairwise similarity across a batch, and AI-like sentence highlights.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.DefaultLogger.Level = log.DebugLevel
		} else {
			log.DefaultLogger.Level = log.InfoLevel
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config.yaml (default: workspace config)")
	rootCmd.PersistentFlags().StringVar(&flagCorpus, "corpus", "", "path to a reference corpus text file")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "batch worker count (default: NumCPU)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadEnvironment resolves workspace, config and optional corpus into
// ready-to-use analysis options.
func loadEnvironment() (*config.Config, analyze.Options, string, error) {
	base, err := workspace.EnsureDefault()
	if err != nil {
		return nil, analyze.Options{}, "", err
	}

	cfgPath := flagConfig
	if cfgPath == "" {
		cfgPath = workspace.ConfigPath(base)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, analyze.Options{}, "", err
	}
	if flagWorkers > 0 {
		cfg.Workers = flagWorkers
	}

	opts := analyze.Options{
		Workers:   cfg.Workers,
		AI:        cfg.AI,
		Quality:   cfg.Quality,
		Highlight: cfg.Highlight,
	}

	corpusPath := flagCorpus
	if corpusPath == "" {
		corpusPath = cfg.ReferenceCorpus
	}
	if corpusPath != "" {
		ref, corpusErr := corpus.Load(corpusPath)
		if corpusErr != nil {
			return nil, analyze.Options{}, "", fmt.Errorf("load reference corpus: %w", corpusErr)
		}
		opts.Reference = ref
		log.Debug().Str("path", corpusPath).Int("words", ref.Size()).Msg("reference corpus loaded")
	}

	return cfg, opts, base, nil
}
