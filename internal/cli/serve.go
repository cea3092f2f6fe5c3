package cli

import (
	"github.com/spf13/cobra"

	"textmark/internal/server"
	"textmark/internal/store"
	"textmark/internal/workspace"
)

var (
	serveAddr  string
	serveCache bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve single-document analysis over HTTP",
	Long: `Starts an HTTP server with POST /analyze accepting JSON
{"name","text"} or a raw text body, returning the full result record.
When a reference corpus is configured its overlap feeds the AI score.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	serveCmd.Flags().BoolVar(&serveCache, "cache", true, "memoize results in the workspace cache db")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, opts, base, err := loadEnvironment()
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.ServerAddr
	}

	var cache *store.Store
	if serveCache {
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

	return server.New(opts, cache).ListenAndServe(addr)
}
