package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"textmark/internal/ingest"
)

var watchExts = map[string]struct{}{
	".txt": {}, ".md": {}, ".text": {}, ".pdf": {}, ".docx": {},
}

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-analyze a directory whenever its documents change",
	Long: `Watches a directory and re-runs batch analysis after writes settle.
Events are debounced so editors that write in bursts trigger one run.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, opts, _, err := loadEnvironment()
	if err != nil {
		return err
	}
	dir := args[0]
	if info, statErr := os.Stat(dir); statErr != nil || !info.IsDir() {
		return fmt.Errorf("watch target is not a directory: %s", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	debounce := time.Duration(cfg.WatchDebounceMs) * time.Millisecond
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	runOnce := func() {
		paths, globErr := documentPaths(dir)
		if globErr != nil {
			log.Warn().Err(globErr).Msg("list documents failed")
			return
		}
		if len(paths) == 0 {
			log.Info().Str("dir", dir).Msg("no documents to analyze")
			return
		}
		docs, parseErr := ingest.ParseFiles(paths)
		if parseErr != nil {
			log.Warn().Err(parseErr).Msg("analysis failed")
			return
		}
		results := runBatch(docs, opts, nil)
		cmd.Print(renderReport(results, docs))
	}

	log.Info().Str("dir", dir).Msg("watching for changes")
	runOnce()

	var timer *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watchable(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("change detected")
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, runOnce)
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(watchErr).Msg("watcher error")
		}
	}
}

func watchable(path string) bool {
	_, ok := watchExts[strings.ToLower(filepath.Ext(path))]
	return ok
}

func documentPaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	paths := []string{}
	for _, e := range entries {
		if e.IsDir() || !watchable(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}
