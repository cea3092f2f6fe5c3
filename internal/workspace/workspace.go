package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"textmark/internal/config"
)

const BaseDirName = ".textmark"

// EnsureDefault bootstraps the workspace under the user's home
// directory and returns its root.
func EnsureDefault() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return EnsureAt(filepath.Join(home, BaseDirName))
}

// EnsureAt creates the workspace layout at base: a configs dir with a
// seeded config.yaml, a cache dir for the result store, and a reports
// dir for written batch reports. Existing files are left alone.
func EnsureAt(base string) (string, error) {
	paths := []string{
		filepath.Join(base, "configs"),
		filepath.Join(base, "cache"),
		filepath.Join(base, "reports"),
	}
	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", p, err)
		}
	}

	cfgPath := ConfigPath(base)
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		defaults := config.Default()
		defaults.CacheDB = CacheDBPath(base)
		if err := config.Write(defaults, cfgPath); err != nil {
			return "", err
		}
	}
	return base, nil
}

func ConfigPath(base string) string {
	return filepath.Join(base, "configs", "config.yaml")
}

func CacheDBPath(base string) string {
	return filepath.Join(base, "cache", "results.db")
}

func ReportsDir(base string) string {
	return filepath.Join(base, "reports")
}
