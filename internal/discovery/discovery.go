// Package discovery locates raw-extract files under a root directory
// using glob patterns.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns match the extract formats the frontend can parse.
var DefaultPatterns = []string{"**/*.json", "**/*.yaml", "**/*.yml"}

// DiscoverExtracts walks root and returns paths matching the extract
// patterns, minus anything matching an exclude pattern. Results are
// absolute paths, sorted for deterministic pipeline runs.
func DiscoverExtracts(root string, excludes []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("extract root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("extract root %s is not a directory", root)
	}

	seen := make(map[string]bool)
	var found []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !matchesAny(DefaultPatterns, rel) || matchesAny(excludes, rel) {
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if !seen[abs] {
			seen[abs] = true
			found = append(found, abs)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Strings(found)
	return found, nil
}

func matchesAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}
