package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ExpandFeaturePaths resolves files, directories, and globs into a
// sorted, de-duplicated list of .feature files.
func ExpandFeaturePaths(root string, entries []string) ([]string, error) {
	paths := make([]string, 0)
	seen := make(map[string]struct{})
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if hasGlob(entry) {
			matches, err := filepath.Glob(resolvePath(root, entry))
			if err != nil {
				return nil, fmt.Errorf("expand glob %q: %w", entry, err)
			}
			for _, match := range matches {
				paths = appendUnique(paths, seen, match)
			}
			continue
		}
		resolved := resolvePath(root, entry)
		info, err := os.Stat(resolved)
		if err != nil {
			return nil, fmt.Errorf("stat feature path %q: %w", entry, err)
		}
		if info.IsDir() {
			dirPaths, err := collectFeatureFiles(resolved)
			if err != nil {
				return nil, err
			}
			for _, path := range dirPaths {
				paths = appendUnique(paths, seen, path)
			}
			continue
		}
		paths = appendUnique(paths, seen, resolved)
	}
	sort.Strings(paths)
	return paths, nil
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) || root == "" {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(root, path))
}

func collectFeatureFiles(root string) ([]string, error) {
	paths := make([]string, 0)
	err := filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if strings.HasSuffix(entry.Name(), ".feature") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk feature root %q: %w", root, err)
	}
	return paths, nil
}

func appendUnique(paths []string, seen map[string]struct{}, path string) []string {
	normalized := filepath.Clean(path)
	if _, ok := seen[normalized]; ok {
		return paths
	}
	seen[normalized] = struct{}{}
	return append(paths, normalized)
}

func hasGlob(value string) bool {
	return strings.ContainsAny(value, "*?[]")
}
