package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"bddkit/internal/results"
)

// RegenerateIndex rebuilds index.html from the report files currently
// on disk: the most recent limit entries per kind, newest first. Only
// files that still exist are listed, so a pruned report disappears from
// the index on the next regeneration.
func RegenerateIndex(dir string, limit int) (string, error) {
	if limit <= 0 {
		limit = 10
	}
	htmlEntries, err := collectEntries(dir, htmlPrefix, ".html", limit)
	if err != nil {
		return "", err
	}
	jsonEntries, err := collectEntries(dir, jsonPrefix, ".json", limit)
	if err != nil {
		return "", err
	}
	view := indexView{
		GeneratedAt: results.FormatTime(time.Now()),
		HTMLReports: htmlEntries,
		JSONReports: jsonEntries,
	}
	path := filepath.Join(dir, IndexFile)
	if err := writeIndex(path, view); err != nil {
		return "", err
	}
	return path, nil
}

// collectEntries lists matching report files newest first. Timestamped
// names sort lexicographically in timestamp order.
func collectEntries(dir, prefix, suffix string, limit int) ([]indexEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read reports dir: %w", err)
	}
	names := make([]string, 0)
	for _, entry := range dirEntries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			continue
		}
		names = append(names, name)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	if len(names) > limit {
		names = names[:limit]
	}
	entries := make([]indexEntry, 0, len(names))
	for i, name := range names {
		entries = append(entries, indexEntry{
			Filename: name,
			Stamp:    strings.TrimSuffix(strings.TrimPrefix(name, prefix), suffix),
			Latest:   i == 0,
		})
	}
	return entries, nil
}
