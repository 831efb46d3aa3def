package gherkin

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FeatureInfo describes a generated feature file on disk.
type FeatureInfo struct {
	Filename string
	Path     string
	SizeKB   float64
	Modified time.Time
}

// ListFeatures returns the .feature files under dir, newest first.
// A missing directory yields an empty list.
func ListFeatures(dir string) ([]FeatureInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	features := make([]FeatureInfo, 0)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".feature") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		features = append(features, FeatureInfo{
			Filename: entry.Name(),
			Path:     filepath.Join(dir, entry.Name()),
			SizeKB:   float64(info.Size()) / 1024,
			Modified: info.ModTime(),
		})
	}
	sort.Slice(features, func(i, j int) bool {
		return features[i].Modified.After(features[j].Modified)
	})
	return features, nil
}
