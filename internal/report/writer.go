package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bddkit/internal/results"
)

// Name prefixes shared by the writer and the index.
const (
	jsonPrefix = "validation_results_"
	htmlPrefix = "data_docs_"
	IndexFile  = "index.html"
)

// Paths locates the artifacts of one written report.
type Paths struct {
	JSONPath  string
	HTMLPath  string
	IndexPath string
}

// Writer emits JSON and HTML report artifacts plus an index page.
type Writer struct {
	Dir        string
	IndexLimit int
}

// NewWriter builds a writer for an output directory.
func NewWriter(dir string, indexLimit int) *Writer {
	if indexLimit <= 0 {
		indexLimit = 10
	}
	return &Writer{Dir: dir, IndexLimit: indexLimit}
}

// Write persists one run: exact JSON serialization of the records, a
// human-readable HTML rendering, and a refreshed index. Artifacts get
// timestamped names so earlier runs are never overwritten.
func (w *Writer) Write(run results.RunResults, at time.Time) (Paths, error) {
	if w.Dir == "" {
		return Paths{}, fmt.Errorf("report: output directory is required")
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return Paths{}, fmt.Errorf("create reports dir: %w", err)
	}
	stamp := at.UTC().Format("20060102_150405")
	paths := Paths{
		JSONPath: filepath.Join(w.Dir, jsonPrefix+stamp+".json"),
		HTMLPath: filepath.Join(w.Dir, htmlPrefix+stamp+".html"),
	}
	if err := writeJSON(paths.JSONPath, run); err != nil {
		return Paths{}, err
	}
	if err := writeHTML(paths.HTMLPath, run); err != nil {
		return Paths{}, err
	}
	indexPath, err := RegenerateIndex(w.Dir, w.IndexLimit)
	if err != nil {
		return Paths{}, err
	}
	paths.IndexPath = indexPath
	return paths, nil
}

// Load reads a previously written JSON report back.
func Load(path string) (results.RunResults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return results.RunResults{}, fmt.Errorf("read report: %w", err)
	}
	var run results.RunResults
	if err := json.Unmarshal(data, &run); err != nil {
		return results.RunResults{}, fmt.Errorf("parse report: %w", err)
	}
	return run, nil
}

func writeJSON(path string, run results.RunResults) error {
	payload, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
