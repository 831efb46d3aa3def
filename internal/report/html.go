package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"bddkit/internal/results"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	reportTmpl = template.Must(template.ParseFS(templateFS, "templates/report.html.tmpl"))
	indexTmpl  = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))
)

// reportView is the view model for one run's HTML page.
type reportView struct {
	RunID       string
	GeneratedAt string
	Summary     results.Summary
	Results     []results.CheckResult
}

// indexView is the view model for the index page.
type indexView struct {
	GeneratedAt string
	HTMLReports []indexEntry
	JSONReports []indexEntry
}

type indexEntry struct {
	Filename string
	Stamp    string
	Latest   bool
}

func writeHTML(path string, run results.RunResults) error {
	view := reportView{
		RunID:       run.RunID,
		GeneratedAt: run.GeneratedAt,
		Summary:     run.Summary,
		Results:     run.Results,
	}
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, view); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeIndex(path string, view indexView) error {
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, view); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}
