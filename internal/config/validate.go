package config

import (
	"fmt"
	"sort"
	"strings"
)

// Issue describes a single invalid config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates all config issues found in one pass.
type ValidationError struct {
	Issues []Issue
}

// Error renders the issues one per line.
func (e *ValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "config is invalid"
	}
	lines := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return "config is invalid:\n  " + strings.Join(lines, "\n  ")
}

// Validate checks a normalized config and collects every issue.
func Validate(cfg *Config) error {
	if cfg == nil {
		return &ValidationError{Issues: []Issue{{Field: "config", Message: "is nil"}}}
	}
	issues := make([]Issue, 0)
	if cfg.Version != 1 {
		issues = append(issues, Issue{Field: "version", Message: fmt.Sprintf("unsupported version %d (expected 1)", cfg.Version)})
	}
	// Port 0 is allowed: the runner binds an ephemeral port with it.
	if cfg.API.Port < 0 || cfg.API.Port > 65535 {
		issues = append(issues, Issue{Field: "api.port", Message: fmt.Sprintf("invalid port %d", cfg.API.Port)})
	}
	if cfg.Browser.TimeoutSeconds <= 0 {
		issues = append(issues, Issue{Field: "browser.timeout_seconds", Message: "must be positive"})
	}
	if cfg.Browser.Width <= 0 || cfg.Browser.Height <= 0 {
		issues = append(issues, Issue{Field: "browser", Message: "width and height must be positive"})
	}
	if cfg.Report.IndexLimit <= 0 {
		issues = append(issues, Issue{Field: "report.index_limit", Message: "must be positive"})
	}
	if strings.TrimSpace(cfg.Xray.ProjectKey) == "" {
		issues = append(issues, Issue{Field: "xray.project_key", Message: "is required"})
	}
	for field, dir := range map[string]string{
		"dirs.features":    cfg.Dirs.Features,
		"dirs.reports":     cfg.Dirs.Reports,
		"dirs.screenshots": cfg.Dirs.Screenshots,
		"dirs.data":        cfg.Dirs.Data,
	} {
		if strings.TrimSpace(dir) == "" {
			issues = append(issues, Issue{Field: field, Message: "is required"})
		}
	}
	if len(issues) == 0 {
		return nil
	}
	sort.Slice(issues, func(i, j int) bool { return issues[i].Field < issues[j].Field })
	return &ValidationError{Issues: issues}
}
