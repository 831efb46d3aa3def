package results

import "time"

// Status is the outcome of a single check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// CheckResult records one validation check. Timestamp is an ISO-8601
// string so the record serializes without any datetime conversion.
type CheckResult struct {
	Name      string `json:"name"`
	Status    Status `json:"status"`
	Detail    string `json:"detail"`
	Timestamp string `json:"timestamp"`
}

// RunResults aggregates the checks of one run for report output.
type RunResults struct {
	RunID       string        `json:"run_id"`
	GeneratedAt string        `json:"generated_at"`
	Results     []CheckResult `json:"results"`
	Summary     Summary       `json:"summary"`
}

// Summary carries the pass/fail counts of a run.
type Summary struct {
	Total          int     `json:"total"`
	Passed         int     `json:"passed"`
	Failed         int     `json:"failed"`
	SuccessPercent float64 `json:"success_percent"`
}

// NewCheckResult builds a record with the timestamp already normalized
// to an RFC 3339 string.
func NewCheckResult(name string, passed bool, detail string, at time.Time) CheckResult {
	status := StatusFail
	if passed {
		status = StatusPass
	}
	return CheckResult{
		Name:      name,
		Status:    status,
		Detail:    detail,
		Timestamp: FormatTime(at),
	}
}

// FormatTime renders a timestamp the way every artifact stores it.
func FormatTime(at time.Time) string {
	return at.UTC().Format(time.RFC3339)
}

// Summarize aggregates check outcomes into counts.
func Summarize(checks []CheckResult) Summary {
	summary := Summary{Total: len(checks)}
	for _, check := range checks {
		switch check.Status {
		case StatusPass:
			summary.Passed++
		case StatusFail:
			summary.Failed++
		}
	}
	if summary.Total > 0 {
		summary.SuccessPercent = float64(summary.Passed) / float64(summary.Total) * 100
	}
	return summary
}

// NewRunResults assembles the full run payload.
func NewRunResults(runID string, at time.Time, checks []CheckResult) RunResults {
	return RunResults{
		RunID:       runID,
		GeneratedAt: FormatTime(at),
		Results:     checks,
		Summary:     Summarize(checks),
	}
}
