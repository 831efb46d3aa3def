package live

import (
	"time"

	"bddkit/internal/results"
)

// ScenarioRow holds UI state for a single scenario.
type ScenarioRow struct {
	Name       string
	URI        string
	Status     string
	StartedAt  time.Time
	FinishedAt time.Time
}

// StatusCounts aggregates rows by status bucket.
type StatusCounts struct {
	Running int
	Passed  int
	Failed  int
}

// State captures the live UI state for a validation run.
type State struct {
	RunID        string
	FeatureCount int
	StartedAt    time.Time
	Rows         []ScenarioRow
	Counts       StatusCounts
	LastEvent    string
	Summary      results.Summary
	Finished     bool
}
