package live

import (
	"time"

	"bddkit/internal/results"
	"bddkit/internal/runner"
)

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventRunStart signals the start of a run.
	EventRunStart EventKind = iota
	// EventScenarioStart signals a scenario beginning execution.
	EventScenarioStart
	// EventScenarioEnd delivers a scenario outcome.
	EventScenarioEnd
	// EventRunEnd signals run completion with its summary.
	EventRunEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind         EventKind
	RunID        string
	FeatureCount int
	Scenario     runner.ScenarioEvent
	Summary      results.Summary
}

// runStartEvent carries the wall-clock start time so the header can
// render an elapsed segment.
func runStartEvent(runID string, featureCount int, at time.Time) Event {
	return Event{
		Kind:         EventRunStart,
		RunID:        runID,
		FeatureCount: featureCount,
		Scenario:     runner.ScenarioEvent{EmittedAt: at},
	}
}
