package live

import (
	"testing"
	"time"

	"bddkit/internal/results"
	"bddkit/internal/runner"
)

func TestReduceTracksScenarioLifecycle(t *testing.T) {
	started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	state := Reduce(State{}, Event{Kind: EventRunStart, RunID: "run-1", FeatureCount: 2})
	state = Reduce(state, Event{
		Kind: EventScenarioStart,
		Scenario: runner.ScenarioEvent{
			Name:      "Validate client revenue",
			URI:       "features/data_validation.feature",
			EmittedAt: started,
		},
	})

	if state.Counts.Running != 1 {
		t.Fatalf("expected 1 running scenario, got %+v", state.Counts)
	}

	state = Reduce(state, Event{
		Kind: EventScenarioEnd,
		Scenario: runner.ScenarioEvent{
			Name:      "Validate client revenue",
			Status:    "passed",
			EmittedAt: started.Add(2 * time.Second),
		},
	})

	if state.Counts.Running != 0 || state.Counts.Passed != 1 {
		t.Fatalf("unexpected counts %+v", state.Counts)
	}
	row := state.Rows[0]
	if row.Status != "passed" || row.FinishedAt.Sub(row.StartedAt) != 2*time.Second {
		t.Fatalf("unexpected row %+v", row)
	}
}

func TestReduceRunStartStampsStartTime(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	state := Reduce(State{}, runStartEvent("run-1", 2, at))

	if state.StartedAt != at {
		t.Fatalf("expected start time %v, got %v", at, state.StartedAt)
	}
	if state.RunID != "run-1" || state.FeatureCount != 2 {
		t.Fatalf("unexpected state %+v", state)
	}
}

func TestReduceCountsFailures(t *testing.T) {
	state := Reduce(State{}, Event{
		Kind:     EventScenarioStart,
		Scenario: runner.ScenarioEvent{Name: "Validate requirement coverage"},
	})
	state = Reduce(state, Event{
		Kind:     EventScenarioEnd,
		Scenario: runner.ScenarioEvent{Name: "Validate requirement coverage", Status: "failed"},
	})

	if state.Counts.Failed != 1 {
		t.Fatalf("expected 1 failed, got %+v", state.Counts)
	}
}

func TestReduceFinishWithoutStart(t *testing.T) {
	state := Reduce(State{}, Event{
		Kind:     EventScenarioEnd,
		Scenario: runner.ScenarioEvent{Name: "Orphan scenario", Status: "passed"},
	})
	if len(state.Rows) != 1 || state.Counts.Passed != 1 {
		t.Fatalf("expected synthesized row, got %+v", state)
	}
}

func TestReduceRunEndRecordsSummary(t *testing.T) {
	state := Reduce(State{}, Event{
		Kind:    EventRunEnd,
		Summary: results.Summary{Total: 4, Passed: 3, Failed: 1, SuccessPercent: 75},
	})
	if !state.Finished || state.Summary.Passed != 3 {
		t.Fatalf("unexpected state %+v", state)
	}
	if state.LastEvent != "run finished: 3/4 passed" {
		t.Fatalf("unexpected last event %q", state.LastEvent)
	}
}
