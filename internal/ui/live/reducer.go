package live

import "fmt"

const (
	statusRunning = "running"
	statusPassed  = "passed"
	statusFailed  = "failed"
)

// Reduce applies one event to the UI state.
func Reduce(state State, event Event) State {
	switch event.Kind {
	case EventRunStart:
		state.RunID = event.RunID
		state.FeatureCount = event.FeatureCount
		if state.StartedAt.IsZero() {
			state.StartedAt = event.Scenario.EmittedAt
		}
		state.LastEvent = fmt.Sprintf("run %s started (%d feature files)", event.RunID, event.FeatureCount)
	case EventScenarioStart:
		state.Rows = append(state.Rows, ScenarioRow{
			Name:      event.Scenario.Name,
			URI:       event.Scenario.URI,
			Status:    statusRunning,
			StartedAt: event.Scenario.EmittedAt,
		})
		state.LastEvent = fmt.Sprintf("running %q", event.Scenario.Name)
	case EventScenarioEnd:
		state = finishRow(state, event)
	case EventRunEnd:
		state.Summary = event.Summary
		state.Finished = true
		state.LastEvent = fmt.Sprintf("run finished: %d/%d passed",
			event.Summary.Passed, event.Summary.Total)
	}
	state.Counts = recount(state.Rows)
	return state
}

// finishRow marks the newest running row with a matching name, falling
// back to a fresh row when the start event was missed.
func finishRow(state State, event Event) State {
	status := event.Scenario.Status
	if status != statusPassed && status != statusFailed {
		status = statusFailed
	}
	for i := len(state.Rows) - 1; i >= 0; i-- {
		row := state.Rows[i]
		if row.Status == statusRunning && row.Name == event.Scenario.Name {
			row.Status = status
			row.FinishedAt = event.Scenario.EmittedAt
			state.Rows[i] = row
			state.LastEvent = fmt.Sprintf("%q %s", event.Scenario.Name, status)
			return state
		}
	}
	state.Rows = append(state.Rows, ScenarioRow{
		Name:       event.Scenario.Name,
		URI:        event.Scenario.URI,
		Status:     status,
		FinishedAt: event.Scenario.EmittedAt,
	})
	state.LastEvent = fmt.Sprintf("%q %s", event.Scenario.Name, status)
	return state
}

// recount recomputes status counts for the current rows.
func recount(rows []ScenarioRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		switch row.Status {
		case statusRunning:
			counts.Running++
		case statusPassed:
			counts.Passed++
		case statusFailed:
			counts.Failed++
		}
	}
	return counts
}
