package runner

import (
	"time"

	"bddkit/internal/results"
)

// ScenarioEvent reports one scenario transition during a run.
type ScenarioEvent struct {
	Name      string
	URI       string
	Status    string
	EmittedAt time.Time
}

// Observer receives progress notifications while a run executes. All
// callbacks run on the godog goroutine and must not block.
type Observer interface {
	RunStarted(runID string, featurePaths []string)
	ScenarioStarted(event ScenarioEvent)
	ScenarioFinished(event ScenarioEvent)
	RunFinished(summary results.Summary)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) RunStarted(string, []string)    {}
func (NopObserver) ScenarioStarted(ScenarioEvent)  {}
func (NopObserver) ScenarioFinished(ScenarioEvent) {}
func (NopObserver) RunFinished(results.Summary)    {}
