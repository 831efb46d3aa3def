package live

import (
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bddkit/internal/results"
	"bddkit/internal/runner"
)

// Controller runs the live UI and implements runner.Observer.
type Controller struct {
	events    chan Event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once
}

// Start launches a live UI controller that writes to stdout.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 256)
	model := NewModel(events, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	controller := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		_, _ = program.Run()
		close(controller.done)
	}()
	return controller
}

// Close signals the UI to stop.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		close(c.events)
	})
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

// RunStarted forwards run start events to the UI.
func (c *Controller) RunStarted(runID string, featurePaths []string) {
	c.send(runStartEvent(runID, len(featurePaths), time.Now()))
}

// ScenarioStarted forwards scenario start events to the UI.
func (c *Controller) ScenarioStarted(event runner.ScenarioEvent) {
	c.send(Event{Kind: EventScenarioStart, Scenario: event})
}

// ScenarioFinished forwards scenario outcomes to the UI.
func (c *Controller) ScenarioFinished(event runner.ScenarioEvent) {
	c.send(Event{Kind: EventScenarioEnd, Scenario: event})
}

// RunFinished forwards the run summary and closes the UI.
func (c *Controller) RunFinished(summary results.Summary) {
	c.send(Event{Kind: EventRunEnd, Summary: summary})
	c.Close()
}

// send enqueues an event without blocking the caller.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	select {
	case c.events <- event:
	default:
	}
}
