package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"bddkit/internal/logging"
	"bddkit/internal/results"
	"bddkit/internal/runner"
	"bddkit/internal/ui/live"
)

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file")
		uiMode := flags.String("ui", "auto", "UI mode: auto|live|plain")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		cfg, root, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		log, err := logging.New(cfg.Debug)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		defer log.Sync()

		var observer runner.Observer
		var controller *live.Controller
		if decision.useLive {
			controller = live.Start(stdout, live.Options{})
			observer = controller
		} else {
			observer = &plainObserver{out: stdout}
		}

		outcome, err := runner.Run(context.Background(), runner.Params{
			Cfg:          cfg,
			Root:         root,
			FeaturePaths: flags.Args(),
			Observer:     observer,
			Log:          log,
		})
		if controller != nil {
			controller.Close()
			controller.Wait()
		}
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		summary := outcome.Run.Summary
		fmt.Fprintf(stdout, "Run %s: %d/%d scenarios passed (%.1f%%)\n",
			outcome.RunID, summary.Passed, summary.Total, summary.SuccessPercent)
		fmt.Fprintf(stdout, "Report: %s\n", outcome.ReportPaths.HTMLPath)
		fmt.Fprintf(stdout, "Index:  %s\n", outcome.ReportPaths.IndexPath)
		if summary.Failed > 0 {
			return ExitError
		}
		return ExitOK
	}
}

// plainObserver prints one line per scenario outcome.
type plainObserver struct {
	mu  sync.Mutex
	out io.Writer
}

func (o *plainObserver) RunStarted(runID string, featurePaths []string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.out, "Run %s (%d feature files)\n", runID, len(featurePaths))
}

func (o *plainObserver) ScenarioStarted(runner.ScenarioEvent) {}

func (o *plainObserver) ScenarioFinished(event runner.ScenarioEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.out, "  %-6s %s (%s)\n", event.Status, event.Name, filepath.Base(event.URI))
}

func (o *plainObserver) RunFinished(results.Summary) {}
