package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bddkit/internal/config"
	"bddkit/internal/logging"
	"bddkit/internal/runner"
	"bddkit/internal/xray"
)

// runSubmit builds the handler for the submit command.
func runSubmit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file")
		cukePath := flags.String("cucumber", "", "Cucumber JSON report to submit (default: latest)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}

		cfg, root, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Submit failed: %v\n", err)
			return ExitError
		}
		log, err := logging.New(cfg.Debug)
		if err != nil {
			fmt.Fprintf(stderr, "Submit failed: %v\n", err)
			return ExitError
		}
		defer log.Sync()

		path := *cukePath
		if path == "" {
			path, err = latestCukeReport(config.ResolveDir(root, cfg.Dirs.Reports))
			if err != nil {
				fmt.Fprintf(stderr, "Submit failed: %v\n", err)
				return ExitError
			}
		}
		payload, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "Submit failed: %v\n", err)
			return ExitError
		}
		features, err := runner.ParseCukeJSON(payload)
		if err != nil {
			fmt.Fprintf(stderr, "Submit failed: %v\n", err)
			return ExitError
		}

		client := xray.NewMockClient(cfg.Xray.BaseURL, cfg.Xray.ProjectKey, log)
		execution, err := client.SubmitResults(context.Background(), features)
		if err != nil {
			fmt.Fprintf(stderr, "Submit failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Submitted %s\n", filepath.Base(path))
		fmt.Fprintf(stdout, "Execution: %s (%s)\n", execution.TestExecutionKey, execution.ExecutionURL)
		fmt.Fprintf(stdout, "Tests: %d total, %d passed, %d failed (%.1f%%)\n",
			execution.Statistics.TotalTests, execution.Statistics.Passed,
			execution.Statistics.Failed, execution.Statistics.SuccessRate)
		for _, issue := range execution.TestIssues {
			fmt.Fprintf(stdout, "  %s %-6s %s\n", issue.Key, issue.Status, issue.Scenario)
		}
		return ExitOK
	}
}

// latestCukeReport finds the newest cucumber JSON file in dir.
func latestCukeReport(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read reports dir: %w", err)
	}
	names := make([]string, 0)
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, "cucumber_report_") && strings.HasSuffix(name, ".json") {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no cucumber reports in %s; run \"bddkit run\" first", dir)
	}
	sort.Strings(names)
	return filepath.Join(dir, names[len(names)-1]), nil
}
