package cli

import (
	"flag"
	"fmt"
	"io"

	"bddkit/internal/config"
	"bddkit/internal/report"
	"bddkit/internal/results"
)

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file")
		show := flags.String("show", "", "Print the summary of a JSON report file")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}

		if *show != "" {
			run, err := report.Load(*show)
			if err != nil {
				fmt.Fprintf(stderr, "Report failed: %v\n", err)
				return ExitError
			}
			printRun(stdout, run)
			return ExitOK
		}

		cfg, root, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}
		indexPath, err := report.RegenerateIndex(
			config.ResolveDir(root, cfg.Dirs.Reports), cfg.Report.IndexLimit)
		if err != nil {
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Rebuilt %s\n", indexPath)
		return ExitOK
	}
}

// printRun renders one stored run as plain text.
func printRun(w io.Writer, run results.RunResults) {
	fmt.Fprintf(w, "Run %s generated at %s\n", run.RunID, run.GeneratedAt)
	for _, check := range run.Results {
		fmt.Fprintf(w, "  %-4s %s", check.Status, check.Name)
		if check.Detail != "" {
			fmt.Fprintf(w, " (%s)", check.Detail)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Summary: %d/%d passed (%.1f%%)\n",
		run.Summary.Passed, run.Summary.Total, run.Summary.SuccessPercent)
}
