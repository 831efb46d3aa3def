// Package cli implements the bddkit command set.
package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  bddkit <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-11s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"bddkit <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold a .bddkit.yml config", []string{
		"bddkit init [--config <path>]",
	}, runInit),
	command("generate", "Turn an English requirement into a feature file", []string{
		"bddkit generate [--category auto|database|api|ui] <requirement>",
	}, runGenerate),
	command("run", "Execute feature files and write reports", []string{
		"bddkit run [--ui auto|live|plain] [feature-path]...",
	}, runRun),
	command("features", "List generated feature files", []string{
		"bddkit features",
	}, runFeatures),
	command("report", "Show a report or rebuild the report index", []string{
		"bddkit report [--show <validation_results_*.json>]",
	}, runReport),
	command("screenshot", "Capture page evidence for a URL", []string{
		"bddkit screenshot --url <url> [--name <name>] [--description <text>]",
	}, runScreenshot),
	command("serve", "Run the mock API until interrupted", []string{
		"bddkit serve",
	}, runServe),
	command("submit", "Submit run results to the mock tracker", []string{
		"bddkit submit [--cucumber <cucumber_report_*.json>]",
	}, runSubmit),
	command("version", "Print the bddkit version", []string{
		"bddkit version",
	}, runVersion),
}
