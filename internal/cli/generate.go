package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"bddkit/internal/bedrock"
	"bddkit/internal/config"
	"bddkit/internal/gherkin"
	"bddkit/internal/logging"
)

// runGenerate builds the handler for the generate command.
func runGenerate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file")
		categoryArg := flags.String("category", "auto", "Scenario category: auto|database|api|ui")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		requirement := strings.TrimSpace(strings.Join(flags.Args(), " "))
		if requirement == "" {
			fmt.Fprintln(stderr, "Missing requirement text")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		category, ok := gherkin.ParseCategory(*categoryArg)
		if !ok {
			fmt.Fprintf(stderr, "Invalid category %q (expected auto|database|api|ui)\n", *categoryArg)
			return ExitUsage
		}

		cfg, root, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Generate failed: %v\n", err)
			return ExitError
		}
		log, err := logging.New(cfg.Debug)
		if err != nil {
			fmt.Fprintf(stderr, "Generate failed: %v\n", err)
			return ExitError
		}
		defer log.Sync()

		client := bedrock.NewMockClient(
			config.ResolveDir(root, cfg.Dirs.Features),
			cfg.Bedrock.ModelID,
			500*time.Millisecond,
			log,
		)
		resp, err := client.GenerateGherkin(context.Background(), requirement, category)
		if err != nil {
			fmt.Fprintf(stderr, "Generate failed: %v\n", err)
			return ExitError
		}

		if warnings := validateGenerated(resp.GherkinContent); len(warnings) > 0 {
			for _, warning := range warnings {
				fmt.Fprintf(stderr, "Warning: %s\n", warning)
			}
		}
		fmt.Fprintf(stdout, "Wrote %s (model %s, %s)\n",
			resp.FeaturePath, resp.ModelID, resp.ProcessingTime.Round(time.Millisecond))
		fmt.Fprintln(stdout)
		fmt.Fprint(stdout, resp.GherkinContent)
		return ExitOK
	}
}

// validateGenerated runs the Gherkin parser over freshly generated
// content and returns any problems as warnings.
func validateGenerated(content string) []string {
	report := gherkin.ValidateSyntax(content)
	return append(report.Errors, report.Warnings...)
}
