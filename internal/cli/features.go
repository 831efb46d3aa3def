package cli

import (
	"flag"
	"fmt"
	"io"

	"bddkit/internal/config"
	"bddkit/internal/gherkin"
)

// runFeatures builds the handler for the features command.
func runFeatures(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}

		cfg, root, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Features failed: %v\n", err)
			return ExitError
		}

		features, err := gherkin.ListFeatures(config.ResolveDir(root, cfg.Dirs.Features))
		if err != nil {
			fmt.Fprintf(stderr, "Features failed: %v\n", err)
			return ExitError
		}
		if len(features) == 0 {
			fmt.Fprintln(stdout, "No feature files yet. Generate one with \"bddkit generate\".")
			return ExitOK
		}
		for _, feature := range features {
			fmt.Fprintf(stdout, "%s  %6.1f KB  %s\n",
				feature.Modified.Format("2006-01-02 15:04:05"), feature.SizeKB, feature.Filename)
		}
		return ExitOK
	}
}
