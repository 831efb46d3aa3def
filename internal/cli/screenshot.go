package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"bddkit/internal/config"
	"bddkit/internal/logging"
	"bddkit/internal/screenshot"
)

// runScreenshot builds the handler for the screenshot command.
func runScreenshot(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file")
		url := flags.String("url", "", "Page URL to capture")
		name := flags.String("name", "screenshot", "Artifact name")
		description := flags.String("description", "", "Artifact description")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if *url == "" {
			fmt.Fprintln(stderr, "Missing --url")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, root, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Screenshot failed: %v\n", err)
			return ExitError
		}
		log, err := logging.New(cfg.Debug)
		if err != nil {
			fmt.Fprintf(stderr, "Screenshot failed: %v\n", err)
			return ExitError
		}
		defer log.Sync()

		generator := screenshot.NewGenerator(
			config.ResolveDir(root, cfg.Dirs.Screenshots),
			cfg.Browser.Headless,
			time.Duration(cfg.Browser.TimeoutSeconds)*time.Second,
			log,
		)
		artifact, err := generator.Take(context.Background(), screenshot.Request{
			URL:         *url,
			Name:        *name,
			Description: *description,
			Width:       cfg.Browser.Width,
			Height:      cfg.Browser.Height,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Screenshot failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Wrote %s (%s)\n", artifact.Path, artifact.Kind)
		fmt.Fprintf(stdout, "Metadata: %s\n", artifact.SidecarPath)
		if artifact.Reason != "" {
			fmt.Fprintf(stdout, "Reason: %s\n", artifact.Reason)
		}
		return ExitOK
	}
}
