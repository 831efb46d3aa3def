package cli

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// runVersion builds the handler for the version command.
func runVersion(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		version := Version
		if version == "dev" {
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
				version = info.Main.Version
			}
		}
		fmt.Fprintf(stdout, "bddkit %s\n", version)
		return ExitOK
	}
}
