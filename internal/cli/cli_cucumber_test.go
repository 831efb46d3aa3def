//go:build cucumber

package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"bddkit/internal/config"
)

// TestCLIScenarios runs the command line workflow scenarios.
func TestCLIScenarios(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "cli",
		ScenarioInitializer: InitializeCLIScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{filepath.Join("testdata", "cli.feature")},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeCLIScenario wires steps for CLI workflow scenarios.
func InitializeCLIScenario(ctx *godog.ScenarioContext) {
	state := &cliScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		if state.root != "" {
			_ = os.RemoveAll(state.root)
		}
		return ctx, nil
	})

	ctx.Step(`^a project with a default config$`, state.givenProject)
	ctx.Step(`^a generated database feature$`, state.givenGeneratedFeature)
	ctx.Step(`^a completed run$`, state.givenCompletedRun)
	ctx.Step(`^I run "([^"]+)"$`, state.whenIRun)
	ctx.Step(`^the command succeeds$`, state.thenCommandSucceeds)
	ctx.Step(`^a feature file exists in the features directory$`, state.thenFeatureExists)
	ctx.Step(`^the reports directory contains an index page$`, state.thenIndexExists)
	ctx.Step(`^the output mentions a DEMO execution key$`, state.thenOutputHasExecutionKey)
}

type cliScenarioState struct {
	root       string
	configPath string
	exitCode   int
	stdout     string
	stderr     string
}

// reset clears scenario state.
func (s *cliScenarioState) reset() {
	*s = cliScenarioState{}
}

func (s *cliScenarioState) exec(args ...string) {
	var stdout, stderr bytes.Buffer
	s.exitCode = Run(args, &stdout, &stderr)
	s.stdout = stdout.String()
	s.stderr = stderr.String()
}

func (s *cliScenarioState) givenProject() error {
	root, err := os.MkdirTemp("", "bddkit-cli-*")
	if err != nil {
		return err
	}
	s.root = root
	s.configPath = filepath.Join(root, config.DefaultFileName)
	yaml := "version: 1\nmock_mode: true\napi:\n  host: 127.0.0.1\n  port: 0\n"
	return os.WriteFile(s.configPath, []byte(yaml), 0o644)
}

func (s *cliScenarioState) givenGeneratedFeature() error {
	s.exec("generate", "--config", s.configPath, "--category", "database",
		"Revenue", "for", "Client", "A", "must", "be", "positive")
	if s.exitCode != ExitOK {
		return fmt.Errorf("generate failed: %s", s.stderr)
	}
	return nil
}

func (s *cliScenarioState) givenCompletedRun() error {
	s.exec("run", "--config", s.configPath, "--ui", "plain")
	if s.exitCode != ExitOK {
		return fmt.Errorf("run failed: %s", s.stderr)
	}
	return nil
}

func (s *cliScenarioState) whenIRun(command string) error {
	args := append(strings.Fields(command), "--config", s.configPath)
	name, rest := args[0], args[1:]
	switch name {
	case "generate":
		// requirement words must stay positional, so --config goes first
		rest = append([]string{"--config", s.configPath}, strings.Fields(command)[1:]...)
	}
	s.exec(append([]string{name}, rest...)...)
	return nil
}

func (s *cliScenarioState) thenCommandSucceeds() error {
	if s.exitCode != ExitOK {
		return fmt.Errorf("exit code %d, stderr: %s", s.exitCode, s.stderr)
	}
	return nil
}

func (s *cliScenarioState) thenFeatureExists() error {
	matches, err := filepath.Glob(filepath.Join(s.root, "features", "*.feature"))
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return fmt.Errorf("no feature files under %s", s.root)
	}
	return nil
}

func (s *cliScenarioState) thenIndexExists() error {
	if _, err := os.Stat(filepath.Join(s.root, "reports", "index.html")); err != nil {
		return fmt.Errorf("index page missing: %w", err)
	}
	return nil
}

func (s *cliScenarioState) thenOutputHasExecutionKey() error {
	if !strings.Contains(s.stdout, "Execution: DEMO-") {
		return fmt.Errorf("no execution key in output: %s", s.stdout)
	}
	return nil
}
