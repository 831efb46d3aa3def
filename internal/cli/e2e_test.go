package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bddkit/internal/config"
	"bddkit/internal/gherkin"
)

// e2eConfigYAML binds the mock API to an ephemeral port so parallel
// test runs never collide.
const e2eConfigYAML = `version: 1
mock_mode: true
dirs:
  features: features
  reports: reports
  screenshots: screenshots
api:
  host: 127.0.0.1
  port: 0
browser:
  headless: true
  timeout_seconds: 5
report:
  index_limit: 10
`

func writeE2EConfig(t *testing.T) (root, configPath string) {
	t.Helper()
	root = t.TempDir()
	configPath = filepath.Join(root, config.DefaultFileName)
	if err := os.WriteFile(configPath, []byte(e2eConfigYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return root, configPath
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestInitScaffoldsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultFileName)
	code, stdout, stderr := runCLI(t, "init", "--config", path)
	if code != ExitOK {
		t.Fatalf("init failed (%d): %s", code, stderr)
	}
	if !strings.Contains(stdout, "Wrote "+path) {
		t.Fatalf("unexpected output %q", stdout)
	}
	if _, err := config.Load(path); err != nil {
		t.Fatalf("scaffolded config does not load: %v", err)
	}

	code, _, stderr = runCLI(t, "init", "--config", path)
	if code != ExitError || !strings.Contains(stderr, "already exists") {
		t.Fatalf("expected overwrite refusal, got code=%d stderr=%s", code, stderr)
	}
}

func TestGenerateRunReportSubmit(t *testing.T) {
	root, configPath := writeE2EConfig(t)

	code, stdout, stderr := runCLI(t,
		"generate", "--config", configPath, "--category", "database",
		"Revenue", "for", "Client", "A", "must", "be", "positive")
	if code != ExitOK {
		t.Fatalf("generate failed (%d): %s", code, stderr)
	}
	if !strings.Contains(stdout, `Given I have client "Client A"`) {
		t.Fatalf("generated content not echoed: %s", stdout)
	}
	features, err := gherkin.ListFeatures(filepath.Join(root, "features"))
	if err != nil || len(features) != 1 {
		t.Fatalf("expected 1 feature file, got %d (%v)", len(features), err)
	}

	code, stdout, stderr = runCLI(t, "features", "--config", configPath)
	if code != ExitOK || !strings.Contains(stdout, features[0].Filename) {
		t.Fatalf("features listing failed (%d): %s %s", code, stdout, stderr)
	}

	code, stdout, stderr = runCLI(t, "run", "--config", configPath, "--ui", "plain")
	if code != ExitOK {
		t.Fatalf("run failed (%d): stdout=%s stderr=%s", code, stdout, stderr)
	}
	if !strings.Contains(stdout, "2/2 scenarios passed") {
		t.Fatalf("unexpected run summary: %s", stdout)
	}

	indexPath := filepath.Join(root, "reports", "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		t.Fatalf("missing report index: %v", err)
	}

	jsonReports, err := filepath.Glob(filepath.Join(root, "reports", "validation_results_*.json"))
	if err != nil || len(jsonReports) != 1 {
		t.Fatalf("expected 1 JSON report, got %v (%v)", jsonReports, err)
	}
	code, stdout, stderr = runCLI(t, "report", "--show", jsonReports[0])
	if code != ExitOK || !strings.Contains(stdout, "Summary: 2/2 passed") {
		t.Fatalf("report show failed (%d): %s %s", code, stdout, stderr)
	}

	code, stdout, stderr = runCLI(t, "submit", "--config", configPath)
	if code != ExitOK {
		t.Fatalf("submit failed (%d): %s", code, stderr)
	}
	if !strings.Contains(stdout, "Execution: DEMO-") {
		t.Fatalf("unexpected submit output: %s", stdout)
	}
	if !strings.Contains(stdout, "2 total, 2 passed, 0 failed") {
		t.Fatalf("unexpected submit statistics: %s", stdout)
	}
}

func TestRunWithoutFeaturesFails(t *testing.T) {
	root, configPath := writeE2EConfig(t)
	if err := os.MkdirAll(filepath.Join(root, "features"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	code, _, stderr := runCLI(t, "run", "--config", configPath, "--ui", "plain")
	if code != ExitError || !strings.Contains(stderr, "no feature files") {
		t.Fatalf("expected no-features failure, got code=%d stderr=%s", code, stderr)
	}
}

func TestGenerateRequiresRequirement(t *testing.T) {
	_, configPath := writeE2EConfig(t)
	code, _, stderr := runCLI(t, "generate", "--config", configPath)
	if code != ExitUsage || !strings.Contains(stderr, "Missing requirement") {
		t.Fatalf("expected usage failure, got code=%d stderr=%s", code, stderr)
	}
}
