package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileName is the config file the CLI looks for.
const DefaultFileName = ".bddkit.yml"

const scaffoldYAML = `version: 1

# Mocked integrations (requirement generation, test management) stay on
# canned responses while this is true.
mock_mode: true
debug: false

dirs:
  features: features
  reports: reports
  screenshots: screenshots
  data: data

api:
  host: 127.0.0.1
  port: 8001

browser:
  headless: true
  timeout_seconds: 10
  width: 1920
  height: 1080

bedrock:
  model_id: mock-requirements-v1

xray:
  base_url: https://demo.atlassian.net
  project_key: DEMO

report:
  index_limit: 10
`

// Scaffold writes a default config file. It refuses to overwrite.
func Scaffold(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", filepath.Base(path))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(scaffoldYAML), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
