package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bddkit/internal/config"
)

// resolveConfigPath normalizes an explicit path or searches upward from
// the working directory for the default config file.
func resolveConfigPath(path string) (string, error) {
	if strings.TrimSpace(path) != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("resolve config path: %w", err)
		}
		return abs, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, config.DefaultFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found; run \"bddkit init\" first", config.DefaultFileName)
		}
		dir = parent
	}
}

// loadConfig resolves and loads the config, returning the project root
// alongside it.
func loadConfig(path string) (config.Config, string, error) {
	configPath, err := resolveConfigPath(path)
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, "", err
	}
	return cfg, config.RootFromConfigPath(configPath), nil
}
