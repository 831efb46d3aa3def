package config

import "path/filepath"

// RootFromConfigPath resolves the project root for a config file path.
func RootFromConfigPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Dir(path)
	}
	return filepath.Dir(abs)
}

// ResolveDir resolves a configured directory against the project root.
func ResolveDir(root, dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}
