package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv names the environment variable that overrides the home directory.
const HomeEnv = "GARMENTQC_HOME"

// GetHome returns the garmentqc home directory
// Priority order:
//  1. GARMENTQC_HOME environment variable (if set)
//  2. .garmentqc in the current working directory
//
// The directory is not created; callers that write into it create what they need.
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(cwd, ".garmentqc"), nil
}

// DefaultConfigPath returns $GARMENTQC_HOME/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}

// ResolveLogDir makes a relative log dir absolute against the garmentqc
// home directory and creates it.
func ResolveLogDir(logDir string) (string, error) {
	if !filepath.IsAbs(logDir) {
		home, err := GetHome()
		if err != nil {
			return "", err
		}
		logDir = filepath.Join(home, logDir)
	}
	abs, err := filepath.Abs(logDir)
	if err != nil {
		return "", fmt.Errorf("resolve log directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return "", fmt.Errorf("create log directory: %w", err)
	}
	return abs, nil
}
