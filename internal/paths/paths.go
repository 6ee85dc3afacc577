package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// StateDirEnv overrides the state directory when set. Used by tests and
// scripts to isolate state.
const StateDirEnv = "TRACKR_STATE_DIR"

// DefaultStateDir returns the directory holding the persisted blobs.
func DefaultStateDir() (string, error) {
	if dir := os.Getenv(StateDirEnv); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "state", "trackr"), nil
}

// ConfigPath returns the path of the global config file.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "trackr", "config.toml"), nil
}
