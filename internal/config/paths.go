package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/avalluri/wic/internal/constants"
	"github.com/avalluri/wic/internal/errors"
)

// GlobalConfigDir returns the path to the global wic configuration directory.
// This is typically ~/.wic on Unix systems; the WIC_HOME environment variable
// overrides it.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigDir() (string, error) {
	if home := os.Getenv("WIC_HOME"); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.WicHome), nil
}

// ProjectConfigDir returns the relative path to the project configuration
// directory. This is always .wic relative to the working directory.
func ProjectConfigDir() string {
	return constants.WicHome
}

// GlobalConfigPath returns the full path to the global configuration file.
// This is typically ~/.wic/config.yaml on Unix systems.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", fmt.Errorf("get global config path: %w", err)
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ProjectConfigPath returns the relative path to the project configuration
// file. This is always .wic/config.yaml relative to the working directory.
func ProjectConfigPath() string {
	return filepath.Join(ProjectConfigDir(), "config.yaml")
}
