package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppName is used for config directory and environment variable names.
	AppName = "devrun"

	// GlobalConfigFileName is the name of the per-user config file.
	GlobalConfigFileName = "config.yaml"

	// LocalConfigFileName is the name of the per-project config file.
	LocalConfigFileName = ".devrun.yaml"

	// EnvPrefix prefixes all environment overrides.
	EnvPrefix = "DEVRUN_"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultGlobalConfigPath returns the per-user config file path.
// XDG_CONFIG_HOME is honored; otherwise ~/.config is used.
// It returns an empty string if no home directory can be determined.
func DefaultGlobalConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName, GlobalConfigFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", AppName, GlobalConfigFileName)
}
