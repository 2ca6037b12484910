// Package config provides the configuration loader for devrun.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/devrun/internal/core/domain"
	"go.trai.ch/devrun/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvLevels  = domain.EnvPrefix + "LEVELS"
	EnvIgnore  = domain.EnvPrefix + "IGNORE"
	EnvVerbose = domain.EnvPrefix + "VERBOSE"
)

// Loader implements ports.ConfigLoader using YAML files.
//
// The global file is applied first, then the nearest .devrun.yaml found by walking
// up from the working directory, then environment overrides.
type Loader struct {
	Logger ports.Logger
	FS     ports.FileSystem
	// GlobalPath is the per-user config file. Empty disables it.
	GlobalPath string
	// Getenv reads environment overrides.
	Getenv func(string) string
}

// NewLoader creates a Loader reading the default global path and the process environment.
func NewLoader(logger ports.Logger, fs ports.FileSystem) *Loader {
	return &Loader{
		Logger:     logger,
		FS:         fs,
		GlobalPath: domain.DefaultGlobalConfigPath(),
		Getenv:     os.Getenv,
	}
}

// Load returns the merged configuration visible from cwd.
// Missing files are skipped; unreadable or malformed files are errors.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if l.GlobalPath != "" {
		if err := l.applyFile(cfg, l.GlobalPath); err != nil {
			return nil, err
		}
	}

	if local, ok := l.findLocal(cwd); ok && local != l.GlobalPath {
		if err := l.applyFile(cfg, local); err != nil {
			return nil, err
		}
	}

	if err := l.applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findLocal walks up from cwd to the filesystem root looking for the project config file.
func (l *Loader) findLocal(cwd string) (string, bool) {
	currentDir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(currentDir, domain.LocalConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) applyFile(cfg *domain.Config, path string) error {
	if _, err := l.FS.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file Configfile
	if err := readAndUnmarshalYAML(l.FS, path, &file); err != nil {
		return err
	}
	if file.Levels != nil && *file.Levels < 0 {
		err := zerr.Wrap(domain.ErrConfigParseFailed, "levels must not be negative")
		err = zerr.With(err, "path", path)
		return zerr.With(err, "levels", *file.Levels)
	}

	merge(cfg, &file)
	cfg.Sources = append(cfg.Sources, path)
	l.Logger.Debug("loaded config " + path)
	return nil
}

// merge overlays file onto cfg. Ignore lists accumulate; aliases are overridden per key.
func merge(cfg *domain.Config, file *Configfile) {
	cfg.Ignore = appendUnique(cfg.Ignore, file.Ignore...)
	if file.Levels != nil {
		cfg.Levels = *file.Levels
	}
	if file.Verbose != nil {
		cfg.Verbose = *file.Verbose
	}
	if file.Quiet != nil {
		cfg.Quiet = *file.Quiet
	}
	if file.ShowTiming != nil {
		cfg.ShowTiming = *file.ShowTiming
	}
	for alias, target := range file.Aliases {
		cfg.Aliases[alias] = target
	}
}

func (l *Loader) applyEnv(cfg *domain.Config) error {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := strings.TrimSpace(getenv(EnvLevels)); v != "" {
		levels, err := strconv.Atoi(v)
		if err != nil || levels < 0 {
			err := zerr.Wrap(domain.ErrInvalidEnvOverride, "expected a non-negative integer")
			err = zerr.With(err, "variable", EnvLevels)
			return zerr.With(err, "value", v)
		}
		cfg.Levels = levels
	}

	if v := getenv(EnvIgnore); v != "" {
		cfg.Ignore = appendUnique(cfg.Ignore, strings.Split(v, ",")...)
	}

	if v := strings.TrimSpace(getenv(EnvVerbose)); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			err := zerr.Wrap(domain.ErrInvalidEnvOverride, "expected a boolean")
			err = zerr.With(err, "variable", EnvVerbose)
			return zerr.With(err, "value", v)
		}
		cfg.Verbose = verbose
	}
	return nil
}

// appendUnique appends trimmed, non-empty names not already present (ignoring case).
func appendUnique(list []string, names ...string) []string {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		dup := false
		for _, existing := range list {
			if strings.EqualFold(existing, name) {
				dup = true
				break
			}
		}
		if !dup {
			list = append(list, name)
		}
	}
	return list
}

func readAndUnmarshalYAML[T any](fs ports.FileSystem, configPath string, target *T) error {
	configFile, err := fs.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", configPath)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, parseErr.Error()), "path", configPath)
	}

	return nil
}
