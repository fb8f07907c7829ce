package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/TrevorS/groupsimilar"
)

const (
	formatText  = "text"
	formatJSON  = "json"
	formatTable = "table"

	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// options holds every setting of a run. The config file decodes into it and
// explicitly set flags are layered on top.
type options struct {
	Threshold  float64 `toml:"threshold"`
	Method     string  `toml:"method"`
	Workers    int     `toml:"workers"`
	All        bool    `toml:"all"`
	Format     string  `toml:"format"`
	Color      string  `toml:"color"`
	IgnoreCase bool    `toml:"ignore_case"`
	Normalize  bool    `toml:"normalize"`
	Progress   bool    `toml:"progress"`
	Summary    bool    `toml:"summary"`
	LogLevel   string  `toml:"log_level"`
}

func defaultOptions() options {
	return options{
		Threshold: groupsimilar.DefaultThreshold().Value(),
		Method:    string(groupsimilar.MethodComplete),
		Format:    formatText,
		Color:     colorAuto,
		LogLevel:  zerolog.LevelInfoValue,
	}
}

// defaultConfigPath returns $XDG_CONFIG_HOME/group-similar/config.toml,
// falling back to ~/.config when XDG_CONFIG_HOME is unset.
func defaultConfigPath() (string, error) {
	if base, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "group-similar", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "group-similar", "config.toml"), nil
}

// loadOptions reads the config file at path into a copy of the defaults. An
// empty path means the default location, which is allowed to be missing. It
// returns the resolved path and whether a file was read.
func loadOptions(path string) (options, string, bool, error) {
	opts := defaultOptions()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return opts, "", false, err
	}
	if !exists {
		return opts, resolvedPath, false, nil
	}

	file, err := os.Open(resolvedPath)
	if err != nil {
		return opts, "", false, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&opts); err != nil {
		return opts, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
	}
	return opts, resolvedPath, true, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("config file %s does not exist", path)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("config path %s is a directory", path)
		}
		return path, true, nil
	}

	defaultPath, err := defaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// normalize lowercases the enumerated settings.
func (o *options) normalize() {
	o.Method = strings.ToLower(strings.TrimSpace(o.Method))
	o.Format = strings.ToLower(strings.TrimSpace(o.Format))
	o.Color = strings.ToLower(strings.TrimSpace(o.Color))
	o.LogLevel = strings.ToLower(strings.TrimSpace(o.LogLevel))
}

// validate checks every setting and returns the first problem found.
func (o *options) validate() error {
	if _, err := groupsimilar.NewThreshold(o.Threshold); err != nil {
		return fmt.Errorf("config: threshold: %w", err)
	}
	if _, err := groupsimilar.ParseMethod(o.Method); err != nil {
		return fmt.Errorf("config: method: %w", err)
	}
	if o.Workers < 0 {
		return fmt.Errorf("config: workers must be >= 0, got %d", o.Workers)
	}
	switch o.Format {
	case formatText, formatJSON, formatTable:
	default:
		return fmt.Errorf("config: format must be one of text, json, table; got %q", o.Format)
	}
	switch o.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		return fmt.Errorf("config: color must be one of auto, always, never; got %q", o.Color)
	}
	if _, err := zerolog.ParseLevel(o.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	return nil
}
