// Package config handles configuration loading and defaults.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultDataFile   = "todos.json"
	DefaultExportFile = "todos_backup.json"
	DefaultLogLevel   = "info"
)

// Config holds the full configuration for taskdeck.
type Config struct {
	// Paths
	DataFile   string `toml:"data_file"`
	ExportFile string `toml:"export_file"`

	// Output
	LogLevel string `toml:"log_level"`
	NoColor  bool   `toml:"no_color"`

	// Working directory (computed)
	WorkDir string `toml:"-"`
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.taskdeck/taskdeck.toml)
// 3. Project config file (taskdeck.toml or .taskdeck.toml in current directory)
// 4. Environment variables
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	// 4. Override from environment
	loadFromEnv(cfg)

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.DataFile = DefaultDataFile
	cfg.ExportFile = DefaultExportFile
	cfg.LogLevel = DefaultLogLevel
	cfg.NoColor = false
}

// findUserConfigFile looks for a config file in the user's home directory.
func findUserConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".taskdeck", "taskdeck.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// findProjectConfigFile looks for a config file in the current directory.
func findProjectConfigFile() string {
	names := []string{"taskdeck.toml", ".taskdeck.toml"}
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKDECK_DATA"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("TASKDECK_EXPORT"); v != "" {
		cfg.ExportFile = v
	}
	if v := os.Getenv("TASKDECK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKDECK_NO_COLOR"); v != "" {
		cfg.NoColor = boolFromString(v)
	}
	// Respect the NO_COLOR convention as well.
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}

// parseFlags defines and parses CLI flags.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("taskdeck", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.DataFile, "data", cfg.DataFile, "Path to task file")
	fs.StringVar(&cfg.ExportFile, "export-file", cfg.ExportFile, "Default path for export")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")

	return fs.Parse(args)
}

// finalizeConfig computes derived values and resolves paths.
func finalizeConfig(cfg *Config) error {
	cfg.DataFile = expandPath(cfg.DataFile)
	cfg.ExportFile = expandPath(cfg.ExportFile)

	if cfg.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg.WorkDir = wd
	}

	if !filepath.IsAbs(cfg.DataFile) {
		cfg.DataFile = filepath.Join(cfg.WorkDir, cfg.DataFile)
	}
	if !filepath.IsAbs(cfg.ExportFile) {
		cfg.ExportFile = filepath.Join(cfg.WorkDir, cfg.ExportFile)
	}

	return nil
}

// expandPath expands a leading ~ and environment variables in paths.
func expandPath(p string) string {
	if p == "" {
		return p
	}

	expanded := os.ExpandEnv(p)
	if expanded == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return home
	}
	if strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, expanded[2:])
	}
	return expanded
}
