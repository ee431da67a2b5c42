// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/jeranaias/xshell/internal/lineio"
	"github.com/jeranaias/xshell/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. XSHELL_SHELL_PROMPT.
const EnvPrefix = "XSHELL_"

// =============================================================================
// CONFIG STRUCTS
// =============================================================================

// Config is the main configuration structure.
type Config struct {
	Shell ShellConfig `toml:"shell" envPrefix:"SHELL_"`
	Log   LogConfig   `toml:"log" envPrefix:"LOG_"`
	UI    UIConfig    `toml:"ui" envPrefix:"UI_"`
}

// ShellConfig configures the line source and tokenizer.
type ShellConfig struct {
	Prompt          string `toml:"prompt" env:"PROMPT"`
	Backend         string `toml:"backend" env:"BACKEND"`
	HistoryFile     string `toml:"history_file" env:"HISTORY_FILE"`
	HistoryLimit    int    `toml:"history_limit" env:"HISTORY_LIMIT"`
	EditMode        string `toml:"edit_mode" env:"EDIT_MODE"`
	Tokenizer       string `toml:"tokenizer" env:"TOKENIZER"`
	DisableBuiltins bool   `toml:"disable_builtins" env:"DISABLE_BUILTINS"`
}

// LogConfig configures diagnostics logging.
type LogConfig struct {
	Level string `toml:"level" env:"LEVEL"`
	File  string `toml:"file" env:"FILE"`
	JSON  bool   `toml:"json" env:"JSON"`
}

// UIConfig configures output styling.
type UIConfig struct {
	NoColor bool `toml:"no_color" env:"NO_COLOR"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			Prompt:       "# ",
			Backend:      lineio.BackendAuto,
			HistoryLimit: 500,
			EditMode:     lineio.EditModeEmacs,
			Tokenizer:    "fields",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the xshell configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".xshell"), nil
}

// DefaultPath returns the path to the TOML config file.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DefaultHistoryPath returns the history file used when history_file is "default".
func DefaultHistoryPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load reads the default config file when it exists, applies environment
// overrides and validates the result. A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return finish(Default())
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return finish(Default())
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific TOML file with
// environment overrides and validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return finish(cfg)
}

// LoadTOML decodes the TOML file at path over cfg.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	fillDefaults(cfg)
	return nil
}

func finish(cfg *Config) (*Config, error) {
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	fillDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills in values left empty by the file or environment.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Shell.Backend == "" {
		cfg.Shell.Backend = defaults.Shell.Backend
	}
	if cfg.Shell.EditMode == "" {
		cfg.Shell.EditMode = defaults.Shell.EditMode
	}
	if cfg.Shell.Tokenizer == "" {
		cfg.Shell.Tokenizer = defaults.Shell.Tokenizer
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
}

// ApplyEnvOverrides applies XSHELL_* environment variables:
//
//   - XSHELL_SHELL_PROMPT, XSHELL_SHELL_BACKEND, XSHELL_SHELL_HISTORY_FILE,
//     XSHELL_SHELL_HISTORY_LIMIT, XSHELL_SHELL_EDIT_MODE,
//     XSHELL_SHELL_TOKENIZER, XSHELL_SHELL_DISABLE_BUILTINS
//   - XSHELL_LOG_LEVEL, XSHELL_LOG_FILE, XSHELL_LOG_JSON
//   - XSHELL_UI_NO_COLOR
func (c *Config) ApplyEnvOverrides() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	return nil
}

// ResolveHistoryFile expands "default" and a leading "~/" in history_file.
func (c *Config) ResolveHistoryFile() (string, error) {
	path := c.Shell.HistoryFile
	switch {
	case path == "":
		return "", nil
	case path == "default":
		return DefaultHistoryPath()
	case strings.HasPrefix(path, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine home directory: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	default:
		return path, nil
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if !oneOf(c.Shell.Backend, lineio.Backends...) {
		errs = append(errs, ValidationError{
			Field:   "shell.backend",
			Message: fmt.Sprintf("invalid backend '%s', must be one of: %s", c.Shell.Backend, strings.Join(lineio.Backends, ", ")),
		})
	}

	if !oneOf(c.Shell.EditMode, lineio.EditModeEmacs, lineio.EditModeVi) {
		errs = append(errs, ValidationError{
			Field:   "shell.edit_mode",
			Message: fmt.Sprintf("invalid edit mode '%s', must be one of: emacs, vi", c.Shell.EditMode),
		})
	}

	if !oneOf(c.Shell.Tokenizer, "fields", "shellwords") {
		errs = append(errs, ValidationError{
			Field:   "shell.tokenizer",
			Message: fmt.Sprintf("invalid tokenizer '%s', must be one of: fields, shellwords", c.Shell.Tokenizer),
		})
	}

	// -1 disables history in readline; 0 keeps the editor default
	if c.Shell.HistoryLimit < -1 {
		errs = append(errs, ValidationError{
			Field:   "shell.history_limit",
			Message: fmt.Sprintf("must be -1 or greater, got %d", c.Shell.HistoryLimit),
		})
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: err.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}
	return false
}
