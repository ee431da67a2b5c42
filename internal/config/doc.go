// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the xshell host.
//
// Configuration is read from TOML with sensible defaults, environment
// variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - ShellConfig: prompt, line editor backend, history, tokenizer
//   - LogConfig: log level, file and format
//   - UIConfig: output styling
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Command line flags (applied by the host)
//   - Environment variables (XSHELL_*)
//   - ~/.xshell/config.toml
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	prompt := cfg.Shell.Prompt
package config
