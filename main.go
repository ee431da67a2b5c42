// xshell - an interactive command shell host built on the shell package.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/xshell/internal/config"
	"github.com/jeranaias/xshell/internal/logging"
	"github.com/jeranaias/xshell/shell"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

const appName = "xshell"

// errReported marks failures the shell has already printed.
var errReported = errors.New("command failed")

type rootFlags struct {
	configPath string
	prompt     string
	backend    string
	logLevel   string
	noColor    bool
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Interactive command shell",
		Long:          "xshell reads commands from the terminal (or a pipe) and runs them against a tree of registered commands.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := setupApp(flags, in, out, errOut)
			if err != nil {
				return err
			}
			defer cleanup()
			return app.Run(cmd.Context())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "config file (default ~/.xshell/config.toml)")
	pf.StringVar(&flags.prompt, "prompt", "", "prompt shown before each line")
	pf.StringVar(&flags.backend, "backend", "", "line editor: auto, liner, readline or plain")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: off, error, warn, info, debug or trace")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable styled output")

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.AddCommand(
		newExecCmd(flags, in, out, errOut),
		newVersionCmd(),
	)
	return cmd
}

func newExecCmd(flags *rootFlags, in io.Reader, out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <command> [args...]",
		Short: "Run a single shell command and exit",
		Example: "  xshell exec kv list\n" +
			"  xshell exec help kv",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := setupApp(flags, in, out, errOut)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := app.Exec(strings.Join(args, " ")); err != nil {
				return errReported
			}
			return nil
		},
	}
	// Everything after the shell command belongs to the shell, including
	// values such as "-5".
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n", appName, Version, GitCommit, BuildDate)
		},
	}
}

// =============================================================================
// SETUP
// =============================================================================

// setupApp loads configuration, applies flag overrides and builds the shell.
// The returned cleanup closes the log file.
func setupApp(flags *rootFlags, in io.Reader, out, errOut io.Writer) (*shell.App[demoData], func(), error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, nil, err
	}

	logger, closer, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		JSON:    cfg.Log.JSON,
		Writer:  errOut,
		NoColor: cfg.UI.NoColor,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	cleanup := func() { closer.Close() }

	splitter, err := shell.NewSplitter(cfg.Shell.Tokenizer)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	history, err := cfg.ResolveHistoryFile()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if cfg.Shell.HistoryFile == "default" {
		if err := config.EnsureConfigDir(); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	opts := []shell.Option{
		shell.WithVersion(Version),
		shell.WithAuthor("Morgan Forge"),
		shell.WithPrompt(cfg.Shell.Prompt),
		shell.WithBackend(cfg.Shell.Backend),
		shell.WithHistory(history, cfg.Shell.HistoryLimit),
		shell.WithEditMode(cfg.Shell.EditMode),
		shell.WithSplitter(splitter),
		shell.WithLogger(logger),
		shell.WithInput(in),
		shell.WithOutput(out, errOut),
		shell.WithNoColor(cfg.UI.NoColor),
		shell.WithGlobal(newSessionInfo()),
	}
	if cfg.Shell.DisableBuiltins {
		opts = append(opts, shell.WithoutBuiltins())
	}

	app := shell.New[demoData](appName, opts...)
	if err := registerDemoCommands(app); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to register commands: %w", err)
	}
	return app, cleanup, nil
}

// loadConfig reads the config file and lets command line flags win.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		cfg, err = config.LoadFromPath(flags.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if flags.prompt != "" {
		cfg.Shell.Prompt = flags.prompt
	}
	if flags.backend != "" {
		cfg.Shell.Backend = flags.backend
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.noColor {
		cfg.UI.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
