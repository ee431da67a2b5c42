// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures the zerolog logger used by the shell.
//
// Level filtering is global (zerolog.SetGlobalLevel) so the log builtin can
// change it at runtime for every logger derived from New.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Level names accepted in configuration and by the log builtin.
var LevelNames = []string{"off", "error", "warn", "info", "debug", "trace"}

// Options controls logger construction.
type Options struct {
	Level string // see LevelNames; empty means "warn"
	File  string // append to this file instead of Writer
	JSON  bool   // JSON lines instead of console formatting
	// Writer receives console output when File is empty. Defaults to stderr.
	Writer  io.Writer
	NoColor bool
}

// ParseLevel converts a level name to a zerolog level. "off" maps to
// zerolog.Disabled.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return zerolog.NoLevel, fmt.Errorf("empty log level")
	case "off", "none", "disabled":
		return zerolog.Disabled, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q (want one of %s)", name, strings.Join(LevelNames, ", "))
	}
	return level, nil
}

// LevelName is the inverse of ParseLevel.
func LevelName(level zerolog.Level) string {
	if level == zerolog.Disabled {
		return "off"
	}
	return level.String()
}

// New builds a logger and sets the global level filter. The returned closer
// releases the log file, if any, and is never nil.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	levelName := opts.Level
	if levelName == "" {
		levelName = "warn"
	}
	level, err := ParseLevel(levelName)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch {
	case opts.File != "":
		file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = file, file
	case opts.Writer != nil:
		w = opts.Writer
	default:
		w = os.Stderr
	}

	if !opts.JSON {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    opts.NoColor || opts.File != "",
			TimeFormat: time.TimeOnly,
		}
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(w).With().Timestamp().Logger()
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
