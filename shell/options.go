// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"io"

	"github.com/rs/zerolog"
)

// DefaultPrompt is shown by interactive line sources unless WithPrompt is used.
const DefaultPrompt = "# "

type settings struct {
	version string
	author  string

	prompt       string
	backend      string
	historyFile  string
	historyLimit int
	editMode     string

	splitter Splitter
	logger   *zerolog.Logger
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	noColor  bool
	builtins bool
	global   any
	source   LineSource
}

func defaultSettings() settings {
	return settings{
		prompt:   DefaultPrompt,
		splitter: FieldsSplitter{},
		builtins: true,
	}
}

// Option configures an App.
type Option func(*settings)

// WithVersion sets the version reported by the version builtin.
func WithVersion(version string) Option {
	return func(s *settings) { s.version = version }
}

// WithAuthor sets the author reported by the version builtin.
func WithAuthor(author string) Option {
	return func(s *settings) { s.author = author }
}

// WithPrompt sets the interactive prompt.
func WithPrompt(prompt string) Option {
	return func(s *settings) { s.prompt = prompt }
}

// WithBackend selects the line editor: "auto", "liner", "readline" or "plain".
func WithBackend(backend string) Option {
	return func(s *settings) { s.backend = backend }
}

// WithHistory persists line history in file. limit caps the number of
// entries for editors that support it; zero keeps the editor default.
func WithHistory(file string, limit int) Option {
	return func(s *settings) {
		s.historyFile = file
		s.historyLimit = limit
	}
}

// WithEditMode selects "emacs" or "vi" key bindings where supported.
func WithEditMode(mode string) Option {
	return func(s *settings) { s.editMode = mode }
}

// WithSplitter replaces the default whitespace splitter.
func WithSplitter(sp Splitter) Option {
	return func(s *settings) {
		if sp != nil {
			s.splitter = sp
		}
	}
}

// WithLogger sets the logger handed to handlers through the Context.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) { s.logger = &logger }
}

// WithInput sets the reader used by the plain line source.
func WithInput(r io.Reader) Option {
	return func(s *settings) { s.in = r }
}

// WithOutput sets the writers for command output and error reports.
func WithOutput(out, errOut io.Writer) Option {
	return func(s *settings) {
		s.out = out
		s.errOut = errOut
	}
}

// WithNoColor disables styled output.
func WithNoColor(noColor bool) Option {
	return func(s *settings) { s.noColor = noColor }
}

// WithoutBuiltins skips registration of help, tree, exit, version, log and mode.
func WithoutBuiltins() Option {
	return func(s *settings) { s.builtins = false }
}

// WithGlobal sets the session-wide user data exposed as Context.Global.
func WithGlobal(global any) Option {
	return func(s *settings) { s.global = global }
}

// WithLineSource supplies a ready line source. The App does not close it.
func WithLineSource(src LineSource) Option {
	return func(s *settings) { s.source = src }
}
