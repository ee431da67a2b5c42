// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package lineio provides the line sources that feed the shell loop: a
// liner-based editor, a readline-based editor with vi mode, and a plain
// reader for piped input.
package lineio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/term"
)

// Backend names.
const (
	BackendAuto     = "auto"
	BackendLiner    = "liner"
	BackendReadline = "readline"
	BackendPlain    = "plain"
)

// Backends lists every accepted backend name.
var Backends = []string{BackendAuto, BackendLiner, BackendReadline, BackendPlain}

// ErrInterrupted is returned by NextLine when the user aborts input (Ctrl+C).
var ErrInterrupted = errors.New("lineio: interrupted")

// ErrLineTooLong is returned by NextLine for an input line over the source's
// limit. The line is discarded and the next call reads the following line.
var ErrLineTooLong = errors.New("lineio: line too long")

// Source reads lines from a user or a stream.
type Source interface {
	// NextLine blocks for the next line. It returns io.EOF at end of input.
	NextLine() (string, error)
	// SetCompleter installs fn as the tab completion callback. fn receives
	// the line up to the cursor and returns candidate words for its last token.
	SetCompleter(fn func(line string) []string)
	Close() error
}

// Options configures Open.
type Options struct {
	Backend      string
	Prompt       string
	HistoryFile  string
	HistoryLimit int
	EditMode     string // "emacs" or "vi"

	// In and Out are used by the plain backend. The interactive backends
	// always talk to the process terminal.
	In  io.Reader
	Out io.Writer
}

// Open creates the source selected by opts.Backend. The auto backend picks
// liner when stdin is a terminal and the plain reader otherwise; in the
// latter case no prompt is printed.
func Open(opts Options) (Source, error) {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}

	switch strings.ToLower(opts.Backend) {
	case "", BackendAuto:
		if IsTerminal(in) {
			return NewLinerSource(opts), nil
		}
		return NewPlainSource(in, nil, ""), nil
	case BackendLiner:
		return NewLinerSource(opts), nil
	case BackendReadline:
		return NewReadlineSource(opts)
	case BackendPlain:
		return NewPlainSource(in, opts.Out, opts.Prompt), nil
	default:
		return nil, fmt.Errorf("unknown line source backend %q (want one of %s)", opts.Backend, strings.Join(Backends, ", "))
	}
}

// IsTerminal reports whether r is a terminal file.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Partial splits line into the text before the token being completed and
// the token itself. A line ending in whitespace has an empty partial.
func Partial(line string) (head, partial string) {
	if r, size := utf8.DecodeLastRuneInString(line); size == 0 || unicode.IsSpace(r) {
		return line, ""
	}
	i := strings.LastIndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return "", line
	}
	_, size := utf8.DecodeRuneInString(line[i:])
	return line[:i+size], line[i+size:]
}
