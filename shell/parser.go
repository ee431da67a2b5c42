// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Tokenizer names accepted by NewSplitter.
const (
	TokenizerFields     = "fields"
	TokenizerShellwords = "shellwords"
)

// Split breaks a line into tokens on runs of Unicode whitespace.
// Quote characters have no special meaning. A blank line yields an empty,
// non-nil slice.
func Split(line string) []string {
	fields := strings.Fields(line)
	if fields == nil {
		return []string{}
	}
	return fields
}

// Splitter turns one input line into tokens.
type Splitter interface {
	Split(line string) ([]string, error)
}

// FieldsSplitter is the default splitter. It never fails.
type FieldsSplitter struct{}

// Split implements Splitter.
func (FieldsSplitter) Split(line string) ([]string, error) {
	return Split(line), nil
}

// ShellwordsSplitter honors single quotes, double quotes and backslash
// escapes. Environment and backtick expansion stay disabled.
type ShellwordsSplitter struct{}

// Split implements Splitter. Unbalanced quotes and unquoted shell operators
// (; & | < >) yield a *ParseError.
func (ShellwordsSplitter) Split(line string) ([]string, error) {
	p := shellwords.NewParser()
	p.ParseEnv = false
	p.ParseBacktick = false

	words, err := p.Parse(line)
	if err != nil {
		return nil, &ParseError{Line: line, Err: err}
	}
	// shellwords stops at an operator and reports where; the rest of the
	// line would otherwise be dropped.
	if p.Position >= 0 {
		return nil, &ParseError{Line: line, Err: operatorError(line, p.Position)}
	}
	if words == nil {
		return []string{}, nil
	}
	return words, nil
}

func operatorError(line string, pos int) error {
	runes := []rune(line)
	if pos < len(runes) {
		return fmt.Errorf("unsupported shell operator %q at column %d", runes[pos], pos+1)
	}
	return fmt.Errorf("unsupported shell operator at column %d", pos+1)
}

// NewSplitter returns the splitter registered under name. An empty name
// selects the fields splitter.
func NewSplitter(name string) (Splitter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", TokenizerFields:
		return FieldsSplitter{}, nil
	case TokenizerShellwords:
		return ShellwordsSplitter{}, nil
	default:
		return nil, fmt.Errorf("unknown tokenizer %q (want %s or %s)", name, TokenizerFields, TokenizerShellwords)
	}
}
