// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

var (
	// ErrUnknownCommand is reported when the first token matches no root command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrNoHandler is reported when a line resolves to a namespace that
	// cannot be executed itself.
	ErrNoHandler = errors.New("command has no handler")

	// ErrDuplicateName is reported when a sibling already uses a name or alias.
	ErrDuplicateName = errors.New("duplicate command name")

	// ErrInvalidName is reported for empty names or names containing whitespace.
	ErrInvalidName = errors.New("invalid command name")

	// ErrUsage is matched by every argument error a handler can return.
	// The shell prints the command's usage line after such errors.
	ErrUsage = errors.New("usage error")

	// ErrBadSyntax means the arguments do not follow the command's usage.
	ErrBadSyntax = fmt.Errorf("%w: bad syntax", ErrUsage)

	// ErrMissingArgument means a required argument was not supplied.
	ErrMissingArgument = fmt.Errorf("%w: missing argument", ErrUsage)

	// ErrNoLineSource is returned by operations that need an attached line editor.
	ErrNoLineSource = errors.New("no line source attached")

	// ErrEditModeUnsupported is returned by mode when the editor has a fixed keymap.
	ErrEditModeUnsupported = errors.New("line editor does not support edit modes")
)

// =============================================================================
// DISPATCH ERRORS
// =============================================================================

// DispatchError describes a line that could not be routed to a handler.
// Kind is ErrUnknownCommand or ErrNoHandler.
type DispatchError struct {
	Kind error
	// Path is the resolved command path; empty for unknown commands.
	Path []string
	// Token is the first token of the line.
	Token string
	// Args holds the tokens left over after resolution.
	Args []string
}

func (e *DispatchError) Error() string {
	if errors.Is(e.Kind, ErrUnknownCommand) {
		return fmt.Sprintf("unknown command %q", e.Token)
	}
	path := strings.Join(e.Path, " ")
	if len(e.Args) > 0 {
		return fmt.Sprintf("%s: unknown subcommand %q", path, e.Args[0])
	}
	return fmt.Sprintf("%s: missing subcommand", path)
}

func (e *DispatchError) Unwrap() error {
	return e.Kind
}

// =============================================================================
// REGISTRATION ERRORS
// =============================================================================

// DuplicateNameError reports a name or alias already used by a sibling.
type DuplicateNameError struct {
	Parent []string
	Name   string
}

func (e *DuplicateNameError) Error() string {
	if len(e.Parent) == 0 {
		return fmt.Sprintf("%s %q at root", ErrDuplicateName, e.Name)
	}
	return fmt.Sprintf("%s %q under %q", ErrDuplicateName, e.Name, strings.Join(e.Parent, " "))
}

func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}

// PathError reports a parent path that does not exist in the tree.
type PathError struct {
	Path []string
	// Missing is the first path element that could not be found.
	Missing string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("parent path %q not found: no command %q", strings.Join(e.Path, " "), e.Missing)
}

// =============================================================================
// PARSE ERRORS
// =============================================================================

// ParseError is returned by splitters that reject a line.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// =============================================================================
// ARGUMENT ERRORS
// =============================================================================

// BadArgumentError reports an argument value the command cannot accept.
type BadArgumentError struct {
	Arg    string
	Reason string
}

func (e *BadArgumentError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("bad argument %q", e.Arg)
	}
	return fmt.Sprintf("bad argument %q: %s", e.Arg, e.Reason)
}

func (e *BadArgumentError) Unwrap() error {
	return ErrUsage
}

// ArgCountError reports the wrong number of arguments.
type ArgCountError struct {
	Min, Max int // Max < 0 means unbounded
	Got      int
}

func (e *ArgCountError) Error() string {
	switch {
	case e.Max < 0:
		return fmt.Sprintf("wanted at least %d argument(s), got %d", e.Min, e.Got)
	case e.Min == e.Max:
		return fmt.Sprintf("wanted %d argument(s), got %d", e.Min, e.Got)
	default:
		return fmt.Sprintf("wanted %d to %d arguments, got %d", e.Min, e.Max, e.Got)
	}
}

func (e *ArgCountError) Unwrap() error {
	return ErrUsage
}

// ExpectArgs checks that len(args) lies within [min, max]. A negative max
// leaves the upper bound open.
func ExpectArgs(args []string, min, max int) error {
	n := len(args)
	if n < min || (max >= 0 && n > max) {
		return &ArgCountError{Min: min, Max: max, Got: n}
	}
	return nil
}
