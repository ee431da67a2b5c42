// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jeranaias/xshell/internal/lineio"
	"github.com/jeranaias/xshell/internal/ui/styles"
)

// =============================================================================
// LOOP STATE
// =============================================================================

// State is the position of the shell loop in its read/parse/dispatch cycle.
type State int32

const (
	Idle State = iota
	Reading
	Parsing
	Dispatching
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Reading:
		return "reading"
	case Parsing:
		return "parsing"
	case Dispatching:
		return "dispatching"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// =============================================================================
// APP
// =============================================================================

// App is an interactive command shell over a Tree of commands.
type App[T any] struct {
	tree       *Tree[T]
	dispatcher *Dispatcher[T]
	ctx        *Context[T]
	settings   settings
	state      atomic.Int32

	// errTheme styles reports on the error writer, which may be a
	// different terminal or a pipe.
	errTheme *styles.Theme
}

// New creates an App named name. Built-in commands are registered unless
// WithoutBuiltins is given.
func New[T any](name string, opts ...Option) *App[T] {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.errOut == nil {
		s.errOut = os.Stderr
	}

	sessionID := uuid.NewString()
	logger := zerolog.Nop()
	if s.logger != nil {
		logger = s.logger.With().Str("session", sessionID).Logger()
	}

	tree := NewTree[T]()
	a := &App[T]{
		tree:       tree,
		dispatcher: NewDispatcher(tree),
		settings:   s,
		errTheme:   styles.NewTheme(s.errOut, s.noColor),
		ctx: &Context[T]{
			Info:      Info{Name: name, Version: s.version, Author: s.author},
			Global:    s.global,
			Out:       s.out,
			Err:       s.errOut,
			Logger:    logger,
			SessionID: sessionID,
			tree:      tree,
			theme:     styles.NewTheme(s.out, s.noColor),
		},
	}

	if s.builtins {
		for _, cmd := range builtinCommands[T]() {
			if err := tree.Register(nil, cmd, nil); err != nil {
				panic(fmt.Sprintf("shell: registering builtin %q: %v", cmd.Name, err))
			}
		}
	}
	return a
}

// Tree returns the command tree.
func (a *App[T]) Tree() *Tree[T] { return a.tree }

// Context returns the execution context shared by all handlers.
func (a *App[T]) Context() *Context[T] { return a.ctx }

// State returns the current loop state.
func (a *App[T]) State() State { return State(a.state.Load()) }

func (a *App[T]) setState(s State) {
	if prev := State(a.state.Swap(int32(s))); prev != s {
		a.ctx.Logger.Trace().Stringer("from", prev).Stringer("to", s).Msg("state change")
	}
}

// AddCommand registers cmd at the root.
func (a *App[T]) AddCommand(cmd Command[T]) error {
	return a.tree.Register(nil, cmd, nil)
}

// AddCommandWithData registers cmd at the root with its own copy of data.
func (a *App[T]) AddCommandWithData(cmd Command[T], data T) error {
	return a.tree.Register(nil, cmd, &data)
}

// AddCommandUnder registers cmd beneath the command at path.
func (a *App[T]) AddCommandUnder(path []string, cmd Command[T]) error {
	return a.tree.Register(path, cmd, nil)
}

// AddCommandUnderWithData registers cmd beneath path with its own copy of data.
func (a *App[T]) AddCommandUnderWithData(path []string, cmd Command[T], data T) error {
	return a.tree.Register(path, cmd, &data)
}

// Complete returns completion candidates for a partial line.
func (a *App[T]) Complete(line string) []string {
	return a.tree.Complete(line)
}

// =============================================================================
// LOOP
// =============================================================================

// Run reads and executes lines until a handler returns Stop, input ends,
// the line source is interrupted, or ctx is cancelled; each of those returns
// nil. An over-long line is reported and skipped. Any other read error ends
// the loop and is returned.
func (a *App[T]) Run(ctx context.Context) error {
	src, owned, err := a.openSource()
	if err != nil {
		a.setState(Terminated)
		return fmt.Errorf("open line source: %w", err)
	}
	if owned {
		defer func() {
			if cerr := src.Close(); cerr != nil {
				a.ctx.Logger.Warn().Err(cerr).Msg("closing line source")
			}
		}()
	}

	src.SetCompleter(a.tree.Complete)
	a.ctx.source = src
	defer func() { a.ctx.source = nil }()

	a.ctx.Logger.Info().Str("app", a.ctx.Info.Name).Msg("shell started")
	defer func() { a.ctx.Logger.Info().Msg("shell stopped") }()

	for {
		if err := ctx.Err(); err != nil {
			a.setState(Terminated)
			return nil
		}

		a.setState(Reading)
		line, err := src.NextLine()
		if errors.Is(err, lineio.ErrLineTooLong) {
			a.report(err)
			continue
		}
		if err != nil {
			a.setState(Terminated)
			if errors.Is(err, io.EOF) || errors.Is(err, lineio.ErrInterrupted) {
				return nil
			}
			return fmt.Errorf("read line: %w", err)
		}

		if outcome, _ := a.execute(line); outcome == Stop {
			a.setState(Terminated)
			return nil
		}
	}
}

// Exec runs a single line the same way the loop does, including error
// reporting, and returns the handler's outcome and error.
func (a *App[T]) Exec(line string) (Outcome, error) {
	outcome, err := a.execute(line)
	if outcome == Stop {
		a.setState(Terminated)
	} else {
		a.setState(Idle)
	}
	return outcome, err
}

func (a *App[T]) execute(line string) (Outcome, error) {
	a.ctx.current = nil
	a.setState(Parsing)
	tokens, err := a.settings.splitter.Split(line)
	if err != nil {
		a.report(err)
		return Continue, err
	}

	a.setState(Dispatching)
	outcome, err := a.dispatcher.Dispatch(a.ctx, tokens)
	if err != nil {
		a.report(err)
		return Continue, err
	}
	return outcome, nil
}

func (a *App[T]) openSource() (LineSource, bool, error) {
	if a.settings.source != nil {
		return a.settings.source, false, nil
	}
	prompt := a.settings.prompt
	if strings.EqualFold(a.settings.backend, lineio.BackendPlain) && prompt != "" {
		prompt = a.ctx.theme.Prompt.Render(prompt)
	}
	src, err := lineio.Open(lineio.Options{
		Backend:      a.settings.backend,
		Prompt:       prompt,
		HistoryFile:  a.settings.historyFile,
		HistoryLimit: a.settings.historyLimit,
		EditMode:     a.settings.editMode,
		In:           a.settings.in,
		Out:          a.settings.out,
	})
	if err != nil {
		return nil, false, err
	}
	return src, true, nil
}

// report prints err on the error writer. Usage errors add the usage line of
// the failing command; a namespace without handler lists its subcommands.
func (a *App[T]) report(err error) {
	w := a.ctx.Err
	theme := a.errTheme
	fmt.Fprintf(w, "%s %v\n", theme.Error.Render("[Error]"), err)

	var de *DispatchError
	if errors.As(err, &de) {
		if errors.Is(de.Kind, ErrNoHandler) {
			if node, ok := a.tree.Lookup(de.Path); ok {
				fmt.Fprintln(w, theme.Warning.Render("Subcommands:"))
				writeListing(w, theme, a.tree.Listing(node))
			}
		}
		return
	}

	if errors.Is(err, ErrUsage) && a.ctx.current != nil {
		fmt.Fprintf(w, "%s %s\n", theme.Heading.Render("Usage:"), a.ctx.current.Usage())
	}
}
