// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jeranaias/xshell/internal/lineio"
	"github.com/jeranaias/xshell/internal/logging"
)

// Edit mode names understood by the mode builtin.
const (
	EditModeEmacs = lineio.EditModeEmacs
	EditModeVi    = lineio.EditModeVi
)

// builtinCommands returns the commands every App registers at its root
// unless WithoutBuiltins is used.
func builtinCommands[T any]() []Command[T] {
	return []Command[T]{
		{
			Name:    "tree",
			About:   "prints the whole command tree",
			Usage:   "tree",
			Handler: HandlerFunc[T](handleTree[T]),
		},
		{
			Name:    "mode",
			About:   "shows or switches the line editor mode",
			Usage:   "mode [vi|emacs]",
			Handler: HandlerFunc[T](handleMode[T]),
		},
		{
			Name:    "log",
			Aliases: []string{"l"},
			About:   "shows or sets the log level filter",
			Usage:   "log [off|error|warn|info|debug|trace]",
			Handler: HandlerFunc[T](handleLog[T]),
		},
		{
			Name:    "help",
			Aliases: []string{"h"},
			About:   "displays help for a command",
			Usage:   "help [command...]",
			Handler: HandlerFunc[T](handleHelp[T]),
		},
		{
			Name:    "exit",
			Aliases: []string{"quit"},
			About:   "leaves the shell",
			Usage:   "exit",
			Handler: HandlerFunc[T](handleExit[T]),
		},
		{
			Name:    "version",
			Aliases: []string{"v"},
			About:   "shows version information",
			Usage:   "version",
			Handler: HandlerFunc[T](handleVersion[T]),
		},
	}
}

// =============================================================================
// HANDLERS
// =============================================================================

func handleHelp[T any](ctx *Context[T], args []string) (Outcome, error) {
	tree := ctx.Tree()
	if len(args) == 0 {
		name := ctx.Info.Name
		if ctx.Info.Version != "" {
			name += " " + ctx.Info.Version
		}
		fmt.Fprintln(ctx.Out, ctx.theme.Heading.Render(name))
		writeListing(ctx.Out, ctx.theme, tree.Listing(tree.Root()))
		return Continue, nil
	}

	node, ok := tree.Lookup(args)
	if !ok {
		return Continue, &BadArgumentError{Arg: strings.Join(args, " "), Reason: "no such command"}
	}
	writeCommandHelp(ctx.Out, ctx.theme, tree, node)
	return Continue, nil
}

func handleTree[T any](ctx *Context[T], args []string) (Outcome, error) {
	if err := ExpectArgs(args, 0, 0); err != nil {
		return Continue, err
	}
	return Continue, writeTree(ctx.Out, ctx.theme, ctx.Tree())
}

func handleExit[T any](ctx *Context[T], _ []string) (Outcome, error) {
	ctx.Logger.Debug().Msg("exit requested")
	return Stop, nil
}

func handleVersion[T any](ctx *Context[T], _ []string) (Outcome, error) {
	info := ctx.Info
	version := info.Version
	if version == "" {
		version = "unknown"
	}
	fmt.Fprintf(ctx.Out, "%s %s\n", info.Name, version)
	if info.Author != "" {
		fmt.Fprintf(ctx.Out, "%s\n", ctx.theme.Muted.Render(info.Author))
	}
	return Continue, nil
}

func handleLog[T any](ctx *Context[T], args []string) (Outcome, error) {
	if err := ExpectArgs(args, 0, 1); err != nil {
		return Continue, err
	}
	if len(args) == 0 {
		fmt.Fprintf(ctx.Out, "log level: %s\n", logging.LevelName(zerolog.GlobalLevel()))
		return Continue, nil
	}

	level, err := logging.ParseLevel(args[0])
	if err != nil {
		return Continue, &BadArgumentError{Arg: args[0], Reason: "unknown log level"}
	}
	zerolog.SetGlobalLevel(level)
	fmt.Fprintln(ctx.Out, ctx.theme.Success.Render("log level set to "+logging.LevelName(level)))
	return Continue, nil
}

func handleMode[T any](ctx *Context[T], args []string) (Outcome, error) {
	if err := ExpectArgs(args, 0, 1); err != nil {
		return Continue, err
	}
	src := ctx.LineSource()
	if src == nil {
		return Continue, ErrNoLineSource
	}
	editor, ok := src.(EditModer)
	if !ok {
		return Continue, ErrEditModeUnsupported
	}

	if len(args) == 0 {
		fmt.Fprintf(ctx.Out, "edit mode: %s\n", editor.EditMode())
		return Continue, nil
	}

	mode := strings.ToLower(args[0])
	if mode != EditModeVi && mode != EditModeEmacs {
		return Continue, &BadArgumentError{Arg: args[0], Reason: "want vi or emacs"}
	}
	if err := editor.SetEditMode(mode); err != nil {
		return Continue, fmt.Errorf("switch edit mode: %w", err)
	}
	fmt.Fprintln(ctx.Out, ctx.theme.Success.Render("edit mode set to "+mode))
	return Continue, nil
}
