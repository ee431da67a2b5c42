// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package shell provides an embeddable interactive command shell.
//
// A host registers a tree of named commands, each with optional aliases,
// help text, a usage string, a handler and per-command user data. The shell
// then reads lines, splits them into tokens, resolves the tokens against the
// tree and invokes the matching handler.
//
// # Key Types
//
//   - App: the shell loop, registration API and one-shot Exec
//   - Tree / Node: the command tree; exact lookup and prefix completion
//   - Dispatcher: routes a token sequence to one handler at a time
//   - Context: state shared by every handler (output, logger, global data)
//   - Handler: HandlerFunc or DataHandlerFunc returning an Outcome
//
// # Built-in Commands
//
//   - help, h: list commands or describe one
//   - tree: print the whole command tree
//   - exit, quit: leave the shell
//   - version, v: show name, version and author
//   - log, l: show or set the log level
//   - mode: switch vi/emacs key bindings where the editor supports it
//
// # Usage
//
//	app := shell.New[Config]("demo", shell.WithVersion("1.0.0"))
//	err := app.AddCommand(shell.Command[Config]{
//	    Name:  "greet",
//	    About: "prints a greeting",
//	    Handler: shell.HandlerFunc[Config](func(ctx *shell.Context[Config], args []string) (shell.Outcome, error) {
//	        ctx.Println("hello", strings.Join(args, " "))
//	        return shell.Continue, nil
//	    }),
//	})
//	if err != nil {
//	    return err
//	}
//	return app.Run(context.Background())
package shell
