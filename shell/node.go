// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import "strings"

// =============================================================================
// OUTCOME
// =============================================================================

// Outcome tells the shell loop what to do after a handler returns.
type Outcome int

const (
	// Continue keeps the loop reading lines.
	Continue Outcome = iota
	// Stop terminates the loop.
	Stop
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// =============================================================================
// HANDLERS
// =============================================================================

// Handler executes a command. data is the user data copied into the command
// node at registration and is nil when none was given. args are the tokens
// following the command path.
type Handler[T any] interface {
	Run(ctx *Context[T], data *T, args []string) (Outcome, error)
}

// HandlerFunc adapts a function that ignores per-command data.
type HandlerFunc[T any] func(ctx *Context[T], args []string) (Outcome, error)

// Run implements Handler.
func (f HandlerFunc[T]) Run(ctx *Context[T], _ *T, args []string) (Outcome, error) {
	return f(ctx, args)
}

// DataHandlerFunc adapts a function that receives per-command data.
type DataHandlerFunc[T any] func(ctx *Context[T], data *T, args []string) (Outcome, error)

// Run implements Handler.
func (f DataHandlerFunc[T]) Run(ctx *Context[T], data *T, args []string) (Outcome, error) {
	return f(ctx, data, args)
}

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Command describes a command to register. Subcommands are registered
// beneath it with the same rules.
type Command[T any] struct {
	Name        string
	Aliases     []string
	About       string
	Usage       string
	Handler     Handler[T] // nil for pure namespaces
	Subcommands []Command[T]
}

// =============================================================================
// NODE
// =============================================================================

// Node is a registered command in the tree.
type Node[T any] struct {
	name     string
	aliases  []string
	about    string
	usage    string
	handler  Handler[T]
	data     *T
	parent   *Node[T]
	children []*Node[T]
}

// Name returns the primary name. The root's name is empty.
func (n *Node[T]) Name() string { return n.name }

// Aliases returns a copy of the node's aliases.
func (n *Node[T]) Aliases() []string {
	return append([]string(nil), n.aliases...)
}

// About returns the one-line description shown in listings.
func (n *Node[T]) About() string { return n.about }

// Usage returns the usage string, falling back to the command path.
func (n *Node[T]) Usage() string {
	if n.usage != "" {
		return n.usage
	}
	return strings.Join(n.Path(), " ")
}

// Data returns the node's own copy of its user data, or nil.
func (n *Node[T]) Data() *T { return n.data }

// Handler returns the node's handler, or nil for a namespace.
func (n *Node[T]) Handler() Handler[T] { return n.handler }

// Runnable reports whether the node has a handler.
func (n *Node[T]) Runnable() bool { return n.handler != nil }

// Parent returns the enclosing node, or nil for the root.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// IsRoot reports whether n is the unnamed tree root.
func (n *Node[T]) IsRoot() bool { return n.parent == nil }

// Children returns the child nodes in registration order.
func (n *Node[T]) Children() []*Node[T] {
	return append([]*Node[T](nil), n.children...)
}

// Path returns the names from the root down to n.
func (n *Node[T]) Path() []string {
	var path []string
	for cur := n; cur != nil && !cur.IsRoot(); cur = cur.parent {
		path = append([]string{cur.name}, path...)
	}
	return path
}

// Label joins the name and aliases, e.g. "help, h".
func (n *Node[T]) Label() string {
	if len(n.aliases) == 0 {
		return n.name
	}
	return n.name + ", " + strings.Join(n.aliases, ", ")
}

// matches reports an exact, case-sensitive match on the name or an alias.
func (n *Node[T]) matches(token string) bool {
	if n.name == token {
		return true
	}
	for _, a := range n.aliases {
		if a == token {
			return true
		}
	}
	return false
}

// child returns the first child matching token, in registration order.
func (n *Node[T]) child(token string) *Node[T] {
	for _, c := range n.children {
		if c.matches(token) {
			return c
		}
	}
	return nil
}
