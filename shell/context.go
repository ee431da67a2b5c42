// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/jeranaias/xshell/internal/ui/styles"
)

// Info identifies the host application.
type Info struct {
	Name    string
	Version string
	Author  string
}

// Context is the execution context shared by every handler of an App.
// There is exactly one per App and it is always passed by pointer.
type Context[T any] struct {
	Info Info

	// Global is session-wide user data, distinct from per-command data.
	Global any

	Out io.Writer
	Err io.Writer

	Logger zerolog.Logger

	// SessionID identifies this shell session in logs.
	SessionID string

	tree    *Tree[T]
	source  LineSource
	current *Node[T]
	theme   *styles.Theme
}

// Tree returns the command tree being served.
func (c *Context[T]) Tree() *Tree[T] {
	return c.tree
}

// Command returns the node of the running handler, or of the most recent
// one once it has returned. It is nil before the first dispatch.
func (c *Context[T]) Command() *Node[T] {
	return c.current
}

// LineSource returns the attached line source, or nil outside Run.
func (c *Context[T]) LineSource() LineSource {
	return c.source
}

// Printf writes formatted output to Out.
func (c *Context[T]) Printf(format string, a ...any) {
	fmt.Fprintf(c.Out, format, a...)
}

// Println writes a line to Out.
func (c *Context[T]) Println(a ...any) {
	fmt.Fprintln(c.Out, a...)
}

// GlobalAs returns the context's global data as G.
//
//	store, ok := shell.GlobalAs[*Store](ctx)
func GlobalAs[G any, T any](c *Context[T]) (G, bool) {
	g, ok := c.Global.(G)
	return g, ok
}
