// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"strings"
	"sync"
)

// Dispatcher routes token sequences to handlers.
//
// Invocations are serialized: a second Dispatch blocks until the running
// handler returns. Handlers must not dispatch through the same Dispatcher.
type Dispatcher[T any] struct {
	tree *Tree[T]
	mu   sync.Mutex
}

// NewDispatcher creates a dispatcher over tree.
func NewDispatcher[T any](tree *Tree[T]) *Dispatcher[T] {
	return &Dispatcher[T]{tree: tree}
}

// Dispatch resolves tokens and runs the matching handler, returning its
// result unchanged. Empty input is a no-op. Resolution failures return a
// *DispatchError without invoking any handler.
func (d *Dispatcher[T]) Dispatch(ctx *Context[T], tokens []string) (Outcome, error) {
	if len(tokens) == 0 {
		return Continue, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	node, args, err := d.tree.Resolve(tokens)
	if err != nil {
		ctx.Logger.Debug().Strs("tokens", tokens).Err(err).Msg("dispatch failed")
		return Continue, err
	}

	ctx.current = node
	ctx.Logger.Debug().
		Str("command", strings.Join(node.Path(), " ")).
		Strs("args", args).
		Msg("dispatching")

	outcome, err := node.Handler().Run(ctx, node.Data(), args)
	if err != nil {
		ctx.Logger.Debug().Str("command", node.name).Err(err).Msg("handler failed")
	}
	return outcome, err
}
