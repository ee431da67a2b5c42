// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"fmt"
	"strings"
	"unicode"
)

// Tree holds the registered commands under an unnamed root.
//
// A Tree is built during startup and read by the shell loop. Registering
// while the loop runs is permitted but not synchronized.
type Tree[T any] struct {
	root *Node[T]
}

// NewTree creates an empty command tree.
func NewTree[T any]() *Tree[T] {
	return &Tree[T]{root: &Node[T]{}}
}

// Root returns the unnamed root node.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// =============================================================================
// REGISTRATION
// =============================================================================

// Register adds cmd, and recursively its subcommands, under the node at
// parentPath. An empty parentPath registers at the root. data is copied into
// the new node; pass nil for none.
//
// Registration is all or nothing: when any name in cmd's subtree collides,
// the tree is left unchanged.
func (t *Tree[T]) Register(parentPath []string, cmd Command[T], data *T) error {
	parent := t.root
	for i, tok := range parentPath {
		next := parent.child(tok)
		if next == nil {
			return &PathError{Path: append([]string(nil), parentPath...), Missing: parentPath[i]}
		}
		parent = next
	}

	node, err := buildNode(parent.Path(), cmd)
	if err != nil {
		return err
	}
	if err := checkSiblings(parent, parent.Path(), node); err != nil {
		return err
	}
	if data != nil {
		owned := *data
		node.data = &owned
	}

	node.parent = parent
	parent.children = append(parent.children, node)
	return nil
}

// buildNode builds a detached subtree for cmd, validating names on the way.
func buildNode[T any](parentPath []string, cmd Command[T]) (*Node[T], error) {
	if err := validateName(cmd.Name); err != nil {
		return nil, err
	}
	node := &Node[T]{
		name:    cmd.Name,
		about:   cmd.About,
		usage:   cmd.Usage,
		handler: cmd.Handler,
	}

	seen := map[string]bool{cmd.Name: true}
	for _, alias := range cmd.Aliases {
		if err := validateName(alias); err != nil {
			return nil, err
		}
		if seen[alias] {
			return nil, &DuplicateNameError{Parent: parentPath, Name: alias}
		}
		seen[alias] = true
		node.aliases = append(node.aliases, alias)
	}

	path := append(append([]string(nil), parentPath...), cmd.Name)
	for _, sub := range cmd.Subcommands {
		child, err := buildNode(path, sub)
		if err != nil {
			return nil, err
		}
		if err := checkSiblings(node, path, child); err != nil {
			return nil, err
		}
		child.parent = node
		node.children = append(node.children, child)
	}
	return node, nil
}

// checkSiblings rejects node when any of its names is taken under parent.
func checkSiblings[T any](parent *Node[T], parentPath []string, node *Node[T]) error {
	names := append([]string{node.name}, node.aliases...)
	for _, name := range names {
		if parent.child(name) != nil {
			return &DuplicateNameError{Parent: parentPath, Name: name}
		}
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidName, name)
	}
	return nil
}

// =============================================================================
// LOOKUP
// =============================================================================

// Resolve walks tokens down the tree by exact name or alias match and
// returns the deepest matching node with the remaining tokens as arguments.
//
// It fails with a *DispatchError wrapping ErrUnknownCommand when the first
// token matches nothing, or ErrNoHandler when the resolved node has no handler.
func (t *Tree[T]) Resolve(tokens []string) (*Node[T], []string, error) {
	node := t.root
	i := 0
	for ; i < len(tokens); i++ {
		next := node.child(tokens[i])
		if next == nil {
			break
		}
		node = next
	}

	args := append([]string{}, tokens[i:]...)
	if node == t.root {
		first := ""
		if len(tokens) > 0 {
			first = tokens[0]
		}
		return nil, nil, &DispatchError{Kind: ErrUnknownCommand, Token: first, Args: args}
	}
	if !node.Runnable() {
		return nil, nil, &DispatchError{Kind: ErrNoHandler, Path: node.Path(), Token: tokens[0], Args: args}
	}
	return node, args, nil
}

// Lookup finds the node at exactly path. An empty path returns the root.
func (t *Tree[T]) Lookup(path []string) (*Node[T], bool) {
	node := t.root
	for _, tok := range path {
		node = node.child(tok)
		if node == nil {
			return nil, false
		}
	}
	return node, true
}

// =============================================================================
// LISTING
// =============================================================================

// Entry is one line of a help listing.
type Entry struct {
	Names string // name and aliases, e.g. "help, h"
	About string
	Usage string
}

// Listing describes the immediate children of n in registration order.
func (t *Tree[T]) Listing(n *Node[T]) []Entry {
	if n == nil {
		n = t.root
	}
	entries := make([]Entry, 0, len(n.children))
	for _, c := range n.children {
		entries = append(entries, Entry{Names: c.Label(), About: c.about, Usage: c.Usage()})
	}
	return entries
}

// Walk visits every node below the root depth first, in registration order.
// Root children have depth 0. A non-nil error from fn stops the walk.
func (t *Tree[T]) Walk(fn func(n *Node[T], depth int) error) error {
	return walk(t.root, -1, fn)
}

func walk[T any](n *Node[T], depth int, fn func(*Node[T], int) error) error {
	if depth >= 0 {
		if err := fn(n, depth); err != nil {
			return err
		}
	}
	for _, c := range n.children {
		if err := walk(c, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}
