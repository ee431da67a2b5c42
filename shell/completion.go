// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Complete returns the command names and aliases that can follow the
// partially typed line.
//
// Every token except the last must match a command exactly; the last token
// is a prefix. A line ending in whitespace completes an empty prefix, which
// offers child names only. Candidates follow registration order, a node's
// name before its aliases, without duplicates.
func (t *Tree[T]) Complete(line string) []string {
	tokens := Split(line)
	partial := ""
	if len(tokens) > 0 && !endsInSpace(line) {
		partial = tokens[len(tokens)-1]
		tokens = tokens[:len(tokens)-1]
	}

	node := t.root
	for _, tok := range tokens {
		node = node.child(tok)
		if node == nil {
			return nil
		}
	}
	return candidates(node, partial)
}

func candidates[T any](n *Node[T], partial string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, c := range n.children {
		if strings.HasPrefix(c.name, partial) {
			add(c.name)
		}
		if partial == "" {
			continue
		}
		for _, a := range c.aliases {
			if strings.HasPrefix(a, partial) {
				add(a)
			}
		}
	}
	return out
}

func endsInSpace(line string) bool {
	r, size := utf8.DecodeLastRuneInString(line)
	return size > 0 && unicode.IsSpace(r)
}
