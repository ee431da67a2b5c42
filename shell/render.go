// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/jeranaias/xshell/internal/ui/styles"
	"github.com/jeranaias/xshell/internal/util"
)

// maxAboutWidth clamps descriptions in listings to one terminal row.
const maxAboutWidth = 60

// writeListing prints one aligned row per entry: names, then description.
func writeListing(w io.Writer, theme *styles.Theme, entries []Entry) {
	width := 0
	for _, e := range entries {
		width = max(width, util.StringWidth(e.Names))
	}
	for _, e := range entries {
		names := theme.Command.Render(util.PadRight(e.Names, width))
		if e.About == "" {
			fmt.Fprintf(w, "  %s\n", names)
			continue
		}
		fmt.Fprintf(w, "  %s  %s\n", names, theme.Muted.Render(util.TruncateWidth(e.About, maxAboutWidth)))
	}
}

func writeCommandHelp[T any](w io.Writer, theme *styles.Theme, tree *Tree[T], n *Node[T]) {
	fmt.Fprintf(w, "%s %s\n", theme.Label.Render("Command:    "), n.Label())
	fmt.Fprintf(w, "%s %s\n", theme.Label.Render("Usage:      "), n.Usage())
	if n.about != "" {
		fmt.Fprintf(w, "%s %s\n", theme.Label.Render("Description:"), n.about)
	}
	if len(n.children) > 0 {
		fmt.Fprintln(w, theme.Heading.Render("Subcommands:"))
		writeListing(w, theme, tree.Listing(n))
	}
}

// writeTree draws every command, indenting nested levels with a branch.
func writeTree[T any](w io.Writer, theme *styles.Theme, tree *Tree[T]) error {
	return tree.Walk(func(n *Node[T], depth int) error {
		prefix := ""
		if depth > 0 {
			prefix = theme.Muted.Render("├" + strings.Repeat("─", depth*4-2))
		}
		_, err := fmt.Fprintf(w, "%s%s\n", prefix, theme.Command.Render(n.Label()))
		return err
	})
}
