// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import "github.com/mattn/go-runewidth"

// StringWidth returns the number of terminal columns s occupies.
// East Asian wide characters count as two.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadRight pads s with spaces up to width display columns.
// Strings already at least width wide are returned unchanged.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateWidth shortens s to at most maxWidth columns, ending in "..."
// when something was cut.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}
