// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the output styling used by the shell.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection.

# Color System (colors.go)

  - Purple - headings
  - Cyan - command names
  - Emerald - confirmations
  - Amber - warnings
  - Rose - errors
  - TextSecondary, TextMuted - descriptions and tree branches

# Theme System (theme.go)

A Theme is bound to one output writer. Its renderer inspects that writer, so
styles degrade to plain text when output is piped:

	theme := styles.NewTheme(os.Stderr, false)
	fmt.Println(theme.Error.Render("[Error]"), err)

Passing noColor forces the ASCII profile regardless of the terminal.
*/
package styles
