// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styles used for shell output.
// Styles are bound to the renderer of one writer.
type Theme struct {
	Heading lipgloss.Style
	Command lipgloss.Style
	Prompt  lipgloss.Style
	Muted   lipgloss.Style
	Label   lipgloss.Style

	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style

	renderer *lipgloss.Renderer
}

// NewTheme creates a theme for output written to w. noColor forces plain
// ASCII output.
func NewTheme(w io.Writer, noColor bool) *Theme {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	t := &Theme{renderer: r}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	r := t.renderer

	t.Heading = r.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.Command = r.NewStyle().
		Foreground(Cyan)

	t.Prompt = r.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.Muted = r.NewStyle().
		Foreground(TextMuted)

	t.Label = r.NewStyle().
		Foreground(TextSecondary)

	t.Error = r.NewStyle().
		Bold(true).
		Foreground(Rose)

	t.Warning = r.NewStyle().
		Foreground(Amber)

	t.Success = r.NewStyle().
		Foreground(Emerald)
}
