// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// THEME CREATION TESTS
// =============================================================================

func TestNewTheme(t *testing.T) {
	var buf bytes.Buffer
	theme := NewTheme(&buf, false)

	require.NotNil(t, theme)
	assert.Contains(t, theme.Heading.Render("x"), "x")
}

func TestNewTheme_NoColorForcesASCII(t *testing.T) {
	var buf bytes.Buffer
	theme := NewTheme(&buf, true)

	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Heading", theme.Heading},
		{"Command", theme.Command},
		{"Prompt", theme.Prompt},
		{"Muted", theme.Muted},
		{"Label", theme.Label},
		{"Error", theme.Error},
		{"Warning", theme.Warning},
		{"Success", theme.Success},
	}

	for _, s := range styles {
		t.Run(s.name, func(t *testing.T) {
			assert.Equal(t, "test", s.style.Render("test"))
		})
	}
}
