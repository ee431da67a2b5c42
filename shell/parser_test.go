// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "a b c", []string{"a", "b", "c"}},
		{"blank", "   ", []string{}},
		{"empty", "", []string{}},
		{"surrounding whitespace", "  help  tree ", []string{"help", "tree"}},
		{"tabs and newlines", "kv\tset\na 1", []string{"kv", "set", "a", "1"}},
		{"unicode space", "a b", []string{"a", "b"}},
		{"quotes are literal", `say "hello world"`, []string{"say", `"hello`, `world"`}},
		{"backslash is literal", `a\ b`, []string{`a\`, "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldsSplitter(t *testing.T) {
	got, err := FieldsSplitter{}.Split("log  debug")
	require.NoError(t, err)
	assert.Equal(t, []string{"log", "debug"}, got)
}

func TestShellwordsSplitter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "kv set a 1", []string{"kv", "set", "a", "1"}},
		{"double quotes", `kv set greeting "hello world"`, []string{"kv", "set", "greeting", "hello world"}},
		{"single quotes", `echo 'a b'`, []string{"echo", "a b"}},
		{"escaped space", `echo a\ b`, []string{"echo", "a b"}},
		{"no env expansion", "echo $HOME", []string{"echo", "$HOME"}},
		{"blank", "   ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShellwordsSplitter{}.Split(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShellwordsSplitter_UnbalancedQuote(t *testing.T) {
	_, err := ShellwordsSplitter{}.Split(`echo "open`)
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, `echo "open`, perr.Line)
}

func TestShellwordsSplitter_RejectsOperators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		col   string
	}{
		{"ampersand", "kv set url a&b", "'&' at column 13"},
		{"semicolon", "kv set k x;y", "';' at column 11"},
		{"pipe", "kv set k a|b", "'|' at column 11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShellwordsSplitter{}.Split(tt.input)
			assert.Nil(t, got)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.input, perr.Line)
			assert.Contains(t, err.Error(), "unsupported shell operator")
			assert.Contains(t, err.Error(), tt.col)
		})
	}
}

func TestShellwordsSplitter_QuotedOperatorsAreLiteral(t *testing.T) {
	got, err := ShellwordsSplitter{}.Split(`kv set url "a&b" 'x;y' c\|d`)
	require.NoError(t, err)
	assert.Equal(t, []string{"kv", "set", "url", "a&b", "x;y", "c|d"}, got)
}

func TestNewSplitter(t *testing.T) {
	sp, err := NewSplitter("")
	require.NoError(t, err)
	assert.IsType(t, FieldsSplitter{}, sp)

	sp, err = NewSplitter("Shellwords")
	require.NoError(t, err)
	assert.IsType(t, ShellwordsSplitter{}, sp)

	_, err = NewSplitter("regex")
	assert.Error(t, err)
}
