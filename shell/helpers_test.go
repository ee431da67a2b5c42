// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptSource replays fixed lines, then returns err (io.EOF when nil).
type scriptSource struct {
	lines     []string
	err       error
	read      int
	completer func(string) []string
	closed    bool
}

func newScript(lines ...string) *scriptSource {
	return &scriptSource{lines: lines}
}

func (s *scriptSource) NextLine() (string, error) {
	if s.read >= len(s.lines) {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.lines[s.read]
	s.read++
	return line, nil
}

func (s *scriptSource) SetCompleter(fn func(string) []string) { s.completer = fn }

func (s *scriptSource) Close() error {
	s.closed = true
	return nil
}

// modeSource adds switchable edit modes to scriptSource.
type modeSource struct {
	*scriptSource
	mode string
}

func (m *modeSource) EditMode() string { return m.mode }

func (m *modeSource) SetEditMode(mode string) error {
	m.mode = mode
	return nil
}

type testData struct {
	Name  string
	Count int
}

// testApp builds an App with captured output and no colors.
func testApp(t *testing.T, src LineSource, opts ...Option) (*App[testData], *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	base := []Option{
		WithOutput(&out, &errOut),
		WithNoColor(true),
		WithVersion("1.2.3"),
		WithAuthor("Test Author"),
	}
	if src != nil {
		base = append(base, WithLineSource(src))
	}
	app := New[testData]("xshell", append(base, opts...)...)
	require.NotNil(t, app)
	return app, &out, &errOut
}

// recorder returns a handler that records its arguments.
func recorder(calls *[][]string, outcome Outcome) HandlerFunc[testData] {
	return func(_ *Context[testData], args []string) (Outcome, error) {
		*calls = append(*calls, args)
		return outcome, nil
	}
}
