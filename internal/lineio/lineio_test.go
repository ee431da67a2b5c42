// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lineio

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartial(t *testing.T) {
	tests := []struct {
		line        string
		wantHead    string
		wantPartial string
	}{
		{"", "", ""},
		{"he", "", "he"},
		{"help ", "help ", ""},
		{"kv se", "kv ", "se"},
		{"kv\tse", "kv\t", "se"},
		{"a  b", "a  ", "b"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			head, partial := Partial(tt.line)
			assert.Equal(t, tt.wantHead, head)
			assert.Equal(t, tt.wantPartial, partial)
		})
	}
}

// =============================================================================
// PLAIN SOURCE TESTS
// =============================================================================

func TestPlainSource_ReadsLinesThenEOF(t *testing.T) {
	src := NewPlainSource(strings.NewReader("help\nkv set a 1\n\nexit"), nil, "")

	var lines []string
	for {
		line, err := src.NextLine()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}

	assert.Equal(t, []string{"help", "kv set a 1", "", "exit"}, lines)
	assert.NoError(t, src.Close())
}

func TestPlainSource_WritesPrompt(t *testing.T) {
	var out bytes.Buffer
	src := NewPlainSource(strings.NewReader("a\n"), &out, "> ")

	line, err := src.NextLine()
	require.NoError(t, err)
	assert.Equal(t, "a", line)

	_, err = src.NextLine()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > ", out.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestPlainSource_ReadError(t *testing.T) {
	src := NewPlainSource(failingReader{}, nil, "")

	_, err := src.NextLine()
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
	assert.Contains(t, err.Error(), "device gone")
}

func TestPlainSource_SkipsOverLongLine(t *testing.T) {
	input := "before\n" + strings.Repeat("x", MaxPlainLine+1) + "\nafter\n"
	src := NewPlainSource(strings.NewReader(input), nil, "")

	line, err := src.NextLine()
	require.NoError(t, err)
	assert.Equal(t, "before", line)

	_, err = src.NextLine()
	assert.ErrorIs(t, err, ErrLineTooLong)

	line, err = src.NextLine()
	require.NoError(t, err)
	assert.Equal(t, "after", line)

	_, err = src.NextLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestPlainSource_LineAtLimit(t *testing.T) {
	long := strings.Repeat("y", MaxPlainLine)
	src := NewPlainSource(strings.NewReader(long+"\r\n"), nil, "")

	line, err := src.NextLine()
	require.NoError(t, err)
	assert.Equal(t, long, line)
}

func TestPlainSource_OverLongFinalLine(t *testing.T) {
	src := NewPlainSource(strings.NewReader(strings.Repeat("z", MaxPlainLine+10)), nil, "")

	_, err := src.NextLine()
	assert.ErrorIs(t, err, ErrLineTooLong)

	_, err = src.NextLine()
	assert.ErrorIs(t, err, io.EOF)
}

// =============================================================================
// OPEN TESTS
// =============================================================================

func TestOpen_PlainBackend(t *testing.T) {
	src, err := Open(Options{Backend: BackendPlain, In: strings.NewReader("tree\n")})
	require.NoError(t, err)
	defer src.Close()

	require.IsType(t, &PlainSource{}, src)
	line, err := src.NextLine()
	require.NoError(t, err)
	assert.Equal(t, "tree", line)
}

func TestOpen_AutoOnPipeIsPlain(t *testing.T) {
	var out bytes.Buffer
	src, err := Open(Options{In: strings.NewReader("x\n"), Out: &out, Prompt: "# "})
	require.NoError(t, err)
	defer src.Close()

	require.IsType(t, &PlainSource{}, src)
	_, err = src.NextLine()
	require.NoError(t, err)
	assert.Empty(t, out.String(), "no prompt for non-terminal input")
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(Options{Backend: "teletype"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "teletype")
}

// =============================================================================
// COMPLETION ADAPTER TESTS
// =============================================================================

func TestFullLineCompletions(t *testing.T) {
	got := fullLineCompletions("kv s", []string{"set", "show"})
	assert.Equal(t, []string{"kv set ", "kv show "}, got)

	assert.Nil(t, fullLineCompletions("zz", nil))
}

func TestReadlineSource_Do(t *testing.T) {
	s := &ReadlineSource{}

	got, n := s.Do([]rune("kv s"), 4)
	assert.Nil(t, got)
	assert.Equal(t, 0, n)

	var seen string
	s.SetCompleter(func(line string) []string {
		seen = line
		return []string{"set", "show"}
	})

	got, n = s.Do([]rune("kv se"), 5)
	assert.Equal(t, "kv se", seen)
	assert.Equal(t, 2, n)
	require.Len(t, got, 1)
	assert.Equal(t, "t ", string(got[0]))
}

func TestReadlineSource_DoCursorInsideLine(t *testing.T) {
	s := &ReadlineSource{}
	s.SetCompleter(func(line string) []string {
		if line == "he" {
			return []string{"help"}
		}
		return nil
	})

	got, n := s.Do([]rune("he extra"), 2)
	assert.Equal(t, 2, n)
	require.Len(t, got, 1)
	assert.Equal(t, "lp ", string(got[0]))
}
