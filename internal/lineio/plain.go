// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lineio

import (
	"bufio"
	"fmt"
	"io"
)

// MaxPlainLine is the longest line, in bytes, a PlainSource accepts.
const MaxPlainLine = 1 << 20

// PlainSource reads newline-terminated lines from a stream. It has no
// editing, history or completion.
type PlainSource struct {
	reader *bufio.Reader
	out    io.Writer
	prompt string
}

// NewPlainSource reads from in. When out is non-nil and prompt is not empty,
// the prompt is written before each read.
func NewPlainSource(in io.Reader, out io.Writer, prompt string) *PlainSource {
	return &PlainSource{reader: bufio.NewReaderSize(in, 4096), out: out, prompt: prompt}
}

// NextLine implements Source. A line longer than MaxPlainLine is skipped
// and reported as ErrLineTooLong.
func (p *PlainSource) NextLine() (string, error) {
	if p.out != nil && p.prompt != "" {
		fmt.Fprint(p.out, p.prompt)
	}

	var (
		line    []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := p.reader.ReadLine()
		if err != nil {
			switch {
			case tooLong:
				return "", fmt.Errorf("%w (limit %d bytes)", ErrLineTooLong, MaxPlainLine)
			case len(line) > 0:
				return string(line), nil
			}
			return "", err
		}
		if !tooLong {
			if len(line)+len(chunk) > MaxPlainLine {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", fmt.Errorf("%w (limit %d bytes)", ErrLineTooLong, MaxPlainLine)
	}
	return string(line), nil
}

// SetCompleter implements Source. Completion is not available on streams.
func (p *PlainSource) SetCompleter(func(line string) []string) {}

// Close implements Source. The underlying reader belongs to the caller.
func (p *PlainSource) Close() error { return nil }
