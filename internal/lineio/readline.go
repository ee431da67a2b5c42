// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lineio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
)

// Edit modes.
const (
	EditModeEmacs = "emacs"
	EditModeVi    = "vi"
)

// ReadlineSource is a terminal line editor with switchable vi/emacs key
// bindings and a bounded history file.
type ReadlineSource struct {
	inst     *readline.Instance
	complete func(line string) []string
}

// NewReadlineSource opens a readline instance on the terminal.
func NewReadlineSource(opts Options) (*ReadlineSource, error) {
	s := &ReadlineSource{}
	inst, err := readline.NewEx(&readline.Config{
		Prompt:          opts.Prompt,
		HistoryFile:     opts.HistoryFile,
		HistoryLimit:    opts.HistoryLimit,
		AutoComplete:    s,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		VimMode:         strings.EqualFold(opts.EditMode, EditModeVi),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	s.inst = inst
	return s, nil
}

// NextLine implements Source.
func (s *ReadlineSource) NextLine() (string, error) {
	line, err := s.inst.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}
	return line, err
}

// SetCompleter implements Source.
func (s *ReadlineSource) SetCompleter(fn func(line string) []string) {
	s.complete = fn
}

// Do implements readline.AutoCompleter. readline expects the missing suffix
// of each candidate and the length of the partial token being replaced.
func (s *ReadlineSource) Do(line []rune, pos int) ([][]rune, int) {
	if s.complete == nil {
		return nil, 0
	}
	if pos > len(line) {
		pos = len(line)
	}
	text := string(line[:pos])
	_, partial := Partial(text)

	var out [][]rune
	for _, c := range s.complete(text) {
		if strings.HasPrefix(c, partial) {
			out = append(out, []rune(c[len(partial):]+" "))
		}
	}
	return out, len([]rune(partial))
}

// EditMode returns "vi" or "emacs".
func (s *ReadlineSource) EditMode() string {
	if s.inst.IsVimMode() {
		return EditModeVi
	}
	return EditModeEmacs
}

// SetEditMode switches key bindings.
func (s *ReadlineSource) SetEditMode(mode string) error {
	switch strings.ToLower(mode) {
	case EditModeVi:
		s.inst.SetVimMode(true)
	case EditModeEmacs:
		s.inst.SetVimMode(false)
	default:
		return fmt.Errorf("unknown edit mode %q", mode)
	}
	return nil
}

// Close implements Source.
func (s *ReadlineSource) Close() error {
	return s.inst.Close()
}
