// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lineio

import (
	"bytes"
	"errors"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/xshell/internal/util"
)

// LinerSource provides input history and line editing on a terminal.
// Supports arrow keys for history navigation and tab completion.
type LinerSource struct {
	line        *liner.State
	prompt      string
	historyFile string
}

// NewLinerSource creates a LinerSource and loads history from
// opts.HistoryFile when set.
func NewLinerSource(opts Options) *LinerSource {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabPrints)

	s := &LinerSource{
		line:        line,
		prompt:      opts.Prompt,
		historyFile: opts.HistoryFile,
	}
	s.loadHistory()
	return s
}

func (s *LinerSource) loadHistory() {
	if s.historyFile == "" {
		return
	}
	if f, err := os.Open(s.historyFile); err == nil {
		s.line.ReadHistory(f)
		f.Close()
	}
}

// saveHistory persists history with owner-only permissions.
func (s *LinerSource) saveHistory() error {
	if s.historyFile == "" {
		return nil
	}
	var buf bytes.Buffer
	if _, err := s.line.WriteHistory(&buf); err != nil {
		return err
	}
	return util.AtomicWriteFile(s.historyFile, buf.Bytes(), 0600)
}

// NextLine implements Source. Non-blank lines are added to history.
func (s *LinerSource) NextLine() (string, error) {
	input, err := s.line.Prompt(s.prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", ErrInterrupted
		}
		return "", err
	}

	if strings.TrimSpace(input) != "" {
		s.line.AppendHistory(input)
	}
	return input, nil
}

// SetCompleter implements Source. liner replaces the whole line, so each
// candidate is expanded back into a full line.
func (s *LinerSource) SetCompleter(fn func(line string) []string) {
	if fn == nil {
		s.line.SetCompleter(nil)
		return
	}
	s.line.SetCompleter(func(line string) []string {
		return fullLineCompletions(line, fn(line))
	})
}

// Close saves history and restores the terminal.
func (s *LinerSource) Close() error {
	herr := s.saveHistory()
	if err := s.line.Close(); err != nil {
		return err
	}
	return herr
}

func fullLineCompletions(line string, candidates []string) []string {
	if len(candidates) == 0 {
		return nil
	}
	head, _ := Partial(line)
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, head+c+" ")
	}
	return out
}
