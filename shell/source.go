// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

// LineSource supplies input lines to the shell loop.
//
// NextLine blocks until a line is available. It returns io.EOF when input
// ends; interrupts may be reported as io.EOF or lineio.ErrInterrupted.
type LineSource interface {
	NextLine() (string, error)
	SetCompleter(fn func(line string) []string)
	Close() error
}

// EditModer is implemented by line sources with switchable key bindings.
type EditModer interface {
	EditMode() string
	SetEditMode(mode string) error
}
