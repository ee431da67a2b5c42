// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the shell packages.
//
// # Key Functions
//
// String Utilities (display width aware, via go-runewidth):
//   - StringWidth: terminal columns occupied by a string
//   - PadRight: pad to a column width, used to align help listings
//   - TruncateWidth: shorten to a column width with an ellipsis
//
// File Operations:
//   - AtomicWriteFile: crash-safe file replacement, used for line history
//
// # Usage
//
//	name := util.PadRight("help, h", 12)
//	err := util.AtomicWriteFile(historyPath, data, 0600)
package util
