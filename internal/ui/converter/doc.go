// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package converter provides the main conversion view for the TUI.
//
// The view is a Bubble Tea model with three focus areas: the input line,
// the result rows, and the bit grid. Typing into the input re-converts on
// every keystroke; the result rows show the value as hex, unsigned and
// signed integers, binary, and ASCII, honoring the active byte order,
// width, representation, and grouping settings.
package converter
