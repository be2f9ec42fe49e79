// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the hexlens TUI.
package components

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/hexlens/internal/ui/styles"
)

// =============================================================================
// HELP OVERLAY - Markdown-rendered keybinding and usage reference
// =============================================================================

// helpMarkdown is the full help text shown in the overlay.
const helpMarkdown = `# hexlens

Convert between hex bytes, integers, and text.

## Input modes

| Key | Mode | Example input |
|-----|--------|----------------------|
| tab | HEX | ` + "`DE AD BE EF`" + `, ` + "`0xFF`" + `, ` + "`F00D`" + ` |
| tab | NUMBER | ` + "`1200`" + `, ` + "`-42`" + `, ` + "`0x4B0`" + `, ` + "`0b1011`" + ` |
| tab | TEXT | any text, encoded per byte |

## Settings

- **e** toggle byte order (little / big endian)
- **w** cycle integer width (1, 2, 4, 8 bytes)
- **r** cycle signed representation (unsigned, two's complement,
  one's complement, sign magnitude)
- **g** cycle byte grouping (1, 2, 4, 8 bytes per group)

## Results

- **up / down** select a result row
- **c** copy the selected row to the clipboard
- **b** toggle the bit grid; **left / right** move, **space** flips a bit

## Other

- **?** toggle this help
- **esc** close overlays / clear input
- **q** or **ctrl+c** quit
`

// Help is a toggleable overlay that renders the help text with glamour.
type Help struct {
	visible  bool
	width    int
	height   int
	rendered string
	theme    *styles.Theme
}

// NewHelp creates a hidden help overlay
func NewHelp(theme *styles.Theme) *Help {
	return &Help{
		visible: false,
		width:   80,
		height:  24,
		theme:   theme,
	}
}

// Visible reports whether the overlay is shown
func (h *Help) Visible() bool {
	return h.visible
}

// Toggle shows or hides the overlay
func (h *Help) Toggle() {
	h.visible = !h.visible
	if h.visible && h.rendered == "" {
		h.rendered = h.render()
	}
}

// Hide hides the overlay
func (h *Help) Hide() {
	h.visible = false
}

// SetSize updates the available dimensions and invalidates the cached
// render so the word wrap follows the new width.
func (h *Help) SetSize(width, height int) {
	if width != h.width {
		h.rendered = ""
	}
	h.width = width
	h.height = height
}

// View renders the overlay centered in the available space
func (h *Help) View() string {
	if !h.visible {
		return ""
	}
	if h.rendered == "" {
		h.rendered = h.render()
	}

	boxWidth := h.width - 8
	if boxWidth > 76 {
		boxWidth = 76
	}
	if boxWidth < 40 {
		boxWidth = 40
	}

	box := h.theme.HelpBox.
		Width(boxWidth).
		Render(h.theme.HelpTitle.Render("Help") + "\n" + h.rendered)

	return lipgloss.Place(
		h.width, h.height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

// render runs the markdown through glamour, falling back to the raw
// text if the renderer cannot be constructed.
func (h *Help) render() string {
	wrap := h.width - 14
	if wrap > 70 {
		wrap = 70
	}
	if wrap < 30 {
		wrap = 30
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return helpMarkdown
	}

	rendered, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return rendered
}
