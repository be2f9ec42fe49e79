// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/hexlens/internal/convert"
	"github.com/jeranaias/hexlens/internal/ui/styles"
)

// =============================================================================
// ERROR PANEL
// =============================================================================

// ErrorPanel is a styled error box for parse failures. It names the
// problem and suggests a working input shape.
//
// ERROR HANDLING: every parse error carries a concrete suggestion
type ErrorPanel struct {
	title   string
	message string
	tip     string
	visible bool
	width   int
	theme   *styles.Theme
}

// NewErrorPanel creates a hidden error panel.
func NewErrorPanel(theme *styles.Theme) *ErrorPanel {
	return &ErrorPanel{
		theme: theme,
		width: 80,
	}
}

// SetWidth updates the panel width.
func (e *ErrorPanel) SetWidth(width int) {
	e.width = width
}

// Visible reports whether the panel has an error to show.
func (e *ErrorPanel) Visible() bool {
	return e.visible
}

// Clear hides the panel.
func (e *ErrorPanel) Clear() {
	e.visible = false
	e.title = ""
	e.message = ""
	e.tip = ""
}

// SetError fills the panel from a conversion error. Known error types get
// a tailored title and tip; anything else falls back to a generic box.
func (e *ErrorPanel) SetError(err error) {
	if err == nil {
		e.Clear()
		return
	}

	e.visible = true
	e.message = err.Error()

	var formatErr *convert.FormatError
	var widthErr *convert.WidthError
	var rangeErr *convert.RangeError

	switch {
	case errors.As(err, &formatErr):
		e.title = "Invalid input"
		e.tip = `Hex accepts pairs like "DE AD", 0x prefixes, and comma separators.`

	case errors.As(err, &widthErr):
		e.title = "Invalid width"
		e.tip = "Width must be 1, 2, 4, or 8 bytes."

	case errors.As(err, &rangeErr):
		e.title = "Value out of range"
		e.tip = fmt.Sprintf("Press w to widen past %d bytes, or r to change the representation.",
			rangeErr.Width)

	default:
		e.title = "Error"
		e.tip = ""
	}
}

// View renders the error box. Returns the empty string when hidden.
func (e *ErrorPanel) View() string {
	if !e.visible {
		return ""
	}

	boxWidth := e.width - 4
	if boxWidth > 64 {
		boxWidth = 64
	}
	if boxWidth < 24 {
		boxWidth = 24
	}

	lines := []string{
		e.theme.ErrorTitle.Render(e.title),
		e.theme.ErrorMessage.Render(e.message),
	}
	if e.tip != "" {
		lines = append(lines, "", e.theme.ErrorTip.Render(e.tip))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return e.theme.ErrorBox.Width(boxWidth).Render(content)
}
