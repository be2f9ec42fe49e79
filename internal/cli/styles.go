// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Centralized styling for all CLI commands in hexlens.
//
// USABILITY: TTY detection for proper terminal handling
//
// All CLI commands import and use these shared styles instead of
// defining their own, so output stays visually consistent.
//
// Color handling:
// - Colors are automatically disabled for non-TTY output (piped, redirected)
// - Respects NO_COLOR environment variable (https://no-color.org/)
// - Supports FORCE_COLOR environment variable to override detection

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// init configures lipgloss color profile based on terminal capabilities.
// USABILITY: TTY detection for proper terminal handling
func init() {
	// This respects NO_COLOR, FORCE_COLOR, and TTY detection
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES FOR ALL CLI COMMANDS
// =============================================================================

var (
	// TitleStyle is used for command titles and headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")). // Cyan
			MarginBottom(1)

	// LabelStyle is used for field labels (left-aligned prompts)
	// Width: 20 characters by default (can be overridden inline)
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")). // Light gray
			Width(20)

	// ValueStyle is used for regular values and text
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Off-white

	// SuccessStyle is used for success messages and OK statuses
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	// ErrorStyle is used for error messages and failures
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// WarningStyle is used for warnings and cautions
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Yellow/Orange

	// DimStyle is used for secondary information and hints
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")) // Dim gray

	// SeparatorStyle is used for visual separators
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Dark gray

	// HighlightStyle is used for highlighted text and emphasis
	HighlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")) // Bright green
)

// =============================================================================
// SEMANTIC STATUS STYLES
// =============================================================================

var (
	// StatusOKStyle - for successful status checks
	StatusOKStyle = SuccessStyle

	// StatusFailStyle - for failed status checks
	StatusFailStyle = ErrorStyle

	// StatusPendingStyle - for pending/in-progress operations
	StatusPendingStyle = WarningStyle

	// StatusUnknownStyle - for unknown or N/A status
	StatusUnknownStyle = DimStyle
)

// =============================================================================
// HELPER FUNCTIONS FOR COMMON PATTERNS
// =============================================================================

// RenderSeparator renders a horizontal separator line of the specified width.
// Default width is 70 characters if not specified.
func RenderSeparator(width ...int) string {
	w := 70
	if len(width) > 0 && width[0] > 0 {
		w = width[0]
	}
	return SeparatorStyle.Render(strings.Repeat("=", w))
}

// RenderStatus renders a status indicator with appropriate color.
// status should be one of: "ok", "success", "error", "fail", "warning", "pending"
func RenderStatus(status string) string {
	switch strings.ToLower(status) {
	case "ok", "success", "pass":
		return StatusOKStyle.Render("[OK]")
	case "error", "fail", "failed":
		return StatusFailStyle.Render("[FAIL]")
	case "warning", "warn", "pending":
		return StatusPendingStyle.Render("[WARN]")
	default:
		return StatusUnknownStyle.Render("[" + strings.ToUpper(status) + "]")
	}
}

// RenderLabel renders a label with consistent width.
// If width is specified, it overrides the default 20 characters.
func RenderLabel(label string, width ...int) string {
	if len(width) > 0 && width[0] > 0 {
		return LabelStyle.Width(width[0]).Render(label)
	}
	return LabelStyle.Render(label)
}

// RenderWrapped renders text wrapped to terminal width with optional style.
// USABILITY: TTY detection for proper terminal handling
func RenderWrapped(style lipgloss.Style, text string) string {
	wrapped := WrapText(text, GetTerminalWidth())
	if !ColorsEnabled() {
		return wrapped
	}
	return style.Render(wrapped)
}
