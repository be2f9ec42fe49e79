// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the hexlens TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/hexlens/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT - Title bar with hexlens branding and mode tabs
// =============================================================================

// InputMode represents what kind of value is being typed into the input.
type InputMode int

const (
	ModeHex InputMode = iota
	ModeNumber
	ModeText
)

// String returns the display string for the mode
func (m InputMode) String() string {
	switch m {
	case ModeHex:
		return "HEX"
	case ModeNumber:
		return "NUMBER"
	case ModeText:
		return "TEXT"
	default:
		return "UNKNOWN"
	}
}

// Placeholder returns the input placeholder shown for the mode.
func (m InputMode) Placeholder() string {
	switch m {
	case ModeHex:
		return "Enter hex bytes (e.g. DE AD BE EF, 0xFF, or F00D)..."
	case ModeNumber:
		return "Enter a number (e.g. 1200, -42, 0x4B0, 0b1011)..."
	case ModeText:
		return "Enter text to encode..."
	default:
		return ""
	}
}

// InputModes lists every mode in tab order.
var InputModes = []InputMode{ModeHex, ModeNumber, ModeText}

// Next returns the mode after m, wrapping around.
func (m InputMode) Next() InputMode {
	return InputMode((int(m) + 1) % len(InputModes))
}

// Prev returns the mode before m, wrapping around.
func (m InputMode) Prev() InputMode {
	return InputMode((int(m) + len(InputModes) - 1) % len(InputModes))
}

// Header represents the title bar component
type Header struct {
	Title   string    // Main title (default: "hexlens")
	Version string    // Release version shown next to the title
	Mode    InputMode // Active input mode
	Width   int       // Available width
	theme   *styles.Theme
}

// NewHeader creates a new Header component with default values
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:   "hexlens",
		Version: "",
		Mode:    ModeHex,
		Width:   80,
		theme:   theme,
	}
}

// SetWidth updates the header width
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetVersion updates the displayed version string
func (h *Header) SetVersion(version string) {
	h.Version = version
}

// SetMode updates the active input mode
func (h *Header) SetMode(mode InputMode) {
	h.Mode = mode
}

// View renders the header component
func (h *Header) View() string {
	// Ensure minimum width
	width := h.Width
	if width < 40 {
		width = 40
	}

	// Brand title with decorative elements
	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Cyan)

	accentStyle := lipgloss.NewStyle().
		Foreground(styles.Purple)

	brand := accentStyle.Render("< ") +
		brandStyle.Render(h.Title) +
		accentStyle.Render(" >")

	if h.Version != "" {
		versionStyle := lipgloss.NewStyle().
			Foreground(styles.TextMuted)
		brand += " " + versionStyle.Render("v"+h.Version)
	}

	// Mode tabs: the active mode gets the highlighted tab style
	tabs := make([]string, 0, len(InputModes))
	for _, mode := range InputModes {
		if mode == h.Mode {
			tabs = append(tabs, h.theme.ModeTabActive.Render(mode.String()))
		} else {
			tabs = append(tabs, h.theme.ModeTab.Render(mode.String()))
		}
	}
	tabLine := strings.Join(tabs, " ")

	brandLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(brand)

	tabRow := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(tabLine)

	return lipgloss.JoinVertical(lipgloss.Left, brandLine, tabRow)
}

// ViewCompact renders a single-line header for narrow terminals
func (h *Header) ViewCompact() string {
	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Cyan)

	modeStyle := h.theme.ModeTabActive

	return brandStyle.Render(h.Title) + " " + modeStyle.Render(h.Mode.String())
}
