// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the hexlens TUI.
package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/hexlens/internal/convert"
	"github.com/jeranaias/hexlens/internal/ui/styles"
)

// =============================================================================
// WELCOME COMPONENT - Startup screen shown before the converter
// =============================================================================

// Welcome represents the startup welcome screen
type Welcome struct {
	version    string
	endianness convert.Endianness
	byteWidth  int
	repr       convert.Representation
	width      int
	height     int
	theme      *styles.Theme
}

// NewWelcome creates a new welcome screen component
func NewWelcome(theme *styles.Theme, version string) *Welcome {
	return &Welcome{
		version:    version,
		endianness: convert.Little,
		byteWidth:  4,
		repr:       convert.TwosComplement,
		width:      80,
		height:     24,
		theme:      theme,
	}
}

// SetSize updates the available dimensions
func (w *Welcome) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// SetSettings updates the conversion defaults shown on the screen
func (w *Welcome) SetSettings(e convert.Endianness, width int, r convert.Representation) {
	w.endianness = e
	w.byteWidth = width
	w.repr = r
}

// Init implements tea.Model
func (w *Welcome) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. The welcome screen consumes no messages
// itself; the parent model decides when to dismiss it.
func (w *Welcome) Update(msg tea.Msg) (*Welcome, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		w.SetSize(msg.Width, msg.Height)
	}
	return w, nil
}

// View renders the welcome screen centered in the available space
func (w *Welcome) View() string {
	boxWidth := 62
	if boxWidth > w.width-4 {
		boxWidth = w.width - 4
	}
	if boxWidth < 30 {
		boxWidth = 30
	}

	// Content tiers: drop sections as vertical space shrinks
	availableLines := w.height - 6

	sections := []string{}

	if availableLines >= 14 && w.width >= 60 {
		sections = append(sections, w.renderLogo())
	} else {
		sections = append(sections, w.renderLogoCompact())
	}

	sections = append(sections, w.renderVersion())

	if availableLines >= 10 {
		sections = append(sections, "", w.renderSettings())
	}

	sections = append(sections, "", w.renderPressKey())

	content := strings.Join(sections, "\n")

	box := w.theme.WelcomeBox.
		Width(boxWidth).
		Render(content)

	return lipgloss.Place(
		w.width, w.height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

// renderLogo renders the full ASCII art logo
func (w *Welcome) renderLogo() string {
	logo := strings.Join([]string{
		` _               _                `,
		`| |__   _____  _| | ___ _ __  ___ `,
		`| '_ \ / _ \ \/ / |/ _ \ '_ \/ __|`,
		`| | | |  __/>  <| |  __/ | | \__ \`,
		`|_| |_|\___/_/\_\_|\___|_| |_|___/`,
	}, "\n")

	return w.theme.WelcomeLogo.Render(logo)
}

// renderLogoCompact renders a single-line logo for small terminals
func (w *Welcome) renderLogoCompact() string {
	return w.theme.WelcomeLogo.Render("[ hexlens ]")
}

// renderVersion renders the version line
func (w *Welcome) renderVersion() string {
	version := w.version
	if version == "" {
		version = "dev"
	}
	return w.theme.WelcomeVersion.Render("hex / integer / text converter  v" + version)
}

// renderSettings renders the active conversion defaults
func (w *Welcome) renderSettings() string {
	rows := []struct {
		label string
		value string
	}{
		{"Byte order", w.endianness.String() + "-endian"},
		{"Width", toStr(w.byteWidth) + " bytes"},
		{"Signed as", w.repr.String()},
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(w.theme.WelcomeKey.Render(row.label + ": "))
		b.WriteString(w.theme.WelcomeInfo.Render(row.value))
	}
	return b.String()
}

// renderPressKey renders the dismissal hint
func (w *Welcome) renderPressKey() string {
	return w.theme.WelcomePressKey.Render("press any key to start")
}
