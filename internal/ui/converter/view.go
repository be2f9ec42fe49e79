// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package converter provides the main conversion view for the TUI.
package converter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/hexlens/internal/ui/styles"
)

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m *Model) View() string {
	if m.help.Visible() {
		return m.help.View()
	}

	layout := m.theme.GetLayoutMode()

	var sections []string

	if layout == styles.LayoutNarrow {
		sections = append(sections, m.header.ViewCompact())
	} else {
		sections = append(sections, m.header.View())
	}

	// Narrow terminals drop the input footer line along with the full header
	if layout == styles.LayoutNarrow {
		sections = append(sections, "", m.input.ViewCompact(), "")
	} else {
		sections = append(sections, "", m.input.View(), "")
	}

	if m.errPanel.Visible() && layout != styles.LayoutNarrow {
		sections = append(sections, m.errPanel.View(), "")
	}

	sections = append(sections, m.resultsSection())

	if m.focus == FocusBits {
		sections = append(sections, "", m.bitsSection())
	}

	if m.statusMsg != "" {
		sections = append(sections, "", m.theme.SuccessStyle.Render(m.statusMsg))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Pin the status bar to the bottom of the terminal
	bodyHeight := lipgloss.Height(body)
	gap := m.height - bodyHeight - 1
	if gap > 0 {
		body += strings.Repeat("\n", gap)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusBar.View())
}

// resultsSection renders the result rows inside a group box.
func (m *Model) resultsSection() string {
	content := m.results.View()

	boxWidth := m.width - 4
	if boxWidth < 30 {
		boxWidth = 30
	}

	return m.theme.GroupBox.
		Width(boxWidth).
		Render(content)
}

// bitsSection renders the bit grid with its hex summary line.
func (m *Model) bitsSection() string {
	grid := m.bits.View()
	summary := m.bits.ViewValue(m.endianness)

	boxWidth := m.width - 4
	if boxWidth < 30 {
		boxWidth = 30
	}

	return m.theme.GroupBox.
		Width(boxWidth).
		Render(grid + "\n\n" + summary)
}
