// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the hexlens TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/hexlens/internal/ui/styles"
	"github.com/jeranaias/hexlens/internal/util"
)

// =============================================================================
// RESULT LIST COMPONENT - Labeled conversion output rows with selection
// =============================================================================

// RowKind selects the value styling for a result row.
type RowKind int

const (
	RowHex RowKind = iota
	RowUnsigned
	RowSigned
	RowBinary
	RowASCII
	RowInfo
)

// Row is a single labeled conversion result.
type Row struct {
	Label string
	Value string
	Kind  RowKind
}

// ResultList renders conversion results as aligned label/value rows.
// One row can be selected for copying to the clipboard.
type ResultList struct {
	rows     []Row
	selected int
	width    int
	theme    *styles.Theme
}

// NewResultList creates an empty result list
func NewResultList(theme *styles.Theme) *ResultList {
	return &ResultList{
		rows:     nil,
		selected: 0,
		width:    80,
		theme:    theme,
	}
}

// SetWidth updates the available width
func (r *ResultList) SetWidth(width int) {
	r.width = width
}

// SetRows replaces the displayed rows, clamping the selection
func (r *ResultList) SetRows(rows []Row) {
	r.rows = rows
	if r.selected >= len(rows) {
		r.selected = len(rows) - 1
	}
	if r.selected < 0 {
		r.selected = 0
	}
}

// Rows returns the current rows
func (r *ResultList) Rows() []Row {
	return r.rows
}

// Len returns the number of rows
func (r *ResultList) Len() int {
	return len(r.rows)
}

// MoveUp moves the selection up one row
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves the selection down one row
func (r *ResultList) MoveDown() {
	if r.selected < len(r.rows)-1 {
		r.selected++
	}
}

// SelectedIndex returns the index of the selected row
func (r *ResultList) SelectedIndex() int {
	return r.selected
}

// SelectedValue returns the value of the selected row, or "" when empty
func (r *ResultList) SelectedValue() string {
	if len(r.rows) == 0 {
		return ""
	}
	return r.rows[r.selected].Value
}

// View renders the rows with the selection highlighted
func (r *ResultList) View() string {
	if len(r.rows) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true)
		return empty.Render("no value yet")
	}

	var b strings.Builder
	for i, row := range r.rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.renderRow(row, i == r.selected))
	}
	return b.String()
}

// renderRow renders a single label/value row
func (r *ResultList) renderRow(row Row, selected bool) string {
	label := r.theme.RowLabel.Render(row.Label)

	// Truncate long values to the remaining width. The label column is
	// 14 cells wide plus the selection marker.
	maxValue := r.width - 18
	if maxValue < 10 {
		maxValue = 10
	}
	value := util.TruncateWidth(row.Value, maxValue)
	value = r.valueStyle(row.Kind).Render(value)

	marker := "  "
	line := label + value
	if selected {
		marker = lipgloss.NewStyle().Foreground(styles.Cyan).Render("> ")
		line = r.theme.RowSelected.Render(util.PadWidth(row.Label, 14) +
			util.TruncateWidth(row.Value, maxValue))
	}

	return marker + line
}

// valueStyle returns the style for a row kind
func (r *ResultList) valueStyle(kind RowKind) lipgloss.Style {
	switch kind {
	case RowHex:
		return r.theme.HexText
	case RowUnsigned:
		return r.theme.DecText
	case RowSigned:
		return r.theme.NegText
	case RowBinary:
		return r.theme.BinText
	case RowASCII:
		return r.theme.AsciiText
	default:
		return lipgloss.NewStyle().Foreground(styles.TextSecondary)
	}
}
