// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the hexlens TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/hexlens/internal/convert"
	"github.com/jeranaias/hexlens/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT - Bottom bar with active conversion settings
// =============================================================================

// Status represents the current application status
type Status int

const (
	StatusReady Status = iota
	StatusEditing
	StatusError
	StatusIdle
)

// String returns the display string for the status
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusEditing:
		return "Editing"
	case StatusError:
		return "Error"
	case StatusIdle:
		return "Idle"
	default:
		return "Unknown"
	}
}

// Icon returns an icon for the status
// ACCESSIBILITY: Uses distinct shapes alongside colors for colorblind users
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusEditing:
		return "~"
	case StatusError:
		return styles.StatusIndicators.Error
	case StatusIdle:
		return "-"
	default:
		return "?"
	}
}

// StatusBar represents the bottom status bar
type StatusBar struct {
	Endianness    convert.Endianness     // Active byte order
	ByteWidth     int                    // Active integer width in bytes
	Repr          convert.Representation // Active signed representation
	GroupLabel    string                 // Grouping summary (e.g. "x2" or "1,1,6")
	Status        Status                 // Current status
	Width         int                    // Available width
	ShowShortcuts bool                   // Show keyboard shortcuts
	theme         *styles.Theme
}

// NewStatusBar creates a new StatusBar component
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Endianness:    convert.Little,
		ByteWidth:     4,
		Repr:          convert.TwosComplement,
		GroupLabel:    "x1",
		Status:        StatusReady,
		Width:         80,
		ShowShortcuts: true,
		theme:         theme,
	}
}

// SetWidth updates the status bar width
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetStatus updates the current status
func (s *StatusBar) SetStatus(status Status) {
	s.Status = status
}

// SetSettings updates the displayed conversion settings in one call
func (s *StatusBar) SetSettings(e convert.Endianness, width int, r convert.Representation, group string) {
	s.Endianness = e
	s.ByteWidth = width
	s.Repr = r
	s.GroupLabel = group
}

// View renders the status bar
func (s *StatusBar) View() string {
	width := s.Width
	if width < 40 {
		return s.renderCompact()
	}

	left := s.renderSettings()
	right := s.renderStatus()

	var middle string
	if s.ShowShortcuts && width >= 100 {
		middle = s.renderShortcuts()
	}

	// Pad the middle section to push status to the right edge
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	middleWidth := lipgloss.Width(middle)

	padding := width - leftWidth - rightWidth - middleWidth - 4
	if padding < 1 {
		padding = 1
		middle = ""
		padding = width - leftWidth - rightWidth - 4
		if padding < 1 {
			padding = 1
		}
	}

	line := left + middle + strings.Repeat(" ", padding) + right
	return s.theme.StatusBar.Width(width).Render(line)
}

// renderSettings renders the endian / width / representation / group badges
func (s *StatusBar) renderSettings() string {
	endianStyle := s.theme.EndianLittle
	if s.Endianness == convert.Big {
		endianStyle = s.theme.EndianBig
	}

	parts := []string{
		endianStyle.Render(strings.ToUpper(s.Endianness.String())),
		s.theme.ReprBadge.Render("w" + toStr(s.ByteWidth)),
		s.theme.ReprBadge.Render(s.Repr.Flag()),
	}

	if s.GroupLabel != "" {
		groupStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
		parts = append(parts, groupStyle.Render(s.GroupLabel))
	}

	return strings.Join(parts, " ")
}

// renderStatus renders the status icon and label
func (s *StatusBar) renderStatus() string {
	style := s.getStatusStyle()
	return style.Render(s.Status.Icon() + " " + s.Status.String())
}

// renderShortcuts renders keyboard shortcut hints for wide terminals
func (s *StatusBar) renderShortcuts() string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"tab", "mode"},
		{"e", "endian"},
		{"r", "repr"},
		{"g", "group"},
		{"c", "copy"},
		{"?", "help"},
	}

	parts := make([]string, 0, len(shortcuts))
	for _, sc := range shortcuts {
		parts = append(parts,
			s.theme.ShortcutKey.Render(sc.key)+
				s.theme.ShortcutDesc.Render(":"+sc.desc))
	}

	return "  " + strings.Join(parts, " ")
}

// renderCompact renders a minimal bar for very narrow terminals
func (s *StatusBar) renderCompact() string {
	endianStyle := s.theme.EndianLittle
	if s.Endianness == convert.Big {
		endianStyle = s.theme.EndianBig
	}

	line := endianStyle.Render(strings.ToUpper(s.Endianness.String())) +
		" " + s.theme.ReprBadge.Render("w"+toStr(s.ByteWidth)) +
		" " + s.getStatusStyle().Render(s.Status.Icon())

	return s.theme.StatusBar.Render(line)
}

// getStatusStyle returns the style for the current status
// ACCESSIBILITY: Uses high contrast colors for colorblind users
func (s *StatusBar) getStatusStyle() lipgloss.Style {
	switch s.Status {
	case StatusReady:
		return lipgloss.NewStyle().Foreground(styles.SuccessHighContrast)
	case StatusEditing:
		return lipgloss.NewStyle().Foreground(styles.InfoHighContrast)
	case StatusError:
		return lipgloss.NewStyle().Foreground(styles.ErrorHighContrast).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(styles.TextMuted)
	}
}
