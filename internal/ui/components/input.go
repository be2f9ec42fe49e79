// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the hexlens TUI.
package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/hexlens/internal/ui/styles"
)

// =============================================================================
// INPUT AREA COMPONENT - Single-line value entry with validation feedback
// =============================================================================

// InputArea wraps a textinput with themed borders and a character counter.
type InputArea struct {
	input    textinput.Model
	maxChars int
	width    int
	focused  bool
	invalid  bool
	errMsg   string
	theme    *styles.Theme
}

// NewInputArea creates a new input area styled for the active theme
func NewInputArea(theme *styles.Theme) *InputArea {
	input := textinput.New()
	input.Placeholder = ModeHex.Placeholder()
	input.Prompt = "> "
	input.CharLimit = 256
	input.Width = 70

	input.PromptStyle = theme.InputPrompt
	input.TextStyle = theme.InputText
	input.PlaceholderStyle = theme.InputPlaceholder
	input.Cursor.Style = lipgloss.NewStyle().Foreground(styles.Cyan)

	return &InputArea{
		input:    input,
		maxChars: 256,
		width:    80,
		focused:  false,
		theme:    theme,
	}
}

// Focus gives keyboard focus to the input
func (i *InputArea) Focus() tea.Cmd {
	i.focused = true
	return i.input.Focus()
}

// Blur removes keyboard focus from the input
func (i *InputArea) Blur() {
	i.focused = false
	i.input.Blur()
}

// Focused reports whether the input has keyboard focus
func (i *InputArea) Focused() bool {
	return i.focused
}

// SetWidth updates the available width
func (i *InputArea) SetWidth(width int) {
	i.width = width

	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	i.input.Width = inputWidth
}

// SetPlaceholder updates the placeholder text
func (i *InputArea) SetPlaceholder(placeholder string) {
	i.input.Placeholder = placeholder
}

// SetMode switches the placeholder to match the input mode and clears
// any validation error from the previous mode.
func (i *InputArea) SetMode(mode InputMode) {
	i.input.Placeholder = mode.Placeholder()
	i.ClearInvalid()
}

// SetInvalid marks the current value as unparseable and records the reason
func (i *InputArea) SetInvalid(msg string) {
	i.invalid = true
	i.errMsg = msg
}

// ClearInvalid resets the validation state
func (i *InputArea) ClearInvalid() {
	i.invalid = false
	i.errMsg = ""
}

// Invalid reports whether the current value failed to parse
func (i *InputArea) Invalid() bool {
	return i.invalid
}

// Value returns the current input text
func (i *InputArea) Value() string {
	return i.input.Value()
}

// SetValue replaces the current input text
func (i *InputArea) SetValue(value string) {
	i.input.SetValue(value)
}

// Reset clears the input and any validation error
func (i *InputArea) Reset() {
	i.input.Reset()
	i.ClearInvalid()
}

// CursorPosition returns the cursor offset in runes
func (i *InputArea) CursorPosition() int {
	return i.input.Position()
}

// Update handles input events
func (i *InputArea) Update(msg tea.Msg) (*InputArea, tea.Cmd) {
	var cmd tea.Cmd
	i.input, cmd = i.input.Update(msg)
	return i, cmd
}

// View renders the input area with a focus-dependent border
func (i *InputArea) View() string {
	borderColor := styles.Overlay
	if i.invalid {
		borderColor = styles.Rose
	} else if i.focused {
		borderColor = styles.FocusRing
	}

	containerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(i.width - 2)

	inputView := containerStyle.Render(i.input.View())

	// Validation error or character counter under the box
	var footer string
	if i.invalid && i.errMsg != "" {
		footer = i.theme.InputInvalid.Render(i.errMsg)
	} else {
		footer = i.renderCharCounter(len([]rune(i.input.Value())))
	}

	footerLine := lipgloss.NewStyle().
		Width(i.width - 4).
		Align(lipgloss.Right).
		Render(footer)

	return lipgloss.JoinVertical(lipgloss.Left, inputView, footerLine)
}

// ViewCompact renders the input without the footer line
func (i *InputArea) ViewCompact() string {
	borderColor := styles.Overlay
	if i.invalid {
		borderColor = styles.Rose
	} else if i.focused {
		borderColor = styles.FocusRing
	}

	containerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(i.width - 2)

	return containerStyle.Render(i.input.View())
}

// ==========================================================================
// HELPER RENDER METHODS
// ==========================================================================

// renderCharCounter renders the character counter with color coding
func (i *InputArea) renderCharCounter(count int) string {
	countStr := fmtNumber(count)
	maxStr := fmtNumber(i.maxChars)

	counterText := countStr + " / " + maxStr + " chars"

	style := i.getCharCountStyle(count)
	return style.Render(counterText)
}

// getCharCountStyle returns the appropriate style for the character count
func (i *InputArea) getCharCountStyle(count int) lipgloss.Style {
	percent := 0.0
	if i.maxChars > 0 {
		percent = float64(count) / float64(i.maxChars) * 100
	}

	if percent >= 90 {
		return lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)
	}
	if percent >= 75 {
		return lipgloss.NewStyle().
			Foreground(styles.Amber)
	}
	if percent >= 50 {
		return lipgloss.NewStyle().
			Foreground(styles.TextSecondary)
	}
	return lipgloss.NewStyle().
		Foreground(styles.TextMuted)
}
