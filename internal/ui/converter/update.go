// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package converter provides the main conversion view for the TUI.
package converter

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/hexlens/internal/convert"
	"github.com/jeranaias/hexlens/internal/ui/components"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case CopyResultMsg:
		if msg.Err != nil {
			m.statusMsg = "copy failed: " + msg.Err.Error()
		} else {
			m.statusMsg = "copied to clipboard"
		}
		return m, clearStatusCmd(2 * time.Second)

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a key press based on the current focus.
func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	// ctrl+c quits from anywhere
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The help overlay swallows keys until dismissed
	if m.help.Visible() {
		if key.Matches(msg, m.keyMap.Help) || key.Matches(msg, m.keyMap.Back) ||
			key.Matches(msg, m.keyMap.Quit) {
			m.help.Hide()
		}
		return m, nil
	}

	// Tab and shift+tab cycle the input mode from anywhere
	if key.Matches(msg, m.keyMap.CycleMode) {
		m.setMode(m.mode.Next())
		return m, nil
	}
	if key.Matches(msg, m.keyMap.CycleModeRev) {
		m.setMode(m.mode.Prev())
		return m, nil
	}

	switch m.focus {
	case FocusResults:
		return m.handleResultsKey(msg)
	case FocusBits:
		return m.handleBitsKey(msg)
	default:
		return m.handleInputKey(msg)
	}
}

// handleInputKey handles keys while typing. Plain letters are text, so
// only the control variants of the settings shortcuts apply here.
func (m *Model) handleInputKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.results.Len() > 0 {
			m.focusResults()
		}
		return m, nil
	case "esc":
		m.input.Reset()
		m.recompute()
		return m, nil
	case "ctrl+e":
		m.toggleEndian()
		return m, nil
	case "ctrl+r":
		m.cycleRepr()
		return m, nil
	case "ctrl+g":
		m.cycleGroup()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.recompute()
	return m, cmd
}

// handleResultsKey handles keys while a result row is selected.
func (m *Model) handleResultsKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keyMap.Help):
		m.help.Toggle()
	case key.Matches(msg, m.keyMap.Up):
		m.results.MoveUp()
	case key.Matches(msg, m.keyMap.Down):
		m.results.MoveDown()
	case key.Matches(msg, m.keyMap.Copy), key.Matches(msg, m.keyMap.Submit):
		if value := m.results.SelectedValue(); value != "" {
			return m, copyToClipboardCmd(value)
		}
	case key.Matches(msg, m.keyMap.ToggleEndian):
		m.toggleEndian()
	case key.Matches(msg, m.keyMap.CycleWidth):
		m.cycleWidth()
	case key.Matches(msg, m.keyMap.CycleRepr):
		m.cycleRepr()
	case key.Matches(msg, m.keyMap.CycleGroup):
		m.cycleGroup()
	case key.Matches(msg, m.keyMap.ToggleBits):
		if len(m.bytes) > 0 {
			m.focusBits()
		}
	case key.Matches(msg, m.keyMap.Back):
		return m, m.focusInput()
	default:
		// Digits jump straight to a mode while browsing results
		switch msg.String() {
		case "1":
			m.setMode(components.ModeHex)
		case "2":
			m.setMode(components.ModeNumber)
		case "3":
			m.setMode(components.ModeText)
		}
	}

	return m, nil
}

// handleBitsKey handles keys while the bit cursor is active.
func (m *Model) handleBitsKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keyMap.Help):
		m.help.Toggle()
	case key.Matches(msg, m.keyMap.Left):
		m.bits.MoveLeft()
	case key.Matches(msg, m.keyMap.Right):
		m.bits.MoveRight()
	case key.Matches(msg, m.keyMap.ToggleBit):
		m.applyBitToggle()
	case key.Matches(msg, m.keyMap.ToggleBits), key.Matches(msg, m.keyMap.Back):
		m.bits.Blur()
		m.focus = FocusResults
	}

	return m, nil
}

// =============================================================================
// FOCUS TRANSITIONS
// =============================================================================

func (m *Model) focusInput() tea.Cmd {
	m.focus = FocusInput
	m.bits.Blur()
	return m.input.Focus()
}

func (m *Model) focusResults() {
	m.focus = FocusResults
	m.input.Blur()
	m.bits.Blur()
}

func (m *Model) focusBits() {
	m.focus = FocusBits
	m.input.Blur()
	m.bits.Focus()
}

// =============================================================================
// SETTINGS MUTATIONS
// =============================================================================

// setMode switches the input mode and re-parses the current text.
func (m *Model) setMode(mode components.InputMode) {
	m.mode = mode
	m.input.SetMode(mode)
	m.syncStatusBar()
	m.recompute()
}

func (m *Model) toggleEndian() {
	m.endianness = m.endianness.Toggle()
	m.syncStatusBar()
	m.recompute()
}

func (m *Model) cycleWidth() {
	switch m.byteWidth {
	case 1:
		m.byteWidth = 2
	case 2:
		m.byteWidth = 4
	case 4:
		m.byteWidth = 8
	default:
		m.byteWidth = 1
	}
	m.syncStatusBar()
	m.recompute()
}

func (m *Model) cycleRepr() {
	next := (int(m.repr) + 1) % len(convert.Representations)
	m.repr = convert.Representations[next]
	m.syncStatusBar()
	m.recompute()
}

func (m *Model) cycleGroup() {
	m.groupIdx = (m.groupIdx + 1) % len(m.groupCycle)
	m.syncStatusBar()
	// Grouping only changes presentation, not the bytes
	m.results.SetRows(m.buildRows())
}

// applyBitToggle flips the bit under the cursor and propagates the new
// bytes back into the result rows. In hex mode the input line follows
// the edited value; other modes keep their text until the next keystroke.
func (m *Model) applyBitToggle() {
	b := m.bits.Toggle()
	if b == nil {
		return
	}
	m.bytes = b
	m.results.SetRows(m.buildRows())

	if m.mode == components.ModeHex {
		m.input.SetValue(convert.FormatHex(b))
		m.input.ClearInvalid()
		m.errPanel.Clear()
	}
}
