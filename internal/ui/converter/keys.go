// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package converter provides the main conversion view for the TUI.
//
// This file defines keyboard bindings for the converter interface. Plain
// letter shortcuts only apply while focus is outside the input line; the
// control variants work everywhere.
package converter

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the converter interface.
type KeyMap struct {
	CycleMode    key.Binding
	CycleModeRev key.Binding
	ToggleEndian key.Binding
	CycleWidth   key.Binding
	CycleRepr    key.Binding
	CycleGroup   key.Binding
	ToggleBits   key.Binding
	Copy         key.Binding
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	ToggleBit    key.Binding
	Submit       key.Binding
	Back         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings for the converter interface.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		CycleMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next input mode"),
		),
		CycleModeRev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-Tab", "previous input mode"),
		),
		ToggleEndian: key.NewBinding(
			key.WithKeys("e", "ctrl+e"),
			key.WithHelp("e", "toggle byte order"),
		),
		CycleWidth: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "cycle width"),
		),
		CycleRepr: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "cycle representation"),
		),
		CycleGroup: key.NewBinding(
			key.WithKeys("g", "ctrl+g"),
			key.WithHelp("g", "cycle grouping"),
		),
		ToggleBits: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bit grid"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "ctrl+y"),
			key.WithHelp("c", "copy selected row"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous row"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next row"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "previous bit"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next bit"),
		),
		ToggleBit: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "flip bit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "to results / copy"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back / clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q/C-c", "quit"),
		),
	}
}

// =============================================================================
// KEY BINDING HELPERS
// =============================================================================

// ShortHelp returns the key bindings shown in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CycleMode, k.ToggleEndian, k.Copy, k.Help, k.Quit}
}

// FullHelp returns the key bindings shown in the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Settings
		{k.CycleMode, k.CycleModeRev, k.ToggleEndian, k.CycleWidth, k.CycleRepr, k.CycleGroup},
		// Navigation
		{k.Up, k.Down, k.Left, k.Right},
		// Actions
		{k.Submit, k.Copy, k.ToggleBits, k.ToggleBit},
		// Other
		{k.Back, k.Help, k.Quit},
	}
}
