// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package converter provides the main conversion view for the TUI.
package converter

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/hexlens/internal/config"
)

// =============================================================================
// MESSAGES
// =============================================================================

// ConfigReloadedMsg is sent when the config file watcher detects a change.
// The view re-reads its conversion settings from the new config.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// CopyResultMsg reports the outcome of a clipboard copy.
type CopyResultMsg struct {
	Value string
	Err   error
}

// clearStatusMsg clears a temporary status message after a delay.
type clearStatusMsg struct{}

// =============================================================================
// COMMANDS
// =============================================================================

// copyToClipboardCmd copies a value to the system clipboard.
func copyToClipboardCmd(value string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(value)
		return CopyResultMsg{Value: value, Err: err}
	}
}

// clearStatusCmd schedules the status message to be cleared.
func clearStatusCmd(after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
