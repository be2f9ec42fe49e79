// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual UI components for the hexlens TUI.

This package contains a collection of styled, interactive components built on
top of the Bubble Tea and Lip Gloss libraries. Each component is designed to
be visually polished and consistent with the hexlens design language.

# Core Components

## Input Components

InputArea (input.go) - Styled text input with mode-aware placeholder and
character counter.

## Display Components

Header (header.go) - Application header with brand, version, and mode tabs.
StatusBar (statusbar.go) - Bottom status bar with byte order, width,
representation, grouping, and shortcuts.
ResultList (resultrow.go) - Selectable conversion result rows.
BitGrid (bitgrid.go) - Interactive per-bit view of the current bytes.

## Feedback

ErrorPanel (errorpanel.go) - Parse errors with a concrete suggestion.
Help (help.go) - Markdown help overlay rendered with Glamour.

## Specialized Views

Welcome (welcome.go) - Startup screen showing the active settings.

# Key Types

## Theme Integration

All components accept a *styles.Theme for consistent styling:

	theme := styles.NewTheme()
	header := components.NewHeader(theme)
	header.SetWidth(80)
	header.SetMode(components.ModeNumber)
	view := header.View()

## Bubble Tea Integration

Components that consume messages implement the usual shape:

	type Component interface {
		Init() tea.Cmd
		Update(tea.Msg) (Component, tea.Cmd)
		View() string
	}

# Helper Functions

The package includes shared helper functions in helpers.go:
  - toStr() - Integer to string conversion without fmt
  - fmtNumber() - Thousands-separated integer formatting
*/
package components
