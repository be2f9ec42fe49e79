// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the hexlens TUI application.

This package defines the complete color palette and theme system used
throughout the application. All colors use Lip Gloss AdaptiveColor for
automatic light/dark terminal detection.

# Color System (colors.go)

## Primary Accent Colors

  - Purple - Primary accent for selections and highlighted rows
  - Cyan - Brand color for hex digits and keyboard hints
  - Emerald - Success states and decimal values
  - Amber - Warnings, negative values, and the big-endian indicator
  - Rose - Errors and invalid input

## Value Row Colors

Conversion result rows use one hue per base so the hex, decimal, binary,
and ASCII rows can be told apart at a glance:

	HexValue   - Hex byte rows
	DecValue   - Unsigned/signed decimal rows
	BinValue   - Binary rows
	AsciiValue - ASCII text rows
	NegValue   - Negative signed values

## Text Colors

Hierarchical text color system:

	TextPrimary   - Main content text
	TextSecondary - Supporting text
	TextMuted     - De-emphasized text
	TextInverse   - Text on colored backgrounds

# Theme System (theme.go)

The Theme struct provides runtime color adaptation:

	theme := styles.NewTheme()
	if theme.IsDark {
		// Dark terminal detected
	}
	if theme.HasTrueColor {
		// Terminal supports 16M colors
	}

# Usage Example

	import "github.com/jeranaias/hexlens/internal/ui/styles"

	// Use adaptive colors
	headerStyle := lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextPrimary)

	// Use theme for sizing and layout
	theme := styles.NewTheme()
	theme.SetSize(width, height)
	mode := theme.GetLayoutMode()
*/
package styles
