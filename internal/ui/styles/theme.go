// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the hexlens TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	HeaderBrand    lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	InputInvalid     lipgloss.Style

	// ==========================================================================
	// MODE TAB STYLES
	// ==========================================================================

	ModeTab       lipgloss.Style
	ModeTabActive lipgloss.Style

	// ==========================================================================
	// RESULT ROW STYLES
	// ==========================================================================

	RowLabel    lipgloss.Style
	RowSelected lipgloss.Style
	HexText     lipgloss.Style
	DecText     lipgloss.Style
	BinText     lipgloss.Style
	AsciiText   lipgloss.Style
	NegText     lipgloss.Style
	GroupBox    lipgloss.Style

	// ==========================================================================
	// BIT GRID STYLES
	// ==========================================================================

	BitSet      lipgloss.Style
	BitClear    lipgloss.Style
	BitIndex    lipgloss.Style
	BitSelected lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	EndianLittle lipgloss.Style
	EndianBig    lipgloss.Style
	ReprBadge    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// ERROR BOX STYLES
	// ==========================================================================

	ErrorBox     lipgloss.Style
	ErrorTitle   lipgloss.Style
	ErrorMessage lipgloss.Style
	ErrorTip     lipgloss.Style

	// ==========================================================================
	// WELCOME SCREEN STYLES
	// ==========================================================================

	WelcomeBox      lipgloss.Style
	WelcomeLogo     lipgloss.Style
	WelcomeVersion  lipgloss.Style
	WelcomeInfo     lipgloss.Style
	WelcomeKey      lipgloss.Style
	WelcomePressKey lipgloss.Style

	// ==========================================================================
	// HELP OVERLAY STYLES
	// ==========================================================================

	HelpBox   lipgloss.Style
	HelpTitle lipgloss.Style

	// ==========================================================================
	// STATUS INDICATOR STYLES
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderBottom(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.InputInvalid = lipgloss.NewStyle().
		Foreground(Rose)

	// Mode tabs
	t.ModeTab = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 2)

	t.ModeTabActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Purple).
		Bold(true).
		Padding(0, 2)

	// Result rows
	t.RowLabel = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Width(14)

	t.RowSelected = lipgloss.NewStyle().
		Background(SelectionBg).
		Bold(true)

	t.HexText = lipgloss.NewStyle().
		Foreground(HexValue).
		Bold(true)

	t.DecText = lipgloss.NewStyle().
		Foreground(DecValue)

	t.BinText = lipgloss.NewStyle().
		Foreground(BinValue)

	t.AsciiText = lipgloss.NewStyle().
		Foreground(AsciiValue)

	t.NegText = lipgloss.NewStyle().
		Foreground(NegValue).
		Bold(true)

	t.GroupBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1).
		MarginRight(1)

	// Bit grid
	t.BitSet = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.BitClear = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.BitIndex = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.BitSelected = lipgloss.NewStyle().
		Background(SelectionBg).
		Foreground(TextPrimary).
		Bold(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.EndianLittle = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.EndianBig = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.ReprBadge = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Error boxes
	t.ErrorBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Rose).
		Padding(0, 2)

	t.ErrorTitle = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.ErrorMessage = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.ErrorTip = lipgloss.NewStyle().
		Foreground(Cyan).
		Italic(true)

	// Welcome screen
	t.WelcomeBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Purple).
		Padding(2, 4).
		Align(lipgloss.Center)

	t.WelcomeLogo = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.WelcomeVersion = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.WelcomeInfo = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.WelcomeKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.WelcomePressKey = lipgloss.NewStyle().
		Foreground(Purple).
		Blink(true)

	// Help overlay
	t.HelpBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 2)

	t.HelpTitle = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	// Status indicators
	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(SuccessHighContrast).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorHighContrast).
		Bold(true)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(WarningHighContrast).
		Bold(true)

	t.InfoStyle = lipgloss.NewStyle().
		Foreground(InfoHighContrast).
		Bold(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
