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
// BIT GRID COMPONENT - Per-bit view of the current bytes with toggling
// =============================================================================

// BitGrid displays the current value one bit at a time, grouped per byte.
// A cursor selects a single bit; Toggle flips it in place.
type BitGrid struct {
	bytes    []byte
	cursor   int // bit index: 0 = MSB of first displayed byte
	focused  bool
	width    int
	theme    *styles.Theme
}

// NewBitGrid creates an empty bit grid
func NewBitGrid(theme *styles.Theme) *BitGrid {
	return &BitGrid{
		bytes:  nil,
		cursor: 0,
		width:  80,
		theme:  theme,
	}
}

// SetWidth updates the available width
func (g *BitGrid) SetWidth(width int) {
	g.width = width
}

// SetBytes replaces the displayed bytes, clamping the cursor
func (g *BitGrid) SetBytes(b []byte) {
	g.bytes = b
	max := len(b)*8 - 1
	if g.cursor > max {
		g.cursor = max
	}
	if g.cursor < 0 {
		g.cursor = 0
	}
}

// Bytes returns a copy of the displayed bytes
func (g *BitGrid) Bytes() []byte {
	out := make([]byte, len(g.bytes))
	copy(out, g.bytes)
	return out
}

// Focus enables the bit cursor
func (g *BitGrid) Focus() {
	g.focused = true
}

// Blur hides the bit cursor
func (g *BitGrid) Blur() {
	g.focused = false
}

// Focused reports whether the bit cursor is active
func (g *BitGrid) Focused() bool {
	return g.focused
}

// MoveLeft moves the cursor one bit towards the first byte
func (g *BitGrid) MoveLeft() {
	if g.cursor > 0 {
		g.cursor--
	}
}

// MoveRight moves the cursor one bit towards the last byte
func (g *BitGrid) MoveRight() {
	if g.cursor < len(g.bytes)*8-1 {
		g.cursor++
	}
}

// Cursor returns the current bit index (0 = MSB of the first byte)
func (g *BitGrid) Cursor() int {
	return g.cursor
}

// Toggle flips the bit under the cursor and returns the updated bytes
func (g *BitGrid) Toggle() []byte {
	if len(g.bytes) == 0 {
		return nil
	}
	byteIdx := g.cursor / 8
	bitInByte := 7 - g.cursor%8
	g.bytes[byteIdx] ^= 1 << bitInByte
	return g.Bytes()
}

// View renders the bit grid with byte separators and a bit index ruler
func (g *BitGrid) View() string {
	if len(g.bytes) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true)
		return empty.Render("no bits to show")
	}

	sep := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" | ")

	var bits strings.Builder
	var labels strings.Builder

	for i, b := range g.bytes {
		if i > 0 {
			bits.WriteString(sep)
			labels.WriteString("   ")
		}
		bits.WriteString(g.renderByte(b, i))

		// Byte offset label centered under its 8 bits
		label := "byte " + toStr(i)
		pad := 8 - len(label)
		left := pad / 2
		right := pad - left
		if pad < 0 {
			left, right = 0, 0
		}
		labels.WriteString(strings.Repeat(" ", left))
		labels.WriteString(g.theme.BitIndex.Render(label))
		labels.WriteString(strings.Repeat(" ", right))
	}

	return bits.String() + "\n" + labels.String()
}

// renderByte renders the 8 bits of one byte, MSB first
func (g *BitGrid) renderByte(b byte, byteIdx int) string {
	var out strings.Builder
	for bit := 7; bit >= 0; bit-- {
		idx := byteIdx*8 + (7 - bit)
		set := b&(1<<bit) != 0

		ch := "0"
		style := g.theme.BitClear
		if set {
			ch = "1"
			style = g.theme.BitSet
		}
		if g.focused && idx == g.cursor {
			style = g.theme.BitSelected
		}
		out.WriteString(style.Render(ch))
	}
	return out.String()
}

// ViewValue renders a one-line summary of the grid's bytes as hex,
// honoring the given byte order.
func (g *BitGrid) ViewValue(e convert.Endianness) string {
	if len(g.bytes) == 0 {
		return ""
	}
	hex := convert.FormatHex(g.bytes)
	return g.theme.HexText.Render(hex) + " " +
		lipgloss.NewStyle().Foreground(styles.TextMuted).Render("("+e.String()+"-endian)")
}
