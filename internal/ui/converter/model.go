// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package converter provides the main conversion view for the TUI.
package converter

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/hexlens/internal/config"
	"github.com/jeranaias/hexlens/internal/convert"
	"github.com/jeranaias/hexlens/internal/ui/components"
	"github.com/jeranaias/hexlens/internal/ui/styles"
	"github.com/jeranaias/hexlens/internal/util"
)

// =============================================================================
// FOCUS STATE
// =============================================================================

// Focus identifies which area of the view receives key input.
type Focus int

const (
	FocusInput   Focus = iota // Typing into the input line
	FocusResults              // Selecting a result row
	FocusBits                 // Moving the bit cursor
)

// =============================================================================
// CONVERTER MODEL
// =============================================================================

// Model is the Bubble Tea model for the converter view.
type Model struct {
	// Focus
	focus Focus

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Conversion settings
	mode       components.InputMode
	endianness convert.Endianness
	byteWidth  int
	repr       convert.Representation
	groupIdx   int   // Index into groupCycle
	groupCycle [][]int
	thousands  bool
	showBinary bool

	// Current value
	bytes []byte

	// UI components
	header    *components.Header
	input     *components.InputArea
	results   *components.ResultList
	bits      *components.BitGrid
	statusBar *components.StatusBar
	errPanel  *components.ErrorPanel
	help      *components.Help

	// Key bindings
	keyMap KeyMap

	// Temporary status message (e.g. after a copy)
	statusMsg string
}

// New creates a converter model from the active config.
func New(theme *styles.Theme, cfg *config.Config) *Model {
	m := &Model{
		focus:     FocusInput,
		theme:     theme,
		width:     80,
		height:    24,
		mode:      components.ModeHex,
		header:    components.NewHeader(theme),
		input:     components.NewInputArea(theme),
		results:   components.NewResultList(theme),
		bits:      components.NewBitGrid(theme),
		statusBar: components.NewStatusBar(theme),
		errPanel:  components.NewErrorPanel(theme),
		help:      components.NewHelp(theme),
		keyMap:    DefaultKeyMap(),
	}
	m.applyConfig(cfg)
	return m
}

// applyConfig re-reads the conversion settings from a config.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		cfg = config.Default()
	}

	m.endianness = cfg.Endianness()
	m.byteWidth = cfg.Convert.Width
	m.repr = cfg.Representation()
	m.thousands = cfg.Convert.ThousandsSeparator
	m.showBinary = cfg.UI.ShowBinary

	// The group cycle covers the fixed sizes plus any custom pattern
	// from the config.
	m.groupCycle = nil
	for _, size := range convert.GroupSizes {
		m.groupCycle = append(m.groupCycle, []int{size})
	}
	if pattern := convert.ParseGroupPattern(cfg.Convert.GroupPattern); len(pattern) > 0 {
		m.groupCycle = append(m.groupCycle, pattern)
	}

	m.groupIdx = 0
	for i, sizes := range m.groupCycle {
		if len(sizes) == 1 && sizes[0] == cfg.Convert.GroupSize {
			m.groupIdx = i
		}
	}
	if cfg.Convert.GroupSize == 0 && len(m.groupCycle) > len(convert.GroupSizes) {
		m.groupIdx = len(m.groupCycle) - 1
	}

	m.syncStatusBar()
	m.recompute()
}

// groupSizes returns the active grouping pattern.
func (m *Model) groupSizes() []int {
	return m.groupCycle[m.groupIdx]
}

// groupLabel returns the grouping summary for the status bar.
func (m *Model) groupLabel() string {
	sizes := m.groupSizes()
	if len(sizes) == 1 {
		return "x" + util.IntToString(sizes[0])
	}
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = util.IntToString(s)
	}
	return strings.Join(parts, ",")
}

// syncStatusBar pushes the current settings into the status bar.
func (m *Model) syncStatusBar() {
	m.statusBar.SetSettings(m.endianness, m.byteWidth, m.repr, m.groupLabel())
	m.header.SetMode(m.mode)
}

// SetVersion sets the version shown in the header.
func (m *Model) SetVersion(version string) {
	m.header.SetVersion(version)
}

// Bytes returns a copy of the current byte value.
func (m *Model) Bytes() []byte {
	out := make([]byte, len(m.bytes))
	copy(out, m.bytes)
	return out
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.input.Focus()
}

// SetSize updates the layout dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)
	m.header.SetWidth(width)
	m.input.SetWidth(width)
	m.results.SetWidth(width)
	m.bits.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.errPanel.SetWidth(width)
	m.help.SetSize(width, height)
}

// =============================================================================
// CONVERSION
// =============================================================================

// recompute re-parses the input and rebuilds the result rows.
func (m *Model) recompute() {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		m.bytes = nil
		m.input.ClearInvalid()
		m.results.SetRows(nil)
		m.bits.SetBytes(nil)
		m.errPanel.Clear()
		m.statusBar.SetStatus(components.StatusIdle)
		return
	}

	b, err := m.parseInput(raw)
	if err != nil {
		m.input.SetInvalid(err.Error())
		m.errPanel.SetError(err)
		m.statusBar.SetStatus(components.StatusError)
		return
	}

	m.input.ClearInvalid()
	m.errPanel.Clear()
	m.statusBar.SetStatus(components.StatusReady)
	m.setBytes(b)
}

// parseInput converts the raw input into bytes per the active mode.
func (m *Model) parseInput(raw string) ([]byte, error) {
	switch m.mode {
	case components.ModeNumber:
		return m.parseNumber(raw)
	case components.ModeText:
		return convert.EncodeText(raw), nil
	default:
		return convert.ParseHexBytes(raw)
	}
}

// parseNumber parses a number and encodes it with the active width,
// representation, and byte order.
func (m *Model) parseNumber(raw string) ([]byte, error) {
	if m.repr == convert.Unsigned {
		u, err := convert.ParseUint(raw)
		if err != nil {
			return nil, err
		}
		return convert.UintToBytes(u, m.byteWidth, m.endianness)
	}

	n, err := convert.ParseInt(raw)
	if err != nil {
		return nil, err
	}
	return convert.IntToBytes(n, m.byteWidth, m.repr, m.endianness)
}

// setBytes replaces the current value and rebuilds the dependent views.
func (m *Model) setBytes(b []byte) {
	m.bytes = b
	m.bits.SetBytes(m.Bytes())
	m.results.SetRows(m.buildRows())
}

// buildRows converts the current bytes into display rows.
func (m *Model) buildRows() []components.Row {
	if len(m.bytes) == 0 {
		return nil
	}

	rows := []components.Row{
		{
			Label: "Hex",
			Value: strings.Join(m.groupedHex(), "  "),
			Kind:  components.RowHex,
		},
	}

	groups := m.chunkGroups()

	if unsigned := m.unsignedValues(groups); unsigned != "" {
		rows = append(rows, components.Row{
			Label: "Unsigned",
			Value: unsigned,
			Kind:  components.RowUnsigned,
		})
	}

	if m.repr.Signed() {
		if signed := m.signedValues(groups); signed != "" {
			rows = append(rows, components.Row{
				Label: m.repr.String(),
				Value: signed,
				Kind:  components.RowSigned,
			})
		}
	}

	if m.showBinary {
		rows = append(rows, components.Row{
			Label: "Binary",
			Value: strings.Join(convert.BinaryStrings(m.bytes), " "),
			Kind:  components.RowBinary,
		})
	}

	rows = append(rows, components.Row{
		Label: "ASCII",
		Value: convert.ASCIIString(m.bytes),
		Kind:  components.RowASCII,
	})

	length := util.IntToString(len(m.bytes)) + " bytes"
	if len(m.bytes) == 1 {
		length = "1 byte"
	}
	rows = append(rows, components.Row{
		Label: "Length",
		Value: length,
		Kind:  components.RowInfo,
	})

	if m.mode == components.ModeNumber {
		if lo, hi, err := convert.IntRange(m.byteWidth, m.repr); err == nil {
			rows = append(rows, components.Row{
				Label: "Range",
				Value: m.formatInt(lo) + " to " + m.formatUint(hi),
				Kind:  components.RowInfo,
			})
		}
	}

	return rows
}

// groupedHex renders the bytes as hex groups in the active byte order.
// A single fixed size repeats across the value; a pattern applies once.
func (m *Model) groupedHex() []string {
	sizes := m.groupSizes()
	if len(sizes) == 1 {
		if out, err := convert.GroupedHex(m.bytes, sizes[0], m.endianness); err == nil {
			return out
		}
	}
	return convert.GroupedHexSizes(m.bytes, sizes, m.endianness)
}

// chunkGroups splits the bytes per the active grouping.
func (m *Model) chunkGroups() [][]byte {
	sizes := m.groupSizes()
	if len(sizes) == 1 {
		if groups, err := convert.Chunk(m.bytes, sizes[0]); err == nil {
			return groups
		}
	}
	return convert.ChunkSizes(m.bytes, sizes)
}

// unsignedValues renders each group as an unsigned integer.
func (m *Model) unsignedValues(groups [][]byte) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		u, err := convert.BytesToUint(g, m.endianness)
		if err != nil {
			return ""
		}
		parts = append(parts, m.formatUint(u))
	}
	return strings.Join(parts, "  ")
}

// signedValues renders each group under the active representation.
func (m *Model) signedValues(groups [][]byte) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		n, err := convert.BytesToInt(g, m.repr, m.endianness)
		if err != nil {
			return ""
		}
		parts = append(parts, m.formatInt(n))
	}
	return strings.Join(parts, "  ")
}

// formatUint formats an unsigned value with optional thousands separators.
func (m *Model) formatUint(u uint64) string {
	s := util.Uint64ToString(u)
	if m.thousands {
		return util.GroupDigits(s, ',')
	}
	return s
}

// formatInt formats a signed value with optional thousands separators.
func (m *Model) formatInt(n int64) string {
	s := util.Int64ToString(n)
	if m.thousands {
		return util.GroupDigits(s, ',')
	}
	return s
}
