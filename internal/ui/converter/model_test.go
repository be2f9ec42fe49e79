// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package converter provides the main conversion view for the TUI.
package converter

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/hexlens/internal/config"
	"github.com/jeranaias/hexlens/internal/convert"
	"github.com/jeranaias/hexlens/internal/ui/components"
	"github.com/jeranaias/hexlens/internal/ui/styles"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	theme := styles.NewTheme()
	m := New(theme, config.Default())
	m.SetSize(100, 30)
	return m
}

// =============================================================================
// CONSTRUCTION
// =============================================================================

func TestNewDefaults(t *testing.T) {
	m := newTestModel(t)

	if m.focus != FocusInput {
		t.Errorf("focus = %v, want FocusInput", m.focus)
	}
	if m.mode != components.ModeHex {
		t.Errorf("mode = %v, want ModeHex", m.mode)
	}
	if m.endianness != convert.Little {
		t.Errorf("endianness = %v, want Little", m.endianness)
	}
	if m.byteWidth != 4 {
		t.Errorf("byteWidth = %d, want 4", m.byteWidth)
	}
	if m.repr != convert.TwosComplement {
		t.Errorf("repr = %v, want TwosComplement", m.repr)
	}
}

func TestNewNilConfig(t *testing.T) {
	theme := styles.NewTheme()
	m := New(theme, nil)

	// Falls back to defaults instead of panicking
	if m.byteWidth != 4 {
		t.Errorf("byteWidth = %d, want 4", m.byteWidth)
	}
}

// =============================================================================
// CONVERSION
// =============================================================================

func TestRecomputeHex(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("04 B0")
	m.recompute()

	if m.input.Invalid() {
		t.Fatal("valid hex marked invalid")
	}
	if len(m.Bytes()) != 2 {
		t.Fatalf("Bytes() len = %d, want 2", len(m.Bytes()))
	}

	rows := m.results.Rows()
	if len(rows) == 0 {
		t.Fatal("no result rows")
	}
	if rows[0].Label != "Hex" {
		t.Errorf("first row label = %q, want Hex", rows[0].Label)
	}
}

func TestRecomputeHexInvalid(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("GG")
	m.recompute()

	if !m.input.Invalid() {
		t.Error("invalid hex not flagged")
	}
	if m.statusBar.Status != components.StatusError {
		t.Errorf("status = %v, want StatusError", m.statusBar.Status)
	}
}

func TestRecomputeEmpty(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("")
	m.recompute()

	if m.results.Len() != 0 {
		t.Errorf("rows = %d, want 0 for empty input", m.results.Len())
	}
	if m.statusBar.Status != components.StatusIdle {
		t.Errorf("status = %v, want StatusIdle", m.statusBar.Status)
	}
}

func TestRecomputeNumber(t *testing.T) {
	m := newTestModel(t)
	m.setMode(components.ModeNumber)

	// 1200 at width 4 little-endian
	m.input.SetValue("1200")
	m.recompute()

	want := []byte{0xB0, 0x04, 0x00, 0x00}
	got := m.Bytes()
	if len(got) != len(want) {
		t.Fatalf("Bytes() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Bytes() = % X, want % X", got, want)
		}
	}
}

func TestRecomputeNumberNegative(t *testing.T) {
	m := newTestModel(t)
	m.setMode(components.ModeNumber)

	m.byteWidth = 1
	m.input.SetValue("-1")
	m.recompute()

	got := m.Bytes()
	if len(got) != 1 || got[0] != 0xFF {
		t.Errorf("Bytes() = % X, want FF (two's complement -1)", got)
	}
}

func TestRecomputeNumberOutOfRange(t *testing.T) {
	m := newTestModel(t)
	m.setMode(components.ModeNumber)

	m.byteWidth = 1
	m.input.SetValue("300")
	m.recompute()

	if !m.input.Invalid() {
		t.Error("out-of-range number not flagged")
	}
}

func TestRecomputeText(t *testing.T) {
	m := newTestModel(t)
	m.setMode(components.ModeText)

	m.input.SetValue("Hi")
	m.recompute()

	got := m.Bytes()
	if len(got) != 2 || got[0] != 'H' || got[1] != 'i' {
		t.Errorf("Bytes() = % X, want 48 69", got)
	}

	// The ASCII row reflects the original text
	var asciiRow string
	for _, row := range m.results.Rows() {
		if row.Label == "ASCII" {
			asciiRow = row.Value
		}
	}
	if asciiRow != "Hi" {
		t.Errorf("ASCII row = %q, want %q", asciiRow, "Hi")
	}
}

func TestBuildRowsSignedLabel(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("FF")
	m.recompute()

	var found bool
	for _, row := range m.results.Rows() {
		if row.Label == convert.TwosComplement.String() {
			found = true
			if !strings.Contains(row.Value, "-1") {
				t.Errorf("signed row = %q, want -1", row.Value)
			}
		}
	}
	if !found {
		t.Error("missing signed representation row")
	}
}

func TestBuildRowsUnsignedReprOmitsSignedRow(t *testing.T) {
	m := newTestModel(t)
	m.repr = convert.Unsigned

	m.input.SetValue("FF")
	m.recompute()

	for _, row := range m.results.Rows() {
		if row.Kind == components.RowSigned {
			t.Error("unsigned representation should not produce a signed row")
		}
	}
}

func TestBuildRowsLength(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("DE AD BE EF")
	m.recompute()

	var length string
	for _, row := range m.results.Rows() {
		if row.Label == "Length" {
			length = row.Value
		}
	}
	if length != "4 bytes" {
		t.Errorf("length row = %q, want %q", length, "4 bytes")
	}
}

func TestBuildRowsNumberRange(t *testing.T) {
	m := newTestModel(t)
	m.setMode(components.ModeNumber)
	m.byteWidth = 1

	m.input.SetValue("42")
	m.recompute()

	var rng string
	for _, row := range m.results.Rows() {
		if row.Label == "Range" {
			rng = row.Value
		}
	}

	// Width 1, two's complement: -128 to 127
	if rng != "-128 to 127" {
		t.Errorf("range row = %q, want %q", rng, "-128 to 127")
	}
}

func TestThousandsSeparators(t *testing.T) {
	m := newTestModel(t)
	m.groupCycle = [][]int{{8}}
	m.groupIdx = 0

	m.input.SetValue("04B0")
	m.recompute()

	var unsigned string
	for _, row := range m.results.Rows() {
		if row.Label == "Unsigned" {
			unsigned = row.Value
		}
	}

	// 0x04B0 little-endian is 0xB004 = 45060
	if !strings.Contains(unsigned, "45,060") {
		t.Errorf("unsigned row = %q, want thousands separators", unsigned)
	}
}

// =============================================================================
// SETTINGS
// =============================================================================

func TestToggleEndian(t *testing.T) {
	m := newTestModel(t)
	m.groupCycle = [][]int{{8}}
	m.groupIdx = 0

	m.input.SetValue("04 B0")
	m.recompute()
	m.toggleEndian()

	if m.endianness != convert.Big {
		t.Errorf("endianness = %v, want Big", m.endianness)
	}

	// Big-endian: 0x04B0 = 1200
	var unsigned string
	for _, row := range m.results.Rows() {
		if row.Label == "Unsigned" {
			unsigned = row.Value
		}
	}
	if !strings.Contains(unsigned, "1,200") {
		t.Errorf("unsigned row after toggle = %q, want 1,200", unsigned)
	}
}

func TestCycleWidth(t *testing.T) {
	m := newTestModel(t)

	widths := []int{8, 1, 2, 4}
	for _, want := range widths {
		m.cycleWidth()
		if m.byteWidth != want {
			t.Errorf("cycleWidth() = %d, want %d", m.byteWidth, want)
		}
	}
}

func TestCycleRepr(t *testing.T) {
	m := newTestModel(t)

	start := m.repr
	for i := 0; i < len(convert.Representations); i++ {
		m.cycleRepr()
	}
	if m.repr != start {
		t.Errorf("full repr cycle ended at %v, want %v", m.repr, start)
	}
}

func TestCycleGroupChangesLabel(t *testing.T) {
	m := newTestModel(t)

	before := m.groupLabel()
	m.cycleGroup()
	after := m.groupLabel()

	if before == after {
		t.Errorf("groupLabel unchanged after cycle: %q", after)
	}
}

func TestApplyConfigCustomPattern(t *testing.T) {
	cfg := config.Default()
	cfg.Convert.GroupSize = 0
	cfg.Convert.GroupPattern = "1,1,6"

	theme := styles.NewTheme()
	m := New(theme, cfg)

	if m.groupLabel() != "1,1,6" {
		t.Errorf("groupLabel = %q, want %q", m.groupLabel(), "1,1,6")
	}
}

// =============================================================================
// BIT TOGGLING
// =============================================================================

func TestApplyBitToggle(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("00")
	m.recompute()
	m.focusBits()

	m.applyBitToggle()

	got := m.Bytes()
	if len(got) != 1 || got[0] != 0x80 {
		t.Errorf("Bytes() = % X, want 80", got)
	}

	// Hex mode follows the edited value in the input line
	if m.input.Value() != "80" {
		t.Errorf("input = %q, want %q", m.input.Value(), "80")
	}
}

// =============================================================================
// UPDATE
// =============================================================================

func TestUpdateConfigReloaded(t *testing.T) {
	m := newTestModel(t)

	cfg := config.Default()
	cfg.Convert.Endianness = "big"
	cfg.Convert.Width = 2

	m, _ = m.Update(ConfigReloadedMsg{Config: cfg})

	if m.endianness != convert.Big {
		t.Errorf("endianness = %v, want Big after reload", m.endianness)
	}
	if m.byteWidth != 2 {
		t.Errorf("byteWidth = %d, want 2 after reload", m.byteWidth)
	}
}

func TestUpdateWindowSize(t *testing.T) {
	m := newTestModel(t)

	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
}

func TestUpdateCopyResult(t *testing.T) {
	m := newTestModel(t)

	m, cmd := m.Update(CopyResultMsg{Value: "04 B0"})
	if m.statusMsg == "" {
		t.Error("statusMsg empty after copy")
	}
	if cmd == nil {
		t.Error("expected a clear-status command")
	}

	m, _ = m.Update(clearStatusMsg{})
	if m.statusMsg != "" {
		t.Errorf("statusMsg = %q, want empty after clear", m.statusMsg)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should produce a quit command")
	}
}

func TestHandleKeyCycleMode(t *testing.T) {
	m := newTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.mode != components.ModeNumber {
		t.Errorf("mode = %v, want ModeNumber after tab", m.mode)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.mode != components.ModeHex {
		t.Errorf("mode = %v, want ModeHex after shift+tab", m.mode)
	}
}

func TestHandleResultsKeyDigitSelectsMode(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("FF")
	m.recompute()
	m.focusResults()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	if m.mode != components.ModeText {
		t.Errorf("mode = %v, want ModeText after pressing 3", m.mode)
	}
}

// =============================================================================
// VIEW
// =============================================================================

func TestViewRenders(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("DE AD BE EF")
	m.recompute()

	view := m.View()
	if view == "" {
		t.Fatal("View() returned empty string")
	}
	if !strings.Contains(view, "hexlens") {
		t.Error("View() missing header")
	}
	if !strings.Contains(view, "Hex") {
		t.Error("View() missing result rows")
	}
}

func TestViewNarrowLayout(t *testing.T) {
	m := newTestModel(t)
	m.SetSize(40, 20)

	m.input.SetValue("FF")
	m.recompute()

	view := m.View()
	if view == "" {
		t.Fatal("View() returned empty string for narrow layout")
	}
	// The compact input omits the character counter footer
	if strings.Contains(view, "chars") {
		t.Error("narrow View() should not show the character counter")
	}
}

func TestViewHelpOverlay(t *testing.T) {
	m := newTestModel(t)
	m.help.Toggle()

	view := m.View()
	if !strings.Contains(view, "Help") {
		t.Error("View() should render the help overlay when visible")
	}
}
