// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the hexlens TUI.
package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/hexlens/internal/ui/styles"
)

// =============================================================================
// RESULT LIST TESTS
// =============================================================================

func sampleRows() []Row {
	return []Row{
		{Label: "Hex", Value: "04 B0", Kind: RowHex},
		{Label: "Unsigned", Value: "1,200", Kind: RowUnsigned},
		{Label: "Signed", Value: "1,200", Kind: RowSigned},
		{Label: "Binary", Value: "00000100 10110000", Kind: RowBinary},
		{Label: "ASCII", Value: "..", Kind: RowASCII},
	}
}

func TestNewResultList(t *testing.T) {
	theme := styles.NewTheme()
	r := NewResultList(theme)

	if r == nil {
		t.Fatal("NewResultList() returned nil")
	}

	if r.Len() != 0 {
		t.Errorf("NewResultList() Len = %d, want 0", r.Len())
	}

	if r.SelectedValue() != "" {
		t.Errorf("SelectedValue() on empty list = %q, want empty", r.SelectedValue())
	}
}

func TestResultListSetRows(t *testing.T) {
	theme := styles.NewTheme()
	r := NewResultList(theme)

	r.SetRows(sampleRows())
	if r.Len() != 5 {
		t.Errorf("Len() = %d, want 5", r.Len())
	}

	if r.SelectedIndex() != 0 {
		t.Errorf("SelectedIndex() = %d, want 0", r.SelectedIndex())
	}
}

func TestResultListSelection(t *testing.T) {
	theme := styles.NewTheme()
	r := NewResultList(theme)
	r.SetRows(sampleRows())

	r.MoveDown()
	r.MoveDown()
	if r.SelectedIndex() != 2 {
		t.Errorf("after 2x MoveDown SelectedIndex() = %d, want 2", r.SelectedIndex())
	}

	if r.SelectedValue() != "1,200" {
		t.Errorf("SelectedValue() = %q, want %q", r.SelectedValue(), "1,200")
	}

	r.MoveUp()
	if r.SelectedIndex() != 1 {
		t.Errorf("after MoveUp SelectedIndex() = %d, want 1", r.SelectedIndex())
	}
}

func TestResultListSelectionClamped(t *testing.T) {
	theme := styles.NewTheme()
	r := NewResultList(theme)
	r.SetRows(sampleRows())

	// Selection cannot move past either edge
	for i := 0; i < 10; i++ {
		r.MoveDown()
	}
	if r.SelectedIndex() != 4 {
		t.Errorf("SelectedIndex() = %d, want 4 (last row)", r.SelectedIndex())
	}

	for i := 0; i < 10; i++ {
		r.MoveUp()
	}
	if r.SelectedIndex() != 0 {
		t.Errorf("SelectedIndex() = %d, want 0 (first row)", r.SelectedIndex())
	}
}

func TestResultListSetRowsClampsSelection(t *testing.T) {
	theme := styles.NewTheme()
	r := NewResultList(theme)
	r.SetRows(sampleRows())

	r.MoveDown()
	r.MoveDown()
	r.MoveDown()
	r.MoveDown()

	// Shrinking the row set pulls the selection back in range
	r.SetRows(sampleRows()[:2])
	if r.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex() after shrink = %d, want 1", r.SelectedIndex())
	}
}

func TestResultListView(t *testing.T) {
	theme := styles.NewTheme()
	r := NewResultList(theme)
	r.SetWidth(100)
	r.SetRows(sampleRows())

	view := r.View()
	if view == "" {
		t.Fatal("View() returned empty string")
	}

	for _, row := range sampleRows() {
		if !strings.Contains(view, row.Label) {
			t.Errorf("View() missing label %q", row.Label)
		}
	}

	if !strings.Contains(view, "04 B0") {
		t.Error("View() missing hex value")
	}
}

func TestResultListViewEmpty(t *testing.T) {
	theme := styles.NewTheme()
	r := NewResultList(theme)

	view := r.View()
	if !strings.Contains(view, "no value yet") {
		t.Error("empty View() should show placeholder")
	}
}

func TestResultListViewTruncatesLongValues(t *testing.T) {
	theme := styles.NewTheme()
	r := NewResultList(theme)
	r.SetWidth(40)

	long := strings.Repeat("FF ", 40)
	r.SetRows([]Row{{Label: "Hex", Value: long, Kind: RowHex}})

	view := r.View()
	if !strings.Contains(view, "...") {
		t.Error("View() should truncate values wider than the list")
	}
}
