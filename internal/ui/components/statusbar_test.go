// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the hexlens TUI.
package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/hexlens/internal/convert"
	"github.com/jeranaias/hexlens/internal/ui/styles"
)

// =============================================================================
// STATUS TESTS
// =============================================================================

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusReady, "Ready"},
		{StatusEditing, "Editing"},
		{StatusError, "Error"},
		{StatusIdle, "Idle"},
		{Status(99), "Unknown"},
	}

	for _, tc := range tests {
		got := tc.status.String()
		if got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestStatusIcon(t *testing.T) {
	// Every status must have a non-empty, distinct icon label
	statuses := []Status{StatusReady, StatusEditing, StatusError, StatusIdle}
	for _, s := range statuses {
		if s.Icon() == "" {
			t.Errorf("Status %v has empty icon", s)
		}
	}
}

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestNewStatusBar(t *testing.T) {
	theme := styles.NewTheme()
	s := NewStatusBar(theme)

	if s == nil {
		t.Fatal("NewStatusBar() returned nil")
	}

	if s.Endianness != convert.Little {
		t.Errorf("NewStatusBar() Endianness = %v, want Little", s.Endianness)
	}

	if s.ByteWidth != 4 {
		t.Errorf("NewStatusBar() ByteWidth = %d, want 4", s.ByteWidth)
	}

	if s.Repr != convert.TwosComplement {
		t.Errorf("NewStatusBar() Repr = %v, want TwosComplement", s.Repr)
	}

	if s.Status != StatusReady {
		t.Errorf("NewStatusBar() Status = %v, want StatusReady", s.Status)
	}
}

func TestStatusBarSetSettings(t *testing.T) {
	theme := styles.NewTheme()
	s := NewStatusBar(theme)

	s.SetSettings(convert.Big, 8, convert.SignMagnitude, "x2")

	if s.Endianness != convert.Big {
		t.Errorf("Endianness = %v, want Big", s.Endianness)
	}
	if s.ByteWidth != 8 {
		t.Errorf("ByteWidth = %d, want 8", s.ByteWidth)
	}
	if s.Repr != convert.SignMagnitude {
		t.Errorf("Repr = %v, want SignMagnitude", s.Repr)
	}
	if s.GroupLabel != "x2" {
		t.Errorf("GroupLabel = %q, want %q", s.GroupLabel, "x2")
	}
}

func TestStatusBarView(t *testing.T) {
	theme := styles.NewTheme()
	s := NewStatusBar(theme)
	s.SetWidth(120)

	view := s.View()
	if view == "" {
		t.Fatal("View() returned empty string")
	}

	if !strings.Contains(view, "LITTLE") {
		t.Error("View() missing endianness badge")
	}
	if !strings.Contains(view, "w4") {
		t.Error("View() missing width badge")
	}
	if !strings.Contains(view, "Ready") {
		t.Error("View() missing status label")
	}
}

func TestStatusBarViewBigEndian(t *testing.T) {
	theme := styles.NewTheme()
	s := NewStatusBar(theme)
	s.SetWidth(120)
	s.SetSettings(convert.Big, 2, convert.OnesComplement, "x4")

	view := s.View()
	if !strings.Contains(view, "BIG") {
		t.Error("View() missing big-endian badge")
	}
	if !strings.Contains(view, "w2") {
		t.Error("View() missing width badge")
	}
}

func TestStatusBarViewCompact(t *testing.T) {
	theme := styles.NewTheme()
	s := NewStatusBar(theme)
	s.SetWidth(30)

	// Narrow width falls back to the compact render
	view := s.View()
	if view == "" {
		t.Fatal("View() at narrow width returned empty string")
	}
	if !strings.Contains(view, "LITTLE") {
		t.Error("compact View() missing endianness")
	}
}

func TestStatusBarShortcuts(t *testing.T) {
	theme := styles.NewTheme()
	s := NewStatusBar(theme)
	s.SetWidth(140)
	s.ShowShortcuts = true

	view := s.View()
	if !strings.Contains(view, "endian") {
		t.Error("wide View() should show shortcut hints")
	}

	s.ShowShortcuts = false
	view = s.View()
	if strings.Contains(view, ":endian") {
		t.Error("View() should hide shortcuts when disabled")
	}
}

func TestStatusBarSetStatus(t *testing.T) {
	theme := styles.NewTheme()
	s := NewStatusBar(theme)
	s.SetWidth(120)

	s.SetStatus(StatusError)
	view := s.View()
	if !strings.Contains(view, "Error") {
		t.Error("View() missing error status")
	}
}
