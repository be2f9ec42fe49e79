// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Tests for terminal detection and text wrapping.
package cli

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

// withColors pins color detection for one test and restores it after.
func withColors(t *testing.T, enabled bool) {
	t.Helper()
	prev := ColorsEnabled()
	ForceColorsEnabled(enabled)
	t.Cleanup(func() { ForceColorsEnabled(prev) })
}

func TestForceColorsEnabled(t *testing.T) {
	withColors(t, false)
	if ColorsEnabled() {
		t.Error("ColorsEnabled() = true after forcing off")
	}

	ForceColorsEnabled(true)
	if !ColorsEnabled() {
		t.Error("ColorsEnabled() = false after forcing on")
	}
}

func TestGetColorProfileDisabled(t *testing.T) {
	withColors(t, false)

	if GetColorProfile() != termenv.Ascii {
		t.Errorf("profile = %v, want Ascii when colors are off", GetColorProfile())
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string // expected lines
	}{
		{"short line untouched", "hello world", 40, []string{"hello world"}},
		{"wraps at word boundary", "one two three four", 9, []string{"one two", "three", "four"}},
		{"preserves newlines", "a\nb", 40, []string{"a", "b"}},
		{"empty", "", 40, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Split(WrapText(tt.text, tt.width), "\n")
			if len(got) != len(tt.want) {
				t.Fatalf("WrapText() = %q, want %d lines", got, len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
