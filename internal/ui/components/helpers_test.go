// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the hexlens TUI.
package components

import (
	"testing"
)

// =============================================================================
// HELPER FUNCTION TESTS
// =============================================================================

func TestToStr(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "0"},
		{1, "1"},
		{9, "9"},
		{10, "10"},
		{123, "123"},
		{1000, "1000"},
		{-1, "-1"},
		{-123, "-123"},
		{-9223372036854775808, "-9223372036854775808"}, // MinInt64 special case
	}

	for _, tc := range tests {
		got := toStr(tc.input)
		if got != tc.want {
			t.Errorf("toStr(%d) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFmtNumber(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "0"},
		{1, "1"},
		{999, "999"},
		{1000, "1,000"},
		{1234, "1,234"},
		{12345, "12,345"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{1234567890, "1,234,567,890"},
		{-1, "-1"},
		{-999, "-999"},
		{-1000, "-1,000"},
		{-1234, "-1,234"},
		{-123456, "-123,456"},
		{-9223372036854775808, "-9,223,372,036,854,775,808"}, // MinInt64
	}

	for _, tc := range tests {
		got := fmtNumber(tc.input)
		if got != tc.want {
			t.Errorf("fmtNumber(%d) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
