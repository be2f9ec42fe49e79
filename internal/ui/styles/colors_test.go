// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the hexlens TUI.
package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// COLOR DEFINITION TESTS
// =============================================================================

func TestPrimaryColors(t *testing.T) {
	colors := []struct {
		name  string
		color lipgloss.AdaptiveColor
	}{
		{"Purple", Purple},
		{"Cyan", Cyan},
		{"Emerald", Emerald},
		{"Rose", Rose},
		{"Amber", Amber},
	}

	for _, c := range colors {
		if c.color.Light == "" || c.color.Dark == "" {
			t.Errorf("%s should define both Light and Dark variants", c.name)
		}
		if !strings.HasPrefix(c.color.Light, "#") || !strings.HasPrefix(c.color.Dark, "#") {
			t.Errorf("%s variants should be hex colors", c.name)
		}
	}
}

func TestValueRowColors(t *testing.T) {
	colors := []struct {
		name  string
		color lipgloss.AdaptiveColor
	}{
		{"HexValue", HexValue},
		{"DecValue", DecValue},
		{"BinValue", BinValue},
		{"AsciiValue", AsciiValue},
		{"NegValue", NegValue},
	}

	for _, c := range colors {
		if c.color.Light == "" || c.color.Dark == "" {
			t.Errorf("%s should define both Light and Dark variants", c.name)
		}
	}
}

func TestTextColors(t *testing.T) {
	colors := []struct {
		name  string
		color lipgloss.AdaptiveColor
	}{
		{"TextPrimary", TextPrimary},
		{"TextSecondary", TextSecondary},
		{"TextMuted", TextMuted},
		{"TextInverse", TextInverse},
	}

	for _, c := range colors {
		if c.color.Light == "" || c.color.Dark == "" {
			t.Errorf("%s should define both Light and Dark variants", c.name)
		}
	}
}

// =============================================================================
// STATUS INDICATOR TESTS
// =============================================================================

func TestStatusIndicators(t *testing.T) {
	if StatusIndicators.Success == "" {
		t.Error("StatusIndicators.Success should be defined")
	}
	if StatusIndicators.Error == "" {
		t.Error("StatusIndicators.Error should be defined")
	}
	if StatusIndicators.Warning == "" {
		t.Error("StatusIndicators.Warning should be defined")
	}
	if StatusIndicators.Info == "" {
		t.Error("StatusIndicators.Info should be defined")
	}

	// Verify indicators are distinct
	indicators := []string{
		StatusIndicators.Success,
		StatusIndicators.Error,
		StatusIndicators.Warning,
		StatusIndicators.Info,
	}

	seen := make(map[string]bool)
	for _, ind := range indicators {
		if seen[ind] {
			t.Errorf("Duplicate status indicator: %q", ind)
		}
		seen[ind] = true
	}
}

// =============================================================================
// RENDER FUNCTION TESTS
// =============================================================================

func TestRenderSuccess(t *testing.T) {
	msg := "Operation completed"
	result := RenderSuccess(msg)

	if result == "" {
		t.Error("RenderSuccess() should return non-empty string")
	}

	if !strings.Contains(result, msg) {
		t.Errorf("RenderSuccess() = %q, should contain %q", result, msg)
	}

	// Should contain success indicator
	if !strings.Contains(result, StatusIndicators.Success) {
		t.Error("RenderSuccess() should contain success indicator")
	}
}

func TestRenderError(t *testing.T) {
	msg := "Operation failed"
	result := RenderError(msg)

	if result == "" {
		t.Error("RenderError() should return non-empty string")
	}

	if !strings.Contains(result, msg) {
		t.Errorf("RenderError() = %q, should contain %q", result, msg)
	}

	// Should contain error indicator
	if !strings.Contains(result, StatusIndicators.Error) {
		t.Error("RenderError() should contain error indicator")
	}
}

func TestRenderStatus(t *testing.T) {
	success := RenderStatus(true, "done")
	if !strings.Contains(success, StatusIndicators.Success) {
		t.Error("RenderStatus(true) should use success indicator")
	}

	failure := RenderStatus(false, "failed")
	if !strings.Contains(failure, StatusIndicators.Error) {
		t.Error("RenderStatus(false) should use error indicator")
	}
}

func TestRenderFunctionsEmptyString(t *testing.T) {
	// Render helpers should not panic or produce empty output on empty input
	results := []string{
		RenderSuccess(""),
		RenderError(""),
		RenderWarning(""),
		RenderInfo(""),
	}
	for i, r := range results {
		if r == "" {
			t.Errorf("render helper %d returned empty string for empty message", i)
		}
	}
}
