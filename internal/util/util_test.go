// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the hexlens application.
package util

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile_Basic(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.txt")
	data := []byte("hello, world!")

	err := AtomicWriteFile(path, data, 0644)
	if err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	// Verify content
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != string(data) {
		t.Errorf("Content mismatch: got %q, want %q", string(content), string(data))
	}
}

func TestAtomicWriteFile_CreatesParentDir(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "subdir", "deep", "test.txt")
	data := []byte("test data")

	err := AtomicWriteFile(path, data, 0644)
	if err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("File not created: %v", err)
	}
}

func TestAtomicWriteFile_Overwrites(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.txt")

	// Write initial content
	if err := AtomicWriteFile(path, []byte("initial"), 0644); err != nil {
		t.Fatalf("First write failed: %v", err)
	}

	// Overwrite
	if err := AtomicWriteFile(path, []byte("updated"), 0644); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	// Verify new content
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != "updated" {
		t.Errorf("Content not updated: got %q", string(content))
	}
}

func TestAtomicWriteFile_EmptyData(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "empty.txt")

	err := AtomicWriteFile(path, []byte{}, 0644)
	if err != nil {
		t.Fatalf("AtomicWriteFile failed for empty data: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("File not created: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("Expected empty file, got size %d", info.Size())
	}
}

// =============================================================================
// STRING TRUNCATION TESTS
// =============================================================================

func TestTruncateRunes_ASCII(t *testing.T) {
	testCases := []struct {
		input    string
		maxRunes int
		expected string
	}{
		{"hello world", 5, "he..."},
		{"hello", 5, "hello"},
		{"hi", 5, "hi"},
		{"", 5, ""},
		{"hello world", 0, ""},
		{"hello world", 11, "hello world"},
		{"ab", 3, "ab"},
		{"abcd", 3, "abc"}, // When maxRunes <= 3, no ellipsis is added
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := TruncateRunes(tc.input, tc.maxRunes)
			if result != tc.expected {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q",
					tc.input, tc.maxRunes, result, tc.expected)
			}
		})
	}
}

func TestTruncateRunes_UTF8(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		maxRunes int
	}{
		{"emoji", "hello 👋 world", 7},
		{"chinese", "你好世界", 3},
		{"mixed", "hi 日本", 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := TruncateRunes(tc.input, tc.maxRunes)
			if len([]rune(result)) > tc.maxRunes {
				t.Errorf("TruncateRunes result %q has %d runes, want <= %d",
					result, len([]rune(result)), tc.maxRunes)
			}
		})
	}
}

func TestTruncateWidth(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		maxWidth    int
		shouldTrunc bool
	}{
		{"ascii short", "hello", 10, false},
		{"ascii exact", "hello", 5, false},
		{"ascii truncate", "hello world", 5, true},
		{"cjk truncate", "日本語", 3, true},
		{"empty", "", 5, false},
		{"zero width", "hello", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := TruncateWidth(tc.input, tc.maxWidth)
			wasTruncated := len(result) < len(tc.input) || result == ""
			if tc.shouldTrunc && !wasTruncated && tc.input != "" {
				t.Errorf("TruncateWidth(%q, %d) = %q, expected truncation",
					tc.input, tc.maxWidth, result)
			}
			if !tc.shouldTrunc && wasTruncated && tc.input != "" {
				t.Errorf("TruncateWidth(%q, %d) = %q, unexpected truncation",
					tc.input, tc.maxWidth, result)
			}
		})
	}
}

func TestStringWidth(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
	}{
		{"hello", 5},
		{"", 0},
		{"日本語", 6},     // 3 CJK chars = 6 width
		{"こんにちは", 10},  // 5 hiragana = 10 width
		{"hello世界", 9}, // 5 ASCII + 2 CJK = 9
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := StringWidth(tc.input)
			if result != tc.expected {
				t.Errorf("StringWidth(%q) = %d, want %d", tc.input, result, tc.expected)
			}
		})
	}
}

func TestPadWidth(t *testing.T) {
	testCases := []struct {
		input    string
		width    int
		expected string
	}{
		{"FF", 5, "FF   "},
		{"hello", 5, "hello"},
		{"hello world", 5, "hello world"},
		{"", 3, "   "},
		{"日本", 6, "日本  "}, // 2 CJK chars = 4 columns
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := PadWidth(tc.input, tc.width)
			if result != tc.expected {
				t.Errorf("PadWidth(%q, %d) = %q, want %q",
					tc.input, tc.width, result, tc.expected)
			}
		})
	}
}

func TestRuneLen(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
	}{
		{"hello", 5},
		{"", 0},
		{"日本語", 3},
		{"hello 👋", 7},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := RuneLen(tc.input)
			if result != tc.expected {
				t.Errorf("RuneLen(%q) = %d, want %d", tc.input, result, tc.expected)
			}
		})
	}
}

// =============================================================================
// NUMERIC DISPLAY TESTS
// =============================================================================

func TestGroupDigits(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"1234567", "1,234,567"},
		{"-1234567", "-1,234,567"},
		{"+1000", "+1,000"},
		{"18446744073709551615", "18,446,744,073,709,551,615"},
		{"0x4D2", "0x4D2"}, // non-decimal left alone
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := GroupDigits(tc.input, ',')
			if result != tc.expected {
				t.Errorf("GroupDigits(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestNumericToString(t *testing.T) {
	if got := IntToString(42); got != "42" {
		t.Errorf("IntToString(42) = %q", got)
	}
	if got := Int64ToString(-9223372036854775808); got != "-9223372036854775808" {
		t.Errorf("Int64ToString(min) = %q", got)
	}
	if got := Uint64ToString(18446744073709551615); got != "18446744073709551615" {
		t.Errorf("Uint64ToString(max) = %q", got)
	}
}
