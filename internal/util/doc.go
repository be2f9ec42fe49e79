// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the hexlens application.
//
// This package contains common helper functions used throughout the
// application for string manipulation, numeric display, and file operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - TruncateWidth, PadWidth: display-width aware layout helpers
//
// Numeric Display:
//   - IntToString, Int64ToString, Uint64ToString: numeric to string conversion
//   - GroupDigits: thousands separators for large values
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	// Truncate long strings safely for display
//	display := util.TruncateRunes(longText, 50)
//
//	// Group digits for readability
//	s := util.GroupDigits("1234567", ',') // "1,234,567"
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0644)
package util
