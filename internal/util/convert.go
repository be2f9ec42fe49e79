// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the hexlens application.
package util

import "strconv"

// IntToString converts an int to string.
// Uses strconv.Itoa for optimal performance.
func IntToString(i int) string {
	return strconv.Itoa(i)
}

// Int64ToString converts an int64 to string.
// Uses strconv.FormatInt for optimal performance.
func Int64ToString(i int64) string {
	return strconv.FormatInt(i, 10)
}

// Uint64ToString converts a uint64 to string.
func Uint64ToString(u uint64) string {
	return strconv.FormatUint(u, 10)
}

// GroupDigits inserts sep between every third digit of a decimal string,
// counting from the right. A leading sign is preserved. Non-decimal input
// (hex spellings, already grouped numbers) is returned unchanged.
func GroupDigits(s string, sep byte) string {
	digits := s
	sign := ""
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		sign = digits[:1]
		digits = digits[1:]
	}
	if len(digits) <= 3 {
		return s
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return s
		}
	}
	var out []byte
	for i, c := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, sep)
		}
		out = append(out, c)
	}
	return sign + string(out)
}
