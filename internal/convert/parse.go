// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// parse.go - Parsing of user-entered hex strings, numbers, and group patterns.
package convert

import (
	"errors"
	"strconv"
	"strings"
)

// ParseHexBytes parses a string of hex digits into at most MaxBytes bytes.
//
// Accepted spellings:
//
//	"E8 08 B0 04 00 00 2C 01"  (spaces)
//	"e8,08,b0,04,00,00,2c,01"  (commas)
//	"0xE8 0x08 0xB0 0x04"      (0x prefixes)
//	"E808B00400002C01"         (continuous)
//	"F 8"                      (lone nibbles when separated: "F" -> 0x0F)
//
// A continuous string must have an even number of digits. Empty or
// whitespace-only input yields an empty, non-nil slice.
func ParseHexBytes(s string) ([]byte, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return []byte{}, nil
	}

	norm := strings.ReplaceAll(trimmed, ",", " ")
	norm = strings.ReplaceAll(norm, "0x", "")
	norm = strings.ReplaceAll(norm, "0X", "")
	norm = strings.ReplaceAll(norm, "_", " ")
	norm = strings.Join(strings.Fields(norm), " ")

	var tokens []string
	if strings.Contains(norm, " ") {
		tokens = strings.Split(norm, " ")
	} else {
		if len(norm)%2 != 0 {
			return nil, &FormatError{Input: trimmed, Reason: "continuous hex string must have an even number of digits"}
		}
		for i := 0; i < len(norm); i += 2 {
			tokens = append(tokens, norm[i:i+2])
		}
	}

	out := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if len(tok) == 1 {
			tok = "0" + tok
		}
		if len(tok) != 2 || !isHexDigit(tok[0]) || !isHexDigit(tok[1]) {
			return nil, &FormatError{Input: tok, Reason: "not a valid hex byte"}
		}
		v, _ := strconv.ParseUint(tok, 16, 8)
		out = append(out, byte(v))
	}

	if len(out) > MaxBytes {
		return nil, &WidthError{Got: len(out)}
	}
	return out, nil
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// FormatHex renders bytes as upper-case, space-separated hex pairs. This is
// the normal form: ParseHexBytes(FormatHex(b)) round-trips losslessly.
func FormatHex(b []byte) string {
	var sb strings.Builder
	for i, x := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		const digits = "0123456789ABCDEF"
		sb.WriteByte(digits[x>>4])
		sb.WriteByte(digits[x&0x0F])
	}
	return sb.String()
}

// ParseInt parses a signed integer in decimal or with a 0x/0o/0b prefix.
// Underscores are ignored. Empty input and malformed numbers fail with
// FormatError; values outside int64 fail with RangeError (width MaxBytes).
func ParseInt(s string) (int64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	if cleaned == "" {
		return 0, &FormatError{Reason: "enter a number (e.g., 1234 or 0x4D2)"}
	}
	v, err := strconv.ParseInt(cleaned, 0, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, &RangeError{Value: cleaned, Width: MaxBytes, Repr: TwosComplement}
		}
		return 0, &FormatError{Input: s, Reason: "not a valid number"}
	}
	return v, nil
}

// ParseUint is the unsigned counterpart of ParseInt, covering the full
// uint64 range for 8-byte unsigned conversions.
func ParseUint(s string) (uint64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	if cleaned == "" {
		return 0, &FormatError{Reason: "enter a number (e.g., 1234 or 0x4D2)"}
	}
	v, err := strconv.ParseUint(cleaned, 0, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, &RangeError{Value: cleaned, Width: MaxBytes, Repr: Unsigned}
		}
		return 0, &FormatError{Input: s, Reason: "not a valid unsigned number"}
	}
	return v, nil
}

// ParseGroupPattern parses a custom grouping pattern such as "1,1,6" or
// "2 2 4". Non-positive and malformed entries are dropped.
func ParseGroupPattern(s string) []int {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	sizes := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n <= 0 {
			continue
		}
		sizes = append(sizes, n)
	}
	return sizes
}
