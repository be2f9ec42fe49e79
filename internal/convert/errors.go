// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Structured error types for the conversion core.
//
// ERROR HANDLING: Errors must not be silently ignored
package convert

import "fmt"

// FormatError reports malformed textual input: invalid hex digits, an odd
// number of digits in a continuous hex string, or an unparseable number.
type FormatError struct {
	Input  string // Offending input (or token)
	Reason string // Human-readable reason
}

func (e *FormatError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

// WidthError reports a byte count or requested width outside 1..MaxBytes.
type WidthError struct {
	Got int // Width or byte count that was provided
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("width must be 1..%d bytes, got %d", MaxBytes, e.Got)
}

// RangeError reports an integer that does not fit in the requested width
// under the requested representation.
type RangeError struct {
	Value string         // Decimal spelling of the value
	Width int            // Requested width in bytes
	Repr  Representation // Requested representation
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %s out of range for %d-byte %s", e.Value, e.Width, e.Repr)
}
