// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package convert implements the conversion core of hexlens: mapping between
// textual hex representations, byte sequences, fixed-width integers, and
// displayable text.
//
// Every function in this package is pure. Inputs are read, never mutated, and
// no package-level state exists, so all functions are safe for concurrent use
// without coordination.
//
// # Representations
//
// Integers are interpreted in one of four representations over a fixed byte
// width of 1 to MaxBytes bytes:
//
//   - Unsigned
//   - Two's complement
//   - One's complement (negative zero normalizes to 0)
//   - Sign-magnitude (the high bit of the most significant byte is the sign)
//
// Endianness is applied per value: Big means most significant byte first.
//
// # Errors
//
// Failures are reported through three structured error types, matched with
// errors.As at the call boundary:
//
//   - FormatError: malformed hex or numeric input
//   - WidthError:  byte count or requested width outside 1..MaxBytes
//   - RangeError:  integer not representable in the requested width
package convert
