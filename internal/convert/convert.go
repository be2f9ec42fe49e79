// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// convert.go - Core types and integer<->bytes conversions.
package convert

import (
	"math"
	"strconv"
	"strings"
)

// MaxBytes is the maximum number of bytes a single conversion operates on.
// User input is short by design; this is not a streaming codec.
const MaxBytes = 8

// Printable ASCII bounds (inclusive).
const (
	PrintableMin = 0x20
	PrintableMax = 0x7E
)

// =============================================================================
// ENDIANNESS
// =============================================================================

// Endianness selects the byte order of a value.
type Endianness int

const (
	// Little stores the least significant byte first.
	Little Endianness = iota
	// Big stores the most significant byte first.
	Big
)

// String returns the canonical lower-case name ("little" or "big").
func (e Endianness) String() string {
	if e == Big {
		return "big"
	}
	return "little"
}

// Toggle returns the opposite byte order.
func (e Endianness) Toggle() Endianness {
	if e == Big {
		return Little
	}
	return Big
}

// ParseEndianness parses "little"/"le" or "big"/"be" (case-insensitive).
func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "little", "le":
		return Little, nil
	case "big", "be":
		return Big, nil
	default:
		return Little, &FormatError{Input: s, Reason: "endianness must be 'little' or 'big'"}
	}
}

// =============================================================================
// REPRESENTATION
// =============================================================================

// Representation selects how bytes encode an integer value.
type Representation int

const (
	Unsigned Representation = iota
	TwosComplement
	OnesComplement
	SignMagnitude
)

// String returns a display name for the representation.
func (r Representation) String() string {
	switch r {
	case TwosComplement:
		return "2's complement"
	case OnesComplement:
		return "1's complement"
	case SignMagnitude:
		return "sign-magnitude"
	default:
		return "unsigned"
	}
}

// Flag returns the short CLI spelling of the representation.
func (r Representation) Flag() string {
	switch r {
	case TwosComplement:
		return "twos"
	case OnesComplement:
		return "ones"
	case SignMagnitude:
		return "signmag"
	default:
		return "unsigned"
	}
}

// Signed reports whether the representation can encode negative values.
func (r Representation) Signed() bool {
	return r != Unsigned
}

// ParseRepresentation parses the CLI spelling of a representation
// (unsigned, twos, ones, signmag) case-insensitively.
func ParseRepresentation(s string) (Representation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unsigned", "u":
		return Unsigned, nil
	case "twos", "2s":
		return TwosComplement, nil
	case "ones", "1s":
		return OnesComplement, nil
	case "signmag", "sm":
		return SignMagnitude, nil
	default:
		return Unsigned, &FormatError{Input: s, Reason: "representation must be one of unsigned, twos, ones, signmag"}
	}
}

// Representations lists all representations in cycling order.
var Representations = []Representation{Unsigned, TwosComplement, OnesComplement, SignMagnitude}

// =============================================================================
// RANGES
// =============================================================================

// IntRange returns the inclusive [lo, hi] range representable in the given
// width and representation. lo is always representable as int64; hi may only
// fit in a uint64 (8-byte unsigned).
func IntRange(width int, r Representation) (lo int64, hi uint64, err error) {
	if width < 1 || width > MaxBytes {
		return 0, 0, &WidthError{Got: width}
	}
	bits := uint(8 * width)
	switch r {
	case Unsigned:
		if width == MaxBytes {
			return 0, math.MaxUint64, nil
		}
		return 0, 1<<bits - 1, nil
	case TwosComplement:
		if width == MaxBytes {
			return math.MinInt64, math.MaxInt64, nil
		}
		return -(1 << (bits - 1)), 1<<(bits-1) - 1, nil
	default: // ones' complement and sign-magnitude cannot encode -(2^(n-1))
		if width == MaxBytes {
			return -math.MaxInt64, math.MaxInt64, nil
		}
		hi = 1<<(bits-1) - 1
		return -int64(hi), hi, nil
	}
}

// =============================================================================
// BYTES -> INTEGER
// =============================================================================

// BytesToUint interprets b as an unsigned integer under the given byte order.
// The width is inferred from len(b) and must be 1..MaxBytes.
func BytesToUint(b []byte, e Endianness) (uint64, error) {
	if len(b) < 1 || len(b) > MaxBytes {
		return 0, &WidthError{Got: len(b)}
	}
	return loadBytes(b, e), nil
}

// BytesToInt interprets b as a signed integer in the given representation and
// byte order. The width is inferred from len(b) and must be 1..MaxBytes.
// For the Unsigned representation the value must fit in an int64; use
// BytesToUint when the full unsigned range is needed.
func BytesToInt(b []byte, r Representation, e Endianness) (int64, error) {
	if len(b) < 1 || len(b) > MaxBytes {
		return 0, &WidthError{Got: len(b)}
	}
	bits := uint(8 * len(b))
	u := loadBytes(b, e)

	switch r {
	case Unsigned:
		if u > math.MaxInt64 {
			return 0, &RangeError{Value: strconv.FormatUint(u, 10), Width: len(b), Repr: r}
		}
		return int64(u), nil

	case TwosComplement:
		if bits == 64 {
			return int64(u), nil
		}
		if u&(1<<(bits-1)) != 0 {
			return int64(u) - (1 << bits), nil
		}
		return int64(u), nil

	case OnesComplement:
		// Endian-agnostic over the full-width value.
		mask := maskFor(bits)
		if u&(1<<(bits-1)) != 0 {
			mag := ^u & mask
			if mag == 0 {
				return 0, nil // normalize negative zero
			}
			return -int64(mag), nil
		}
		return int64(u), nil

	default: // SignMagnitude
		msb := msbIndex(len(b), e)
		neg := b[msb]&0x80 != 0
		mag := make([]byte, len(b))
		copy(mag, b)
		mag[msb] &= 0x7F
		m := loadBytes(mag, e)
		if neg {
			return -int64(m), nil
		}
		return int64(m), nil
	}
}

// =============================================================================
// INTEGER -> BYTES
// =============================================================================

// UintToBytes encodes v into exactly width bytes under the given byte order.
func UintToBytes(v uint64, width int, e Endianness) ([]byte, error) {
	if width < 1 || width > MaxBytes {
		return nil, &WidthError{Got: width}
	}
	_, hi, _ := IntRange(width, Unsigned)
	if v > hi {
		return nil, &RangeError{Value: strconv.FormatUint(v, 10), Width: width, Repr: Unsigned}
	}
	return storeBytes(v, width, e), nil
}

// IntToBytes encodes v into exactly width bytes in the given representation
// and byte order. Values outside the representable range fail with RangeError.
func IntToBytes(v int64, width int, r Representation, e Endianness) ([]byte, error) {
	if width < 1 || width > MaxBytes {
		return nil, &WidthError{Got: width}
	}
	lo, hi, _ := IntRange(width, r)
	if v < lo || (v > 0 && uint64(v) > hi) {
		return nil, &RangeError{Value: strconv.FormatInt(v, 10), Width: width, Repr: r}
	}
	bits := uint(8 * width)
	mask := maskFor(bits)

	switch r {
	case Unsigned, TwosComplement:
		return storeBytes(uint64(v) & mask, width, e), nil

	case OnesComplement:
		if v >= 0 {
			return storeBytes(uint64(v), width, e), nil
		}
		// Negative: bitwise NOT of the magnitude.
		return storeBytes(^uint64(-v) & mask, width, e), nil

	default: // SignMagnitude
		mag := uint64(v)
		if v < 0 {
			mag = uint64(-v)
		}
		out := storeBytes(mag, width, e)
		if v < 0 {
			out[msbIndex(width, e)] |= 0x80
		}
		return out, nil
	}
}

// =============================================================================
// BYTE ORDER PRIMITIVES
// =============================================================================

// loadBytes assembles up to 8 bytes into a uint64 under the given byte order.
func loadBytes(b []byte, e Endianness) uint64 {
	var u uint64
	if e == Big {
		for _, x := range b {
			u = u<<8 | uint64(x)
		}
		return u
	}
	for i := len(b) - 1; i >= 0; i-- {
		u = u<<8 | uint64(b[i])
	}
	return u
}

// storeBytes spreads the low width*8 bits of v into a fresh slice.
func storeBytes(v uint64, width int, e Endianness) []byte {
	out := make([]byte, width)
	for i := 0; i < width; i++ {
		shift := uint(8 * i)
		if e == Big {
			out[width-1-i] = byte(v >> shift)
		} else {
			out[i] = byte(v >> shift)
		}
	}
	return out
}

// msbIndex returns the index of the most significant byte for the byte order.
func msbIndex(width int, e Endianness) int {
	if e == Big {
		return 0
	}
	return width - 1
}

// maskFor returns a mask covering the low bits bits.
func maskFor(bits uint) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}
	return 1<<bits - 1
}
