// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// text.go - Byte sequence <-> displayable text conversions.
package convert

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// ASCIIRuns groups printable ASCII bytes into strings and maps non-printable
// bytes to ".". Contiguous non-printables coalesce into a single dot, except
// DEL (0x7F) which is always emitted as its own dot. This direction never
// fails.
func ASCIIRuns(data []byte) []string {
	var runs []string
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			runs = append(runs, buf.String())
			buf.Reset()
		}
	}

	for _, b := range data {
		if b >= PrintableMin && b <= PrintableMax {
			buf.WriteByte(b)
			continue
		}
		flush()
		if b == 0x7F {
			// DEL always stands alone, even after another dot.
			runs = append(runs, ".")
		} else if len(runs) == 0 || runs[len(runs)-1] != "." {
			runs = append(runs, ".")
		}
	}
	flush()
	return runs
}

// ASCIIString renders data as a single display string using the ASCIIRuns
// substitution policy.
func ASCIIString(data []byte) string {
	return strings.Join(ASCIIRuns(data), "")
}

// BinaryStrings renders one "01010101" string per byte.
func BinaryStrings(data []byte) []string {
	out := make([]string, 0, len(data))
	for _, b := range data {
		out = append(out, fmt.Sprintf("%08b", b))
	}
	return out
}

// EncodeText encodes s as latin-1 (ISO 8859-1) bytes, substituting '?' for
// runes outside the charset.
func EncodeText(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return out
}
