// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line interface functionality.
// This file contains the shared conversion plumbing used by the hex,
// number, and text commands and the REPL.
//
// CLI: Comprehensive help and examples for all commands
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/hexlens/internal/config"
	"github.com/jeranaias/hexlens/internal/convert"
	"github.com/jeranaias/hexlens/internal/util"
)

// =============================================================================
// CONVERSION SETTINGS
// =============================================================================

// settings holds the resolved conversion settings for one command run:
// the config values with any CLI flag overrides applied.
type settings struct {
	endianness convert.Endianness
	width      int
	repr       convert.Representation
	sizes      []int
	thousands  bool
}

// resolveSettings merges the active config with flag overrides.
func resolveSettings(args Args) (settings, error) {
	cfg := config.Global()

	s := settings{
		endianness: cfg.Endianness(),
		width:      cfg.Convert.Width,
		repr:       cfg.Representation(),
		sizes:      cfg.GroupSizes(),
		thousands:  cfg.Convert.ThousandsSeparator,
	}
	// A fixed configured size is not part of GroupSizes(); apply it here
	// so the one-shot commands group the same way the TUI does.
	if cfg.Convert.GroupSize != 0 {
		s.sizes = []int{cfg.Convert.GroupSize}
	}

	if args.Endian != "" {
		e, err := convert.ParseEndianness(args.Endian)
		if err != nil {
			return s, NewValidationErrorWithExample("endian", args.Endian,
				"must be little or big", "--endian big")
		}
		s.endianness = e
	}

	if args.Width != 0 {
		if !validWidth(args.Width) {
			return s, NewValidationErrorWithExample("width", strconv.Itoa(args.Width),
				"must be 1, 2, 4, or 8", "--width 2")
		}
		s.width = args.Width
	}

	if args.Repr != "" {
		r, err := convert.ParseRepresentation(args.Repr)
		if err != nil {
			return s, NewValidationErrorWithExample("repr", args.Repr,
				"must be unsigned, twos, ones, or signmag", "--repr signmag")
		}
		s.repr = r
	}

	if args.Group != "" {
		sizes, err := parseGroupSpec(args.Group)
		if err != nil {
			return s, err
		}
		s.sizes = sizes
	}

	return s, nil
}

// validWidth reports whether w is an allowed integer width in bytes.
func validWidth(w int) bool {
	switch w {
	case 1, 2, 4, 8:
		return true
	}
	return false
}

// parseGroupSpec parses a group flag: a single size or a comma pattern.
func parseGroupSpec(spec string) ([]int, error) {
	if n, err := strconv.Atoi(spec); err == nil {
		for _, valid := range convert.GroupSizes {
			if n == valid {
				return []int{n}, nil
			}
		}
		return nil, NewValidationErrorWithExample("group", spec,
			"size must be 1, 2, 4, or 8", "--group 2")
	}

	sizes := convert.ParseGroupPattern(spec)
	if len(sizes) == 0 {
		return nil, NewValidationErrorWithExample("group", spec,
			"must be a size or comma pattern", "--group 1,1,6")
	}
	return sizes, nil
}

// chunk splits bytes per the settings. A single size repeats; a pattern
// applies once with the remainder forming a final group.
func (s settings) chunk(b []byte) [][]byte {
	if len(s.sizes) == 1 {
		if groups, err := convert.Chunk(b, s.sizes[0]); err == nil {
			return groups
		}
	}
	return convert.ChunkSizes(b, s.sizes)
}

// groupedHex renders the grouped hex spelling in the active byte order.
func (s settings) groupedHex(b []byte) []string {
	if len(s.sizes) == 1 {
		if out, err := convert.GroupedHex(b, s.sizes[0], s.endianness); err == nil {
			return out
		}
	}
	return convert.GroupedHexSizes(b, s.sizes, s.endianness)
}

// formatInt applies thousands separators when enabled.
func (s settings) formatInt(n int64) string {
	out := util.Int64ToString(n)
	if s.thousands {
		return util.GroupDigits(out, ',')
	}
	return out
}

// formatUint applies thousands separators when enabled.
func (s settings) formatUint(u uint64) string {
	out := util.Uint64ToString(u)
	if s.thousands {
		return util.GroupDigits(out, ',')
	}
	return out
}

// =============================================================================
// CONVERSION OUTPUT
// =============================================================================

// conversionData builds the JSON payload for a converted byte sequence.
func conversionData(input, mode string, b []byte, s settings) *ConversionData {
	data := &ConversionData{
		Input:          input,
		Mode:           mode,
		Endianness:     s.endianness.String(),
		Representation: s.repr.Flag(),
		Bytes:          perByteHex(b),
		Hex:            s.groupedHex(b),
		Binary:         convert.BinaryStrings(b),
		ASCII:          convert.ASCIIString(b),
	}

	for _, g := range s.chunk(b) {
		if len(g) == 0 {
			continue
		}
		u, err := convert.BytesToUint(g, s.endianness)
		if err != nil {
			data.Unsigned = nil
			data.Signed = nil
			break
		}
		data.Unsigned = append(data.Unsigned, u)

		if s.repr.Signed() {
			n, err := convert.BytesToInt(g, s.repr, s.endianness)
			if err == nil {
				data.Signed = append(data.Signed, n)
			}
		}
	}

	return data
}

// perByteHex renders each byte as two hex digits in memory order.
func perByteHex(b []byte) []string {
	out := make([]string, len(b))
	for i, v := range b {
		out[i] = fmt.Sprintf("%02X", v)
	}
	return out
}

// printConversion writes the human-readable conversion table to stdout.
func printConversion(b []byte, s settings, quiet bool) {
	if len(b) == 0 {
		fmt.Println(DimStyle.Render("(no bytes)"))
		return
	}

	rows := []struct {
		label string
		value string
	}{
		{"Hex", strings.Join(s.groupedHex(b), "  ")},
	}

	groups := s.chunk(b)

	if unsigned := s.unsignedRow(groups); unsigned != "" {
		rows = append(rows, struct{ label, value string }{"Unsigned", unsigned})
	}
	if s.repr.Signed() {
		if signed := s.signedRow(groups); signed != "" {
			rows = append(rows, struct{ label, value string }{s.repr.String(), signed})
		}
	}

	rows = append(rows,
		struct{ label, value string }{"Binary", strings.Join(convert.BinaryStrings(b), " ")},
		struct{ label, value string }{"ASCII", convert.ASCIIString(b)},
	)

	if quiet {
		// Quiet mode prints values only, one per line
		for _, row := range rows {
			fmt.Println(row.value)
		}
		return
	}

	for _, row := range rows {
		style := ValueStyle
		if row.label == "Hex" {
			style = HighlightStyle
		}
		fmt.Printf("%s %s\n", RenderLabel(row.label+":", 16), style.Render(row.value))
	}
}

// unsignedRow renders each group as an unsigned integer.
func (s settings) unsignedRow(groups [][]byte) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		u, err := convert.BytesToUint(g, s.endianness)
		if err != nil {
			return ""
		}
		parts = append(parts, s.formatUint(u))
	}
	return strings.Join(parts, "  ")
}

// signedRow renders each group under the active representation.
func (s settings) signedRow(groups [][]byte) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		n, err := convert.BytesToInt(g, s.repr, s.endianness)
		if err != nil {
			return ""
		}
		parts = append(parts, s.formatInt(n))
	}
	return strings.Join(parts, "  ")
}
