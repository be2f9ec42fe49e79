// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Tests for the shared conversion plumbing: settings resolution, group
// specs, number encoding, and the JSON payload builder.
package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/jeranaias/hexlens/internal/config"
	"github.com/jeranaias/hexlens/internal/convert"
)

// useDefaultConfig pins the global config to defaults for one test.
func useDefaultConfig(t *testing.T) {
	t.Helper()
	config.SetGlobal(config.Default())
	t.Cleanup(config.ResetGlobalForTesting)
}

// =============================================================================
// SETTINGS RESOLUTION
// =============================================================================

func TestResolveSettings_Defaults(t *testing.T) {
	useDefaultConfig(t)

	s, err := resolveSettings(Args{})
	if err != nil {
		t.Fatalf("resolveSettings() error = %v", err)
	}

	if s.endianness != convert.Little {
		t.Errorf("endianness = %v, want Little", s.endianness)
	}
	if s.width != 4 {
		t.Errorf("width = %d, want 4", s.width)
	}
	if s.repr != convert.TwosComplement {
		t.Errorf("repr = %v, want TwosComplement", s.repr)
	}
	if len(s.sizes) != 1 || s.sizes[0] != 1 {
		t.Errorf("sizes = %v, want [1]", s.sizes)
	}
	if !s.thousands {
		t.Error("thousands should default to true")
	}
}

func TestResolveSettings_ConfiguredGroupSize(t *testing.T) {
	cfg := config.Default()
	cfg.Convert.GroupSize = 2
	config.SetGlobal(cfg)
	t.Cleanup(config.ResetGlobalForTesting)

	s, err := resolveSettings(Args{})
	if err != nil {
		t.Fatalf("resolveSettings() error = %v", err)
	}
	if len(s.sizes) != 1 || s.sizes[0] != 2 {
		t.Errorf("sizes = %v, want [2]", s.sizes)
	}

	// Two-byte groups actually show up in the output rows
	grouped := s.groupedHex([]byte{0x00, 0xFF, 0x00, 0xFF})
	if len(grouped) != 2 {
		t.Errorf("groupedHex groups = %d, want 2", len(grouped))
	}
}

func TestResolveSettings_ConfiguredGroupPattern(t *testing.T) {
	cfg := config.Default()
	cfg.Convert.GroupSize = 0
	cfg.Convert.GroupPattern = "1,1,6"
	config.SetGlobal(cfg)
	t.Cleanup(config.ResetGlobalForTesting)

	s, err := resolveSettings(Args{})
	if err != nil {
		t.Fatalf("resolveSettings() error = %v", err)
	}
	want := []int{1, 1, 6}
	if len(s.sizes) != len(want) {
		t.Fatalf("sizes = %v, want %v", s.sizes, want)
	}
	for i := range want {
		if s.sizes[i] != want[i] {
			t.Fatalf("sizes = %v, want %v", s.sizes, want)
		}
	}
}

func TestResolveSettings_Overrides(t *testing.T) {
	useDefaultConfig(t)

	s, err := resolveSettings(Args{
		Endian: "big",
		Width:  2,
		Repr:   "signmag",
		Group:  "2",
	})
	if err != nil {
		t.Fatalf("resolveSettings() error = %v", err)
	}

	if s.endianness != convert.Big {
		t.Errorf("endianness = %v, want Big", s.endianness)
	}
	if s.width != 2 {
		t.Errorf("width = %d, want 2", s.width)
	}
	if s.repr != convert.SignMagnitude {
		t.Errorf("repr = %v, want SignMagnitude", s.repr)
	}
	if len(s.sizes) != 1 || s.sizes[0] != 2 {
		t.Errorf("sizes = %v, want [2]", s.sizes)
	}
}

func TestResolveSettings_InvalidValues(t *testing.T) {
	useDefaultConfig(t)

	tests := []struct {
		name string
		args Args
	}{
		{"bad endian", Args{Endian: "middle"}},
		{"bad width", Args{Width: 3}},
		{"width too large", Args{Width: 16}},
		{"bad repr", Args{Repr: "nines"}},
		{"bad group", Args{Group: "zebra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveSettings(tt.args)
			if err == nil {
				t.Fatal("expected error")
			}
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("error type = %T, want *ValidationError", err)
			}
		})
	}
}

func TestParseGroupSpec(t *testing.T) {
	tests := []struct {
		spec    string
		want    []int
		wantErr bool
	}{
		{"1", []int{1}, false},
		{"2", []int{2}, false},
		{"8", []int{8}, false},
		{"3", nil, true},
		{"1,1,6", []int{1, 1, 6}, false},
		{"2 2", []int{2, 2}, false},
		{"zebra", nil, true},
	}

	for _, tt := range tests {
		sizes, err := parseGroupSpec(tt.spec)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseGroupSpec(%q) should fail", tt.spec)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseGroupSpec(%q) error = %v", tt.spec, err)
			continue
		}
		if len(sizes) != len(tt.want) {
			t.Errorf("parseGroupSpec(%q) = %v, want %v", tt.spec, sizes, tt.want)
			continue
		}
		for i := range sizes {
			if sizes[i] != tt.want[i] {
				t.Errorf("parseGroupSpec(%q) = %v, want %v", tt.spec, sizes, tt.want)
				break
			}
		}
	}
}

// =============================================================================
// NUMBER ENCODING
// =============================================================================

func TestEncodeNumber(t *testing.T) {
	s := settings{
		endianness: convert.Little,
		width:      2,
		repr:       convert.TwosComplement,
	}

	b, err := encodeNumber("1200", s)
	if err != nil {
		t.Fatalf("encodeNumber(1200) error = %v", err)
	}
	if len(b) != 2 || b[0] != 0xB0 || b[1] != 0x04 {
		t.Errorf("encodeNumber(1200) = % X, want B0 04", b)
	}

	b, err = encodeNumber("-1", settings{endianness: convert.Little, width: 1, repr: convert.TwosComplement})
	if err != nil {
		t.Fatalf("encodeNumber(-1) error = %v", err)
	}
	if len(b) != 1 || b[0] != 0xFF {
		t.Errorf("encodeNumber(-1) = % X, want FF", b)
	}
}

func TestEncodeNumberOutOfRange(t *testing.T) {
	s := settings{
		endianness: convert.Little,
		width:      1,
		repr:       convert.Unsigned,
	}

	_, err := encodeNumber("300", s)
	if err == nil {
		t.Fatal("encodeNumber(300, width 1) should fail")
	}
	var rangeErr *convert.RangeError
	if !errors.As(err, &rangeErr) {
		t.Errorf("error type = %T, want *RangeError", err)
	}
}

func TestEncodeNumberUnsignedAboveMaxInt64(t *testing.T) {
	s := settings{
		endianness: convert.Little,
		width:      8,
		repr:       convert.Unsigned,
	}

	b, err := encodeNumber("18446744073709551615", s)
	if err != nil {
		t.Fatalf("encodeNumber(max uint64) error = %v", err)
	}
	for i, v := range b {
		if v != 0xFF {
			t.Errorf("byte %d = %02X, want FF", i, v)
		}
	}
}

// =============================================================================
// JSON PAYLOAD
// =============================================================================

func TestConversionData(t *testing.T) {
	s := settings{
		endianness: convert.Little,
		width:      4,
		repr:       convert.TwosComplement,
		sizes:      []int{1},
	}
	b := []byte{0x04, 0xB0}

	data := conversionData("04 B0", "hex", b, s)

	if data.Input != "04 B0" || data.Mode != "hex" {
		t.Errorf("Input/Mode = %q/%q", data.Input, data.Mode)
	}
	if data.Endianness != "little" {
		t.Errorf("Endianness = %q, want little", data.Endianness)
	}
	if data.Representation != "twos" {
		t.Errorf("Representation = %q, want twos", data.Representation)
	}
	if len(data.Bytes) != 2 || data.Bytes[0] != "04" || data.Bytes[1] != "B0" {
		t.Errorf("Bytes = %v", data.Bytes)
	}
	if len(data.Unsigned) != 2 || data.Unsigned[0] != 4 || data.Unsigned[1] != 176 {
		t.Errorf("Unsigned = %v, want [4 176]", data.Unsigned)
	}
	if len(data.Signed) != 2 || data.Signed[0] != 4 || data.Signed[1] != -80 {
		t.Errorf("Signed = %v, want [4 -80]", data.Signed)
	}
	if len(data.Binary) != 2 || data.Binary[0] != "00000100" {
		t.Errorf("Binary = %v", data.Binary)
	}
	// 0x04 and 0xB0 are contiguous non-printables, so they coalesce
	if data.ASCII != "." {
		t.Errorf("ASCII = %q, want %q", data.ASCII, ".")
	}
}

func TestConversionDataUnsignedReprHasNoSigned(t *testing.T) {
	s := settings{
		endianness: convert.Little,
		width:      4,
		repr:       convert.Unsigned,
		sizes:      []int{8},
	}
	b := []byte{0xB0, 0x04}

	data := conversionData("1200", "number", b, s)

	if len(data.Signed) != 0 {
		t.Errorf("Signed = %v, want empty for unsigned representation", data.Signed)
	}
	if len(data.Unsigned) != 1 || data.Unsigned[0] != 1200 {
		t.Errorf("Unsigned = %v, want [1200]", data.Unsigned)
	}
}

// =============================================================================
// GROUPING
// =============================================================================

func TestSettingsChunkRepeatsSingleSize(t *testing.T) {
	s := settings{sizes: []int{2}}
	groups := s.chunk([]byte{1, 2, 3, 4, 5, 6})

	if len(groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(groups))
	}
	for i, g := range groups {
		if len(g) != 2 {
			t.Errorf("group %d length = %d, want 2", i, len(g))
		}
	}
}

func TestSettingsChunkPatternOnce(t *testing.T) {
	s := settings{sizes: []int{1, 1, 6}}
	groups := s.chunk([]byte{1, 2, 3, 4})

	// Pattern applies once; the short remainder becomes the final group
	if len(groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(groups))
	}
	if len(groups[0]) != 1 || len(groups[1]) != 1 || len(groups[2]) != 2 {
		t.Errorf("group lengths = %d,%d,%d, want 1,1,2",
			len(groups[0]), len(groups[1]), len(groups[2]))
	}
}

func TestFormatUintThousands(t *testing.T) {
	s := settings{thousands: true}
	if got := s.formatUint(45060); got != "45,060" {
		t.Errorf("formatUint(45060) = %q, want %q", got, "45,060")
	}

	s.thousands = false
	if got := s.formatUint(45060); got != "45060" {
		t.Errorf("formatUint(45060) = %q, want %q", got, "45060")
	}
}

// =============================================================================
// EXIT CODES
// =============================================================================

// =============================================================================
// JSON ERROR ENVELOPE
// =============================================================================

func TestErrorDetail(t *testing.T) {
	detail := errorDetail(NewValidationErrorWithExample("width", "3",
		"must be 1, 2, 4, or 8", "--width 2"))
	if detail["error_type"] != "validation_error" {
		t.Errorf("error_type = %v, want validation_error", detail["error_type"])
	}
	if detail["example"] != "--width 2" {
		t.Errorf("example = %v, want --width 2", detail["example"])
	}

	detail = errorDetail(&convert.RangeError{Value: "300", Width: 1, Repr: convert.Unsigned})
	if detail["error_type"] != "range_error" {
		t.Errorf("error_type = %v, want range_error", detail["error_type"])
	}
	if detail["representation"] != "unsigned" {
		t.Errorf("representation = %v, want unsigned", detail["representation"])
	}

	detail = errorDetail(errors.New("boom"))
	if detail["error_type"] != "generic_error" {
		t.Errorf("error_type = %v, want generic_error", detail["error_type"])
	}
}

func TestErrorCommand(t *testing.T) {
	if got := errorCommand(NewCommandError("config", "set", "cannot save", nil)); got != "config" {
		t.Errorf("errorCommand = %q, want config", got)
	}
	if got := errorCommand(errors.New("boom")); got != "" {
		t.Errorf("errorCommand = %q, want empty", got)
	}
}

func TestErrorEnvelope(t *testing.T) {
	err := NewCommandError("config", "set", "cannot save config", errors.New("disk full"))
	resp := NewJSONErrorResponse(errorCommand(err), err)
	resp.Data = errorDetail(err)

	out := resp.String()
	for _, want := range []string{
		`"success": false`,
		`"command": "config"`,
		`"error_type": "command_error"`,
		`"underlying_error": "disk full"`,
		`"timestamp"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("envelope missing %s in:\n%s", want, out)
		}
	}
	if resp.Error == nil || *resp.Error == "" {
		t.Error("envelope error message should be set")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"format error", &convert.FormatError{Input: "GG", Reason: "bad digit"}, ExitUsageError},
		{"width error", &convert.WidthError{Got: 12}, ExitUsageError},
		{"range error", &convert.RangeError{Value: "300", Width: 1, Repr: convert.Unsigned}, ExitRangeError},
		{"validation error", NewValidationError("width", "3", "must be 1, 2, 4, or 8"), ExitUsageError},
		{"config validate errors", config.ValidateErrors{{Field: "convert.width", Message: "out of range"}}, ExitConfigError},
		{"config command error", NewCommandError("config", "set", "cannot save config", errors.New("disk full")), ExitConfigError},
		{"non-config command error", NewCommandError("repl", "history", "cannot open history", errors.New("denied")), ExitGeneralError},
		{"generic error", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
