// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// number_cmd.go - The number command: encode an integer as bytes.
package cli

import (
	"github.com/jeranaias/hexlens/internal/convert"
)

// HandleNumber encodes a number under the active width, representation,
// and byte order, then prints every reading of the resulting bytes.
func HandleNumber(args Args) error {
	if args.Query == "" {
		return HandleError(NewValidationErrorWithExample("number", "",
			"a number is required", "hexlens number 1200"), args.JSON)
	}

	s, err := resolveSettings(args)
	if err != nil {
		return HandleError(err, args.JSON)
	}

	b, err := encodeNumber(args.Query, s)
	if err != nil {
		return HandleError(err, args.JSON)
	}

	if args.JSON {
		return NewJSONResponse("number", conversionData(args.Query, "number", b, s)).Print()
	}

	printConversion(b, s, args.Quiet)
	return nil
}

// encodeNumber parses a number and encodes it as bytes. Unsigned values
// above MaxInt64 only fit when the representation is unsigned.
func encodeNumber(raw string, s settings) ([]byte, error) {
	if s.repr == convert.Unsigned {
		u, err := convert.ParseUint(raw)
		if err != nil {
			return nil, err
		}
		return convert.UintToBytes(u, s.width, s.endianness)
	}

	n, err := convert.ParseInt(raw)
	if err != nil {
		return nil, err
	}
	return convert.IntToBytes(n, s.width, s.repr, s.endianness)
}
