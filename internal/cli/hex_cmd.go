// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// hex_cmd.go - The hex command: convert a hex byte sequence.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/jeranaias/hexlens/internal/convert"
)

// HandleHex converts a hex byte string and prints every reading of it.
// With no argument and piped stdin, the bytes are read from stdin.
func HandleHex(args Args) error {
	if args.Query == "" && !IsTTY() {
		if data, err := io.ReadAll(os.Stdin); err == nil {
			args.Query = strings.TrimSpace(string(data))
		}
	}
	if args.Query == "" {
		return HandleError(NewValidationErrorWithExample("hex", "",
			"a hex byte sequence is required", `hexlens hex "DE AD BE EF"`), args.JSON)
	}

	s, err := resolveSettings(args)
	if err != nil {
		return HandleError(err, args.JSON)
	}

	b, err := convert.ParseHexBytes(args.Query)
	if err != nil {
		return HandleError(err, args.JSON)
	}

	if args.JSON {
		return NewJSONResponse("hex", conversionData(args.Query, "hex", b, s)).Print()
	}

	printConversion(b, s, args.Quiet)
	return nil
}
